package history

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// FileBlob keeps the history in one JSON file. The default backend:
// a CLI's equivalent of the browser's single localStorage key.
type FileBlob struct {
	Path string
}

func (b FileBlob) Load(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(b.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return payload, nil
}

func (b FileBlob) Save(_ context.Context, payload []byte) error {
	if dir := filepath.Dir(b.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(b.Path, payload, 0o644)
}
