package history

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/unotto/genchi"
)

// Blob is the single persisted value backing a Store. The whole list is
// written on every mutation; volumes are tens to low hundreds of
// entries, so whole-value granularity beats incremental machinery.
type Blob interface {
	// Load returns the stored payload, or (nil, nil) when nothing has
	// been stored yet.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}

// Store is the single owner of the persisted conversion history.
// Persistence problems never escape it: a missing or corrupt blob reads
// as an empty list, a failed write is logged and dropped. Last writer
// wins; there is no coordination between concurrent owners.
type Store struct {
	blob   Blob
	logger *logrus.Logger

	mu     sync.Mutex
	lastID int64
}

func NewStore(blob Blob, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Store{blob: blob, logger: logger}
}

var _ genchi.HistoryStore = (*Store)(nil)

// Load reads the persisted list. Absent, corrupt or foreign payloads
// all read as an empty list.
func (s *Store) Load(ctx context.Context) genchi.HistoryList {
	payload, err := s.blob.Load(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("history load failed, treating as empty")
		return genchi.HistoryList{}
	}

	return decodeList(payload)
}

// Save overwrites the persisted list unconditionally.
func (s *Store) Save(ctx context.Context, list genchi.HistoryList) {
	payload, err := json.Marshal(list)
	if err != nil {
		s.logger.WithError(err).Warn("history encode failed, dropping write")
		return
	}

	if err := s.blob.Save(ctx, payload); err != nil {
		s.logger.WithError(err).Warn("history save failed, dropping write")
	}
}

// Append assigns a fresh ID to entry, puts it at the front of the list
// (most recent first), persists and returns the stored entry.
func (s *Store) Append(ctx context.Context, entry genchi.HistoryEntry) genchi.HistoryEntry {
	entry.ID = s.nextID()

	list := append(genchi.HistoryList{entry}, s.Load(ctx)...)
	s.Save(ctx, list)

	return entry
}

// DeleteAt removes the entry at index and returns the resulting list.
// Out-of-bounds indexes are stale requests from a racing caller, not
// errors; the list is returned unchanged.
func (s *Store) DeleteAt(ctx context.Context, index int) genchi.HistoryList {
	list := s.Load(ctx)
	if index < 0 || index >= len(list) {
		return list
	}

	list = append(list[:index], list[index+1:]...)
	s.Save(ctx, list)

	return list
}

// Reorder replaces the persisted list with the caller-supplied order.
// The caller is the sole source of truth for the new order; the list is
// not checked against the previous one.
func (s *Store) Reorder(ctx context.Context, list genchi.HistoryList) {
	s.Save(ctx, list)
}

// nextID derives entry identity from the millisecond clock, bumped past
// the previous ID when two appends land in the same millisecond.
func (s *Store) nextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	return id
}
