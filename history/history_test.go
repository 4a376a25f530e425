package history_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/unotto/genchi"
	"github.com/unotto/genchi/history"
)

type brokenBlob struct{}

func (brokenBlob) Load(context.Context) ([]byte, error) { return nil, errors.New("backend down") }
func (brokenBlob) Save(context.Context, []byte) error   { return errors.New("backend down") }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}

func newFileStore(t *testing.T) (*history.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history.json")

	return newFileStoreAt(t, path), path
}

func newFileStoreAt(t *testing.T, path string) *history.Store {
	t.Helper()

	return history.NewStore(history.FileBlob{Path: path}, quietLogger())
}

func fakeEntry(t *testing.T) genchi.HistoryEntry {
	t.Helper()

	var entry genchi.HistoryEntry
	require.NoError(t, faker.FakeData(&entry))
	entry.ID = 0

	return entry
}

func TestLoadWithoutPersistedState(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	store, _ := newFileStore(t)

	assert.Empty(store.Load(context.Background()))
}

func TestAppendAssignsFreshID(t *testing.T) {
	t.Parallel()
	assert := require.New(t)
	ctx := context.Background()

	store, _ := newFileStore(t)

	first := fakeEntry(t)
	second := fakeEntry(t)

	storedFirst := store.Append(ctx, first)
	storedSecond := store.Append(ctx, second)

	assert.NotZero(storedFirst.ID)
	assert.NotEqual(storedFirst.ID, storedSecond.ID)
	assert.Greater(storedSecond.ID, storedFirst.ID)

	list := store.Load(ctx)
	assert.Len(list, 2)
	assert.Equal(storedSecond, list[0], "newest entry sits at the front")
	assert.Equal(storedFirst, list[1])

	first.ID = storedFirst.ID
	assert.Equal(first, storedFirst, "all caller fields survive the append")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	assert := require.New(t)
	ctx := context.Background()

	store, _ := newFileStore(t)

	list := genchi.HistoryList{
		{ID: 3, Date: "2025/9/1", Left: "$100", Right: "¥15,279\n$1 = ¥152.79", Memo: "両替"},
		{ID: 2, Date: "2025/8/30", Left: "€50", Right: "¥8,545\n€1 = ¥170.9"},
		{ID: 1, Date: "2025/8/29", Left: "₩10,000", Right: "¥1,100\n₩1 = ¥0.11"},
	}

	store.Save(ctx, list)

	assert.Equal(list, store.Load(ctx))
}

func TestDeleteAt(t *testing.T) {
	t.Parallel()
	assert := require.New(t)
	ctx := context.Background()

	store, _ := newFileStore(t)

	list := genchi.HistoryList{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	store.Save(ctx, list)

	result := store.DeleteAt(ctx, 1)

	assert.Equal(genchi.HistoryList{{ID: 1}, {ID: 3}, {ID: 4}}, result)
	assert.Equal(result, store.Load(ctx))
}

func TestDeleteAtOutOfBounds(t *testing.T) {
	t.Parallel()
	assert := require.New(t)
	ctx := context.Background()

	store, _ := newFileStore(t)

	list := genchi.HistoryList{{ID: 1}, {ID: 2}}
	store.Save(ctx, list)

	// A stale index from a racing caller is ignored, not an error.
	assert.Equal(list, store.DeleteAt(ctx, 2))
	assert.Equal(list, store.DeleteAt(ctx, -1))
	assert.Equal(list, store.Load(ctx))
}

func TestReorderRoundTrip(t *testing.T) {
	t.Parallel()
	assert := require.New(t)
	ctx := context.Background()

	store, _ := newFileStore(t)

	store.Save(ctx, genchi.HistoryList{{ID: 1}, {ID: 2}, {ID: 3}})

	permutation := genchi.HistoryList{{ID: 2}, {ID: 3}, {ID: 1}}
	store.Reorder(ctx, permutation)

	assert.Equal(permutation, store.Load(ctx))
}

func TestCorruptBlobReadsAsEmpty(t *testing.T) {
	t.Parallel()
	assert := require.New(t)
	ctx := context.Background()

	store, path := newFileStore(t)

	assert.NoError(os.WriteFile(path, []byte(`{"not":"a history"`), 0o644))

	assert.Empty(store.Load(ctx))
}

func TestBackendErrorsAreAbsorbed(t *testing.T) {
	t.Parallel()
	assert := require.New(t)
	ctx := context.Background()

	store := history.NewStore(brokenBlob{}, quietLogger())

	assert.Empty(store.Load(ctx))
	store.Save(ctx, genchi.HistoryList{{ID: 1}})

	stored := store.Append(ctx, fakeEntry(t))
	assert.NotZero(stored.ID, "append still assigns identity when the write is lost")
}
