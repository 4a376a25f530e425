package history_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/unotto/genchi/history"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, mock
}

func TestMySQLBlobMigrate(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	db, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS conversions(k VARCHAR(64) NOT NULL PRIMARY KEY, payload MEDIUMBLOB NOT NULL);").
		WillReturnResult(sqlmock.NewResult(0, 0))

	blob := history.MySQLBlob{DB: db, Table: "conversions"}

	assert.NoError(blob.Migrate(context.Background()))
	assert.NoError(mock.ExpectationsWereMet())
}

func TestMySQLBlobLoad(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	db, mock := newMockDB(t)

	payload := []byte(`[{"id":1}]`)
	rows := sqlmock.NewRows([]string{"payload"}).AddRow(payload)

	mock.ExpectQuery("SELECT payload FROM genchi_history WHERE k = ? LIMIT 1;").
		WithArgs(history.DefaultKey).
		WillReturnRows(rows)

	blob := history.MySQLBlob{DB: db}

	loaded, err := blob.Load(context.Background())

	assert.NoError(err)
	assert.Equal(payload, loaded)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestMySQLBlobLoadAbsent(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT payload FROM genchi_history WHERE k = ? LIMIT 1;").
		WithArgs(history.DefaultKey).
		WillReturnError(sql.ErrNoRows)

	blob := history.MySQLBlob{DB: db}

	loaded, err := blob.Load(context.Background())

	assert.NoError(err, "an absent row means no history yet, not a failure")
	assert.Nil(loaded)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestMySQLBlobSave(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	db, mock := newMockDB(t)

	payload := []byte(`[{"id":1}]`)

	mock.ExpectExec("INSERT INTO genchi_history(k, payload) VALUES(?, ?) ON DUPLICATE KEY UPDATE payload = VALUES(payload);").
		WithArgs(history.DefaultKey, payload).
		WillReturnResult(sqlmock.NewResult(1, 1))

	blob := history.MySQLBlob{DB: db}

	assert.NoError(blob.Save(context.Background(), payload))
	assert.NoError(mock.ExpectationsWereMet())
}

func TestMySQLBlobSaveError(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	db, mock := newMockDB(t)

	dbErr := errors.New("connection lost")

	mock.ExpectExec("INSERT INTO genchi_history(k, payload) VALUES(?, ?) ON DUPLICATE KEY UPDATE payload = VALUES(payload);").
		WillReturnError(dbErr)

	blob := history.MySQLBlob{DB: db}

	assert.ErrorIs(blob.Save(context.Background(), []byte(`[]`)), dbErr)
	assert.NoError(mock.ExpectationsWereMet())
}
