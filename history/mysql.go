package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQLBlob keeps the history as one row in a two-column key-value
// table.
type MySQLBlob struct {
	DB    *sql.DB
	Table string
	Key   string
}

func (b MySQLBlob) table() string {
	if b.Table != "" {
		return b.Table
	}
	return "genchi_history"
}

func (b MySQLBlob) key() string {
	if b.Key != "" {
		return b.Key
	}
	return DefaultKey
}

// Migrate creates the backing table.
func (b MySQLBlob) Migrate(ctx context.Context) error {
	query := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s(k VARCHAR(64) NOT NULL PRIMARY KEY, payload MEDIUMBLOB NOT NULL);",
		b.table(),
	)

	_, err := b.DB.ExecContext(ctx, query)

	return err
}

func (b MySQLBlob) Load(ctx context.Context) ([]byte, error) {
	query := fmt.Sprintf("SELECT payload FROM %s WHERE k = ? LIMIT 1;", b.table())

	var payload []byte

	err := b.DB.QueryRowContext(ctx, query, b.key()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return payload, nil
}

func (b MySQLBlob) Save(ctx context.Context, payload []byte) error {
	query := fmt.Sprintf(
		"INSERT INTO %s(k, payload) VALUES(?, ?) ON DUPLICATE KEY UPDATE payload = VALUES(payload);",
		b.table(),
	)

	_, err := b.DB.ExecContext(ctx, query, b.key(), payload)

	return err
}
