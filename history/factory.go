package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	Provider string

	FileConfig struct {
		Path string
	}

	RedisConfig struct {
		Client *redis.Client
		Key    string
	}

	MongoDBConfig struct {
		Collection *mongo.Collection
		Key        string
	}

	MySQLConfig struct {
		DB      *sql.DB
		Table   string
		Key     string
		Migrate bool
	}
)

const (
	File    Provider = "file"
	Redis   Provider = "redis"
	MongoDB Provider = "mongodb"
	MySQL   Provider = "mysql"
)

var ErrBlobNotFound = errors.New("history backend is not found")

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "file":
		return File, nil
	case "redis":
		return Redis, nil
	case "mongodb":
		return MongoDB, nil
	case "mysql":
		return MySQL, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}

// NewBlob builds the blob backend for provider. Connections (Redis
// client, Mongo collection, SQL pool) are established by the caller and
// passed in via the matching config struct.
func NewBlob(provider Provider, config interface{}) (Blob, error) {
	switch provider {
	case File:
		c := config.(FileConfig)

		return FileBlob{Path: c.Path}, nil
	case Redis:
		c := config.(RedisConfig)

		return RedisBlob{Client: c.Client, Key: c.Key}, nil
	case MongoDB:
		c := config.(MongoDBConfig)

		return MongoBlob{Collection: c.Collection, Key: c.Key}, nil
	case MySQL:
		c := config.(MySQLConfig)

		blob := MySQLBlob{DB: c.DB, Table: c.Table, Key: c.Key}

		if c.Migrate {
			if err := blob.Migrate(context.Background()); err != nil {
				return nil, err
			}
		}

		return blob, nil
	}

	return nil, ErrBlobNotFound
}
