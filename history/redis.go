package history

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the namespaced key the history lives under in key-value
// backends.
const DefaultKey = "genchi:pairHistory"

// RedisBlob keeps the history under a single Redis key.
type RedisBlob struct {
	Client *redis.Client
	Key    string
}

func (b RedisBlob) key() string {
	if b.Key != "" {
		return b.Key
	}
	return DefaultKey
}

func (b RedisBlob) Load(ctx context.Context) ([]byte, error) {
	payload, err := b.Client.Get(ctx, b.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return payload, nil
}

func (b RedisBlob) Save(ctx context.Context, payload []byte) error {
	return b.Client.Set(ctx, b.key(), payload, 0).Err()
}
