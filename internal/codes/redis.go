package codes

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore respalda los códigos en redis para que sobrevivan
// reinicios y funcionen con varias instancias del API.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(addr, password, prefix string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		prefix: prefix,
	}
}

func (s *RedisStore) key(email string) string {
	return s.prefix + ":" + email
}

func (s *RedisStore) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(email), code, ttl).Err()
}

func (s *RedisStore) Consume(ctx context.Context, email, code string) error {
	stored, err := s.client.Get(ctx, s.key(email)).Result()
	if err == redis.Nil {
		// redis ya expiró la clave o nunca existió; no distinguimos
		return ErrNoCode
	}
	if err != nil {
		return err
	}

	if stored != code {
		return ErrBadCode
	}

	return s.client.Del(ctx, s.key(email)).Err()
}

var _ Store = (*RedisStore)(nil)
