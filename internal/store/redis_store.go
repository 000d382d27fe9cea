package store

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"scoreboard-relay/internal/domain"
)

const (
	keyPrefix   = "scoreboard:cache:"
	pingTimeout = 5 * time.Second
)

// redisKV is the slice of the go-redis client the store needs.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// RedisStore shares cache entries between relay instances through Redis.
// Keys never expire; freshness is decided from FetchedAt like the in-memory store.
type RedisStore struct {
	client redisKV
}

// NewRedisStore connects to redisURL and verifies the connection with a ping.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}
	return &RedisStore{client: client}, nil
}

func newRedisStoreWithClient(client redisKV) *RedisStore {
	return &RedisStore{client: client}
}

// Get loads the league's entry. A missing key yields an empty entry.
func (s *RedisStore) Get(ctx context.Context, league domain.League) (Entry, bool, error) {
	if !supported(league) {
		return Entry{}, false, nil
	}
	raw, err := s.client.Get(ctx, cacheKey(league)).Bytes()
	if errors.Is(err, redis.Nil) {
		return emptyEntry(league), true, nil
	}
	if err != nil {
		return Entry{}, false, errors.Wrapf(err, "redis get %s", league)
	}
	e, err := decodeEntry(raw)
	if err != nil {
		return Entry{}, false, errors.Wrapf(err, "decode %s entry", league)
	}
	e.League = league
	return e, true, nil
}

// Set overwrites the league's entry in a single write.
func (s *RedisStore) Set(ctx context.Context, league domain.League, payload []domain.GameSummary, nowMillis int64) error {
	if !supported(league) {
		return errors.Wrapf(domain.ErrUnsupportedLeague, "store: league %q", league)
	}
	if payload == nil {
		payload = []domain.GameSummary{}
	}
	raw, err := encodeEntry(Entry{League: league, Payload: payload, FetchedAt: nowMillis})
	if err != nil {
		return errors.Wrapf(err, "encode %s entry", league)
	}
	if err := s.client.Set(ctx, cacheKey(league), raw, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", league)
	}
	return nil
}

// IsFresh reports whether the league's entry can be served without a refresh.
func (s *RedisStore) IsFresh(ctx context.Context, league domain.League, nowMillis int64) (bool, error) {
	e, ok, err := s.Get(ctx, league)
	if err != nil || !ok {
		return false, err
	}
	return Fresh(e, nowMillis), nil
}

// Close releases the Redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func cacheKey(league domain.League) string {
	return keyPrefix + league.String()
}

func encodeEntry(e Entry) ([]byte, error) {
	return sonic.Marshal(e)
}

func decodeEntry(raw []byte) (Entry, error) {
	var e Entry
	err := sonic.Unmarshal(raw, &e)
	return e, err
}
