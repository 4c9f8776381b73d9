// Package cache stores the latest combined verdict per patient so the
// dashboard read path can skip the database.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// VerdictStore is a read-through cache of serialized verdicts. Get
// reports a miss with found=false, not an error.
type VerdictStore interface {
	Set(ctx context.Context, patientID uuid.UUID, verdict []byte) error
	Get(ctx context.Context, patientID uuid.UUID) (data []byte, found bool, err error)
	Ping(ctx context.Context) error
	Close() error
}

func verdictKey(patientID uuid.UUID) string {
	return "mediguard:verdict:" + patientID.String()
}

// ---------- Redis store ----------

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to the Redis instance at url
// (redis://[:password@]host:port/db) and pings it once.
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Set(ctx context.Context, patientID uuid.UUID, verdict []byte) error {
	return s.client.Set(ctx, verdictKey(patientID), verdict, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, patientID uuid.UUID) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, verdictKey(patientID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// ---------- In-memory store ----------

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is a process-local VerdictStore used when no Redis URL is
// configured, and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]memoryEntry
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{entries: make(map[uuid.UUID]memoryEntry), ttl: ttl}
}

func (s *MemoryStore) Set(_ context.Context, patientID uuid.UUID, verdict []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := memoryEntry{data: verdict}
	if s.ttl > 0 {
		entry.expiresAt = time.Now().Add(s.ttl)
	}
	s.entries[patientID] = entry
	return nil
}

func (s *MemoryStore) Get(_ context.Context, patientID uuid.UUID) ([]byte, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[patientID]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, patientID)
		s.mu.Unlock()
		return nil, false, nil
	}
	return entry.data, true, nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
