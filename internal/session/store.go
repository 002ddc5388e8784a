// Package session keeps games addressed by id. A game is persisted as its
// ordered list of long algebraic moves; boards are rebuilt by replay.
package session

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Record is the persisted form of a game.
type Record struct {
	ID        int64     `json:"id"`
	Moves     []string  `json:"moves"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Record) clone() *Record {
	c := *r
	c.Moves = append([]string(nil), r.Moves...)
	return &c
}

// Store persists records. Load returns errors.ErrGameNotFound for unknown ids.
type Store interface {
	Load(ctx context.Context, id int64) (*Record, error)
	Save(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id int64) error
}

// MemoryStore keeps records in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[int64]*Record
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[int64]*Record)}
}

func (s *MemoryStore) Load(_ context.Context, id int64) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("game %d: %w", id, errors.ErrGameNotFound)
	}
	return rec.clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec.clone()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// Len returns the number of stored games.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// RedisStore keeps records as JSON values with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a store backed by client. Each save refreshes the TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, id int64) (*Record, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("game %d: %w", id, errors.ErrGameNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load game %d: %w", id, err)
	}
	return decodeRecord(data)
}

func (s *RedisStore) Save(ctx context.Context, rec *Record) error {
	data, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, gameKey(rec.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save game %d: %w", rec.ID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id int64) error {
	return s.client.Del(ctx, gameKey(id)).Err()
}

// gameKey builds "game.{<base64 id>}". The braces make the id the hash tag
// on a redis cluster.
func gameKey(id int64) string {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], uint64(id))
	return "game.{" + base64.RawStdEncoding.EncodeToString(raw[:]) + "}"
}

func encodeRecord(rec *Record) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("record is nil")
	}
	return json.Marshal(rec)
}

func decodeRecord(data []byte) (*Record, error) {
	rec := &Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decode game: %w", err)
	}
	return rec, nil
}
