package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

// RedisTripStore persists trip session records as JSON values under
// trip:<id> keys. Records expire with the session TTL; an expired or
// absent record reads as domain.ErrNoActiveTrip.
type RedisTripStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisTripStore(url string, ttl time.Duration) (*RedisTripStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis trip store: parse url: %w", err)
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &RedisTripStore{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

// NewRedisTripStoreWithClient wires an existing client (tests).
func NewRedisTripStoreWithClient(rdb *redis.Client, ttl time.Duration) *RedisTripStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisTripStore{rdb: rdb, ttl: ttl}
}

func (s *RedisTripStore) key(id string) string { return "trip:" + id }

// Save writes the whole record and refreshes the session TTL.
func (s *RedisTripStore) Save(ctx context.Context, rec ports.TripRecord) error {
	if rec.ID == "" {
		return errors.New("save trip: id must be non-empty")
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("save trip %q: marshal: %w", rec.ID, err)
	}

	if err := s.rdb.Set(ctx, s.key(rec.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save trip %q: %w", rec.ID, err)
	}

	return nil
}

// Load reads one record. A missing key maps to domain.ErrNoActiveTrip.
func (s *RedisTripStore) Load(ctx context.Context, id string) (ports.TripRecord, error) {
	if id == "" {
		return ports.TripRecord{}, errors.New("load trip: id must be non-empty")
	}

	payload, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.TripRecord{}, fmt.Errorf("load trip %q: %w", id, domain.ErrNoActiveTrip)
	}
	if err != nil {
		return ports.TripRecord{}, fmt.Errorf("load trip %q: %w", id, err)
	}

	var rec ports.TripRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return ports.TripRecord{}, fmt.Errorf("load trip %q: unmarshal: %w", id, err)
	}

	return rec, nil
}

// Ping verifies connectivity at startup.
func (s *RedisTripStore) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis trip store: ping: %w", err)
	}
	return nil
}
