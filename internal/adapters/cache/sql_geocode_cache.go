package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/platform/obs"
)

// SQLGeocodeCache is a SQL-backed cache mapping place names to
// coordinates. Keys are expected to be consistent (e.g., already
// normalized) by the caller. Entries older than the TTL are treated as
// misses; coordinates change rarely, so the TTL is at least an hour.
type SQLGeocodeCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLGeocodeCache(db *sql.DB, ttl time.Duration) *SQLGeocodeCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SQLGeocodeCache{DB: db, TTL: ttl}
}

// Get fetches cached coordinates for one place name.
func (s *SQLGeocodeCache) Get(ctx context.Context, place string) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	place = strings.TrimSpace(place)
	if place == "" {
		return domain.Coordinates{}, false, errors.New("get geocode cache: place must not be empty")
	}

	q := `
	SELECT lon, lat
    FROM geocode_cache
    WHERE place = $1
        AND fetched_at > now() - $2::interval;
	`

	interval := fmt.Sprintf("%d seconds", int(s.TTL.Seconds()))

	var lon, lat float64
	err = s.DB.QueryRowContext(ctx, q, place, interval).Scan(&lon, &lat)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lon: lon, Lat: lat}, true, nil
}

// Put stores one place -> coordinate mapping, refreshing fetched_at.
func (s *SQLGeocodeCache) Put(ctx context.Context, place string, c domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	place = strings.TrimSpace(place)
	if place == "" {
		return errors.New("insert geocode cache: place must not be empty")
	}

	q := `
	INSERT INTO geocode_cache (place, lon, lat, fetched_at)
    VALUES ($1, $2, $3, now())
	ON CONFLICT (place) DO UPDATE
	SET lon = EXCLUDED.lon,
		lat = EXCLUDED.lat,
		fetched_at = EXCLUDED.fetched_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, place, c.Lon, c.Lat); err != nil {
		return fmt.Errorf("insert geocode cache place=%q: %w", place, err)
	}

	return nil
}

// InitSchema creates the geocode cache table.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        place TEXT PRIMARY KEY,
        lon DOUBLE PRECISION NOT NULL,
        lat DOUBLE PRECISION NOT NULL,
        fetched_at TIMESTAMPTZ NOT NULL DEFAULT now()
    );
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}
