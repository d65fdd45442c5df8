package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/Tiffany-sho/travel-app/internal/adapters/cache"
	"github.com/Tiffany-sho/travel-app/internal/adapters/geo"
	"github.com/Tiffany-sho/travel-app/internal/adapters/route"
	"github.com/Tiffany-sho/travel-app/internal/adapters/store"
	"github.com/Tiffany-sho/travel-app/internal/api"
	"github.com/Tiffany-sho/travel-app/internal/config"
	"github.com/Tiffany-sho/travel-app/internal/mapview"
	"github.com/Tiffany-sho/travel-app/internal/platform/db"
	"github.com/Tiffany-sho/travel-app/internal/ports"
	"github.com/Tiffany-sho/travel-app/internal/travel"
)

// main is the application composition root.
// It wires concrete adapters (Redis, Postgres, OSRM/Directions) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	redisURL := os.Getenv("REDIS_URL")
	if strings.TrimSpace(redisURL) == "" {
		log.Fatal("REDIS_URL is required")
	}

	tripStore, err := store.NewRedisTripStore(redisURL, 24*time.Hour)
	if err != nil {
		log.Fatal(err)
	}

	geocoder, err := buildGeocoder()
	if err != nil {
		log.Fatal(err)
	}

	lookup, err := buildRouteLookup()
	if err != nil {
		log.Fatal(err)
	}

	orchestrator := travel.New(geocoder, lookup)

	// Display geocoding is keyless Nominatim behind its own loose cache,
	// independent from the travel-leg pipeline.
	mv := mapview.New(geo.NewNominatimGeocoder(), 6*time.Hour)

	router := api.NewRouter(tripStore, orchestrator, mv)

	// Timeouts are tuned for cold-cache leg searches (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildGeocoder selects ORS when a key is configured, keyless Nominatim
// otherwise, and layers the persistent cache on top when a database is
// available.
func buildGeocoder() (ports.Geocoder, error) {
	var geocoder ports.Geocoder

	if orsKey := os.Getenv("ORS_API_KEY"); strings.TrimSpace(orsKey) != "" {
		g, err := geo.NewORSGeocoder(orsKey)
		if err != nil {
			return nil, err
		}
		geocoder = g
	} else {
		geocoder = geo.NewNominatimGeocoder()
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		return geocoder, nil
	}

	sqlDB, err := db.Open(databaseURL)
	if err != nil {
		return nil, err
	}

	geocodeCache := cache.NewSQLGeocodeCache(sqlDB, time.Hour)
	return geo.NewCachingGeocoder(geocoder, geocodeCache), nil
}

// buildRouteLookup selects the routing backend. The named-place backend
// requires its credential up front; the coordinate-pair backend is the
// keyless default.
func buildRouteLookup() (ports.RouteLookup, error) {
	switch backend := config.Get("ROUTE_BACKEND", "osrm"); backend {
	case "directions":
		return route.NewDirectionsRouteLookup(os.Getenv("DIRECTIONS_API_KEY"))
	default:
		return route.NewOSRMRouteLookup(os.Getenv("OSRM_BASE_URL")), nil
	}
}
