package travel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/platform/obs"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

// LegStatus is the lifecycle state of one cached travel-info entry.
type LegStatus string

const (
	StatusIdle    LegStatus = "idle"
	StatusLoading LegStatus = "loading"
	StatusReady   LegStatus = "ready"
	StatusFailed  LegStatus = "failed"
)

// LegKey identifies one cached travel-info entry. The cache is
// mode-scoped: switching modes never reuses a previous mode's result.
type LegKey struct {
	Origin      string
	Destination string
	Mode        domain.TransportMode
}

// LegInfo is the presentation state of one leg.
type LegInfo struct {
	Status   LegStatus
	Duration string
	Distance string
	Err      string
}

type legState struct {
	info LegInfo
	// gen is bumped on every reset; a completion carrying an older gen is
	// stale and must be dropped.
	gen int
}

// Orchestrator composes geocoding and route lookup into "get travel info
// for a named leg" and owns the per-leg state store.
//
// Fetches are user-triggered, never automatic. Multiple legs may be
// loading at once; each leg's state is independent. Completions serialize
// on the internal mutex, so the orchestrator is safe for concurrent use.
type Orchestrator struct {
	geocoder ports.Geocoder
	lookup   ports.RouteLookup

	mu   sync.Mutex
	legs map[LegKey]*legState
}

func New(geocoder ports.Geocoder, lookup ports.RouteLookup) *Orchestrator {
	return &Orchestrator{
		geocoder: geocoder,
		lookup:   lookup,
		legs:     make(map[LegKey]*legState),
	}
}

// Info returns the current state for a leg, creating an Idle entry on
// first access.
func (o *Orchestrator) Info(key LegKey) LegInfo {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stateLocked(key).info
}

// CanFetch reports whether a fetch for the leg is currently allowed:
// not already loading, origin decided, destination named.
func (o *Orchestrator) CanFetch(key LegKey) bool {
	if key.Origin == domain.UndecidedPlace || key.Destination == "" {
		return false
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stateLocked(key).info.Status != StatusLoading
}

// Reset clears a leg's stored duration/distance/error and returns it to
// Idle. Called when the user switches transport mode for the leg; an
// in-flight fetch for the old state becomes stale and its completion is
// ignored.
func (o *Orchestrator) Reset(key LegKey) {
	o.mu.Lock()
	defer o.mu.Unlock()

	st := o.stateLocked(key)
	st.gen++
	st.info = LegInfo{Status: StatusIdle}
}

// Fetch resolves both endpoint names (in parallel, when the backend needs
// coordinates), queries the route backend and stores the formatted
// result. All failures terminate in the Failed state for this leg only.
func (o *Orchestrator) Fetch(ctx context.Context, key LegKey) (_ LegInfo, err error) {
	defer obs.Time(ctx, "travel.Fetch")(&err)

	if key.Origin == domain.UndecidedPlace {
		return LegInfo{}, fmt.Errorf("fetch leg: origin is undecided: %w", domain.ErrValidation)
	}
	if key.Destination == "" {
		return LegInfo{}, fmt.Errorf("fetch leg: destination must be non-empty: %w", domain.ErrValidation)
	}

	o.mu.Lock()
	st := o.stateLocked(key)
	if st.info.Status == StatusLoading {
		info := st.info
		o.mu.Unlock()
		return info, fmt.Errorf("fetch leg: already loading: %w", domain.ErrValidation)
	}
	gen := st.gen
	st.info = LegInfo{Status: StatusLoading}
	o.mu.Unlock()

	result, fetchErr := o.fetch(ctx, key)

	o.mu.Lock()
	defer o.mu.Unlock()

	st = o.stateLocked(key)
	if st.gen != gen {
		// The leg was reset (mode switch) while this fetch was in flight;
		// drop the superseded response.
		return st.info, nil
	}

	// The stored info is overwritten wholesale, never merged with a stale
	// result.
	if fetchErr != nil {
		st.info = LegInfo{Status: StatusFailed, Err: userMessage(fetchErr)}
		return st.info, fetchErr
	}

	st.info = LegInfo{
		Status:   StatusReady,
		Duration: result.duration,
		Distance: result.distance,
	}
	return st.info, nil
}

// Lookup runs the geocode -> route -> format pipeline once without
// touching the per-leg state store. It backs the stateless route query
// endpoint.
func (o *Orchestrator) Lookup(
	ctx context.Context,
	origin string,
	destination string,
	mode domain.TransportMode,
) (duration string, distance string, err error) {
	defer obs.Time(ctx, "travel.Lookup")(&err)

	result, err := o.fetch(ctx, LegKey{Origin: origin, Destination: destination, Mode: mode})
	if err != nil {
		return "", "", err
	}
	return result.duration, result.distance, nil
}

type fetchResult struct {
	duration string
	distance string
}

func (o *Orchestrator) fetch(ctx context.Context, key LegKey) (fetchResult, error) {
	origin := ports.Waypoint{Name: key.Origin}
	destination := ports.Waypoint{Name: key.Destination}

	if o.lookup.NeedsCoordinates() {
		var err error
		origin.Coords, destination.Coords, err = o.geocodePair(ctx, key.Origin, key.Destination)
		if err != nil {
			return fetchResult{}, err
		}
	}

	result, err := o.lookup.Route(ctx, origin, destination, key.Mode)
	if err != nil {
		return fetchResult{}, classify(fmt.Errorf("route %q -> %q: %w", key.Origin, key.Destination, err))
	}

	if result.Formatted {
		return fetchResult{duration: result.DurationText, distance: result.DistanceText}, nil
	}
	return fetchResult{
		duration: FormatDuration(result.DurationSeconds),
		distance: FormatDistance(result.DistanceMeters),
	}, nil
}

// geocodePair resolves both endpoints with independent parallel calls.
// The calls are combined, not raced: both must complete before the route
// lookup is issued.
func (o *Orchestrator) geocodePair(ctx context.Context, origin, destination string) (domain.Coordinates, domain.Coordinates, error) {
	var wg sync.WaitGroup
	var originCoords, destCoords domain.Coordinates
	var originErr, destErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		originCoords, originErr = o.geocoder.Geocode(ctx, origin)
	}()
	go func() {
		defer wg.Done()
		destCoords, destErr = o.geocoder.Geocode(ctx, destination)
	}()
	wg.Wait()

	if originErr != nil {
		return domain.Coordinates{}, domain.Coordinates{}, classify(fmt.Errorf("geocode origin %q: %w", origin, originErr))
	}
	if destErr != nil {
		return domain.Coordinates{}, domain.Coordinates{}, classify(fmt.Errorf("geocode destination %q: %w", destination, destErr))
	}

	return originCoords, destCoords, nil
}

// classify folds unrecognized failures into the communication bucket so
// that no transport-level error escapes the taxonomy.
func classify(err error) error {
	switch {
	case errors.Is(err, domain.ErrPlaceNotFound),
		errors.Is(err, domain.ErrRouteNotFound),
		errors.Is(err, domain.ErrUpstream),
		errors.Is(err, domain.ErrConfiguration),
		errors.Is(err, domain.ErrValidation):
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrCommunication, err)
}

// userMessage maps the error taxonomy to the inline text rendered next to
// the failed leg.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrPlaceNotFound):
		return "場所が見つかりませんでした"
	case errors.Is(err, domain.ErrRouteNotFound):
		return "ルートが見つかりませんでした"
	case errors.Is(err, domain.ErrUpstream):
		return "ルート検索に失敗しました"
	case errors.Is(err, domain.ErrConfiguration):
		return "ルート検索の設定が不足しています"
	}
	return "通信エラーが発生しました"
}

func (o *Orchestrator) stateLocked(key LegKey) *legState {
	st, ok := o.legs[key]
	if !ok {
		st = &legState{info: LegInfo{Status: StatusIdle}}
		o.legs[key] = st
	}
	return st
}
