package domain

// Coordinates is a geocoded point. Lon comes first to match the
// [lon, lat] pair order of the geocoding responses.
type Coordinates struct {
	Lon float64
	Lat float64
}
