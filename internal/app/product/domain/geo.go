package domain

import "math"

const earthRadiusKm = 6371.0

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks the coordinate is in range.
func (g GeoPoint) Validate() error {
	if g.Latitude < -90 || g.Latitude > 90 {
		return NewValidationError("latitude", "must be between -90 and 90")
	}
	if g.Longitude < -180 || g.Longitude > 180 {
		return NewValidationError("longitude", "must be between -180 and 180")
	}
	return nil
}

// DistanceKm returns the great-circle (haversine) distance between two points.
func DistanceKm(a, b GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}
