// Package wgs84 holds plain geodetic value objects: degree-based
// longitude/latitude pairs and bounding boxes in the usual WGS84 ranges.
package wgs84

import "github.com/ndstools/ndstile/internal/core/domain"

// Degree bounds for valid WGS84 coordinates.
const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
)

// Coordinate is an immutable longitude/latitude pair in degrees.
type Coordinate struct {
	Longitude float64
	Latitude  float64
}

// New validates the degree ranges and builds a Coordinate.
func New(lon, lat float64) (Coordinate, error) {
	if lon < MinLongitude || lon > MaxLongitude {
		return Coordinate{}, domain.NewRangeError("longitude", lon, MinLongitude, MaxLongitude)
	}
	if lat < MinLatitude || lat > MaxLatitude {
		return Coordinate{}, domain.NewRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}
	return Coordinate{Longitude: lon, Latitude: lat}, nil
}
