// Package nds implements the fixed-point coordinate encoding, the Morton
// code interleaving, and the tile addressing scheme of the NDS map format
// (NDS Format Specification 2.5.4, §7.2.1 and §7.3).
//
// The encoding divides the 360° longitude range into 2^32 steps, so one
// coordinate unit is 360/2^32 degrees. Latitude keeps the same unit size
// but only spans 180°, which is why it uses a 31-bit signed range instead
// of the full integer range.
package nds

import (
	"fmt"
	"math"

	"github.com/ndstools/ndstile/internal/core/domain"
	"github.com/ndstools/ndstile/internal/core/wgs84"
)

// Bounds of the fixed-point coordinate space. Longitude uses the full
// signed 32-bit range; latitude is capped at half of it.
const (
	MaxLongitude int32 = math.MaxInt32
	MinLongitude int32 = math.MinInt32
	MaxLatitude  int32 = MaxLongitude / 2
	MinLatitude  int32 = MinLongitude / 2
)

// Unit counts of the two axes, as 64-bit values since the longitude count
// does not fit an int32.
const (
	LongitudeRange = int64(MaxLongitude) - int64(MinLongitude)
	LatitudeRange  = int64(MaxLatitude) - int64(MinLatitude)
)

// Coordinate is an immutable position in the NDS fixed-point coordinate
// space.
type Coordinate struct {
	Longitude int32
	Latitude  int32
}

// NewCoordinate builds a Coordinate from raw fixed-point units. Longitude
// accepts the full int32 range; latitude outside [MinLatitude, MaxLatitude]
// is a range error.
func NewCoordinate(lon, lat int32) (Coordinate, error) {
	if lat < MinLatitude || lat > MaxLatitude {
		return Coordinate{}, domain.NewRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}
	return Coordinate{Longitude: lon, Latitude: lat}, nil
}

// FromDegrees validates the degree ranges and converts to fixed-point
// units. Results may differ by one unit from the reference tables of the
// NDS specification; the specification itself documents this floating
// point nondeterminism, and unit precision exceeds source data precision.
func FromDegrees(lonDeg, latDeg float64) (Coordinate, error) {
	c, err := wgs84.New(lonDeg, latDeg)
	if err != nil {
		return Coordinate{}, err
	}
	return FromWGS84(c), nil
}

// FromWGS84 converts an already validated geodetic coordinate to
// fixed-point units by floor scaling. The degree bounds map exactly onto
// the fixed-point bounds, so the conversion cannot fail.
func FromWGS84(c wgs84.Coordinate) Coordinate {
	return Coordinate{
		Longitude: int32(math.Floor(c.Longitude / 360.0 * float64(LongitudeRange))),
		Latitude:  int32(math.Floor(c.Latitude / 180.0 * float64(LatitudeRange))),
	}
}

// FromMortonCode de-interleaves a Morton code back into a Coordinate.
func FromMortonCode(code int64) (Coordinate, error) {
	lon, lat := decodeMorton(code)
	return NewCoordinate(lon, lat)
}

func decodeMorton(code int64) (lon, lat int32) {
	var ulon, ulat uint32
	for pos := 0; pos < 32; pos++ {
		if code&(1<<(2*pos)) != 0 {
			ulon |= 1 << pos
		}
		if pos < 31 && code&(1<<(2*pos+1)) != 0 {
			ulat |= 1 << pos
		}
	}
	// Latitude is a 31-bit two's complement value, so bit 30 is its sign
	// bit and must be extended into the 32-bit container.
	if ulat&(1<<30) != 0 {
		ulat |= 1 << 31
	}
	return int32(ulon), int32(ulat)
}

// MortonCode interleaves the coordinate into its Morton (Z-order) code:
// longitude bit i lands on code bit 2i, latitude bit i on code bit 2i+1.
// The longitude sign occupies bit 62 and the latitude sign bit 61, since
// latitude carries only 31 informative bits. Bit 63 is always zero.
func (c Coordinate) MortonCode() int64 {
	lon := uint32(c.Longitude)
	lat := uint32(c.Latitude)
	var code uint64
	for pos := 0; pos < 31; pos++ {
		if lon&(1<<pos) != 0 {
			code |= 1 << (2 * pos)
		}
		if lat&(1<<pos) != 0 {
			code |= 1 << (2*pos + 1)
		}
	}
	if c.Longitude < 0 {
		code |= 1 << 62
	}
	if c.Latitude < 0 {
		code |= 1 << 61
	}
	return int64(code)
}

// ToWGS84 converts the coordinate back to degrees. The divisor switches
// between the positive and negative bound so the extra negative unit of
// two's complement is not truncated away.
func (c Coordinate) ToWGS84() wgs84.Coordinate {
	var lon, lat float64
	if c.Longitude >= 0 {
		lon = float64(c.Longitude) / float64(MaxLongitude) * 180.0
	} else {
		lon = float64(c.Longitude) / float64(MinLongitude) * -180.0
	}
	if c.Latitude >= 0 {
		lat = float64(c.Latitude) / float64(MaxLatitude) * 90.0
	} else {
		lat = float64(c.Latitude) / float64(MinLatitude) * -90.0
	}
	return wgs84.Coordinate{Longitude: lon, Latitude: lat}
}

// Add translates the coordinate by raw unit deltas. Longitude wraps across
// the antimeridian through natural 32-bit overflow; latitude is revalidated
// and fails with a range error when it leaves its domain.
func (c Coordinate) Add(dLon, dLat int32) (Coordinate, error) {
	return NewCoordinate(c.Longitude+dLon, c.Latitude+dLat)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate{lon: %d, lat: %d}", c.Longitude, c.Latitude)
}
