// Package geojson renders geodetic value objects as GeoJSON features.
package geojson

import (
	"github.com/paulmach/orb"
	orbjson "github.com/paulmach/orb/geojson"

	"github.com/ndstools/ndstile/internal/core/wgs84"
)

// Encoder implements ports.GeometryExporter on top of paulmach/orb.
type Encoder struct{}

// Point renders a coordinate as a GeoJSON "Point" feature.
func (Encoder) Point(c wgs84.Coordinate) ([]byte, error) {
	f := orbjson.NewFeature(orb.Point{c.Longitude, c.Latitude})
	return f.MarshalJSON()
}

// Polygon renders a bounding box as a GeoJSON "Polygon" feature whose ring
// runs west-south, east-south, east-north, west-north and closes on the
// first position.
func (Encoder) Polygon(b wgs84.BBox) ([]byte, error) {
	ring := orb.Ring{
		{b.West, b.South},
		{b.East, b.South},
		{b.East, b.North},
		{b.West, b.North},
		{b.West, b.South},
	}
	f := orbjson.NewFeature(orb.Polygon{ring})
	return f.MarshalJSON()
}
