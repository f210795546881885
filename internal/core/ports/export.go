// Package ports defines the interfaces between the core value types and
// their consumers.
package ports

import "github.com/ndstools/ndstile/internal/core/wgs84"

// GeometryExporter renders geodetic values into an external geometry
// representation. The core never formats anything itself; exporters consume
// the degree-based conversions of the fixed-point types.
type GeometryExporter interface {
	// Point renders a single coordinate.
	Point(c wgs84.Coordinate) ([]byte, error)
	// Polygon renders a bounding box as a closed ring in the order
	// west-south, east-south, east-north, west-north, west-south.
	Polygon(b wgs84.BBox) ([]byte, error)
}
