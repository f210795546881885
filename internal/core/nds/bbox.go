package nds

import "github.com/ndstools/ndstile/internal/core/wgs84"

// The two hemispheres are the bounding boxes of the level 0 tiles:
// tile number 0 covers the eastern half of the coordinate space, tile
// number 1 the western half.
var (
	EastHemisphere = BBox{North: MaxLatitude, East: MaxLongitude, South: MinLatitude, West: 0}
	WestHemisphere = BBox{North: MaxLatitude, East: 0, South: MinLatitude, West: MinLongitude}
)

// BBox is a rectangle in fixed-point coordinate units.
type BBox struct {
	North int32
	East  int32
	South int32
	West  int32
}

// SouthWest returns the south-west corner of the box.
func (b BBox) SouthWest() Coordinate {
	return Coordinate{Longitude: b.West, Latitude: b.South}
}

// SouthEast returns the south-east corner of the box.
func (b BBox) SouthEast() Coordinate {
	return Coordinate{Longitude: b.East, Latitude: b.South}
}

// NorthWest returns the north-west corner of the box.
func (b BBox) NorthWest() Coordinate {
	return Coordinate{Longitude: b.West, Latitude: b.North}
}

// NorthEast returns the north-east corner of the box.
func (b BBox) NorthEast() Coordinate {
	return Coordinate{Longitude: b.East, Latitude: b.North}
}

// Center returns the midpoint of the box.
func (b BBox) Center() Coordinate {
	return Coordinate{Longitude: (b.East + b.West) / 2, Latitude: (b.North + b.South) / 2}
}

// ToWGS84 converts the box to its degree-based counterpart.
func (b BBox) ToWGS84() wgs84.BBox {
	ne := b.NorthEast().ToWGS84()
	sw := b.SouthWest().ToWGS84()
	return wgs84.BBox{North: ne.Latitude, East: ne.Longitude, South: sw.Latitude, West: sw.Longitude}
}
