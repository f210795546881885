package wgs84

// BBox is a degree-based bounding box. It is normally produced by
// converting a fixed-point bounding box, so the fields are not revalidated.
type BBox struct {
	North float64
	East  float64
	South float64
	West  float64
}

// SouthWest returns the south-west corner of the box.
func (b BBox) SouthWest() Coordinate {
	return Coordinate{Longitude: b.West, Latitude: b.South}
}

// NorthEast returns the north-east corner of the box.
func (b BBox) NorthEast() Coordinate {
	return Coordinate{Longitude: b.East, Latitude: b.North}
}
