package nds

import (
	"fmt"

	"github.com/ndstools/ndstile/internal/core/domain"
	"github.com/ndstools/ndstile/internal/core/wgs84"
)

// MaxLevel is the deepest tile level of the NDS tiling scheme.
const MaxLevel = 15

// Tile addresses one quadrant of the coordinate space at a level in
// [0, MaxLevel]. The tile number equals the (2*level+1) most significant
// bits of the Morton code of the tile's south-west corner, which makes
// containment and bounding box math pure prefix arithmetic.
type Tile struct {
	level  int
	number int32
}

// NewTile builds a Tile from a level and a within-level tile number.
func NewTile(level int, number int32) (Tile, error) {
	if level < 0 || level > MaxLevel {
		return Tile{}, domain.NewRangeError("tile level", level, 0, MaxLevel)
	}
	if number < 0 || int64(number) > maxTileNumber(level) {
		return Tile{}, domain.NewRangeError(fmt.Sprintf("tile number on level %d", level), number, 0, maxTileNumber(level))
	}
	return Tile{level: level, number: number}, nil
}

// NewTileFromPackedID recovers a Tile from its packed 32-bit id. The level
// is the highest marker bit at position 16+level; the number is the id with
// that bit cleared.
func NewTileFromPackedID(id int32) (Tile, error) {
	level := extractLevel(id)
	if level < 0 {
		return Tile{}, &domain.RangeError{Field: "packed tile id", Value: id, Detail: "no level bit present"}
	}
	levelBit := int32(1) << (16 + level)
	return Tile{level: level, number: id ^ levelBit}, nil
}

// TileWithCoordinate returns the tile of the given level containing the
// coordinate. The tile number is the coordinate's Morton code truncated to
// the level's prefix length.
func TileWithCoordinate(level int, c Coordinate) (Tile, error) {
	return NewTile(level, int32(c.MortonCode()>>mortonShift(level)))
}

// TileWithWGS84 returns the tile of the given level containing the
// geodetic coordinate.
func TileWithWGS84(level int, c wgs84.Coordinate) (Tile, error) {
	return TileWithCoordinate(level, FromWGS84(c))
}

func maxTileNumber(level int) int64 {
	return int64(1)<<(2*level+1) - 1
}

// mortonShift is the right shift that truncates a full Morton code down to
// the (2*level+1)-bit tile number prefix. Invalid levels still yield a
// defined shift; the callers reject them during tile construction.
func mortonShift(level int) uint {
	return uint(32 + (MaxLevel-level)*2)
}

func extractLevel(id int32) int {
	for lvl := MaxLevel; lvl >= 0; lvl-- {
		if id&(int32(1)<<(16+lvl)) > 0 {
			return lvl
		}
		// The level 15 marker sits on the sign bit, which the positive
		// bit test above can never see.
		if id < 0 && lvl == MaxLevel {
			return MaxLevel
		}
	}
	return -1
}

// Level returns the tile level.
func (t Tile) Level() int {
	return t.level
}

// Number returns the within-level tile number.
func (t Tile) Number() int32 {
	return t.number
}

// PackedID combines level and number into a single 32-bit id by setting
// the level marker bit at position 16+level.
func (t Tile) PackedID() int32 {
	return t.number | int32(1)<<(16+t.level)
}

// Contains reports whether the coordinate falls inside this tile.
func (t Tile) Contains(c Coordinate) bool {
	return t.number == int32(c.MortonCode()>>mortonShift(t.level))
}

// southWestMorton pads the tile number prefix with zero bits back into a
// full Morton code, which is the code of the south-west corner.
func (t Tile) southWestMorton() int64 {
	return int64(t.number) << mortonShift(t.level)
}

// BBox computes the tile's bounding box in fixed-point units. The +1 on
// negative south-west corners compensates the floor-division asymmetry
// around zero, so adjacent tiles cover the space without gaps or overlaps.
func (t Tile) BBox() BBox {
	if t.level == 0 {
		if t.number == 0 {
			return EastHemisphere
		}
		return WestHemisphere
	}
	swLon, swLat := decodeMorton(t.southWestMorton())
	north := swLat + int32(LatitudeRange/(int64(1)<<t.level))
	if swLat < 0 {
		north++
	}
	east := swLon + int32(LongitudeRange/(int64(1)<<(t.level+1)))
	if swLon < 0 {
		east++
	}
	return BBox{North: north, East: east, South: swLat, West: swLon}
}

// Center computes the tile's center coordinate. It is the same south-west
// corner construction as BBox, shifted by half a tile on both axes.
func (t Tile) Center() Coordinate {
	if t.level == 0 {
		if t.number == 0 {
			return Coordinate{Longitude: MaxLongitude / 2, Latitude: 0}
		}
		return Coordinate{Longitude: MinLongitude / 2, Latitude: 0}
	}
	swLon, swLat := decodeMorton(t.southWestMorton())
	lat := swLat + int32(LatitudeRange/(int64(1)<<(t.level+1)))
	if swLat < 0 {
		lat++
	}
	lon := swLon + int32(LongitudeRange/(int64(1)<<(t.level+2)))
	if swLon < 0 {
		lon++
	}
	return Coordinate{Longitude: lon, Latitude: lat}
}

func (t Tile) String() string {
	return fmt.Sprintf("Tile{level: %d, number: %d}", t.level, t.number)
}
