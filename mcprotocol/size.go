package mcprotocol

import "fmt"

// Size is the extent of a Chunk in blocks.
//
// Chunk elements are stored with z varying fastest, then x, then y, which is
// the order the server emits them in:
//
//	index = z + (x + y*Size.X) * Size.Z
type Size struct {
	X, Y, Z uint32
}

// NewSize creates a Size.
func NewSize(x, y, z uint32) Size {
	return Size{X: x, Y: y, Z: z}
}

// Volume returns the number of blocks in the cuboid.
func (s Size) Volume() int {
	return int(s.X) * int(s.Y) * int(s.Z)
}

// IndexToOffset converts a Chunk index to an offset Coordinate.
func (s Size) IndexToOffset(index int) Coordinate {
	z := index % int(s.Z)
	xy := index / int(s.Z)
	x := xy % int(s.X)
	y := xy / int(s.X)
	return Coordinate{X: int32(x), Y: int32(y), Z: int32(z)}
}

// OffsetToIndex converts an offset Coordinate to a Chunk index. The
// coordinate must satisfy Contains.
func (s Size) OffsetToIndex(c Coordinate) int {
	return int(c.Z) + (int(c.X)+int(c.Y)*int(s.X))*int(s.Z)
}

// Contains reports whether the offset Coordinate lies inside the cuboid.
func (s Size) Contains(c Coordinate) bool {
	return inRange(c.X, s.X) && inRange(c.Y, s.Y) && inRange(c.Z, s.Z)
}

// Flat drops the y component.
func (s Size) Flat() Size2D {
	return Size2D{X: s.X, Z: s.Z}
}

// String formats the size as "XxYxZ".
func (s Size) String() string {
	return fmt.Sprintf("%dx%dx%d", s.X, s.Y, s.Z)
}

// Size2D is the extent of a Heights area in blocks.
//
//	index = z + x*Size2D.Z
type Size2D struct {
	X, Z uint32
}

// NewSize2D creates a Size2D.
func NewSize2D(x, z uint32) Size2D {
	return Size2D{X: x, Z: z}
}

// Area returns the number of columns in the area.
func (s Size2D) Area() int {
	return int(s.X) * int(s.Z)
}

// IndexToOffset converts a Heights index to an offset Coordinate2D.
func (s Size2D) IndexToOffset(index int) Coordinate2D {
	z := index % int(s.Z)
	x := index / int(s.Z)
	return Coordinate2D{X: int32(x), Z: int32(z)}
}

// OffsetToIndex converts an offset Coordinate2D to a Heights index.
func (s Size2D) OffsetToIndex(c Coordinate2D) int {
	return int(c.Z) + int(c.X)*int(s.Z)
}

// Contains reports whether the offset Coordinate2D lies inside the area.
func (s Size2D) Contains(c Coordinate2D) bool {
	return inRange(c.X, s.X) && inRange(c.Z, s.Z)
}

// WithHeight returns the 3D size with y extent height.
func (s Size2D) WithHeight(height uint32) Size {
	return Size{X: s.X, Y: height, Z: s.Z}
}

// String formats the size as "XxZ".
func (s Size2D) String() string {
	return fmt.Sprintf("%dx%d", s.X, s.Z)
}

func inRange(v int32, extent uint32) bool {
	return v >= 0 && int64(v) < int64(extent)
}
