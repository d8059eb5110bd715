package mcprotocol

import "fmt"

// Coordinate is a worldspace or offset position in the world.
type Coordinate struct {
	X, Y, Z int32
}

// NewCoordinate creates a Coordinate.
func NewCoordinate(x, y, z int32) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of c and o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sub returns the component-wise difference c - o.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// Min returns the component-wise minimum of c and o, i.e. the origin of the
// cuboid they span.
func (c Coordinate) Min(o Coordinate) Coordinate {
	return Coordinate{X: min(c.X, o.X), Y: min(c.Y, o.Y), Z: min(c.Z, o.Z)}
}

// SizeBetween returns the size of the cuboid with corners c and o. Both
// corners are inclusive, so every component is at least 1. It fails with
// ErrRegionTooLarge if the cuboid holds more than MaxGridVolume blocks.
func (c Coordinate) SizeBetween(o Coordinate) (Size, error) {
	x, y, z := span(c.X, o.X), span(c.Y, o.Y), span(c.Z, o.Z)
	if err := checkVolume(x, y, z); err != nil {
		return Size{}, fmt.Errorf("%w: %v to %v", err, c, o)
	}
	return Size{X: uint32(x), Y: uint32(y), Z: uint32(z)}, nil
}

// Flat drops the y component.
func (c Coordinate) Flat() Coordinate2D {
	return Coordinate2D{X: c.X, Z: c.Z}
}

// String formats the coordinate as "(x, y, z)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Coordinate2D is a worldspace or offset position with no y component.
type Coordinate2D struct {
	X, Z int32
}

// NewCoordinate2D creates a Coordinate2D.
func NewCoordinate2D(x, z int32) Coordinate2D {
	return Coordinate2D{X: x, Z: z}
}

// Add returns the component-wise sum of c and o.
func (c Coordinate2D) Add(o Coordinate2D) Coordinate2D {
	return Coordinate2D{X: c.X + o.X, Z: c.Z + o.Z}
}

// Sub returns the component-wise difference c - o.
func (c Coordinate2D) Sub(o Coordinate2D) Coordinate2D {
	return Coordinate2D{X: c.X - o.X, Z: c.Z - o.Z}
}

// Min returns the component-wise minimum of c and o.
func (c Coordinate2D) Min(o Coordinate2D) Coordinate2D {
	return Coordinate2D{X: min(c.X, o.X), Z: min(c.Z, o.Z)}
}

// SizeBetween returns the size of the area with corners c and o, subject to
// the same MaxGridVolume limit as Coordinate.SizeBetween.
func (c Coordinate2D) SizeBetween(o Coordinate2D) (Size2D, error) {
	x, z := span(c.X, o.X), span(c.Z, o.Z)
	if err := checkVolume(x, z); err != nil {
		return Size2D{}, fmt.Errorf("%w: %v to %v", err, c, o)
	}
	return Size2D{X: uint32(x), Z: uint32(z)}, nil
}

// WithHeight returns the 3D coordinate at height y.
func (c Coordinate2D) WithHeight(y int32) Coordinate {
	return Coordinate{X: c.X, Y: y, Z: c.Z}
}

// String formats the coordinate as "(x, z)".
func (c Coordinate2D) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Z)
}

// span is the inclusive distance between a and b. It reaches 1<<32 when a
// and b are the two ends of the int32 range.
func span(a, b int32) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return d + 1
}

func checkVolume(spans ...int64) error {
	volume := int64(1)
	for _, s := range spans {
		volume *= s
		if volume > MaxGridVolume {
			return ErrRegionTooLarge
		}
	}
	return nil
}
