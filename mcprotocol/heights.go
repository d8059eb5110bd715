package mcprotocol

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Heights stores, for each column of a 2D area, the y value of the highest
// solid block. It is created by collecting a HeightsStream and is immutable.
type Heights struct {
	list   []int32
	origin Coordinate2D
	size   Size2D
}

// HeightsItem is one column of a Heights or HeightsStream with its position.
type HeightsItem struct {
	Height     int32
	Offset     Coordinate2D
	Worldspace Coordinate2D
}

// GetOffset returns the height at the offset Coordinate2D. The second result
// is false if the coordinate is outside the area.
func (h *Heights) GetOffset(offset Coordinate2D) (int32, bool) {
	if !h.size.Contains(offset) {
		return 0, false
	}
	index := h.size.OffsetToIndex(offset)
	if index >= len(h.list) {
		panic("mcprotocol: heights index out of range of its height list")
	}
	return h.list[index], true
}

// GetWorldspace returns the height at the worldspace Coordinate2D.
func (h *Heights) GetWorldspace(position Coordinate2D) (int32, bool) {
	return h.GetOffset(position.Sub(h.origin))
}

// Origin returns the worldspace Coordinate2D of the area's minimum corner.
func (h *Heights) Origin() Coordinate2D {
	return h.origin
}

// Size returns the 2D size of the area.
func (h *Heights) Size() Size2D {
	return h.size
}

// Len returns the number of columns in the area.
func (h *Heights) Len() int {
	return len(h.list)
}

// Min returns the lowest height in the area.
func (h *Heights) Min() int32 {
	m := h.list[0]
	for _, v := range h.list[1:] {
		m = min(m, v)
	}
	return m
}

// Max returns the highest height in the area.
func (h *Heights) Max() int32 {
	m := h.list[0]
	for _, v := range h.list[1:] {
		m = max(m, v)
	}
	return m
}

// All iterates over the area's columns in server order.
func (h *Heights) All() iter.Seq[HeightsItem] {
	return func(yield func(HeightsItem) bool) {
		for i, v := range h.list {
			offset := h.size.IndexToOffset(i)
			if !yield(HeightsItem{Height: v, Offset: offset, Worldspace: offset.Add(h.origin)}) {
				return
			}
		}
	}
}

// String formats the area as "<Heights XxZ>".
func (h *Heights) String() string {
	return fmt.Sprintf("<Heights %s>", h.size)
}

// HeightsStream decodes the values of a world.getHeights response one at a
// time.
//
// Values within a row (fixed x, increasing z) are separated by commas. The
// separator after the last value of a row may be a semicolon or a comma, and
// the final value is terminated by a newline.
type HeightsStream struct {
	gridStream
	origin Coordinate2D
	size   Size2D
}

// NewHeightsStream creates a stream for the area with corners a and b, in
// any order, reading the response from r. It fails with ErrRegionTooLarge
// if the area holds more than MaxGridVolume columns.
func NewHeightsStream(a, b Coordinate2D, r *FieldReader) (*HeightsStream, error) {
	size, err := a.SizeBetween(b)
	if err != nil {
		return nil, err
	}
	return newHeightsStream(a.Min(b), size, r), nil
}

func newHeightsStream(origin Coordinate2D, size Size2D, r *FieldReader) *HeightsStream {
	return &HeightsStream{
		gridStream: newGridStream(r, size.Area()),
		origin:     origin,
		size:       size,
	}
}

// Next decodes the next height. It returns io.EOF after the last value.
func (s *HeightsStream) Next() (HeightsItem, error) {
	index, last, err := s.begin()
	if err != nil {
		return HeightsItem{}, err
	}
	var height int32
	switch {
	case last:
		height, err = s.reader.FinalI32()
	case (index+1)%int(s.size.Z) == 0:
		height, err = s.reader.RowI32()
	default:
		height, err = s.reader.NextI32()
	}
	if err := s.finish(last, err); err != nil {
		return HeightsItem{}, err
	}
	offset := s.size.IndexToOffset(index)
	return HeightsItem{Height: height, Offset: offset, Worldspace: offset.Add(s.origin)}, nil
}

// Collect reads the whole response into a Heights. It fails with
// ErrStreamConsumed if Next has already been called.
func (s *HeightsStream) Collect() (*Heights, error) {
	if s.index != 0 {
		return nil, ErrStreamConsumed
	}
	list := make([]int32, 0, s.volume)
	for {
		item, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		list = append(list, item.Height)
	}
	return &Heights{list: list, origin: s.origin, size: s.size}, nil
}

// Drain reads and discards the rest of the response.
func (s *HeightsStream) Drain() error {
	for {
		if _, err := s.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// Origin returns the worldspace Coordinate2D of the area's minimum corner.
func (s *HeightsStream) Origin() Coordinate2D {
	return s.origin
}

// Size returns the 2D size of the area.
func (s *HeightsStream) Size() Size2D {
	return s.size
}
