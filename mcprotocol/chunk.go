package mcprotocol

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Chunk stores a cuboid of Blocks together with the position it was read
// from. It is created by collecting a ChunkStream and is immutable.
type Chunk struct {
	list   []Block
	origin Coordinate
	size   Size
}

// ChunkItem is one block of a Chunk or ChunkStream with its position.
type ChunkItem struct {
	Block      Block
	Offset     Coordinate
	Worldspace Coordinate
}

// GetOffset returns the Block at the offset Coordinate. The second result is
// false if the coordinate is outside the chunk.
func (c *Chunk) GetOffset(offset Coordinate) (Block, bool) {
	if !c.size.Contains(offset) {
		return Block{}, false
	}
	index := c.size.OffsetToIndex(offset)
	if index >= len(c.list) {
		panic("mcprotocol: chunk index out of range of its block list")
	}
	return c.list[index], true
}

// GetWorldspace returns the Block at the worldspace Coordinate.
func (c *Chunk) GetWorldspace(position Coordinate) (Block, bool) {
	return c.GetOffset(position.Sub(c.origin))
}

// Origin returns the worldspace Coordinate of the chunk's minimum corner.
func (c *Chunk) Origin() Coordinate {
	return c.origin
}

// Size returns the 3D size of the chunk.
func (c *Chunk) Size() Size {
	return c.size
}

// Len returns the number of blocks in the chunk.
func (c *Chunk) Len() int {
	return len(c.list)
}

// All iterates over the chunk's blocks in server order.
func (c *Chunk) All() iter.Seq[ChunkItem] {
	return func(yield func(ChunkItem) bool) {
		for i, b := range c.list {
			offset := c.size.IndexToOffset(i)
			if !yield(ChunkItem{Block: b, Offset: offset, Worldspace: offset.Add(c.origin)}) {
				return
			}
		}
	}
}

// String formats the chunk as "<Chunk XxYxZ>".
func (c *Chunk) String() string {
	return fmt.Sprintf("<Chunk %s>", c.size)
}

// ChunkStream decodes the blocks of a world.getBlocksWithData response one
// at a time.
//
// A stream must be read to the end (with Next, Collect or Drain) before the
// connection it came from can be used again.
type ChunkStream struct {
	gridStream
	origin Coordinate
	size   Size
}

// NewChunkStream creates a stream for the cuboid with corners a and b, in
// any order, reading the response from r. It fails with ErrRegionTooLarge
// if the cuboid holds more than MaxGridVolume blocks.
func NewChunkStream(a, b Coordinate, r *FieldReader) (*ChunkStream, error) {
	size, err := a.SizeBetween(b)
	if err != nil {
		return nil, err
	}
	return newChunkStream(a.Min(b), size, r), nil
}

func newChunkStream(origin Coordinate, size Size, r *FieldReader) *ChunkStream {
	return &ChunkStream{
		gridStream: newGridStream(r, size.Volume()),
		origin:     origin,
		size:       size,
	}
}

// Next decodes the next block. It returns io.EOF after the last block.
func (s *ChunkStream) Next() (ChunkItem, error) {
	index, last, err := s.begin()
	if err != nil {
		return ChunkItem{}, err
	}
	var block Block
	if last {
		block, err = s.reader.FinalBlock()
	} else {
		block, err = s.reader.NextBlock()
	}
	if err := s.finish(last, err); err != nil {
		return ChunkItem{}, err
	}
	offset := s.size.IndexToOffset(index)
	return ChunkItem{Block: block, Offset: offset, Worldspace: offset.Add(s.origin)}, nil
}

// Collect reads the whole response into a Chunk. It fails with
// ErrStreamConsumed if Next has already been called.
func (s *ChunkStream) Collect() (*Chunk, error) {
	if s.index != 0 {
		return nil, ErrStreamConsumed
	}
	list := make([]Block, 0, s.volume)
	for {
		item, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		list = append(list, item.Block)
	}
	return &Chunk{list: list, origin: s.origin, size: s.size}, nil
}

// Drain reads and discards the rest of the response.
func (s *ChunkStream) Drain() error {
	for {
		if _, err := s.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// Origin returns the worldspace Coordinate of the cuboid's minimum corner.
func (s *ChunkStream) Origin() Coordinate {
	return s.origin
}

// Size returns the 3D size of the cuboid.
func (s *ChunkStream) Size() Size {
	return s.size
}
