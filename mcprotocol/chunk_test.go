package mcprotocol

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeResponse = "1,0;2,0;3,0;4,0;5,0;6,0;7,0;8,5\n"

func chunkFromResponse(t *testing.T, a, b Coordinate, response string) *ChunkStream {
	t.Helper()
	s, err := NewChunkStream(a, b, NewFieldReader(strings.NewReader(response)))
	require.NoError(t, err)
	return s
}

func newCubeStream(t *testing.T, response string) *ChunkStream {
	t.Helper()
	return chunkFromResponse(t, NewCoordinate(0, 0, 0), NewCoordinate(1, 1, 1), response)
}

func TestChunkStreamCollect(t *testing.T) {
	chunk, err := newCubeStream(t, cubeResponse).Collect()
	require.NoError(t, err)

	assert.Equal(t, 8, chunk.Len())
	assert.Equal(t, NewSize(2, 2, 2), chunk.Size())
	assert.Equal(t, "<Chunk 2x2x2>", chunk.String())

	b, ok := chunk.GetWorldspace(NewCoordinate(1, 1, 1))
	require.True(t, ok)
	assert.Equal(t, NewBlock(8, 5), b)

	b, ok = chunk.GetOffset(NewCoordinate(0, 0, 1))
	require.True(t, ok)
	assert.Equal(t, NewBlock(2, 0), b)

	_, ok = chunk.GetOffset(NewCoordinate(2, 0, 0))
	assert.False(t, ok)
}

func TestChunkStreamDistinctOffsets(t *testing.T) {
	s := newCubeStream(t, cubeResponse)
	seen := make(map[Coordinate]bool)
	for {
		item, err := s.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, item.Offset, item.Worldspace)
		seen[item.Offset] = true
	}
	assert.Len(t, seen, 8)
	assert.True(t, s.Done())
	assert.Equal(t, 0, s.Remaining())
}

func TestChunkCollectMatchesManualDrain(t *testing.T) {
	a, b := NewCoordinate(5, -2, 3), NewCoordinate(4, -3, 3)
	response := "1,0;2,0;3,0;4,1\n"

	chunk, err := chunkFromResponse(t, a, b, response).Collect()
	require.NoError(t, err)
	assert.Equal(t, NewCoordinate(4, -3, 3), chunk.Origin())

	s := chunkFromResponse(t, a, b, response)
	for {
		item, err := s.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got, ok := chunk.GetWorldspace(item.Worldspace)
		require.True(t, ok)
		assert.Equal(t, item.Block, got)
	}

	var items []ChunkItem
	for item := range chunk.All() {
		items = append(items, item)
	}
	require.Len(t, items, 4)
	assert.Equal(t, NewCoordinate(4, -3, 3), items[0].Worldspace)
	assert.Equal(t, NewCoordinate(5, -2, 3), items[3].Worldspace)
	assert.Equal(t, NewBlock(4, 1), items[3].Block)
}

func TestChunkStreamCollectAfterNext(t *testing.T) {
	s := newCubeStream(t, cubeResponse)
	_, err := s.Next()
	require.NoError(t, err)

	_, err = s.Collect()
	assert.ErrorIs(t, err, ErrStreamConsumed)
}

func TestChunkStreamExhausted(t *testing.T) {
	s := chunkFromResponse(t, NewCoordinate(0, 0, 0), NewCoordinate(0, 0, 0), "7,0\n")

	item, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, NewBlock(7, 0), item.Block)

	// Further calls must not touch the reader, which would report EOF as an error.
	for range 3 {
		_, err = s.Next()
		assert.Equal(t, io.EOF, err)
	}
}

func TestChunkStreamShapeErrors(t *testing.T) {
	t.Run("Too few items", func(t *testing.T) {
		_, err := newCubeStream(t, "1,0;2,0\n").Collect()
		assert.True(t, IsShapeError(err), "got %v", err)
	})

	t.Run("Too many items", func(t *testing.T) {
		s := chunkFromResponse(t, NewCoordinate(0, 0, 0), NewCoordinate(0, 0, 0), "1,0;2,0\n")
		_, err := s.Collect()
		assert.True(t, IsShapeError(err), "got %v", err)
	})

	t.Run("Error is sticky", func(t *testing.T) {
		s := newCubeStream(t, "1,0\n")
		_, first := s.Next()
		require.Error(t, first)
		_, second := s.Next()
		assert.Equal(t, first, second)
	})
}

func TestChunkStreamDrain(t *testing.T) {
	s := newCubeStream(t, cubeResponse)
	_, err := s.Next()
	require.NoError(t, err)
	require.NoError(t, s.Drain())
	assert.True(t, s.Done())
}

func TestChunkStreamEndNotification(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		calls := 0
		var got error
		s := newCubeStream(t, cubeResponse)
		s.onEnd = func(err error) { calls++; got = err }

		require.NoError(t, s.Drain())
		_, _ = s.Next()
		assert.Equal(t, 1, calls)
		assert.NoError(t, got)
	})

	t.Run("Failure", func(t *testing.T) {
		calls := 0
		var got error
		s := newCubeStream(t, "1,0;x\n")
		s.onEnd = func(err error) { calls++; got = err }

		require.Error(t, s.Drain())
		_, _ = s.Next()
		assert.Equal(t, 1, calls)
		assert.True(t, IsSyntaxError(got))
	})
}

func TestNewChunkStreamRegionTooLarge(t *testing.T) {
	r := NewFieldReader(strings.NewReader(""))

	_, err := NewChunkStream(NewCoordinate(0, 0, 0), NewCoordinate(2000000, 2000000, 2000000), r)
	assert.ErrorIs(t, err, ErrRegionTooLarge)

	_, err = NewChunkStream(NewCoordinate(-2147483648, 0, 0), NewCoordinate(2147483647, 0, 0), r)
	assert.ErrorIs(t, err, ErrRegionTooLarge)
}
