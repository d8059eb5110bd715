package mcprotocol

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heightsFromResponse(t *testing.T, a, b Coordinate2D, response string) *HeightsStream {
	t.Helper()
	s, err := NewHeightsStream(a, b, NewFieldReader(strings.NewReader(response)))
	require.NoError(t, err)
	return s
}

func TestHeightsStreamCollect(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"Semicolon rows", "3,4;5,6\n"},
		{"Comma rows", "3,4,5,6\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			heights, err := heightsFromResponse(t, NewCoordinate2D(0, 0), NewCoordinate2D(1, 1), tt.response).Collect()
			require.NoError(t, err)

			assert.Equal(t, 4, heights.Len())
			assert.Equal(t, int32(3), heights.Min())
			assert.Equal(t, int32(6), heights.Max())
			assert.Equal(t, "<Heights 2x2>", heights.String())

			h, ok := heights.GetOffset(NewCoordinate2D(0, 1))
			require.True(t, ok)
			assert.Equal(t, int32(4), h)

			h, ok = heights.GetOffset(NewCoordinate2D(1, 0))
			require.True(t, ok)
			assert.Equal(t, int32(5), h)
		})
	}
}

func TestHeightsStreamOffsets(t *testing.T) {
	s := heightsFromResponse(t, NewCoordinate2D(10, -5), NewCoordinate2D(11, -3), "1,2,3;4,5,6\n")
	assert.Equal(t, NewSize2D(2, 3), s.Size())
	assert.Equal(t, NewCoordinate2D(10, -5), s.Origin())

	var items []HeightsItem
	for {
		item, err := s.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		items = append(items, item)
	}

	require.Len(t, items, 6)
	for i, item := range items {
		assert.Equal(t, int32(i+1), item.Height)
		assert.Equal(t, item.Offset.Add(s.Origin()), item.Worldspace)
	}
	assert.Equal(t, NewCoordinate2D(0, 2), items[2].Offset)
	assert.Equal(t, NewCoordinate2D(1, 0), items[3].Offset)
	assert.Equal(t, NewCoordinate2D(11, -3), items[5].Worldspace)
}

func TestHeightsWorldspaceLookup(t *testing.T) {
	heights, err := heightsFromResponse(t, NewCoordinate2D(-1, -1), NewCoordinate2D(0, 0), "64,65;-2,70\n").Collect()
	require.NoError(t, err)

	h, ok := heights.GetWorldspace(NewCoordinate2D(0, -1))
	require.True(t, ok)
	assert.Equal(t, int32(-2), h)

	_, ok = heights.GetWorldspace(NewCoordinate2D(1, 0))
	assert.False(t, ok)

	assert.Equal(t, int32(-2), heights.Min())
	assert.Equal(t, int32(70), heights.Max())

	count := 0
	for item := range heights.All() {
		got, ok := heights.GetWorldspace(item.Worldspace)
		require.True(t, ok)
		assert.Equal(t, item.Height, got)
		count++
	}
	assert.Equal(t, 4, count)
}

func TestHeightsStreamSingleColumn(t *testing.T) {
	heights, err := heightsFromResponse(t, NewCoordinate2D(3, 3), NewCoordinate2D(3, 3), "63\n").Collect()
	require.NoError(t, err)
	assert.Equal(t, int32(63), heights.Min())
	assert.Equal(t, int32(63), heights.Max())
}

func TestHeightsStreamErrors(t *testing.T) {
	a, b := NewCoordinate2D(0, 0), NewCoordinate2D(1, 1)

	t.Run("Semicolon inside row", func(t *testing.T) {
		_, err := heightsFromResponse(t, a, b, "3;4,5,6\n").Collect()
		require.True(t, IsShapeError(err), "got %v", err)
		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, TerminatorComma, de.Expected)
		assert.Equal(t, TerminatorSemicolon, de.Actual)
	})

	t.Run("Short response", func(t *testing.T) {
		_, err := heightsFromResponse(t, a, b, "3,4\n").Collect()
		assert.True(t, IsShapeError(err), "got %v", err)
	})

	t.Run("Truncated response", func(t *testing.T) {
		_, err := heightsFromResponse(t, a, b, "3,4;5").Collect()
		assert.True(t, IsTransportError(err), "got %v", err)
	})

	t.Run("Collect after Next", func(t *testing.T) {
		s := heightsFromResponse(t, a, b, "3,4;5,6\n")
		_, err := s.Next()
		require.NoError(t, err)
		_, err = s.Collect()
		assert.ErrorIs(t, err, ErrStreamConsumed)
		require.NoError(t, s.Drain())
	})
}

func TestNewHeightsStreamRegionTooLarge(t *testing.T) {
	r := NewFieldReader(strings.NewReader(""))

	_, err := NewHeightsStream(NewCoordinate2D(-2147483648, 0), NewCoordinate2D(2147483647, 0), r)
	assert.ErrorIs(t, err, ErrRegionTooLarge)

	_, err = NewHeightsStream(NewCoordinate2D(0, 0), NewCoordinate2D(4096, 4096), r)
	assert.ErrorIs(t, err, ErrRegionTooLarge)
}
