package mcprotocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockString(t *testing.T) {
	tests := []struct {
		block    Block
		expected string
	}{
		{BlockAir, "air (0:0)"},
		{BlockStone, "stone (1:0)"},
		{BlockGoldBlock, "gold_block (41:0)"},
		{NewBlock(4000, 3), "[unknown] (4000:3)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.block.String())
		})
	}
}

func TestLookupBlock(t *testing.T) {
	tests := []struct {
		name     string
		expected Block
		ok       bool
	}{
		{"stone", BlockStone, true},
		{"Diamond Block", BlockDiamondBlock, true},
		{"  GOLD_BLOCK ", BlockGoldBlock, true},
		{"still water", BlockWater, true},
		{"unobtainium", Block{}, false},
		{"", Block{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := LookupBlock(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, b)
		})
	}
}

func TestBlockNamesRoundTrip(t *testing.T) {
	names := BlockNames()
	assert.NotEmpty(t, names)
	assert.Equal(t, "air", names[0])
	for _, name := range names {
		_, ok := LookupBlock(name)
		assert.True(t, ok, "name %q", name)
	}
}
