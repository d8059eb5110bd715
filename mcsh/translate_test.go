// =============================================================================
// translate_test.go - Tests for Command Translation (translate.go)
// =============================================================================

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcrs/mcrs-go/mcprotocol"
)

func TestTranslateCommand(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected request
	}{
		{"Pos", "pos", request{verb: "pos"}},
		{"Tile uppercase", "TILE", request{verb: "tile"}},
		{"Teleport", "tp 0 70 -5", request{
			verb:   "tp",
			coords: []mcprotocol.Coordinate{mcprotocol.NewCoordinate(0, 70, -5)},
		}},
		{"Get", "get 10 64 -3", request{
			verb:   "get",
			coords: []mcprotocol.Coordinate{mcprotocol.NewCoordinate(10, 64, -3)},
		}},
		{"Set by name", "set 1 2 3 gold_block", request{
			verb:   "set",
			coords: []mcprotocol.Coordinate{mcprotocol.NewCoordinate(1, 2, 3)},
			block:  mcprotocol.BlockGoldBlock,
		}},
		{"Fill with modifier", "fill 0 0 0 2 2 2 35:14", request{
			verb: "fill",
			coords: []mcprotocol.Coordinate{
				mcprotocol.NewCoordinate(0, 0, 0),
				mcprotocol.NewCoordinate(2, 2, 2),
			},
			block: mcprotocol.NewBlock(35, 14),
		}},
		{"Blocks", "blocks 0 0 0 1 1 1", request{
			verb: "blocks",
			coords: []mcprotocol.Coordinate{
				mcprotocol.NewCoordinate(0, 0, 0),
				mcprotocol.NewCoordinate(1, 1, 1),
			},
		}},
		{"Height", "height 5 -5", request{
			verb:    "height",
			columns: []mcprotocol.Coordinate2D{mcprotocol.NewCoordinate2D(5, -5)},
		}},
		{"Heights", "heights 0 0 15 15", request{
			verb: "heights",
			columns: []mcprotocol.Coordinate2D{
				mcprotocol.NewCoordinate2D(0, 0),
				mcprotocol.NewCoordinate2D(15, 15),
			},
		}},
		{"Chat keeps spacing", "chat hello   world", request{verb: "chat", text: "hello   world"}},
		{"Command strips slash", "cmd /time set day", request{verb: "cmd", text: "time set day"}},
		{"Extra whitespace", "  get   1  2  3  ", request{
			verb:   "get",
			coords: []mcprotocol.Coordinate{mcprotocol.NewCoordinate(1, 2, 3)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := translateCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestTranslateCommandUsageErrors(t *testing.T) {
	lines := []string{
		"pos 1",
		"tp 1 2",
		"get 1 2 3 4",
		"set 1 2 3",
		"fill 0 0 0 1 1 1",
		"blocks 0 0 0 1 1",
		"height 1",
		"heights 0 0 1",
		"chat",
		"cmd /",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := translateCommand(line)
			var usage *usageError
			require.ErrorAs(t, err, &usage)
			assert.Contains(t, err.Error(), "usage: ")
		})
	}
}

func TestTranslateCommandInvalidArguments(t *testing.T) {
	tests := []struct {
		line    string
		message string
	}{
		{"get 1 x 3", `invalid coordinate "x"`},
		{"get 1 2 3000000000", `invalid coordinate "3000000000"`},
		{"set 1 2 3 unobtainium", `unknown block "unobtainium"`},
		{"set 1 2 3 35:x", `invalid block modifier "x"`},
		{"set 1 2 3 -1:0", `invalid block id "-1"`},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := translateCommand(tt.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestTranslateCommandUnknown(t *testing.T) {
	_, err := translateCommand("jump 1 2 3")
	assert.True(t, errors.Is(err, errUnknownCommand))
}

func TestParseBlock(t *testing.T) {
	tests := []struct {
		input    string
		expected mcprotocol.Block
	}{
		{"1", mcprotocol.BlockStone},
		{"35:14", mcprotocol.NewBlock(35, 14)},
		{"stone", mcprotocol.BlockStone},
		{"Diamond_Block", mcprotocol.BlockDiamondBlock},
		{"4000", mcprotocol.NewBlock(4000, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, err := parseBlock(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b)
		})
	}
}

func TestCommandUsageComplete(t *testing.T) {
	for verb := range commandUsage {
		_, ok := helpTopics[verb]
		assert.True(t, ok, "command %q has no help entry", verb)
	}
}
