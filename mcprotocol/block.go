package mcprotocol

import (
	"fmt"
	"strings"
)

// Block is a block type, identified by its id and modifier (e.g. andesite
// is 1:5).
type Block struct {
	ID       uint32
	Modifier uint32
}

// Commonly used blocks.
var (
	BlockAir          = Block{0, 0}
	BlockStone        = Block{1, 0}
	BlockGrass        = Block{2, 0}
	BlockDirt         = Block{3, 0}
	BlockCobblestone  = Block{4, 0}
	BlockBedrock      = Block{7, 0}
	BlockWater        = Block{9, 0}
	BlockSand         = Block{12, 0}
	BlockGlass        = Block{20, 0}
	BlockWhiteWool    = Block{35, 0}
	BlockGoldBlock    = Block{41, 0}
	BlockDiamondBlock = Block{57, 0}
)

var (
	blocksByName = make(map[string]Block, len(blockTable))
	namesByBlock = make(map[Block]string, len(blockTable))
)

func init() {
	for _, e := range blockTable {
		blocksByName[e.name] = e.block
		if _, ok := namesByBlock[e.block]; !ok {
			namesByBlock[e.block] = e.name
		}
	}
}

// NewBlock creates a Block.
func NewBlock(id, modifier uint32) Block {
	return Block{ID: id, Modifier: modifier}
}

// Name returns the block's name, or "" if the block is not in the table.
func (b Block) Name() string {
	return namesByBlock[b]
}

// String formats the block as "name (id:modifier)".
func (b Block) String() string {
	name := b.Name()
	if name == "" {
		name = "[unknown]"
	}
	return fmt.Sprintf("%s (%d:%d)", name, b.ID, b.Modifier)
}

// LookupBlock finds a block by name. Names are case-insensitive and may use
// spaces or underscores between words.
func LookupBlock(name string) (Block, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")
	b, ok := blocksByName[key]
	return b, ok
}

// BlockNames returns all known block names in id order.
func BlockNames() []string {
	names := make([]string, len(blockTable))
	for i, e := range blockTable {
		names[i] = e.name
	}
	return names
}
