package mcprotocol

import "time"

// Protocol constants.
const (
	// DefaultAddress is the address and port ELCI listens on by default.
	DefaultAddress = "127.0.0.1:4711"

	// MaxFieldLength is the maximum number of bytes a single response field
	// may span, excluding its terminator.
	MaxFieldLength = 48

	// ReadBufferSize is the capacity of the connection's read buffer.
	ReadBufferSize = 4096

	// ConnectionTimeout is the default timeout for establishing connections.
	ConnectionTimeout = 5 * time.Second

	// MaxGridVolume is the largest number of blocks or heights a single
	// grid request may cover.
	MaxGridVolume = 1 << 24
)

// Server command names.
const (
	CmdPostToChat        = "chat.post"
	CmdDoCommand         = "player.doCommand"
	CmdGetPlayerPosition = "player.getPos"
	CmdSetPlayerPosition = "player.setPos"
	CmdGetBlock          = "world.getBlockWithData"
	CmdSetBlock          = "world.setBlock"
	CmdSetBlocks         = "world.setBlocks"
	CmdGetBlocks         = "world.getBlocksWithData"
	CmdGetHeight         = "world.getHeight"
	CmdGetHeights        = "world.getHeights"
)
