// =============================================================================
// help.go - Help System
// =============================================================================
//
// .help with no argument prints an overview of every command. .help <cmd>
// prints the detailed entry for one command. Topics are case-insensitive
// and the leading dot of dot-commands is optional.
//
// =============================================================================

package main

import (
	"fmt"
	"io"
	"strings"
)

// printHelp prints the overview, or the entry for topic if one is given.
func printHelp(out, errOut io.Writer, topic string) {
	if topic == "" {
		fmt.Fprint(out, helpOverview)
		return
	}

	key := strings.ToLower(topic)
	for _, k := range []string{key, strings.TrimPrefix(key, "."), "." + key} {
		if text, ok := helpTopics[k]; ok {
			fmt.Fprintln(out, text)
			return
		}
	}

	fmt.Fprintf(errOut, "Error: No help for '%s'. Type .help to see available commands.\n", topic)
}

const helpOverview = `Player:
  pos                         Show the player's position
  tile                        Show the block the player stands on
  tp <x> <y> <z>              Move the player

World:
  get <x> <y> <z>             Show the block at a position
  set <x> <y> <z> <block>     Place a block
  fill <x1> <y1> <z1> <x2> <y2> <z2> <block>
                              Fill a cuboid with a block
  blocks <x1> <y1> <z1> <x2> <y2> <z2>
                              List every block of a cuboid
  height <x> <z>              Show the height of a column
  heights <x1> <z1> <x2> <z2> Show the heights of an area

Server:
  chat <message>              Post a message to the chat
  cmd <command>               Run an in-game command (e.g. cmd time set day)

Shell:
  .help [cmd]                 Show help (or help for a specific command)
  .blocks [filter]            List block names
  .reconnect                  Reconnect to the server
  .quit                       Exit mcsh

A <block> is an id (1), an id:modifier pair (35:14) or a name (gold_block).
`

// helpTopics holds the detailed help for each command, keyed by the command
// word. Dot-commands keep their dot so ".blocks" and "blocks" stay distinct.
var helpTopics = map[string]string{
	"pos": `  pos
    Show the position of the lower half of the player model.`,

	"tile": `  tile
    Show the position of the block the player is standing on, one
    below the player's own position.`,

	"tp": `  tp <x> <y> <z>
    Move the lower half of the player model to the given position.
    Example: tp 0 70 0`,

	"get": `  get <x> <y> <z>
    Show the block at a position as "name (id:modifier)".
    Example: get 10 64 -3`,

	"set": `  set <x> <y> <z> <block>
    Place a block at a position.
    Example: set 10 64 -3 gold_block`,

	"fill": `  fill <x1> <y1> <z1> <x2> <y2> <z2> <block>
    Fill the cuboid between two corners, in any order, with a block.
    Example: fill 0 64 0 4 68 4 glass`,

	"blocks": `  blocks <x1> <y1> <z1> <x2> <y2> <z2>
    List every block in the cuboid between two corners. Blocks are
    printed as they arrive, z varying fastest, then x, then y.`,

	"height": `  height <x> <z>
    Show the y value of the highest solid block in a column.`,

	"heights": `  heights <x1> <z1> <x2> <z2>
    Show the heights of every column in an area as a table with one
    row per x value, along with the lowest and highest value.`,

	"chat": `  chat <message>
    Post a message to the in-game chat. Characters outside printable
    ASCII are removed.`,

	"cmd": `  cmd <command>
    Run an in-game command as the player. A leading slash is optional.
    The player must be online and should be an operator.
    Example: cmd weather clear`,

	".help": `  .help [cmd]
    Show the command overview, or detailed help for one command.`,

	".blocks": `  .blocks [filter]
    List the block names accepted wherever a <block> is expected,
    with their id:modifier. Only names containing filter are shown.
    Example: .blocks wool`,

	".reconnect": `  .reconnect
    Close the connection and connect to the same server again. Use this
    after a malformed response left the connection out of sync.`,

	".quit": `  .quit
    Exit mcsh. Ctrl-D does the same.`,
}
