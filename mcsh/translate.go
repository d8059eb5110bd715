// =============================================================================
// translate.go - Command Translation (User Input → Client Calls)
// =============================================================================
//
// This file parses the short-form commands typed at the REPL into requests
// for the mcprotocol client. Parsing is kept separate from execution so the
// vocabulary can be tested without a server.
//
// Examples:
//
//	get 10 64 -3               → world.getBlockWithData(10,64,-3)
//	set 10 64 -3 gold_block    → world.setBlock(10,64,-3,41,0)
//	fill 0 0 0 2 2 2 35:14     → world.setBlocks(0,0,0,2,2,2,35,14)
//	heights 0 0 15 15          → world.getHeights(0,0,15,15)
//
// =============================================================================

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcrs/mcrs-go/mcprotocol"
)

// request is a parsed REPL command.
type request struct {
	// verb is the lower-cased command word, e.g. "fill".
	verb string

	// coords holds the 3D coordinates in argument order.
	coords []mcprotocol.Coordinate

	// columns holds the 2D coordinates in argument order.
	columns []mcprotocol.Coordinate2D

	block mcprotocol.Block

	// text is the free-text argument of chat and cmd.
	text string
}

// errUnknownCommand is returned for a command word the REPL does not know.
var errUnknownCommand = errors.New("unknown command")

// usageError reports wrong arguments for a known command.
type usageError struct {
	verb string
}

func (e *usageError) Error() string {
	return "usage: " + commandUsage[e.verb]
}

// commandUsage is the argument synopsis of every REPL command.
var commandUsage = map[string]string{
	"pos":     "pos",
	"tile":    "tile",
	"tp":      "tp <x> <y> <z>",
	"get":     "get <x> <y> <z>",
	"set":     "set <x> <y> <z> <block>",
	"fill":    "fill <x1> <y1> <z1> <x2> <y2> <z2> <block>",
	"height":  "height <x> <z>",
	"heights": "heights <x1> <z1> <x2> <z2>",
	"blocks":  "blocks <x1> <y1> <z1> <x2> <y2> <z2>",
	"chat":    "chat <message>",
	"cmd":     "cmd <command>",
}

// translateCommand parses one REPL line into a request.
func translateCommand(line string) (request, error) {
	trimmed := strings.TrimSpace(line)
	verb, rest, _ := strings.Cut(trimmed, " ")
	verb = strings.ToLower(verb)
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	req := request{verb: verb}
	usage := &usageError{verb: verb}

	switch verb {
	case "pos", "tile":
		if len(args) != 0 {
			return request{}, usage
		}

	case "tp", "get":
		if len(args) != 3 {
			return request{}, usage
		}
		c, err := parseCoordinate(args)
		if err != nil {
			return request{}, err
		}
		req.coords = []mcprotocol.Coordinate{c}

	case "set":
		if len(args) != 4 {
			return request{}, usage
		}
		c, err := parseCoordinate(args[:3])
		if err != nil {
			return request{}, err
		}
		if req.block, err = parseBlock(args[3]); err != nil {
			return request{}, err
		}
		req.coords = []mcprotocol.Coordinate{c}

	case "fill", "blocks":
		want := 6
		if verb == "fill" {
			want = 7
		}
		if len(args) != want {
			return request{}, usage
		}
		a, err := parseCoordinate(args[0:3])
		if err != nil {
			return request{}, err
		}
		b, err := parseCoordinate(args[3:6])
		if err != nil {
			return request{}, err
		}
		if verb == "fill" {
			if req.block, err = parseBlock(args[6]); err != nil {
				return request{}, err
			}
		}
		req.coords = []mcprotocol.Coordinate{a, b}

	case "height":
		if len(args) != 2 {
			return request{}, usage
		}
		c, err := parseColumn(args)
		if err != nil {
			return request{}, err
		}
		req.columns = []mcprotocol.Coordinate2D{c}

	case "heights":
		if len(args) != 4 {
			return request{}, usage
		}
		a, err := parseColumn(args[0:2])
		if err != nil {
			return request{}, err
		}
		b, err := parseColumn(args[2:4])
		if err != nil {
			return request{}, err
		}
		req.columns = []mcprotocol.Coordinate2D{a, b}

	case "chat":
		if rest == "" {
			return request{}, usage
		}
		req.text = rest

	case "cmd":
		// Accept the in-game form with a leading slash.
		req.text = strings.TrimPrefix(rest, "/")
		if req.text == "" {
			return request{}, usage
		}

	default:
		return request{}, fmt.Errorf("%w: %s", errUnknownCommand, verb)
	}

	return req, nil
}

// parseCoordinate parses three integer arguments as x, y, z.
func parseCoordinate(args []string) (mcprotocol.Coordinate, error) {
	var v [3]int32
	for i, s := range args {
		n, err := parseInt32(s)
		if err != nil {
			return mcprotocol.Coordinate{}, err
		}
		v[i] = n
	}
	return mcprotocol.NewCoordinate(v[0], v[1], v[2]), nil
}

// parseColumn parses two integer arguments as x, z.
func parseColumn(args []string) (mcprotocol.Coordinate2D, error) {
	x, err := parseInt32(args[0])
	if err != nil {
		return mcprotocol.Coordinate2D{}, err
	}
	z, err := parseInt32(args[1])
	if err != nil {
		return mcprotocol.Coordinate2D{}, err
	}
	return mcprotocol.NewCoordinate2D(x, z), nil
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	return int32(n), nil
}

// parseBlock parses a block given as "id", "id:modifier" or a name such as
// "gold_block".
func parseBlock(s string) (mcprotocol.Block, error) {
	if idText, modText, ok := strings.Cut(s, ":"); ok {
		id, err := strconv.ParseUint(idText, 10, 32)
		if err != nil {
			return mcprotocol.Block{}, fmt.Errorf("invalid block id %q", idText)
		}
		mod, err := strconv.ParseUint(modText, 10, 32)
		if err != nil {
			return mcprotocol.Block{}, fmt.Errorf("invalid block modifier %q", modText)
		}
		return mcprotocol.NewBlock(uint32(id), uint32(mod)), nil
	}

	if id, err := strconv.ParseUint(s, 10, 32); err == nil {
		return mcprotocol.NewBlock(uint32(id), 0), nil
	}

	if b, ok := mcprotocol.LookupBlock(s); ok {
		return b, nil
	}
	return mcprotocol.Block{}, fmt.Errorf("unknown block %q (see .blocks)", s)
}
