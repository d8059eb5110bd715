// =============================================================================
// repl.go - REPL Loop
// =============================================================================
//
// The REPL reads a line, handles local dot-commands such as .help and .quit
// itself, and translates everything else into mcprotocol client calls.
// Results are printed to out and errors to errOut; an error never ends the
// loop, only .quit or end of input does.
//
// =============================================================================

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcrs/mcrs-go/mcprotocol"
)

// prompt is shown before every input line.
const prompt = "mc> "

// lineReader is the input side of the REPL. *LineEditor implements it.
type lineReader interface {
	GetLine(prompt string) (string, error)
}

// runREPL runs the main REPL loop until .quit or end of input.
func runREPL(client *mcprotocol.Client, input lineReader, out, errOut io.Writer) {
	for {
		line, err := input.GetLine(prompt)
		if err != nil {
			// EOF (Ctrl-D) or a read error.
			fmt.Fprintln(out)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(client, line, out, errOut); quit {
				return
			}
			continue
		}

		req, err := translateCommand(line)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}
		if err := execute(client, req, out); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", describeError(err))
		}
	}
}

// handleDotCommand runs a local dot-command. It returns true for .quit.
func handleDotCommand(client *mcprotocol.Client, line string, out, errOut io.Writer) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case ".quit", ".exit":
		return true
	case ".help":
		printHelp(out, errOut, arg)
	case ".blocks":
		listBlocks(out, arg)
	case ".reconnect":
		if err := reconnect(client); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return false
		}
		fmt.Fprintf(out, "Reconnected to %s\n", client.ConnectedAddress())
	default:
		fmt.Fprintf(errOut, "Error: unknown command %s. Type .help to see available commands.\n", cmd)
	}
	return false
}

// reconnect drops the current connection and dials the same address again,
// which clears a connection that went out of sync.
func reconnect(client *mcprotocol.Client) error {
	addr := client.ConnectedAddress()
	if addr == "" {
		return mcprotocol.ErrNotConnected
	}
	client.Disconnect()
	return client.Connect(addr)
}

// execute performs req on client and prints the result.
func execute(client *mcprotocol.Client, req request, out io.Writer) error {
	switch req.verb {
	case "pos":
		pos, err := client.GetPlayerPosition()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, pos)

	case "tile":
		pos, err := client.GetPlayerTilePosition()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, pos)

	case "tp":
		return client.SetPlayerPosition(req.coords[0])

	case "get":
		block, err := client.GetBlock(req.coords[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, block)

	case "set":
		return client.SetBlock(req.coords[0], req.block)

	case "fill":
		return client.SetBlocks(req.coords[0], req.coords[1], req.block)

	case "height":
		height, err := client.GetHeight(req.columns[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, height)

	case "heights":
		heights, err := client.GetHeights(req.columns[0], req.columns[1])
		if err != nil {
			return err
		}
		printHeights(out, heights)

	case "blocks":
		return printBlocks(client, req.coords[0], req.coords[1], out)

	case "chat":
		return client.PostToChat(req.text)

	case "cmd":
		return client.DoCommand(req.text)

	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, req.verb)
	}
	return nil
}

// printBlocks streams a cuboid to out, one block per line, as it is
// decoded.
func printBlocks(client *mcprotocol.Client, a, b mcprotocol.Coordinate, out io.Writer) error {
	stream, err := client.GetBlocksStream(a, b)
	if err != nil {
		return err
	}
	count := 0
	for {
		item, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", item.Worldspace, item.Block)
		count++
	}
	fmt.Fprintf(out, "%d blocks (%s)\n", count, stream.Size())
	return nil
}

// printHeights prints an area as a table with one row per x.
func printHeights(out io.Writer, heights *mcprotocol.Heights) {
	size := heights.Size()
	fmt.Fprintf(out, "origin %s, %s, min %d, max %d\n",
		heights.Origin(), size, heights.Min(), heights.Max())

	var row strings.Builder
	for item := range heights.All() {
		fmt.Fprintf(&row, "%6d", item.Height)
		if item.Offset.Z == int32(size.Z)-1 {
			fmt.Fprintln(out, row.String())
			row.Reset()
		}
	}
}

// listBlocks prints the block name table, optionally filtered by a
// substring.
func listBlocks(out io.Writer, filter string) {
	filter = strings.ToLower(filter)
	for _, name := range mcprotocol.BlockNames() {
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}
		b, _ := mcprotocol.LookupBlock(name)
		fmt.Fprintf(out, "  %-32s %d:%d\n", name, b.ID, b.Modifier)
	}
}

// describeError adds a hint for errors the user can act on.
func describeError(err error) error {
	switch {
	case errors.Is(err, mcprotocol.ErrConnectionBroken):
		return fmt.Errorf("%w (type .reconnect)", err)
	case mcprotocol.IsTransportError(err):
		return fmt.Errorf("lost connection to server: %w", err)
	}
	return err
}
