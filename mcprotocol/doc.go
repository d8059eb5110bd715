// Package mcprotocol provides a Go client for the text protocol spoken by
// ELCI, a Minecraft server plugin that exposes the world over TCP.
//
// # Protocol Overview
//
// The protocol is line-oriented ASCII. Each request is a single command
// invocation and each reply, if the command has one, is a single line:
//
//	Request:              <name>(<arg>,<arg>,...)\n
//	Scalar response:      <value>\n
//	Coordinate response:  <x>,<y>,<z>\n
//	Block response:       <id>,<modifier>\n
//	Block list response:  <id>,<mod>;<id>,<mod>;...;<id>,<mod>\n
//	Height list response: <h>,<h>,...,<h>\n
//
// Example Session:
//
//	CLI: player.getPos()
//	SRV: 12.5,64,-3.7
//	CLI: world.getBlockWithData(12,63,-4)
//	SRV: 2,0
//
// Numbers may carry a fractional part. Only the integer part is significant
// and it is rounded toward negative infinity, so -3.7 decodes as -4.
//
// # Basic Usage
//
//	client := mcprotocol.NewClient()
//	if err := client.Connect(mcprotocol.DefaultAddress); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Disconnect()
//
//	pos, err := client.GetPlayerTilePosition()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := client.SetBlock(pos, mcprotocol.BlockGoldBlock); err != nil {
//	    log.Fatal(err)
//	}
//
// # Streaming Grids
//
// Cuboids of blocks and areas of heights can be collected in one call, or
// decoded one element at a time as the response arrives:
//
//	stream, err := client.GetBlocksStream(a, b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    item, err := stream.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(item.Worldspace, item.Block)
//	}
//
// A stream must be read to the end before the client accepts another
// command; Drain discards what is left.
//
// # Errors
//
// Response decoding failures are *DecodeError values. IsSyntaxError,
// IsShapeError and IsTransportError tell malformed numbers, responses with
// the wrong number of fields, and connection failures apart. After any
// decode failure the connection no longer knows where the next response
// begins, and the client refuses further commands with ErrConnectionBroken.
package mcprotocol
