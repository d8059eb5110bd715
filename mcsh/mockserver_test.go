// =============================================================================
// mockserver_test.go - Mock ELCI Server for Testing
// =============================================================================
//
// A lightweight stand-in for the ELCI plugin. It listens on a loopback TCP
// port and answers each command line using a handler supplied by the test,
// so REPL tests can run end-to-end without a Minecraft server.
//
// =============================================================================

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/mcrs/mcrs-go/mcprotocol"
)

// mockServer is a lightweight mock of an ELCI server.
type mockServer struct {
	listener net.Listener

	// handler returns the response line for a command, including the
	// trailing newline, or "" for commands without a response.
	handler func(cmd string) string

	mu          sync.Mutex
	connections []net.Conn
	// commands records every line received, in order.
	commands []string

	wg sync.WaitGroup
}

// startMockServer starts a mock server on an ephemeral port. If handler is
// nil, defaultMockHandler is used. The server stops when the test finishes.
func startMockServer(t *testing.T, handler func(cmd string) string) *mockServer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to create mock server listener: %v", err)
	}
	if handler == nil {
		handler = defaultMockHandler
	}

	ms := &mockServer{listener: listener, handler: handler}

	ms.wg.Add(1)
	go ms.acceptLoop()

	t.Cleanup(ms.stop)
	return ms
}

func (ms *mockServer) acceptLoop() {
	defer ms.wg.Done()
	for {
		conn, err := ms.listener.Accept()
		if err != nil {
			return
		}
		ms.mu.Lock()
		ms.connections = append(ms.connections, conn)
		ms.mu.Unlock()

		ms.wg.Add(1)
		go ms.handleConnection(conn)
	}
}

func (ms *mockServer) handleConnection(conn net.Conn) {
	defer ms.wg.Done()
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		ms.mu.Lock()
		ms.commands = append(ms.commands, line)
		ms.mu.Unlock()

		if response := ms.handler(line); response != "" {
			fmt.Fprint(conn, response)
		}
	}
}

func (ms *mockServer) stop() {
	ms.listener.Close()
	ms.mu.Lock()
	for _, conn := range ms.connections {
		conn.Close()
	}
	ms.connections = nil
	ms.mu.Unlock()
	ms.wg.Wait()
}

// received returns a copy of the command lines seen so far.
func (ms *mockServer) received() []string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]string(nil), ms.commands...)
}

// connect returns a client connected to the mock server with logging
// discarded.
func (ms *mockServer) connect(t *testing.T) *mcprotocol.Client {
	t.Helper()
	client := mcprotocol.NewClient(mcprotocol.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err := client.Connect(ms.listener.Addr().String()); err != nil {
		t.Fatalf("failed to connect to mock server: %v", err)
	}
	t.Cleanup(client.Disconnect)
	return client
}

// defaultMockHandler answers the query commands with fixed values and
// nothing else.
func defaultMockHandler(cmd string) string {
	name, _, _ := strings.Cut(cmd, "(")
	switch name {
	case mcprotocol.CmdGetPlayerPosition:
		return "12.5,64,-3.7\n"
	case mcprotocol.CmdGetBlock:
		return "41,0\n"
	case mcprotocol.CmdGetHeight:
		return "70\n"
	case mcprotocol.CmdGetHeights:
		return "3,4;5,6\n"
	case mcprotocol.CmdGetBlocks:
		return "1,0;2,0;3,0;4,0;5,0;6,0;7,0;8,5\n"
	default:
		return ""
	}
}
