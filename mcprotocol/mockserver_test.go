package mcprotocol

import (
	"bufio"
	"io"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"
)

// mockServer is a minimal ELCI server for client tests.
//
// It listens on a loopback TCP port and passes every received command line
// (without the trailing newline) to handler. Whatever handler returns is
// written back verbatim; commands without a response return "".
type mockServer struct {
	listener net.Listener
	handler  func(cmd string) string

	// received collects every command line in arrival order.
	received chan string

	mu          sync.Mutex
	connections []net.Conn
	wg          sync.WaitGroup
}

// startMockServer starts a mock server on 127.0.0.1 with an ephemeral port.
// It is stopped when the test finishes.
func startMockServer(t *testing.T, handler func(cmd string) string) *mockServer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	if handler == nil {
		handler = func(string) string { return "" }
	}

	ms := &mockServer{
		listener: listener,
		handler:  handler,
		received: make(chan string, 64),
	}

	ms.wg.Add(1)
	go ms.acceptLoop()

	t.Cleanup(ms.stop)
	return ms
}

func (ms *mockServer) addr() string {
	return ms.listener.Addr().String()
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
		select {
		case ms.received <- line:
		default:
		}
		if response := ms.handler(line); response != "" {
			io.WriteString(conn, response)
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

// nextCommand waits for the next command line the server received.
func (ms *mockServer) nextCommand(t *testing.T) string {
	t.Helper()
	select {
	case cmd := <-ms.received:
		return cmd
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for command")
		return ""
	}
}

// responses returns a handler that answers each command name with a fixed
// response line.
func responses(m map[string]string) func(string) string {
	return func(line string) string {
		for name, response := range m {
			if len(line) > len(name) && line[:len(name)] == name && line[len(name)] == '(' {
				return response
			}
		}
		return ""
	}
}

// newTestClient returns a client connected to ms that logs nowhere.
func newTestClient(t *testing.T, ms *mockServer, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	c := NewClient(opts...)
	if err := c.Connect(ms.addr()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	t.Cleanup(c.Disconnect)
	return c
}
