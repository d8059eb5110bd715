package mcprotocol

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Client is a TCP client for an ELCI server.
//
// The protocol has no message framing other than the terminating newline,
// so exactly one request may be outstanding at a time. Commands that return
// a stream leave the connection busy until the stream has been read to the
// end; commands issued before that fail with ErrResponsePending. A response
// that fails to decode, or a command that could not be written in full,
// leaves the connection out of sync, after which every command fails with
// ErrConnectionBroken until the client reconnects.
//
// Thread Safety:
// The client's state is guarded by a mutex, so methods may be called from
// multiple goroutines, but concurrent requests are rejected rather than
// queued.
type Client struct {
	mu sync.Mutex

	conn             net.Conn
	connectedAddress string
	isConnected      bool

	reader *FieldReader

	// busy is set while a response is being read.
	busy bool
	// broken holds the decode error that desynchronized the connection.
	broken error
	// generation increments on every connect so a stream left over from an
	// earlier connection cannot release the current one.
	generation uint64

	sessionID   string
	logger      *slog.Logger
	metrics     *Metrics
	dialTimeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for protocol diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics sets the Prometheus collectors the client records into.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithDialTimeout overrides ConnectionTimeout.
func WithDialTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.dialTimeout = d
	}
}

// NewClient creates a new client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		sessionID:   uuid.NewString(),
		logger:      slog.Default(),
		dialTimeout: ConnectionTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("session", c.sessionID)
	return c
}

// SessionID returns the identifier attached to this client's log records.
func (c *Client) SessionID() string {
	return c.sessionID
}

// IsConnected returns true if the client is currently connected.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isConnected
}

// ConnectedAddress returns the address of the server.
// Returns empty string if not connected.
func (c *Client) ConnectedAddress() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectedAddress
}

// Connect connects to an ELCI server at addr ("host:port").
func (c *Client) Connect(addr string) error {
	return c.ConnectWithContext(context.Background(), addr)
}

// ConnectWithContext connects to an ELCI server with a context for cancellation.
func (c *Client) ConnectWithContext(ctx context.Context, addr string) error {
	c.mu.Lock()
	if c.isConnected {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	c.mu.Unlock()

	connectCtx, cancel := context.WithTimeout(ctx, c.dialTimeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(connectCtx, "tcp", addr)
	if err != nil {
		return NewConnectionError("failed to connect", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn = conn
	c.connectedAddress = addr
	c.isConnected = true
	c.busy = false
	c.broken = nil
	c.generation++
	c.reader = newFieldReaderFromCursor(newByteCursor(countingReader{r: conn, m: c.metrics}, ReadBufferSize))

	c.logger.Info("connected", "address", addr)
	return nil
}

// Disconnect closes the connection. Any stream still being read fails.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isConnected {
		return
	}
	c.isConnected = false
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.connectedAddress = ""
	c.reader = nil
	c.busy = false
	c.broken = nil
	c.logger.Info("disconnected")
}

// send writes cmd to the server. If expectResponse is set the connection is
// marked busy and the caller must call the returned release function once
// the response has been read.
func (c *Client) send(cmd *Command, expectResponse bool) (*FieldReader, func(error), error) {
	c.mu.Lock()
	if !c.isConnected {
		c.mu.Unlock()
		return nil, nil, ErrNotConnected
	}
	if c.broken != nil {
		err := c.broken
		c.mu.Unlock()
		return nil, nil, fmt.Errorf("%w: %w", ErrConnectionBroken, err)
	}
	if c.busy {
		c.mu.Unlock()
		return nil, nil, ErrResponsePending
	}
	conn := c.conn
	reader := c.reader
	generation := c.generation
	c.busy = expectResponse
	c.mu.Unlock()

	c.logger.Debug("send command", "command", cmd.Name())
	if _, err := io.WriteString(conn, cmd.FormatLine()); err != nil {
		err = NewConnectionError("failed to send command", err)
		c.abandon(generation, err)
		return nil, nil, err
	}
	c.metrics.commandSent(cmd.Name())
	return reader, func(err error) { c.release(generation, err) }, nil
}

// abandon marks the connection as broken after a failed write. The server
// may have received part of the command line.
func (c *Client) abandon(generation uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isConnected || generation != c.generation {
		return
	}
	c.busy = false
	c.broken = err
	c.logger.Warn("command write failed, connection out of sync", "error", err)
}

// release frees the connection after a response. A non-nil err marks the
// connection as broken.
func (c *Client) release(generation uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isConnected || generation != c.generation {
		return
	}
	c.busy = false
	if err != nil {
		c.broken = err
		c.metrics.decodeFailed(err)
		c.logger.Warn("response decode failed, connection out of sync", "error", err)
	}
}

func (c *Client) exec(cmd *Command) error {
	_, _, err := c.send(cmd, false)
	return err
}

func (c *Client) query(cmd *Command, decode func(r *FieldReader) error) error {
	r, release, err := c.send(cmd, true)
	if err != nil {
		return err
	}
	err = decode(r)
	release(err)
	return err
}

// PostToChat sends a message to the in-game chat.
//
// Does not require that a player has joined.
func (c *Client) PostToChat(message string) error {
	return c.exec(MustCommand(CmdPostToChat).Text(message))
}

// DoCommand performs an in-game command, without the leading slash.
//
// A player has to be on the server and should be an operator.
func (c *Client) DoCommand(command string) error {
	return c.exec(MustCommand(CmdDoCommand).Text(command))
}

// GetPlayerPosition returns the block position of the lower half of the
// player model.
func (c *Client) GetPlayerPosition() (Coordinate, error) {
	var pos Coordinate
	err := c.query(MustCommand(CmdGetPlayerPosition), func(r *FieldReader) error {
		var err error
		pos, err = r.FinalCoordinate()
		return err
	})
	return pos, err
}

// GetPlayerTilePosition returns the position of the block the player is
// standing on.
func (c *Client) GetPlayerTilePosition() (Coordinate, error) {
	pos, err := c.GetPlayerPosition()
	if err != nil {
		return Coordinate{}, err
	}
	pos.Y--
	return pos, nil
}

// SetPlayerPosition moves the lower half of the player model to position.
func (c *Client) SetPlayerPosition(position Coordinate) error {
	return c.exec(MustCommand(CmdSetPlayerPosition).Coordinate(position))
}

// SetPlayerTilePosition moves the player to stand on the block at tile.
func (c *Client) SetPlayerTilePosition(tile Coordinate) error {
	tile.Y++
	return c.SetPlayerPosition(tile)
}

// GetBlock returns the block at location.
func (c *Client) GetBlock(location Coordinate) (Block, error) {
	var block Block
	err := c.query(MustCommand(CmdGetBlock).Coordinate(location), func(r *FieldReader) error {
		var err error
		block, err = r.FinalBlock()
		return err
	})
	return block, err
}

// SetBlock sets the block at location.
func (c *Client) SetBlock(location Coordinate, block Block) error {
	return c.exec(MustCommand(CmdSetBlock).Coordinate(location).Block(block))
}

// SetBlocks fills the cuboid with corners a and b, in any order, with block.
func (c *Client) SetBlocks(a, b Coordinate, block Block) error {
	return c.exec(MustCommand(CmdSetBlocks).Coordinate(a).Coordinate(b).Block(block))
}

// GetHeight returns the y value of the highest solid block in the column at
// location.
//
// Use GetHeights for more than a handful of columns; each call is a full
// round trip.
func (c *Client) GetHeight(location Coordinate2D) (int32, error) {
	var height int32
	err := c.query(MustCommand(CmdGetHeight).Coordinate2D(location), func(r *FieldReader) error {
		var err error
		height, err = r.FinalI32()
		return err
	})
	return height, err
}

// GetBlocks returns the blocks of the cuboid with corners a and b.
func (c *Client) GetBlocks(a, b Coordinate) (*Chunk, error) {
	stream, err := c.GetBlocksStream(a, b)
	if err != nil {
		return nil, err
	}
	return stream.Collect()
}

// GetBlocksStream requests the blocks of the cuboid with corners a and b and
// returns a stream that decodes them as they arrive. The stream must be read
// to the end before the client can send another command.
func (c *Client) GetBlocksStream(a, b Coordinate) (*ChunkStream, error) {
	size, err := a.SizeBetween(b)
	if err != nil {
		return nil, err
	}
	r, release, err := c.send(MustCommand(CmdGetBlocks).Coordinate(a).Coordinate(b), true)
	if err != nil {
		return nil, err
	}
	stream := newChunkStream(a.Min(b), size, r)
	stream.onEnd = release
	c.metrics.gridRequested(stream.volume)
	return stream, nil
}

// GetHeights returns the heights of the area with corners a and b.
func (c *Client) GetHeights(a, b Coordinate2D) (*Heights, error) {
	stream, err := c.GetHeightsStream(a, b)
	if err != nil {
		return nil, err
	}
	return stream.Collect()
}

// GetHeightsStream requests the heights of the area with corners a and b
// and returns a stream that decodes them as they arrive. The stream must be
// read to the end before the client can send another command.
func (c *Client) GetHeightsStream(a, b Coordinate2D) (*HeightsStream, error) {
	size, err := a.SizeBetween(b)
	if err != nil {
		return nil, err
	}
	r, release, err := c.send(MustCommand(CmdGetHeights).Coordinate2D(a).Coordinate2D(b), true)
	if err != nil {
		return nil, err
	}
	stream := newHeightsStream(a.Min(b), size, r)
	stream.onEnd = release
	c.metrics.gridRequested(stream.volume)
	return stream, nil
}
