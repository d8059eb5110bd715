package mcprotocol

import (
	"errors"
	"io"
)

// byteCursor is a re-fillable fixed-capacity buffer over a byte source.
// It is the only part of the decoder that performs I/O.
type byteCursor struct {
	r   io.Reader
	buf []byte
	pos int // next unconsumed byte
	end int // number of valid bytes in buf
}

func newByteCursor(r io.Reader, size int) *byteCursor {
	if size <= 0 {
		size = ReadBufferSize
	}
	return &byteCursor{r: r, buf: make([]byte, size)}
}

// peek returns the next unconsumed byte without consuming it, refilling the
// buffer from the source when it is empty.
func (c *byteCursor) peek() (byte, error) {
	if c.pos >= c.end {
		if err := c.fill(); err != nil {
			return 0, err
		}
	}
	return c.buf[c.pos], nil
}

// advance consumes the byte returned by the last peek.
func (c *byteCursor) advance() {
	if c.pos < c.end {
		c.pos++
	}
}

// buffered returns the number of bytes read from the source but not yet
// consumed.
func (c *byteCursor) buffered() int {
	return c.end - c.pos
}

func (c *byteCursor) fill() error {
	n, err := c.r.Read(c.buf)
	if n > 0 {
		// A read may return data together with an error; the error resurfaces on the next fill.
		c.pos, c.end = 0, n
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return newUnexpectedEOFError()
	}
	return newTransportError(err)
}
