package mcprotocol

import "io"

// FieldReader decodes typed values from a response. Each accessor reads a
// fixed sequence of fields and checks the terminator the protocol requires
// at every position.
//
// The "Next" accessors read an item in the middle of a list; the "Final"
// accessors read the last item of a response, which is terminated by a
// newline instead of the list separator.
type FieldReader struct {
	cursor *byteCursor
}

// NewFieldReader creates a FieldReader over r with its own read buffer.
func NewFieldReader(r io.Reader) *FieldReader {
	return &FieldReader{cursor: newByteCursor(r, ReadBufferSize)}
}

func newFieldReaderFromCursor(c *byteCursor) *FieldReader {
	return &FieldReader{cursor: c}
}

// NextI32 reads a signed integer followed by a comma.
func (r *FieldReader) NextI32() (int32, error) {
	return r.i32(TerminatorComma)
}

// FinalI32 reads a signed integer that ends the response.
func (r *FieldReader) FinalI32() (int32, error) {
	return r.i32(TerminatorNewline)
}

// RowI32 reads a signed integer that closes a row of a height list. Servers
// separate rows with either a semicolon or a comma; both are accepted.
func (r *FieldReader) RowI32() (int32, error) {
	v, t, err := decodeI32(r.cursor)
	if err != nil {
		return 0, err
	}
	if t == TerminatorComma {
		return v, nil
	}
	if err := t.Expect(TerminatorSemicolon); err != nil {
		return 0, err
	}
	return v, nil
}

// NextBlock reads an id,modifier pair followed by a semicolon.
func (r *FieldReader) NextBlock() (Block, error) {
	return r.block(TerminatorSemicolon)
}

// FinalBlock reads an id,modifier pair that ends the response.
func (r *FieldReader) FinalBlock() (Block, error) {
	return r.block(TerminatorNewline)
}

// FinalCoordinate reads an x,y,z triple that ends the response.
func (r *FieldReader) FinalCoordinate() (Coordinate, error) {
	x, err := r.i32(TerminatorComma)
	if err != nil {
		return Coordinate{}, err
	}
	y, err := r.i32(TerminatorComma)
	if err != nil {
		return Coordinate{}, err
	}
	z, err := r.i32(TerminatorNewline)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{X: x, Y: y, Z: z}, nil
}

func (r *FieldReader) i32(required Terminator) (int32, error) {
	v, t, err := decodeI32(r.cursor)
	if err != nil {
		return 0, err
	}
	if err := t.Expect(required); err != nil {
		return 0, err
	}
	return v, nil
}

func (r *FieldReader) u32(required Terminator) (uint32, error) {
	v, t, err := decodeU32(r.cursor)
	if err != nil {
		return 0, err
	}
	if err := t.Expect(required); err != nil {
		return 0, err
	}
	return v, nil
}

func (r *FieldReader) block(last Terminator) (Block, error) {
	id, err := r.u32(TerminatorComma)
	if err != nil {
		return Block{}, err
	}
	modifier, err := r.u32(last)
	if err != nil {
		return Block{}, err
	}
	return Block{ID: id, Modifier: modifier}, nil
}
