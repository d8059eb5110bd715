package mcprotocol

// Terminator is the byte that ended a response field. It carries the shape
// of the response: a comma separates the parts of one item, a semicolon
// separates list items, and a newline ends the response.
type Terminator int

const (
	// TerminatorComma separates the components of a single item.
	TerminatorComma Terminator = iota
	// TerminatorSemicolon separates items of a list.
	TerminatorSemicolon
	// TerminatorNewline ends the response.
	TerminatorNewline
)

// terminatorFromByte maps a wire byte to its Terminator.
func terminatorFromByte(b byte) (Terminator, bool) {
	switch b {
	case ',':
		return TerminatorComma, true
	case ';':
		return TerminatorSemicolon, true
	case '\n':
		return TerminatorNewline, true
	default:
		return 0, false
	}
}

// String returns the terminator's name.
func (t Terminator) String() string {
	switch t {
	case TerminatorComma:
		return "comma"
	case TerminatorSemicolon:
		return "semicolon"
	case TerminatorNewline:
		return "newline"
	default:
		return "unknown"
	}
}

// Expect returns an ErrKindUnexpectedTerminator error unless t is required.
func (t Terminator) Expect(required Terminator) error {
	if t != required {
		return newUnexpectedTerminatorError(required, t)
	}
	return nil
}
