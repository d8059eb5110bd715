package mcprotocol

import (
	"errors"
	"fmt"
)

// Sentinel errors for the client.
var (
	// ErrDecode matches any *DecodeError with errors.Is.
	ErrDecode = &DecodeError{}

	// ErrStreamConsumed indicates Collect was called on a stream that had
	// already been advanced.
	ErrStreamConsumed = errors.New("cannot collect partially-consumed stream")

	// ErrNotConnected indicates an operation was attempted without a connection.
	ErrNotConnected = errors.New("not connected")

	// ErrAlreadyConnected indicates connect was called while already connected.
	ErrAlreadyConnected = errors.New("already connected")

	// ErrResponsePending indicates a command was issued while a previously
	// returned stream had not been drained.
	ErrResponsePending = errors.New("previous response has not been drained")

	// ErrConnectionBroken indicates an earlier decode failure left the
	// connection out of sync with the server.
	ErrConnectionBroken = errors.New("connection is out of sync")

	// ErrInvalidCommandName indicates a command name outside [A-Za-z.].
	ErrInvalidCommandName = errors.New("invalid command name")

	// ErrRegionTooLarge indicates a grid request covering more than
	// MaxGridVolume elements.
	ErrRegionTooLarge = errors.New("region exceeds maximum grid volume")
)

// DecodeErrorKind categorizes response decoding errors.
type DecodeErrorKind int

const (
	// ErrKindUnexpectedEOF indicates the peer closed the stream mid-response.
	ErrKindUnexpectedEOF DecodeErrorKind = iota
	// ErrKindTransport indicates the underlying reader failed.
	ErrKindTransport
	// ErrKindNonASCII indicates a byte outside printable ASCII.
	ErrKindNonASCII
	// ErrKindFieldTooLong indicates a field exceeded MaxFieldLength.
	ErrKindFieldTooLong
	// ErrKindEmptyDigits indicates a field with no integer digits.
	ErrKindEmptyDigits
	// ErrKindInvalidTerminator indicates a field ended in a byte that is not
	// a comma, semicolon or newline.
	ErrKindInvalidTerminator
	// ErrKindIntegerOverflow indicates a value outside the target integer range.
	ErrKindIntegerOverflow
	// ErrKindUnexpectedTerminator indicates the response had a different
	// shape than the caller expected.
	ErrKindUnexpectedTerminator
)

// String returns a short name for the kind, used as a metrics label.
func (k DecodeErrorKind) String() string {
	switch k {
	case ErrKindUnexpectedEOF:
		return "unexpected_eof"
	case ErrKindTransport:
		return "transport"
	case ErrKindNonASCII:
		return "non_ascii"
	case ErrKindFieldTooLong:
		return "field_too_long"
	case ErrKindEmptyDigits:
		return "empty_digits"
	case ErrKindInvalidTerminator:
		return "invalid_terminator"
	case ErrKindIntegerOverflow:
		return "integer_overflow"
	case ErrKindUnexpectedTerminator:
		return "unexpected_terminator"
	default:
		return "unknown"
	}
}

// DecodeError represents a failure while decoding a server response.
type DecodeError struct {
	Kind     DecodeErrorKind
	Byte     byte       // For ErrKindNonASCII and ErrKindInvalidTerminator
	Max      int        // For ErrKindFieldTooLong
	Expected Terminator // For ErrKindUnexpectedTerminator
	Actual   Terminator // For ErrKindUnexpectedTerminator
	Err      error      // For ErrKindTransport
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch e.Kind {
	case ErrKindUnexpectedEOF:
		return "unexpected end of stream"
	case ErrKindTransport:
		return fmt.Sprintf("read failed: %v", e.Err)
	case ErrKindNonASCII:
		return fmt.Sprintf("non-ascii byte 0x%02x in response", e.Byte)
	case ErrKindFieldTooLong:
		return fmt.Sprintf("response field longer than %d bytes", e.Max)
	case ErrKindEmptyDigits:
		return "response field has no digits"
	case ErrKindInvalidTerminator:
		return fmt.Sprintf("invalid field terminator %q", e.Byte)
	case ErrKindIntegerOverflow:
		return "integer value out of range"
	case ErrKindUnexpectedTerminator:
		return fmt.Sprintf("unexpected response terminator: expected %s, found %s", e.Expected, e.Actual)
	default:
		return "decode error"
	}
}

// Unwrap returns the underlying read error, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is supports errors.Is by matching ErrDecode against any *DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// IsSyntaxError reports whether err is a malformed-number error.
func IsSyntaxError(err error) bool {
	var de *DecodeError
	if !errors.As(err, &de) {
		return false
	}
	switch de.Kind {
	case ErrKindNonASCII, ErrKindFieldTooLong, ErrKindEmptyDigits,
		ErrKindInvalidTerminator, ErrKindIntegerOverflow:
		return true
	}
	return false
}

// IsShapeError reports whether err means the response had the wrong number
// or arrangement of fields.
func IsShapeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.Kind == ErrKindUnexpectedTerminator
}

// IsTransportError reports whether err came from the connection rather than
// the response contents.
func IsTransportError(err error) bool {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind == ErrKindUnexpectedEOF || de.Kind == ErrKindTransport
	}
	var ce *ConnectionError
	return errors.As(err, &ce)
}

func newUnexpectedEOFError() error {
	return &DecodeError{Kind: ErrKindUnexpectedEOF}
}

func newTransportError(cause error) error {
	return &DecodeError{Kind: ErrKindTransport, Err: cause}
}

func newNonASCIIError(b byte) error {
	return &DecodeError{Kind: ErrKindNonASCII, Byte: b}
}

func newFieldTooLongError() error {
	return &DecodeError{Kind: ErrKindFieldTooLong, Max: MaxFieldLength}
}

func newEmptyDigitsError() error {
	return &DecodeError{Kind: ErrKindEmptyDigits}
}

func newInvalidTerminatorError(b byte) error {
	return &DecodeError{Kind: ErrKindInvalidTerminator, Byte: b}
}

func newIntegerOverflowError() error {
	return &DecodeError{Kind: ErrKindIntegerOverflow}
}

func newUnexpectedTerminatorError(expected, actual Terminator) error {
	return &DecodeError{Kind: ErrKindUnexpectedTerminator, Expected: expected, Actual: actual}
}

// ConnectionError represents a connection-related error.
type ConnectionError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("connection failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("connection failed: %s", e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// NewConnectionError creates a new connection error.
func NewConnectionError(message string, cause error) error {
	return &ConnectionError{Message: message, Cause: cause}
}
