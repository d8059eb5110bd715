package mcprotocol

import "math"

// maxMagnitude bounds the accumulator. Any field whose integer part exceeds
// the uint32 range fails narrowing regardless of the target width.
const maxMagnitude = math.MaxUint32 + 1

// decodeField decodes one ASCII numeric field and the terminator that
// closed it.
//
// Grammar: [+|-] digit+ [ '.' digit* ] ( ',' | ';' | '\n' )
//
// The fractional part is not accumulated. A negative value with a non-zero
// fraction is rounded toward negative infinity, so "-1.3" yields -2 while
// "1.9" yields 1.
func decodeField(c *byteCursor) (int64, Terminator, error) {
	length := 0
	next := func() (byte, error) {
		b, err := c.peek()
		if err != nil {
			return 0, err
		}
		if b >= 0x80 || (b < 0x20 && b != '\n') || b == 0x7f {
			return 0, newNonASCIIError(b)
		}
		return b, nil
	}
	consume := func() error {
		c.advance()
		length++
		if length > MaxFieldLength {
			return newFieldTooLongError()
		}
		return nil
	}

	b, err := next()
	if err != nil {
		return 0, 0, err
	}

	negative := false
	if b == '-' || b == '+' {
		negative = b == '-'
		if err := consume(); err != nil {
			return 0, 0, err
		}
		if b, err = next(); err != nil {
			return 0, 0, err
		}
	}

	var magnitude int64
	digits := 0
	for isDigit(b) {
		magnitude = magnitude*10 + int64(b-'0')
		if magnitude > maxMagnitude {
			return 0, 0, newIntegerOverflowError()
		}
		digits++
		if err := consume(); err != nil {
			return 0, 0, err
		}
		if b, err = next(); err != nil {
			return 0, 0, err
		}
	}
	if digits == 0 {
		return 0, 0, newEmptyDigitsError()
	}

	fractional := false
	if b == '.' {
		if err := consume(); err != nil {
			return 0, 0, err
		}
		if b, err = next(); err != nil {
			return 0, 0, err
		}
		for isDigit(b) {
			if b != '0' {
				fractional = true
			}
			if err := consume(); err != nil {
				return 0, 0, err
			}
			if b, err = next(); err != nil {
				return 0, 0, err
			}
		}
	}

	terminator, ok := terminatorFromByte(b)
	if !ok {
		return 0, 0, newInvalidTerminatorError(b)
	}
	c.advance()

	value := magnitude
	if negative {
		value = -magnitude
		if fractional {
			value--
		}
	}
	return value, terminator, nil
}

// decodeI32 decodes one field into a signed 32-bit integer.
func decodeI32(c *byteCursor) (int32, Terminator, error) {
	v, t, err := decodeField(c)
	if err != nil {
		return 0, 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, 0, newIntegerOverflowError()
	}
	return int32(v), t, nil
}

// decodeU32 decodes one field into an unsigned 32-bit integer.
func decodeU32(c *byteCursor) (uint32, Terminator, error) {
	v, t, err := decodeField(c)
	if err != nil {
		return 0, 0, err
	}
	if v < 0 || v > math.MaxUint32 {
		return 0, 0, newIntegerOverflowError()
	}
	return uint32(v), t, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
