package mcprotocol

import (
	"strconv"
	"strings"
)

// Command is a request to the server, serialized as "name(arg,arg,...)\n".
// Use NewCommand and the argument methods to build one:
//
//	cmd := MustCommand(CmdSetBlock).Coordinate(pos).Block(BlockStone)
type Command struct {
	name string
	args []string
}

// NewCommand creates a command with the given name. Names consist of ASCII
// letters and dots, and may not start or end with a dot.
func NewCommand(name string) (*Command, error) {
	if !isValidCommandName(name) {
		return nil, ErrInvalidCommandName
	}
	return &Command{name: name}, nil
}

// MustCommand is like NewCommand but panics on an invalid name. It is meant
// for command names that are compile-time constants.
func MustCommand(name string) *Command {
	cmd, err := NewCommand(name)
	if err != nil {
		panic("mcprotocol: invalid command name " + strconv.Quote(name))
	}
	return cmd
}

// Name returns the command name.
func (c *Command) Name() string {
	return c.name
}

// Text appends a free-text argument. Newlines become spaces and any byte
// outside tab and printable ASCII is dropped, so the text cannot end the
// request early or inject another command.
func (c *Command) Text(s string) *Command {
	c.args = append(c.args, sanitize(s))
	return c
}

// Int appends an integer argument.
func (c *Command) Int(v int32) *Command {
	c.args = append(c.args, strconv.FormatInt(int64(v), 10))
	return c
}

// Coordinate appends a coordinate as three arguments x,y,z.
func (c *Command) Coordinate(p Coordinate) *Command {
	return c.Int(p.X).Int(p.Y).Int(p.Z)
}

// Coordinate2D appends a 2D coordinate as two arguments x,z.
func (c *Command) Coordinate2D(p Coordinate2D) *Command {
	return c.Int(p.X).Int(p.Z)
}

// Block appends a block as two arguments id,modifier.
func (c *Command) Block(b Block) *Command {
	c.args = append(c.args,
		strconv.FormatUint(uint64(b.ID), 10),
		strconv.FormatUint(uint64(b.Modifier), 10))
	return c
}

// FormatLine returns the command as it is sent on the wire, including the
// trailing newline.
func (c *Command) FormatLine() string {
	var sb strings.Builder
	sb.WriteString(c.name)
	sb.WriteByte('(')
	for i, arg := range c.args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(arg)
	}
	sb.WriteString(")\n")
	return sb.String()
}

func sanitize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == '\n':
			sb.WriteByte(' ')
		case b == '\t' || (b >= 0x20 && b <= 0x7e):
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

func isValidCommandName(name string) bool {
	if name == "" || name[0] == '.' || name[len(name)-1] == '.' {
		return false
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		if !(b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '.') {
			return false
		}
	}
	return true
}
