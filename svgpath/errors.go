package svgpath

import "fmt"

// ErrorKind classifies the failures of the path data interpreter.
type ErrorKind uint8

const (
	// MalformedNumber : a command is missing some of its numeric arguments
	MalformedNumber ErrorKind = iota + 1
	// UnknownCommand : the letter is not an SVG path command
	UnknownCommand
	// UnsupportedCommand : elliptical arcs are recognized but not handled
	UnsupportedCommand
	// MissingCommand : arguments with no command to apply them to
	MissingCommand
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedNumber:
		return "MalformedNumber"
	case UnknownCommand:
		return "UnknownCommand"
	case UnsupportedCommand:
		return "UnsupportedCommand"
	case MissingCommand:
		return "MissingCommand"
	default:
		return "<unknown ErrorKind>"
	}
}

// ParseError is returned when the path data is not valid.
// The whole path data is rejected.
type ParseError struct {
	Kind    ErrorKind
	Pos     int  // byte offset in the path data
	Command byte // offending command letter, 0 for MissingCommand
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MalformedNumber:
		return fmt.Sprintf("invalid '%c' command at position %d", e.Command, e.Pos)
	case UnknownCommand:
		return fmt.Sprintf("unknown command '%c' at position %d", e.Command, e.Pos)
	case UnsupportedCommand:
		return fmt.Sprintf("arc commands are not supported (position %d)", e.Pos)
	default:
		return fmt.Sprintf("invalid path data at position %d", e.Pos)
	}
}
