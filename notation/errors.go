package notation

import (
	"errors"
	"fmt"
)

// Kind classifies why an input could not be parsed.
type Kind int

const (
	UnrecognizedNotation Kind = iota
	InvalidHexFormat
	InvalidRgbFormat
	InvalidHslFormat
)

// Sentinels for errors.Is; every *ParseError unwraps to the one matching its Kind.
var (
	ErrUnrecognized = errors.New("unrecognized color notation")
	ErrInvalidHex   = errors.New("invalid hex format")
	ErrInvalidRgb   = errors.New("invalid rgb format")
	ErrInvalidHsl   = errors.New("invalid hsl format")
)

func (k Kind) String() string {
	switch k {
	case UnrecognizedNotation:
		return "UnrecognizedNotation"
	case InvalidHexFormat:
		return "InvalidHexFormat"
	case InvalidRgbFormat:
		return "InvalidRgbFormat"
	case InvalidHslFormat:
		return "InvalidHslFormat"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Usage tells the user which syntax is expected.
func (k Kind) Usage() string {
	switch k {
	case InvalidHexFormat:
		return "use #RGB or #RRGGBB"
	case InvalidRgbFormat:
		return "use rgb(R, G, B)"
	case InvalidHslFormat:
		return "use hsl(H, S%, L%)"
	default:
		return "use hex, rgb or hsl"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case InvalidHexFormat:
		return ErrInvalidHex
	case InvalidRgbFormat:
		return ErrInvalidRgb
	case InvalidHslFormat:
		return ErrInvalidHsl
	default:
		return ErrUnrecognized
	}
}

// ParseError describes why an input string is not a color.
type ParseError struct {
	Kind   Kind
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s %q", e.Kind.sentinel(), e.Input)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg + " (" + e.Kind.Usage() + ")"
}

func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

func newError(kind Kind, input, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:   kind,
		Input:  input,
		Reason: fmt.Sprintf(format, args...),
	}
}
