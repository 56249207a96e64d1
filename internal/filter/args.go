package filter

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

type ArgState int

const (
	ArgAbsent ArgState = iota
	ArgSet
	ArgInvalid
)

func (s ArgState) String() string {
	switch s {
	case ArgAbsent:
		return "absent"
	case ArgSet:
		return "set"
	case ArgInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// MinLengthArg is a parsed --min-length value. An invalid value is kept
// distinct from an absent one so callers can reject it.
type MinLengthArg struct {
	State ArgState
	Value int
	Raw   string
}

// ParseMinLength parses raw. present is false when the flag was not given.
func ParseMinLength(raw string, present bool) MinLengthArg {
	if !present {
		return MinLengthArg{State: ArgAbsent}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return MinLengthArg{State: ArgInvalid, Raw: raw}
	}
	return MinLengthArg{State: ArgSet, Value: n, Raw: raw}
}

// Options converts the argument into Config options.
func (a MinLengthArg) Options() ([]Option, error) {
	switch a.State {
	case ArgSet:
		return []Option{WithMinLength(a.Value)}, nil
	case ArgInvalid:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMinLength, a.Raw)
	default:
		return nil, nil
	}
}

// StartsWithOptions uses the first character of raw as the start prefix.
// An empty raw leaves the prefix unconstrained.
func StartsWithOptions(raw string) []Option {
	r, size := utf8.DecodeRuneInString(raw)
	if size == 0 {
		return nil
	}
	return []Option{WithStartPrefix(r)}
}
