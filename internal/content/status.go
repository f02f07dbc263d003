package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is returned when decoding a status other than pass or fail.
var ErrUnknownStatus = errors.New("unknown test status")

// Status is the outcome of a check. Only StatusFail and StatusPass exist;
// the zero value is StatusFail.
type Status uint8

const (
	StatusFail Status = iota
	StatusPass
)

// Valid reports whether s is one of the two defined variants.
func (s Status) Valid() bool {
	return s == StatusFail || s == StatusPass
}

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// ParseStatus maps "pass" and "fail" (any case, surrounding space ignored).
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pass":
		return StatusPass, nil
	case "fail":
		return StatusFail, nil
	default:
		return StatusFail, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
