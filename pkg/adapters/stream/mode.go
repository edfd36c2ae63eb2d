package stream

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/nhohnhehr/pkg/ports"
)

// ErrInvalidMode is returned for an unknown framing name.
var ErrInvalidMode = errors.New("invalid i/o mode")

// Mode selects the I/O framing.
type Mode string

const (
	ModeBits  Mode = "bits"
	ModeBytes Mode = "bytes"
)

// DefaultMode is used when no mode is given.
const DefaultMode = ModeBytes

// ParseMode parses "bits" or "bytes" (case-insensitive). An empty string
// selects DefaultMode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultMode, nil
	case ModeBits:
		return ModeBits, nil
	case ModeBytes:
		return ModeBytes, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidMode, s, ModeBits, ModeBytes)
}

// Port is an IOPort that buffers output.
type Port interface {
	ports.IOPort
	ports.Flusher
}

// NewPort creates the port for mode over r and w.
func NewPort(mode Mode, r io.Reader, w io.Writer) (Port, error) {
	switch mode {
	case ModeBits:
		return NewBitPort(r, w), nil
	case ModeBytes:
		return NewBytePort(r, w), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
}
