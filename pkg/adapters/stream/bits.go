package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// BitPort exchanges one '0'/'1' character per unit.
type BitPort struct {
	Reader *bufio.Reader
	Writer *bufio.Writer
}

// NewBitPort creates a bit-framed port. Nil arguments default to Stdin/Stdout.
func NewBitPort(r io.Reader, w io.Writer) *BitPort {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &BitPort{
		Reader: bufio.NewReader(r),
		Writer: bufio.NewWriter(w),
	}
}

// ReadUnit returns the next '0' or '1' from the input, skipping anything else.
func (p *BitPort) ReadUnit() (domain.Unit, error) {
	for {
		c, err := p.Reader.ReadByte()
		if errors.Is(err, io.EOF) {
			return 0, domain.ErrEndOfInput
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read bit: %w", err)
		}
		switch c {
		case '0':
			return domain.Zero, nil
		case '1':
			return domain.One, nil
		}
	}
}

// WriteUnit writes '0' or '1' and flushes.
func (p *BitPort) WriteUnit(u domain.Unit) error {
	c := byte('0')
	if u != domain.Zero {
		c = '1'
	}
	if err := p.Writer.WriteByte(c); err != nil {
		return err
	}
	return p.Writer.Flush()
}

// Flush flushes buffered output.
func (p *BitPort) Flush() error {
	return p.Writer.Flush()
}
