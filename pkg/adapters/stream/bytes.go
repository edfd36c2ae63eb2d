package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// BytePort packs eight units into one byte, most significant bit first.
type BytePort struct {
	Reader *bufio.Reader
	Writer *bufio.Writer

	in     byte
	inLeft int
	out    byte
	outLen int
}

// NewBytePort creates a byte-framed port. Nil arguments default to Stdin/Stdout.
func NewBytePort(r io.Reader, w io.Writer) *BytePort {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &BytePort{
		Reader: bufio.NewReader(r),
		Writer: bufio.NewWriter(w),
	}
}

// ReadUnit yields the next bit of the current input byte, reading a new byte
// only once all eight bits of the previous one were consumed.
func (p *BytePort) ReadUnit() (domain.Unit, error) {
	if p.inLeft == 0 {
		b, err := p.Reader.ReadByte()
		if errors.Is(err, io.EOF) {
			return 0, domain.ErrEndOfInput
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read byte: %w", err)
		}
		p.in = b
		p.inLeft = 8
	}
	p.inLeft--
	return domain.Unit((p.in >> p.inLeft) & 1), nil
}

// WriteUnit appends a bit to the pending output byte and emits it once eight
// bits were collected.
func (p *BytePort) WriteUnit(u domain.Unit) error {
	p.out <<= 1
	if u != domain.Zero {
		p.out |= 1
	}
	p.outLen++
	if p.outLen < 8 {
		return nil
	}

	b := p.out
	p.out, p.outLen = 0, 0
	if err := p.Writer.WriteByte(b); err != nil {
		return err
	}
	return p.Writer.Flush()
}

// Pending returns the number of output bits not yet emitted. They are
// discarded if the program halts before completing the byte.
func (p *BytePort) Pending() int {
	return p.outLen
}

// Flush flushes buffered output. Incomplete bytes are not written.
func (p *BytePort) Flush() error {
	return p.Writer.Flush()
}
