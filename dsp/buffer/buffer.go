package buffer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-formant/dsp/core"
)

// ErrOverrun is reported when samples were written past the buffer capacity
// under [PolicyFail].
var ErrOverrun = errors.New("buffer: write past capacity")

// Policy selects how a Buffer handles writes past its length.
type Policy int

const (
	// PolicyFail drops samples past the end and reports ErrOverrun from Err.
	PolicyFail Policy = iota
	// PolicyGrow appends samples past the end, growing the buffer.
	PolicyGrow
	// PolicyTruncate drops samples past the end without reporting an error.
	PolicyTruncate
)

// String returns the policy name used in configuration files.
func (p Policy) String() string {
	switch p {
	case PolicyFail:
		return "fail"
	case PolicyGrow:
		return "grow"
	case PolicyTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "fail", "":
		return PolicyFail, nil
	case "grow":
		return PolicyGrow, nil
	case "truncate":
		return PolicyTruncate, nil
	default:
		return PolicyFail, fmt.Errorf("buffer: unknown overrun policy %q", name)
	}
}

// Buffer is a fixed-length sample slice filled through a write cursor that
// only moves forward.
type Buffer struct {
	samples []float64
	cursor  int
	policy  Policy
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// SetPolicy changes the overrun policy.
func (b *Buffer) SetPolicy(p Policy) {
	b.policy = p
}

// Policy returns the overrun policy.
func (b *Buffer) Policy() Policy {
	return b.policy
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Written returns the prefix of the buffer that has been written through the cursor.
func (b *Buffer) Written() []float64 {
	if b.cursor < len(b.samples) {
		return b.samples[:b.cursor]
	}
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cursor returns the write position. It keeps advancing past Len when
// samples are dropped.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Dropped returns how many written samples did not fit.
func (b *Buffer) Dropped() int {
	if b.cursor > len(b.samples) {
		return b.cursor - len(b.samples)
	}
	return 0
}

// Write stores x at the cursor and advances it.
func (b *Buffer) Write(x float64) {
	switch {
	case b.cursor < len(b.samples):
		b.samples[b.cursor] = x
	case b.policy == PolicyGrow:
		b.samples = append(b.samples, x)
	}
	b.cursor++
}

// WriteSilence writes n zero samples.
func (b *Buffer) WriteSilence(n int) {
	for range n {
		b.Write(0)
	}
}

// Err reports ErrOverrun if samples were dropped under PolicyFail.
func (b *Buffer) Err() error {
	if b.policy != PolicyFail {
		return nil
	}
	if dropped := b.Dropped(); dropped > 0 {
		return fmt.Errorf("%w: %d samples beyond length %d", ErrOverrun, dropped, len(b.samples))
	}
	return nil
}

// reset prepares b for a new utterance of the given length: zeroed
// samples, cursor at 0 and PolicyFail. The backing array is reused when it
// is large enough.
func (b *Buffer) reset(length int) {
	if length > cap(b.samples) {
		b.samples = make([]float64, length)
	} else {
		b.samples = b.samples[:length]
		core.Zero(b.samples)
	}
	b.cursor = 0
	b.policy = PolicyFail
}

// Copy returns a deep copy of the written samples.
func (b *Buffer) Copy() []float64 {
	return slices.Clone(b.Written())
}
