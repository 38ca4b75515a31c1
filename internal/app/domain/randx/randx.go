package randx

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"strings"
)

// Source implements math/rand.Source64 on top of the operating system
// entropy pool, read in batches. Draws panic when the pool is unavailable;
// there is no degraded mode for randomness.
type Source struct {
	buf [512]byte
	off int
}

func NewSource() *Source {
	s := &Source{}
	s.off = len(s.buf)
	return s
}

func (s *Source) Uint64() uint64 {
	if s.off+8 > len(s.buf) {
		if _, err := crand.Read(s.buf[:]); err != nil {
			panic(fmt.Sprintf("entropy source unavailable: %v", err))
		}
		s.off = 0
	}

	v := binary.LittleEndian.Uint64(s.buf[s.off : s.off+8])
	s.off += 8
	return v
}

func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed is a no-op, the source is not replayable.
func (s *Source) Seed(int64) {}

// Rand wraps math/rand with the draws the synthesizer composes everything
// from: bounded uniform integers, biased coin flips and pattern strings.
type Rand struct {
	*mrand.Rand
}

func New() *Rand {
	return NewWithSource(NewSource())
}

func NewWithSource(src mrand.Source64) *Rand {
	return &Rand{Rand: mrand.New(src)}
}

// Chance reports a single coin flip that is true with probability p.
// Float64 draws lie in [0,1), so p<=0 never fires and p>=1 always does.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

type Class int

const (
	Upper Class = iota
	Lower
	Letter
	Digit
	Any // any printable ASCII character
)

type Span struct {
	Class Class
	Count int
}

// Shape describes a pattern string as an ordered run of character classes.
type Shape []Span

const (
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars = "0123456789"
)

// Pattern expands a shape into a random string, one uniform draw per
// character.
func (r *Rand) Pattern(shape Shape) string {
	var b strings.Builder
	for _, span := range shape {
		for range span.Count {
			b.WriteByte(r.classByte(span.Class))
		}
	}

	return b.String()
}

// Alpha returns n random letters of mixed case.
func (r *Rand) Alpha(n int) string {
	return r.Pattern(Shape{{Letter, n}})
}

func (r *Rand) classByte(c Class) byte {
	switch c {
	case Upper:
		return upperChars[r.Intn(len(upperChars))]
	case Lower:
		return lowerChars[r.Intn(len(lowerChars))]
	case Letter:
		if r.Intn(2) == 0 {
			return upperChars[r.Intn(len(upperChars))]
		}
		return lowerChars[r.Intn(len(lowerChars))]
	case Digit:
		return digitChars[r.Intn(len(digitChars))]
	default:
		return byte(33 + r.Intn(94))
	}
}
