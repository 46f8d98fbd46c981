package channel

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/harlequix/hamfec/internal/encoding"
)

// RandomSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

var ErrInvalidPosition = fmt.Errorf("%w: position out of range", encoding.ErrInvalidInput)

// NewSource returns a seeded source. A zero seed takes the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Corrupt flips one uniformly chosen bit and reports its 1-indexed
// position. The input is left untouched.
func Corrupt(cw encoding.Codeword, src RandomSource) (encoding.Codeword, int, error) {
	if err := cw.Validate(); err != nil {
		return cw, encoding.NoError, err
	}
	pos := src.Intn(encoding.CodewordLen) + 1
	return cw.Flip(pos), pos, nil
}

// CorruptAt flips the bit at pos.
func CorruptAt(cw encoding.Codeword, pos int) (encoding.Codeword, error) {
	if pos < 1 || pos > encoding.CodewordLen {
		return cw, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	if err := cw.Validate(); err != nil {
		return cw, err
	}
	return cw.Flip(pos), nil
}

// Distance counts the positions where a and b differ.
func Distance(a, b encoding.Codeword) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// Diff lists the 1-indexed positions where a and b differ.
func Diff(a, b encoding.Codeword) []int {
	var out []int
	for i := range a {
		if a[i] != b[i] {
			out = append(out, i+1)
		}
	}
	return out
}
