package encoding

import (
	"errors"
	"fmt"
	"strings"
)

// ASCII forms of a bit, as typed on the command line.
const ONE byte = 49
const ZERO byte = 48

const (
	DataLen     = 4
	ParityLen   = 3
	CodewordLen = DataLen + ParityLen
)

// NoError is the position reported when nothing was corrected.
const NoError = 0

var ErrInvalidInput = errors.New("invalid input")

// Bit is a single binary symbol, 0 or 1.
type Bit uint8

func (b Bit) Valid() bool {
	return b == 0 || b == 1
}

// Char returns the ASCII digit for b, or '_' when b is not a bit.
func (b Bit) Char() byte {
	switch b {
	case 1:
		return ONE
	case 0:
		return ZERO
	}
	return '_'
}

// DataWord holds d1..d4.
type DataWord [DataLen]Bit

// Codeword holds the seven transmitted bits; index i is position i+1.
type Codeword [CodewordLen]Bit

func checkBits(bits []Bit, want int) error {
	if len(bits) != want {
		return fmt.Errorf("%w: got %d bits, want %d", ErrInvalidInput, len(bits), want)
	}
	for i, b := range bits {
		if !b.Valid() {
			return fmt.Errorf("%w: bit %d is %d", ErrInvalidInput, i+1, b)
		}
	}
	return nil
}

func NewDataWord(bits []Bit) (DataWord, error) {
	var d DataWord
	if err := checkBits(bits, DataLen); err != nil {
		return d, err
	}
	copy(d[:], bits)
	return d, nil
}

// Validate reports ErrInvalidInput if any position holds a non-binary value.
func (c Codeword) Validate() error {
	return checkBits(c[:], CodewordLen)
}

func NewCodeword(bits []Bit) (Codeword, error) {
	var c Codeword
	if err := checkBits(bits, CodewordLen); err != nil {
		return c, err
	}
	copy(c[:], bits)
	return c, nil
}

// ParseBits turns a string of '0' and '1' into bits. Surrounding
// whitespace is ignored.
func ParseBits(s string) ([]Bit, error) {
	s = strings.TrimSpace(s)
	out := make([]Bit, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ONE:
			out[i] = 1
		case ZERO:
			out[i] = 0
		default:
			return nil, fmt.Errorf("%w: symbol %q at position %d", ErrInvalidInput, s[i], i+1)
		}
	}
	return out, nil
}

func ParseDataWord(s string) (DataWord, error) {
	bits, err := ParseBits(s)
	if err != nil {
		return DataWord{}, err
	}
	return NewDataWord(bits)
}

func ParseCodeword(s string) (Codeword, error) {
	bits, err := ParseBits(s)
	if err != nil {
		return Codeword{}, err
	}
	return NewCodeword(bits)
}

func bitString(bits []Bit) string {
	var sb strings.Builder
	for _, b := range bits {
		sb.WriteByte(b.Char())
	}
	return sb.String()
}

func (d DataWord) String() string   { return bitString(d[:]) }
func (p ParityBits) String() string { return bitString(p[:]) }
func (c Codeword) String() string   { return bitString(c[:]) }

// DataWordFromUint packs the low four bits of n, d1 being the most
// significant, so 11 is 1011.
func DataWordFromUint(n uint8) DataWord {
	var d DataWord
	for i := range d {
		d[i] = Bit(n>>(DataLen-1-i)) & 1
	}
	return d
}

// Uint is the inverse of DataWordFromUint.
func (d DataWord) Uint() uint8 {
	var n uint8
	for _, b := range d {
		n = n<<1 | uint8(b)
	}
	return n
}

// At returns the bit at a 1-indexed position. It panics outside 1..7.
func (c Codeword) At(pos int) Bit {
	return c[pos-1]
}

// Flip returns a copy of c with the bit at pos inverted. It panics
// outside 1..7.
func (c Codeword) Flip(pos int) Codeword {
	c[pos-1] ^= 1
	return c
}
