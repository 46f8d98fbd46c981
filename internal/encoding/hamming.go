package encoding

// Positions are 1-indexed, laid out as r1 r2 d1 r3 d2 d3 d4.
const (
	PosR1 = 1
	PosR2 = 2
	PosD1 = 3
	PosR3 = 4
	PosD2 = 5
	PosD3 = 6
	PosD4 = 7
)

// dataPlaces maps d1..d4 onto their codeword positions.
var dataPlaces = [DataLen]int{PosD1, PosD2, PosD3, PosD4}

// ParityBits holds r1, r2, r3.
type ParityBits [ParityLen]Bit

// Parity computes the even parity bits covering d.
func Parity(d DataWord) ParityBits {
	return ParityBits{
		d[0] ^ d[1] ^ d[3],
		d[0] ^ d[2] ^ d[3],
		d[1] ^ d[2] ^ d[3],
	}
}

// Encode builds the codeword for d.
func Encode(d DataWord) Codeword {
	r := Parity(d)
	return Codeword{r[0], r[1], d[0], r[2], d[1], d[2], d[3]}
}

// EncodeBits validates raw bits and encodes them.
func EncodeBits(bits []Bit) (Codeword, error) {
	d, err := NewDataWord(bits)
	if err != nil {
		return Codeword{}, err
	}
	return Encode(d), nil
}

// Data extracts d1..d4 from the codeword without correcting it.
func (c Codeword) Data() DataWord {
	var d DataWord
	for i, pos := range dataPlaces {
		d[i] = c.At(pos)
	}
	return d
}

// Parity extracts r1..r3 as stored in the codeword.
func (c Codeword) Parity() ParityBits {
	return ParityBits{c.At(PosR1), c.At(PosR2), c.At(PosR3)}
}

// Syndrome holds the recomputed checks s1, s2, s3.
type Syndrome [ParityLen]Bit

// ComputeSyndrome recomputes every parity check over the received word.
func ComputeSyndrome(c Codeword) Syndrome {
	r1, r2, d1, r3, d2, d3, d4 := c[0], c[1], c[2], c[3], c[4], c[5], c[6]
	return Syndrome{
		r1 ^ d1 ^ d2 ^ d4,
		r2 ^ d1 ^ d3 ^ d4,
		r3 ^ d2 ^ d3 ^ d4,
	}
}

// Value reads the syndrome with s3 as the most significant bit. A
// non-zero value is the position of the flipped bit.
func (s Syndrome) Value() int {
	return 4*int(s[2]) + 2*int(s[1]) + int(s[0])
}

func (s Syndrome) String() string {
	// printed high to low
	return string([]byte{s[2].Char(), s[1].Char(), s[0].Char()})
}

// Decode corrects at most one flipped bit. The returned position is 0
// when the syndrome is clean. With two or more flips the result is a
// wrong but valid codeword.
func Decode(received Codeword) (Codeword, int, error) {
	if err := received.Validate(); err != nil {
		return Codeword{}, NoError, err
	}
	pos := ComputeSyndrome(received).Value()
	if pos == 0 {
		return received, NoError, nil
	}
	return received.Flip(pos), pos, nil
}

// DecodeBits validates raw bits and decodes them.
func DecodeBits(bits []Bit) (Codeword, int, error) {
	c, err := NewCodeword(bits)
	if err != nil {
		return Codeword{}, NoError, err
	}
	return Decode(c)
}
