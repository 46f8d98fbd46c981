package encoding

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allDataWords() []DataWord {
	out := make([]DataWord, 0, 16)
	for n := uint8(0); n < 16; n++ {
		out = append(out, DataWordFromUint(n))
	}
	return out
}

func TestEncodeWorkedExample(t *testing.T) {
	d, err := ParseDataWord("1011")
	require.NoError(t, err)

	assert.Equal(t, "010", Parity(d).String())
	assert.Equal(t, "0110011", Encode(d).String())
}

func TestEncodeAllZero(t *testing.T) {
	assert.Equal(t, Codeword{}, Encode(DataWord{}))
}

func TestEncodeSelfConsistent(t *testing.T) {
	for _, d := range allDataWords() {
		c := Encode(d)
		assert.Equal(t, d, c.Data(), "data of %s", d)
		assert.Equal(t, Parity(c.Data()), c.Parity(), "parity of %s", d)
		assert.Equal(t, 0, ComputeSyndrome(c).Value(), "syndrome of %s", c)
	}
}

func TestDecodeClean(t *testing.T) {
	for _, d := range allDataWords() {
		c := Encode(d)
		got, pos, err := Decode(c)
		require.NoError(t, err)
		assert.Equal(t, c, got)
		assert.Equal(t, NoError, pos)

		// a second pass must leave it alone too
		again, pos, err := Decode(got)
		require.NoError(t, err)
		assert.Equal(t, c, again)
		assert.Equal(t, NoError, pos)
	}
}

func TestDecodeEverySingleFlip(t *testing.T) {
	for _, d := range allDataWords() {
		c := Encode(d)
		for pos := 1; pos <= CodewordLen; pos++ {
			t.Run(fmt.Sprintf("%s/%d", d, pos), func(t *testing.T) {
				got, found, err := Decode(c.Flip(pos))
				require.NoError(t, err)
				assert.Equal(t, c, got)
				assert.Equal(t, pos, found)
			})
		}
	}
}

func TestDecodeWorkedExample(t *testing.T) {
	received, err := ParseCodeword("0110111")
	require.NoError(t, err)

	s := ComputeSyndrome(received)
	assert.Equal(t, Syndrome{1, 0, 1}, s)
	assert.Equal(t, "101", s.String())
	assert.Equal(t, 5, s.Value())

	got, pos, err := Decode(received)
	require.NoError(t, err)
	assert.Equal(t, "0110011", got.String())
	assert.Equal(t, 5, pos)
}

func TestDecodeDoubleFlipMiscorrects(t *testing.T) {
	c := Encode(DataWord{1, 0, 1, 1})
	got, pos, err := Decode(c.Flip(1).Flip(2))
	require.NoError(t, err)

	// 1 xor 2 points at position 3
	assert.Equal(t, 3, pos)
	assert.NotEqual(t, c, got)
	assert.Equal(t, 0, ComputeSyndrome(got).Value())
}

func TestFlipDoesNotMutate(t *testing.T) {
	c := Encode(DataWord{1, 0, 1, 1})
	flipped := c.Flip(5)
	assert.Equal(t, "0110011", c.String())
	assert.Equal(t, "0110111", flipped.String())
}

func TestEncodeBitsValidation(t *testing.T) {
	cases := []struct {
		name string
		bits []Bit
	}{
		{"empty", nil},
		{"short", []Bit{1, 0, 1}},
		{"long", []Bit{1, 0, 1, 1, 0}},
		{"nonbinary", []Bit{1, 2, 0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EncodeBits(tc.bits)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	c, err := EncodeBits([]Bit{1, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, "0110011", c.String())
}

func TestDecodeBitsValidation(t *testing.T) {
	_, _, err := DecodeBits([]Bit{0, 1, 1, 0, 0, 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = DecodeBits([]Bit{0, 1, 1, 0, 0, 1, 3})
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, pos, err := DecodeBits([]Bit{0, 1, 1, 1, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, "0110011", got.String())
	assert.Equal(t, 4, pos)
}

func TestDecodeRejectsNonBinary(t *testing.T) {
	cases := []Codeword{
		{0, 0, 0, 3, 0, 0, 0},
		{2, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 0, 1, 255},
	}
	for _, c := range cases {
		t.Run(c.String(), func(t *testing.T) {
			_, pos, err := Decode(c)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, NoError, pos)
			assert.ErrorIs(t, c.Validate(), ErrInvalidInput)
		})
	}
	assert.NoError(t, Encode(DataWord{1, 0, 1, 1}).Validate())
}

func TestCharMarksNonBinary(t *testing.T) {
	assert.Equal(t, "000_000", Codeword{0, 0, 0, 3, 0, 0, 0}.String())
	assert.Equal(t, "_00", Syndrome{0, 0, 2}.String())
	assert.Equal(t, "1011", DataWord{1, 0, 1, 1}.String())
}

func TestParse(t *testing.T) {
	_, err := ParseDataWord("10x1")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseDataWord("10110")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseCodeword("011")
	assert.ErrorIs(t, err, ErrInvalidInput)

	d, err := ParseDataWord(" 1011\n")
	require.NoError(t, err)
	assert.Equal(t, DataWord{1, 0, 1, 1}, d)
}

func TestDataWordUint(t *testing.T) {
	assert.Equal(t, DataWord{1, 0, 1, 1}, DataWordFromUint(11))
	for n := uint8(0); n < 16; n++ {
		assert.Equal(t, n, DataWordFromUint(n).Uint())
	}
}
