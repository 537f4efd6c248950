// internal/register/decode_test.go
package register

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Width16AllValues(t *testing.T) {
	for scale := uint8(0); scale <= 3; scale++ {
		d := Descriptor{Name: "x", Address: 1, Width: 16, Scale: scale}
		div := math.Pow10(int(scale))

		for x := 0; x <= math.MaxUint16; x++ {
			got, err := Decode(d, []uint16{uint16(x)})
			if err != nil {
				t.Fatalf("scale=%d x=%d: %v", scale, x, err)
			}
			if want := float64(x) / div; got != want {
				t.Fatalf("scale=%d x=%d: got %v want %v", scale, x, got, want)
			}
		}
	}
}

func TestDecode_Width32BigEndian(t *testing.T) {
	edges := []uint16{0, 1, 2, 0x00ff, 0x0100, 0x7fff, 0x8000, 0xfffe, 0xffff}

	check := func(scale uint8, hi, lo uint16) {
		d := Descriptor{Name: "x", Address: 1, Width: 32, Scale: scale}
		got, err := Decode(d, []uint16{hi, lo})
		if err != nil {
			t.Fatalf("hi=%d lo=%d: %v", hi, lo, err)
		}
		want := (float64(hi)*65536 + float64(lo)) / math.Pow10(int(scale))
		if got != want {
			t.Fatalf("scale=%d hi=%d lo=%d: got %v want %v", scale, hi, lo, got, want)
		}
	}

	for scale := uint8(0); scale <= 2; scale++ {
		for _, hi := range edges {
			for _, lo := range edges {
				check(scale, hi, lo)
			}
		}
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200000; i++ {
		check(uint8(rng.Intn(3)), uint16(rng.Uint32()), uint16(rng.Uint32()))
	}
}

func TestDecode_UnexpectedLength(t *testing.T) {
	cases := []struct {
		name  string
		width uint8
		raw   []uint16
	}{
		{"32 given one word", 32, []uint16{1}},
		{"32 given three words", 32, []uint16{1, 2, 3}},
		{"16 given two words", 16, []uint16{1, 2}},
		{"16 given nothing", 16, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Descriptor{Name: "AC power", Address: 3004, Width: tc.width}
			_, err := Decode(d, tc.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnexpectedLength))

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, int(d.Words()), de.Want)
			assert.Equal(t, len(tc.raw), de.Got)
		})
	}
}

func TestDecode_Scenarios(t *testing.T) {
	today := Descriptor{Name: "kWh today", Unit: "kWh", Address: 3014, Width: 16, Scale: 1}
	v, err := Decode(today, []uint16{373})
	require.NoError(t, err)
	assert.Equal(t, 37.3, v)
	assert.Equal(t, "37.3", FormatValue(v))

	total := Descriptor{Name: "Total power generation", Unit: "kWh", Address: 3008, Width: 32}
	v, err = Decode(total, []uint16{0, 26368})
	require.NoError(t, err)
	assert.Equal(t, float64(26368), v)
	assert.Equal(t, "26368", FormatValue(v))

	freq := Descriptor{Name: "AC frequency", Unit: "Hz", Address: 3042, Width: 16, Scale: 2}
	v, err = Decode(freq, []uint16{5000})
	require.NoError(t, err)
	assert.Equal(t, "50", FormatValue(v))
}

func TestCombine(t *testing.T) {
	assert.Equal(t, uint32(0), Combine(nil))
	assert.Equal(t, uint32(373), Combine([]uint16{373}))
	assert.Equal(t, uint32(288358406), Combine([]uint16{4400, 6}))
	assert.Equal(t, uint32(2148634923), Combine([]uint16{32785, 37163}))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0", FormatValue(0))
	assert.Equal(t, "245.6", FormatValue(2456.0/10))
	assert.Equal(t, "4294967295", FormatValue(math.MaxUint32))
	assert.Equal(t, "0.01", FormatValue(1.0/100))
}
