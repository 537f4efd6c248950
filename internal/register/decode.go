// internal/register/decode.go
package register

import "strconv"

// maxScale bounds the divisor table below.
const maxScale = 9

var pow10 = [maxScale + 1]float64{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

// Decode turns the words read for d into its engineering value.
// Pure: no IO, no state.
func Decode(d Descriptor, raw []uint16) (float64, error) {
	if want := int(d.Words()); len(raw) != want {
		return 0, &DecodeError{Name: d.Name, Want: want, Got: len(raw)}
	}

	x := Combine(raw)
	if d.Scale == 0 {
		return float64(x), nil
	}
	return float64(x) / pow10[d.Scale], nil
}

// Combine concatenates up to two words big-endian: first word is the high half.
// Words beyond the second are ignored; callers check length first.
func Combine(raw []uint16) uint32 {
	switch len(raw) {
	case 0:
		return 0
	case 1:
		return uint32(raw[0])
	default:
		return uint32(raw[0])<<16 | uint32(raw[1])
	}
}

// FormatValue renders v the way it is published: shortest decimal form,
// no exponent, no padding.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
