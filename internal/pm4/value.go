package pm4

import (
	"fmt"
	"math"
)

// FormatValue renders a register or field value for humans. It guesses
// whether the bits hold an integer or a float:
//
//   - values up to 32768 print as decimal, with hex alongside above 9;
//   - otherwise the dword is read as a float32 and printed as "%.1ff" when
//     |f| < 100000 and f has at most one decimal digit;
//   - anything else prints as hex, zero padded to bits/4 digits.
//
// This is a debugging heuristic, not type inference.
func FormatValue(value uint32, bits int) string {
	digits := bits / 4
	if value <= 1<<15 {
		if value <= 9 {
			return fmt.Sprintf("%d", value)
		}
		return fmt.Sprintf("%d (0x%0*x)", value, digits, value)
	}

	f := math.Float32frombits(value)
	f64 := float64(f)
	if math.Abs(f64) < 100000 && f64*10 == math.Floor(f64*10) {
		return fmt.Sprintf("%.1ff (0x%0*x)", f64, digits, value)
	}
	return fmt.Sprintf("0x%0*x", digits, value)
}
