package fra

import "fmt"

// Percent is a ratio expressed as a percentage.
type Percent float64

// Unbounded is the ratio reported when the denominator is zero and the
// numerator is not.
const Unbounded Percent = 999.9

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Fixed returns the value with exactly one decimal digit, without the sign.
func (p Percent) Fixed() string {
	return fmt.Sprintf("%.1f", float64(p))
}

func (p Percent) String() string {
	return p.Fixed() + "%"
}
