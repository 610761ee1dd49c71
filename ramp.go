package bmp2ascii

// Ramp is an ordered palette of output characters from the darkest
// luminance representation (index 0) to the lightest (last index).
// Runes rather than bytes, so ramps are not limited to 7-bit ASCII.
type Ramp []rune

// DefaultRamp is the built-in ten-character ramp, dark to light.
var DefaultRamp = Ramp("@%#*+=-:. ")

// RampFromString builds a Ramp from a dark-to-light string.
func RampFromString(s string) Ramp {
	return Ramp(s)
}

// Reversed returns a copy of the ramp with intensities inverted, for
// light-on-dark terminals.
func (r Ramp) Reversed() Ramp {
	rev := make(Ramp, len(r))
	for i, c := range r {
		rev[len(r)-1-i] = c
	}
	return rev
}
