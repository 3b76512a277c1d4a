package decimal

import (
	"fmt"
	"strings"
)

// L4 text formatting (spec.md §4.2). Decimal never uses scientific
// notation in its default text form — it always prints every digit
// between the most and least significant, the same fixed-point style
// postgres's NUMERIC prints by default.

// String returns d's canonical fixed-point text: an optional "-", the
// integer part (at least one digit), and, if dscale > 0, a "." followed by
// exactly dscale fractional digits. NaN formats as "NaN".
func (d Decimal) String() string {
	if d.sign == nan {
		return "NaN"
	}
	v := makeVar(d)

	var sb strings.Builder
	if v.sign == negative && !v.isZero() {
		sb.WriteByte('-')
	}

	intDigits := v.weight + 1
	if intDigits <= 0 {
		sb.WriteByte('0')
	} else {
		for pos := v.weight; pos >= 0; pos-- {
			writeLimb(&sb, v.digitAt(v.weight-pos), pos == v.weight)
		}
	}

	if v.dscale > 0 {
		sb.WriteByte('.')
		fracLimbs := (v.dscale + decDigits - 1) / decDigits
		start := -1
		for i := 0; i < fracLimbs; i++ {
			pos := start - i
			writeLimb(&sb, v.digitAt(v.weight-pos), false)
		}
		// fracLimbs*decDigits may overshoot dscale by up to decDigits-1
		// digits; trim back to exactly dscale fractional digits.
		full := sb.String()
		dot := strings.IndexByte(full, '.')
		want := dot + 1 + v.dscale
		if want < len(full) {
			sb.Reset()
			sb.WriteString(full[:want])
		}
	}
	return sb.String()
}

// writeLimb writes a limb's decimal digits, zero-padded to decDigits
// unless first is true and leading zeros should be suppressed (the most
// significant limb of the integer part never has padding).
func writeLimb(sb *strings.Builder, limb int16, first bool) {
	s := fmt.Sprintf("%04d", limb)
	if first {
		s = strings.TrimLeft(s, "0")
		if s == "" {
			s = "0"
		}
	}
	sb.WriteString(s)
}

// Text is an alias for String, matching the encoding/TextMarshaler-
// adjacent naming math/big's own numeric types use.
func (d Decimal) Text() string { return d.String() }

// sciExponent computes the exponent a scientific-notation rendering of v
// would use: the power of ten of v's most significant decimal digit. This
// follows postgres NUMERIC's get_str_from_var_sci exactly (not the
// off-by-one variant of the formula written in prose elsewhere), since
// that is the version that actually reproduces the standard worked
// example (0.12 at scale 1 renders as "1.2e-01").
func sciExponent(v *numVar) int {
	if len(v.digits) == 0 {
		return 0
	}
	d0 := int(v.digits[0])
	log10d0 := 0
	for t := d0; t >= 10; t /= 10 {
		log10d0++
	}
	return (v.weight+1)*decDigits - (decDigits - log10d0)
}

// Sci renders d as "significand e±NN" scientific notation, the significand
// carrying exactly scale fractional digits (spec.md §4.2, "Scientific
// notation"). A zero value reports its exponent as zero.
func Sci(d Decimal, scale int) (string, error) {
	if d.sign == nan {
		return "NaN", nil
	}
	if scale < 0 {
		scale = 0
	}
	v := makeVar(d)
	exponent := sciExponent(&v)

	if v.isZero() {
		sig, err := zeroVar(scale).decimal()
		if err != nil {
			return "", err
		}
		return sig.String() + fmt.Sprintf("e%+03d", exponent), nil
	}

	denomText := "1"
	switch {
	case exponent > 0:
		denomText = "1" + strings.Repeat("0", exponent)
	case exponent < 0:
		denomText = "0." + strings.Repeat("0", -exponent-1) + "1"
	}
	denom, err := Parse(denomText)
	if err != nil {
		return "", err
	}
	sig, err := QuoExact(d, denom, scale)
	if err != nil {
		return "", err
	}
	return sig.String() + fmt.Sprintf("e%+03d", exponent), nil
}

// Format implements fmt.Formatter: %v (including %#v), %s, %f, and %F
// print String's fixed-point text, %d prints d truncated to an integer, and
// %e / %E print scientific notation (the precision, if given, sets the
// significand's scale). Any other verb, such as %x, prints a
// "%!x(decimal.Decimal=...)" marker.
func (d Decimal) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(f, d.String())
	case 'f', 'F':
		fmt.Fprint(f, d.String())
	case 'd':
		t, err := Trunc(d, 0)
		if err != nil {
			fmt.Fprint(f, d.String())
			return
		}
		fmt.Fprint(f, t.String())
	case 'e', 'E':
		scale := int(d.dscale)
		if p, ok := f.Precision(); ok {
			scale = p
		}
		s, err := Sci(d, scale)
		if err != nil {
			fmt.Fprint(f, d.String())
			return
		}
		if verb == 'E' {
			s = strings.ToUpper(s)
		}
		fmt.Fprint(f, s)
	default:
		fmt.Fprintf(f, "%%!%c(decimal.Decimal=%s)", verb, d.String())
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
