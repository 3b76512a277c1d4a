package decimal

import (
	"strings"
)

// L4 text parsing (spec.md §4.1). Parse accepts the grammar
//
//	decimal = [sign] ( digits ["." digits] | "." digits ) [exponent] | "NaN"
//	sign    = "+" | "-"
//	digits  = { "0".."9" }
//	exponent = ("e" | "E") [sign] digits
//
// case-insensitively for "NaN", building the result limb array directly:
// the optional exponent shifts the decimal point within the digit run
// before anything is padded, then the integer and fractional halves are
// zero-padded out to a whole number of decDigits-wide groups anchored at
// the (shifted) decimal point, concatenated, and split into limbs, with
// strip() then removing whatever leading or trailing all-zero limbs that
// padding introduced.

// maxParseExponent bounds the magnitude of a literal's exponent suffix.
// Anything larger would shift weight or dscale past the int16 range that
// every Decimal is already bound to, so the bound is set at that range.
const maxParseExponent = maxInt16

// Parse converts s into a Decimal, preserving every digit s spells out
// (including trailing fractional zeros, which become part of the result's
// dscale) and failing with INVALID_ARGUMENT if s is not a valid decimal
// literal.
func Parse(s string) (Decimal, error) {
	if strings.EqualFold(s, "nan") {
		return NaN, nil
	}

	sign := positive
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = negative
		}
		s = s[1:]
	}

	exp := 0
	if e := strings.IndexAny(s, "eE"); e >= 0 {
		expPart := s[e+1:]
		s = s[:e]
		if expPart == "" {
			return Decimal{}, traceInvalidArgument()
		}
		expSign := 1
		if expPart[0] == '+' || expPart[0] == '-' {
			if expPart[0] == '-' {
				expSign = -1
			}
			expPart = expPart[1:]
		}
		if expPart == "" || !allDigits(expPart) {
			return Decimal{}, traceInvalidArgument()
		}
		val := 0
		for _, c := range expPart {
			val = val*10 + int(c-'0')
			if val > maxParseExponent {
				return Decimal{}, traceInvalidArgument()
			}
		}
		exp = expSign * val
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s, ""
	if dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}
	if intPart == "" && fracPart == "" {
		return Decimal{}, traceInvalidArgument()
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return Decimal{}, traceInvalidArgument()
	}

	if exp != 0 {
		rawDigits := intPart + fracPart
		pointPos := len(intPart) + exp
		if pointPos > len(rawDigits) {
			rawDigits += strings.Repeat("0", pointPos-len(rawDigits))
		} else if pointPos < 0 {
			rawDigits = strings.Repeat("0", -pointPos) + rawDigits
			pointPos = 0
		}
		intPart, fracPart = rawDigits[:pointPos], rawDigits[pointPos:]
	}
	dscale := len(fracPart)

	leftPad := (decDigits - len(intPart)%decDigits) % decDigits
	paddedInt := strings.Repeat("0", leftPad) + intPart
	rightPad := (decDigits - len(fracPart)%decDigits) % decDigits
	paddedFrac := fracPart + strings.Repeat("0", rightPad)

	combined := paddedInt + paddedFrac
	n := len(combined) / decDigits
	digits := make([]int16, n)
	for i := 0; i < n; i++ {
		chunk := combined[i*decDigits : (i+1)*decDigits]
		val := 0
		for _, c := range chunk {
			val = val*10 + int(c-'0')
		}
		digits[i] = int16(val)
	}
	weight := len(paddedInt)/decDigits - 1

	v := numVar{sign: sign, weight: weight, digits: digits}
	v.strip()
	v.dscale = dscale
	return v.decimal()
}

// ParseExact is like Parse but additionally requires the parsed value's
// dscale to be exactly scale; a literal with more or fewer fractional
// digits than scale fails with INVALID_ARGUMENT rather than rounding.
func ParseExact(s string, scale int) (Decimal, error) {
	d, err := Parse(s)
	if err != nil {
		return Decimal{}, err
	}
	if d.sign == nan {
		return d, nil
	}
	if int(d.dscale) != scale {
		return Decimal{}, traceInvalidArgument()
	}
	return d, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
