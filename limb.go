package decimal

// L0: the digit representation. A decimal value is, conceptually,
// (sign, weight, dscale, digits[]): a sign-magnitude array of base-nbase
// "limbs", where digits[i] contributes digits[i] * nbase^(weight-i) to the
// value. nbase = 10000 keeps every limb within an int16 and every limb
// product within an int64 accumulator with plenty of headroom before a
// carry-propagation sweep is needed, the same trade-off NBASE=10000 makes
// in the reference this package's algorithms are ported from.
const (
	nbase     = 10000
	decDigits = 4 // decimal digits per limb; log10(nbase)
	halfNBase = nbase / 2
)

// sign distinguishes positive, negative, and NaN decimals. NaN carries no
// digits and is compared specially everywhere (see cmp.go).
type sign int8

const (
	positive sign = iota
	negative
	nan
)

func (s sign) negate() sign {
	switch s {
	case positive:
		return negative
	case negative:
		return positive
	default:
		return nan
	}
}

// Decimal is an arbitrary-precision, sign-magnitude decimal value: exact,
// with a distinguished NaN, the numeric type behind a SQL NUMERIC column.
// The zero value is the decimal 0.
//
// A Decimal is immutable. Every operation that produces one does so by
// normalizing a working value: stripping leading/trailing zero limbs and
// checking that weight and dscale still fit a signed 16-bit range.
type Decimal struct {
	sign   sign
	weight int16
	dscale int16
	digits []int16 // stripped: digits[0] != 0 and digits[len-1] != 0, unless value is zero (nil)
}

const (
	maxInt16 = 1<<15 - 1
	minInt16 = -(1 << 15)
)

// numVar is the mutable working value that L1/L2/L3 routines operate on.
// Unlike Decimal, a numVar is not required to be stripped while a routine
// is still computing; it may also carry spare leading zero limbs as
// headroom for a carry that propagates into a new most-significant limb.
type numVar struct {
	sign   sign
	weight int // may temporarily exceed int16 range mid-computation
	dscale int
	digits []int16
}

// makeVar copies d into a fresh working value. The returned numVar never
// aliases d's digit slice, so callers are free to mutate it in place.
func makeVar(d Decimal) numVar {
	v := numVar{sign: d.sign, weight: int(d.weight), dscale: int(d.dscale)}
	if len(d.digits) > 0 {
		v.digits = append([]int16(nil), d.digits...)
	}
	return v
}

// makeVarSpare is like makeVar but prepends spare leading zero limbs,
// giving room for a carry to propagate into a new most-significant limb
// without reallocating. weight is adjusted so digits[0] still occupies its
// recorded position.
func makeVarSpare(d Decimal, spare int) numVar {
	v := numVar{sign: d.sign, weight: int(d.weight) + spare, dscale: int(d.dscale)}
	v.digits = make([]int16, len(d.digits)+spare)
	copy(v.digits[spare:], d.digits)
	return v
}

// zeroVar returns the working value for positive zero at the given dscale.
func zeroVar(dscale int) numVar {
	return numVar{sign: positive, dscale: dscale}
}

// nanVar returns the NaN working value.
func nanVar() numVar {
	return numVar{sign: nan}
}

// isZero reports whether v's magnitude is zero (true for a zeroed, but not
// for a NaN, working value).
func (v *numVar) isZero() bool {
	return v.sign != nan && len(v.digits) == 0
}

// strip removes leading and trailing zero limbs, restoring the invariant
// that digits[0] != 0 and digits[last] != 0. weight is adjusted for each
// leading zero limb dropped; a value that strips to nothing becomes
// canonical positive zero.
func (v *numVar) strip() {
	if v.sign == nan {
		v.digits = nil
		return
	}
	digits := v.digits
	lo := 0
	for lo < len(digits) && digits[lo] == 0 {
		lo++
	}
	hi := len(digits)
	for hi > lo && digits[hi-1] == 0 {
		hi--
	}
	v.weight -= lo
	if lo == hi {
		v.digits = nil
		v.weight = 0
		v.sign = positive
		return
	}
	v.digits = digits[lo:hi]
}

// decimal finalizes v into an immutable, stripped Decimal. It fails with
// VALUE_OUT_OF_RANGE if weight or dscale no longer fit a signed 16-bit
// range, the bound spec.md §3 invariant 2 requires every producing routine
// to enforce.
func (v numVar) decimal() (Decimal, error) {
	v.strip()
	if v.sign == nan {
		return Decimal{sign: nan}, nil
	}
	if v.weight > maxInt16 || v.weight < minInt16 || v.dscale > maxInt16 || v.dscale < 0 {
		return Decimal{}, traceValueOutOfRange()
	}
	d := Decimal{sign: v.sign, weight: int16(v.weight), dscale: int16(v.dscale)}
	if len(v.digits) > 0 {
		d.digits = append([]int16(nil), v.digits...)
	}
	return d, nil
}

// ndigits returns the number of stored limbs.
func (v *numVar) ndigits() int { return len(v.digits) }

// digitAt returns the limb at position idx, or 0 when idx falls outside
// the stored range (ordinary sign-magnitude zero-padding).
func (v *numVar) digitAt(idx int) int16 {
	if idx < 0 || idx >= len(v.digits) {
		return 0
	}
	return v.digits[idx]
}
