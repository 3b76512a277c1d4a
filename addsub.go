package decimal

// limbAt returns the limb that occupies absolute position pos in v's
// base-nbase expansion (0 outside v's stored range), regardless of how v
// is aligned against any other operand.
func limbAt(v *numVar, pos int) int16 {
	return v.digitAt(v.weight - pos)
}

// bottomPos returns the position of v's least significant stored limb.
func bottomPos(v *numVar) int {
	return v.weight - len(v.digits) + 1
}

// addAbs computes |a| + |b| into a working value with positive sign,
// aligning operands by absolute limb position and iterating from the
// least significant position upward while propagating a carry. This is
// L1's add_abs.
func addAbs(a, b *numVar) numVar {
	top := a.weight
	if b.weight > top {
		top = b.weight
	}
	bottom := bottomPos(a)
	if bb := bottomPos(b); bb < bottom {
		bottom = bb
	}
	length := top - bottom + 1

	buf := make([]int16, length+1) // buf[length] is carry-out headroom
	var carry int16
	for i := 0; i < length; i++ {
		pos := bottom + i
		s := limbAt(a, pos) + limbAt(b, pos) + carry
		if s >= nbase {
			s -= nbase
			carry = 1
		} else {
			carry = 0
		}
		buf[i] = s
	}
	buf[length] = carry

	digits := make([]int16, length+1)
	for j := range digits {
		digits[j] = buf[length-j]
	}
	v := numVar{sign: positive, weight: top + 1, digits: digits}
	v.strip()
	return v
}

// subAbs computes |a| - |b|, given that the caller has already established
// |a| >= |b|, so no borrow escapes the top (a.weight) position. This is
// L1's sub_abs(larger, smaller).
func subAbs(a, b *numVar) numVar {
	top := a.weight
	bottom := bottomPos(a)
	if bb := bottomPos(b); bb < bottom {
		bottom = bb
	}
	length := top - bottom + 1

	buf := make([]int16, length)
	var borrow int16
	for i := 0; i < length; i++ {
		pos := bottom + i
		d := limbAt(a, pos) - limbAt(b, pos) - borrow
		if d < 0 {
			d += nbase
			borrow = 1
		} else {
			borrow = 0
		}
		buf[i] = d
	}

	digits := make([]int16, length)
	for j := range digits {
		digits[j] = buf[length-1-j]
	}
	v := numVar{sign: positive, weight: top, digits: digits}
	v.strip()
	return v
}

// alignScale returns max(a.dscale, b.dscale), the dscale every add/sub
// result carries (spec.md §4.4).
func alignScale(a, b *numVar) int {
	if a.dscale > b.dscale {
		return a.dscale
	}
	return b.dscale
}

// Add returns a + b. NaN propagates: if either operand is NaN, the result
// is NaN.
func Add(a, b Decimal) (Decimal, error) {
	if a.sign == nan || b.sign == nan {
		return Decimal{sign: nan}, nil
	}
	av, bv := makeVar(a), makeVar(b)
	dscale := alignScale(&av, &bv)

	var result numVar
	switch {
	case av.isZero():
		result = bv
	case bv.isZero():
		result = av
	case av.sign == bv.sign:
		result = addAbs(&av, &bv)
		result.sign = av.sign
	default:
		c := cmpAbs(&av, &bv)
		switch {
		case c == 0:
			result = zeroVar(dscale)
		case c > 0:
			result = subAbs(&av, &bv)
			result.sign = av.sign
		default:
			result = subAbs(&bv, &av)
			result.sign = bv.sign
		}
	}
	if result.isZero() {
		result.sign = positive
	}
	result.dscale = dscale
	return result.decimal()
}

// Sub returns a - b.
func Sub(a, b Decimal) (Decimal, error) {
	return Add(a, Neg(b))
}

// Neg returns -d. NaN negates to NaN; zero negates to zero.
func Neg(d Decimal) Decimal {
	if d.sign == nan || len(d.digits) == 0 {
		return d
	}
	d.sign = d.sign.negate()
	return d
}

// Abs returns |d|.
func Abs(d Decimal) Decimal {
	if d.sign == nan {
		return d
	}
	d.sign = positive
	return d
}

// Plus returns the unary-plus of d, i.e. d itself. It exists to round out
// the sign group of the public façade (spec.md §6).
func Plus(d Decimal) Decimal { return d }
