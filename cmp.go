package decimal

// cmpAbs compares |a| and |b|, ignoring sign, walking limbs weight-by-weight
// from the most significant position down. This is L1's cmp_abs.
func cmpAbs(a, b *numVar) int {
	aw, bw := a.weight, b.weight
	if aw != bw {
		if aw > bw {
			return 1
		}
		return -1
	}
	n := len(a.digits)
	if len(b.digits) > n {
		n = len(b.digits)
	}
	for i := 0; i < n; i++ {
		ad, bd := a.digitAt(i), b.digitAt(i)
		if ad != bd {
			if ad > bd {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Cmp compares a and b and returns -1, 0, or +1 per Go's convention.
// NaN is treated as greater than every non-NaN value and equal to itself,
// giving decimals a total order suitable for sorting.
func Cmp(a, b Decimal) int {
	switch {
	case a.sign == nan && b.sign == nan:
		return 0
	case a.sign == nan:
		return 1
	case b.sign == nan:
		return -1
	}
	av, bv := makeVar(a), makeVar(b)
	if av.isZero() && bv.isZero() {
		return 0
	}
	if av.isZero() {
		if bv.sign == negative {
			return 1
		}
		return -1
	}
	if bv.isZero() {
		if av.sign == negative {
			return -1
		}
		return 1
	}
	if av.sign != bv.sign {
		if av.sign == negative {
			return -1
		}
		return 1
	}
	c := cmpAbs(&av, &bv)
	if av.sign == negative {
		return -c
	}
	return c
}

// Eq, Ne, Lt, Le, Gt, and Ge are the six relational predicates derived
// from Cmp.
func Eq(a, b Decimal) bool { return Cmp(a, b) == 0 }
func Ne(a, b Decimal) bool { return Cmp(a, b) != 0 }
func Lt(a, b Decimal) bool { return Cmp(a, b) < 0 }
func Le(a, b Decimal) bool { return Cmp(a, b) <= 0 }
func Gt(a, b Decimal) bool { return Cmp(a, b) > 0 }
func Ge(a, b Decimal) bool { return Cmp(a, b) >= 0 }

// Min and Max are defined in terms of Cmp, so NaN "wins" Max and loses Min.
func Min(a, b Decimal) Decimal {
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}

func Max(a, b Decimal) Decimal {
	if Cmp(a, b) >= 0 {
		return a
	}
	return b
}

// Sign returns -1, 0, or +1 according to whether d is negative, zero, or
// positive. Sign of NaN is 0, by convention (there is no sign error code
// for this predicate — unlike ToInt32/ToInt64, Sign never fails).
func (d Decimal) Sign() int {
	if d.sign == nan || len(d.digits) == 0 {
		return 0
	}
	if d.sign == negative {
		return -1
	}
	return 1
}

// IsNaN reports whether d is the distinguished NaN value.
func (d Decimal) IsNaN() bool { return d.sign == nan }

// IsZero reports whether d is exactly zero (any scale).
func (d Decimal) IsZero() bool { return d.sign != nan && len(d.digits) == 0 }

// IsNeg reports whether d is strictly negative.
func (d Decimal) IsNeg() bool { return d.sign == negative && len(d.digits) > 0 }

// IsPos reports whether d is strictly positive.
func (d Decimal) IsPos() bool { return d.sign == positive && len(d.digits) > 0 }
