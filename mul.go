package decimal

// MulGuardDigits is unused by the public Mul, which always computes an
// exact product (multiplying two exact decimals can never lose a
// significant digit, only grow dscale), but it documents the guard-digit
// budget spec.md §4.5 allows an implementation to spend when a caller
// truncates an interior multiply inside a transcendental (see
// transcendental.go, which rounds its own intermediates instead of relying
// on this constant).
const MulGuardDigits = 2

// Mul returns a * b. NaN propagates; multiplying by zero always yields a
// (possibly differently scaled) zero.
//
// Implements L2's mul: schoolbook long multiplication over limbs with
// deferred carry propagation — the convolution of a.digits and b.digits is
// accumulated into int64 buckets and normalized to base nbase in a single
// pass once every partial product has landed, rather than after each add.
func Mul(a, b Decimal) (Decimal, error) {
	if a.sign == nan || b.sign == nan {
		return Decimal{sign: nan}, nil
	}
	av, bv := makeVar(a), makeVar(b)
	dscale := av.dscale + bv.dscale

	if av.isZero() || bv.isZero() {
		return zeroVar(dscale).decimal()
	}

	la, lb := len(av.digits), len(bv.digits)
	acc := make([]int64, la+lb-1)
	for i := 0; i < la; i++ {
		ad := int64(av.digits[i])
		if ad == 0 {
			continue
		}
		for j := 0; j < lb; j++ {
			acc[i+j] += ad * int64(bv.digits[j])
		}
	}

	var carry int64
	for k := len(acc) - 1; k >= 0; k-- {
		v := acc[k] + carry
		carry = v / nbase
		acc[k] = v % nbase
	}

	weight := av.weight + bv.weight
	digits := make([]int16, 0, len(acc)+1)
	if carry > 0 {
		weight++
		digits = append(digits, int16(carry))
	}
	for _, v := range acc {
		digits = append(digits, int16(v))
	}

	sign := positive
	if av.sign != bv.sign {
		sign = negative
	}
	result := numVar{sign: sign, weight: weight, dscale: dscale, digits: digits}
	return result.decimal()
}
