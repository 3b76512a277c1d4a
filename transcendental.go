package decimal

// L3: the transcendental functions. Every routine here is built entirely
// out of L2's exact primitives (Add, Sub, Mul, QuoExact) plus Round/Trunc,
// working at a handful of guard digits beyond the caller's requested scale,
// rounding intermediate results at that working scale, and rounding to the
// caller's scale once, at the very end. The iteration shapes — Newton's
// method for Sqrt, sqrt-based range reduction followed by a Taylor series
// for Ln, integer/fractional splitting for Exp, and binary exponentiation
// for integer powers — follow the structure of a well-known arbitrary-
// precision decimal context's transcendental package.

// TranscendentalGuardDigits is how many extra fractional digits every L3
// routine carries internally before rounding down to the caller's
// requested scale, to absorb the rounding error successive Mul/QuoExact
// calls accumulate.
const TranscendentalGuardDigits = 10

// workingScale returns scale plus enough guard digits that accumulated
// rounding error in a multi-step L3 routine cannot reach the caller's
// requested precision.
func workingScale(scale int) int {
	return scale + TranscendentalGuardDigits
}

// Sqrt returns the square root of d rounded to scale fractional digits, by
// Newton's method: x_{n+1} = (x_n + d/x_n) / 2, starting from a crude
// estimate and iterating until two successive iterates agree to the
// working precision.
func Sqrt(d Decimal, scale int) (Decimal, error) {
	if d.sign == nan {
		return d, nil
	}
	if d.IsNeg() {
		return Decimal{}, traceInvalidArgument()
	}
	if d.IsZero() {
		return zeroVarResult(scale)
	}

	ws := workingScale(scale)
	x, err := sqrtEstimate(d, ws)
	if err != nil {
		return Decimal{}, err
	}

	for i := 0; i < 64; i++ {
		quo, err := QuoExact(d, x, ws+2)
		if err != nil {
			return Decimal{}, err
		}
		sum, err := Add(x, quo)
		if err != nil {
			return Decimal{}, err
		}
		next, err := QuoExact(sum, Two, ws+2)
		if err != nil {
			return Decimal{}, err
		}
		diff, err := Sub(next, x)
		if err != nil {
			return Decimal{}, err
		}
		x = next
		if isNegligible(diff, ws) {
			break
		}
	}
	return Round(x, scale)
}

// sqrtEstimate produces Newton's starting point for Sqrt: the square root
// of d's leading limb (rounded up), placed at half of d's limb weight
// (rounded toward zero). It is crude — for an odd limb weight it is off by
// a factor of about 100 — but Newton's method closes that gap within a
// handful of iterations.
func sqrtEstimate(d Decimal, scale int) (Decimal, error) {
	v := makeVar(d)
	halfWeight := v.weight / 2
	digit := v.digitAt(0)
	if digit == 0 {
		digit = 1
	}
	root := int64(1)
	for root*root < int64(digit) {
		root++
	}
	est := numVar{sign: positive, weight: halfWeight, dscale: scale, digits: []int16{int16(root)}}
	return est.decimal()
}

// isNegligible reports whether d is smaller in magnitude than one unit in
// the last digit at the given scale, i.e. whether a Newton iteration has
// converged.
func isNegligible(d Decimal, scale int) bool {
	if d.IsZero() {
		return true
	}
	v := makeVar(Abs(d))
	retain := (v.weight+1)*decDigits + (scale - 2)
	return retain <= 0
}

func zeroVarResult(scale int) (Decimal, error) {
	return zeroVar(scale).decimal()
}

// Exp returns e**d rounded to scale fractional digits. d is split into an
// integer part n and fractional part f (d = n + f); e**f is computed
// directly by its Taylor series (f is small enough after the split that
// the series converges quickly), and e**n is computed by raising a high-
// precision estimate of e to the integer power n via binary exponentiation.
// The two factors are multiplied together. A zero d returns exactly 1, with
// scale 0.
func Exp(d Decimal, scale int) (Decimal, error) {
	if d.sign == nan {
		return d, nil
	}
	if d.IsZero() {
		return One, nil
	}
	ws := workingScale(scale)

	n, err := Trunc(d, 0)
	if err != nil {
		return Decimal{}, err
	}
	f, err := Sub(d, n)
	if err != nil {
		return Decimal{}, err
	}

	ef, err := smallExp(f, ws)
	if err != nil {
		return Decimal{}, err
	}
	if n.IsZero() {
		return Round(ef, scale)
	}

	e, err := smallExp(One, ws+len(makeVar(n).digits)*decDigits+8)
	if err != nil {
		return Decimal{}, err
	}
	nInt, err := ToInt64(n)
	if err != nil {
		return Decimal{}, err
	}
	neg := nInt < 0
	if neg {
		nInt = -nInt
	}
	en, err := integerPower(e, nInt, ws+8)
	if err != nil {
		return Decimal{}, err
	}
	if neg {
		en, err = QuoExact(One, en, ws+8)
		if err != nil {
			return Decimal{}, err
		}
	}
	result, err := Mul(en, ef)
	if err != nil {
		return Decimal{}, err
	}
	return Round(result, scale)
}

// smallExp computes e**x by its defining Taylor series, sum_{k=0..} x^k/k!,
// summing terms until a term no longer changes the running total at the
// working scale. Intended for |x| <= 1, where this converges in well under
// workingScale's guard-digit budget's worth of terms.
func smallExp(x Decimal, scale int) (Decimal, error) {
	sum := One
	term := One
	for k := int64(1); k < 2000; k++ {
		next, err := Mul(term, x)
		if err != nil {
			return Decimal{}, err
		}
		kDec, err := ToDecimal(k)
		if err != nil {
			return Decimal{}, err
		}
		term, err = QuoExact(next, kDec, scale+4)
		if err != nil {
			return Decimal{}, err
		}
		newSum, err := Add(sum, term)
		if err != nil {
			return Decimal{}, err
		}
		sum = newSum
		if isNegligible(term, scale) {
			break
		}
	}
	return Round(sum, scale)
}

// integerPower returns base**n for n >= 0 by binary exponentiation: n's bits
// select which squarings of base get folded into the accumulator, so the
// result costs O(log n) multiplications instead of O(n).
func integerPower(base Decimal, n int64, scale int) (Decimal, error) {
	result := One
	b := base
	for n > 0 {
		if n&1 == 1 {
			next, err := Mul(result, b)
			if err != nil {
				return Decimal{}, err
			}
			result, err = Round(next, scale)
			if err != nil {
				return Decimal{}, err
			}
		}
		n >>= 1
		if n == 0 {
			break
		}
		sq, err := Mul(b, b)
		if err != nil {
			return Decimal{}, err
		}
		b, err = Round(sq, scale)
		if err != nil {
			return Decimal{}, err
		}
	}
	return result, nil
}

// Ln returns the natural logarithm of d rounded to scale fractional digits.
// d is reduced by repeated square roots until it lies in (0.9, 1.1), where
// the Taylor series on z = (y-1)/(y+1), ln(y) = 2*(z + z^3/3 + z^5/5 + ...),
// converges quickly; ln(d) is then fact times that series value, fact
// being 2 raised to the number of square roots taken.
func Ln(d Decimal, scale int) (Decimal, error) {
	if d.sign == nan {
		return d, nil
	}
	if !d.IsPos() {
		return Decimal{}, traceInvalidArgument()
	}
	if Eq(d, One) {
		return zeroVarResult(scale)
	}
	ws := workingScale(scale)

	y := d
	fact := int64(1)
	for {
		c := Cmp(y, PointNine)
		d := Cmp(y, OnePointOne)
		if c >= 0 && d <= 0 {
			break
		}
		next, err := Sqrt(y, ws+8)
		if err != nil {
			return Decimal{}, err
		}
		y = next
		fact *= 2
		if fact > 1<<30 {
			return Decimal{}, traceInvalidArgument()
		}
	}

	num, err := Sub(y, One)
	if err != nil {
		return Decimal{}, err
	}
	den, err := Add(y, One)
	if err != nil {
		return Decimal{}, err
	}
	z, err := QuoExact(num, den, ws+8)
	if err != nil {
		return Decimal{}, err
	}

	series := z
	term := z
	zSquared, err := Mul(z, z)
	if err != nil {
		return Decimal{}, err
	}
	zSquared, err = Round(zSquared, ws+8)
	if err != nil {
		return Decimal{}, err
	}
	for k := int64(3); k < 100000; k += 2 {
		next, err := Mul(term, zSquared)
		if err != nil {
			return Decimal{}, err
		}
		term, err = Round(next, ws+8)
		if err != nil {
			return Decimal{}, err
		}
		kDec, err := ToDecimal(k)
		if err != nil {
			return Decimal{}, err
		}
		addend, err := QuoExact(term, kDec, ws+8)
		if err != nil {
			return Decimal{}, err
		}
		newSeries, err := Add(series, addend)
		if err != nil {
			return Decimal{}, err
		}
		series = newSeries
		if isNegligible(addend, ws) {
			break
		}
	}

	two, err := Mul(series, Two)
	if err != nil {
		return Decimal{}, err
	}
	factDec, err := ToDecimal(fact)
	if err != nil {
		return Decimal{}, err
	}
	result, err := Mul(two, factDec)
	if err != nil {
		return Decimal{}, err
	}
	return Round(result, scale)
}

// ln10Cache memoizes ln(10) at the deepest scale any Log10 call has asked
// for so far, since every Log10 call shares the same denominator.
var ln10Cache struct {
	scale int
	value Decimal
	ok    bool
}

func ln10(scale int) (Decimal, error) {
	if ln10Cache.ok && ln10Cache.scale >= scale {
		return Round(ln10Cache.value, scale)
	}
	v, err := Ln(Ten, scale+4)
	if err != nil {
		return Decimal{}, err
	}
	ln10Cache = struct {
		scale int
		value Decimal
		ok    bool
	}{scale + 4, v, true}
	return Round(v, scale)
}

// Log10 returns the base-10 logarithm of d, computed as ln(d)/ln(10).
func Log10(d Decimal, scale int) (Decimal, error) {
	if d.sign == nan {
		return d, nil
	}
	if !d.IsPos() {
		return Decimal{}, traceInvalidArgument()
	}
	ws := workingScale(scale)
	lnD, err := Ln(d, ws)
	if err != nil {
		return Decimal{}, err
	}
	lnTen, err := ln10(ws)
	if err != nil {
		return Decimal{}, err
	}
	result, err := QuoExact(lnD, lnTen, ws)
	if err != nil {
		return Decimal{}, err
	}
	return Round(result, scale)
}

// Pow returns base**exp rounded to scale fractional digits. An integer
// exponent (of either sign) is handled by integerPower's binary
// exponentiation at the working scale; any other exponent falls back to the
// general identity base**exp = exp(exp * ln(base)), which requires base > 0.
// A zero exponent, or a base of exactly 1, returns exactly 1, with scale 0.
func Pow(base, exp Decimal, scale int) (Decimal, error) {
	if base.sign == nan || exp.sign == nan {
		return NaN, nil
	}
	if exp.IsZero() {
		return One, nil
	}
	if Eq(base, One) {
		return One, nil
	}
	if base.IsZero() && exp.IsNeg() {
		return Decimal{}, traceInvalidArgument()
	}

	truncExp, err := Trunc(exp, 0)
	if err != nil {
		return Decimal{}, err
	}
	if Eq(truncExp, exp) {
		n, err := ToInt64(truncExp)
		if err == nil {
			ws := workingScale(scale)
			neg := n < 0
			if neg {
				n = -n
			}
			result, err := integerPower(base, n, ws)
			if err != nil {
				return Decimal{}, err
			}
			if neg {
				result, err = QuoExact(One, result, ws)
				if err != nil {
					return Decimal{}, err
				}
			}
			return Round(result, scale)
		}
	}

	if !base.IsPos() {
		return Decimal{}, traceInvalidArgument()
	}
	ws := workingScale(scale)
	lnBase, err := Ln(base, ws)
	if err != nil {
		return Decimal{}, err
	}
	product, err := Mul(exp, lnBase)
	if err != nil {
		return Decimal{}, err
	}
	product, err = Round(product, ws)
	if err != nil {
		return Decimal{}, err
	}
	return Exp(product, scale)
}
