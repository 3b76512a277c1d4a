package decimal

// Panic-wrapping convenience functions for this package's fallible parsing,
// arithmetic, rounding, and transcendental operations (the conversions in
// convert.go and Sci have none), for callers who have already established (by construction or
// by contract) that an operation cannot fail and don't want to thread an
// error return through call sites that can never see one.

func must(d Decimal, err error) Decimal {
	if err != nil {
		panic(err)
	}
	return d
}

// MustParse is like Parse but panics instead of returning an error.
func MustParse(s string) Decimal { return must(Parse(s)) }

// MustParseExact is like ParseExact but panics instead of returning an error.
func MustParseExact(s string, scale int) Decimal { return must(ParseExact(s, scale)) }

// MustAdd is like Add but panics instead of returning an error.
func MustAdd(a, b Decimal) Decimal { return must(Add(a, b)) }

// MustSub is like Sub but panics instead of returning an error.
func MustSub(a, b Decimal) Decimal { return must(Sub(a, b)) }

// MustMul is like Mul but panics instead of returning an error.
func MustMul(a, b Decimal) Decimal { return must(Mul(a, b)) }

// MustQuo is like Quo but panics instead of returning an error.
func MustQuo(a, b Decimal) Decimal { return must(Quo(a, b)) }

// MustQuoExact is like QuoExact but panics instead of returning an error.
func MustQuoExact(a, b Decimal, scale int) Decimal { return must(QuoExact(a, b, scale)) }

// MustMod is like Mod but panics instead of returning an error.
func MustMod(a, b Decimal) Decimal { return must(Mod(a, b)) }

// MustRound is like Round but panics instead of returning an error.
func MustRound(d Decimal, scale int) Decimal { return must(Round(d, scale)) }

// MustTrunc is like Trunc but panics instead of returning an error.
func MustTrunc(d Decimal, scale int) Decimal { return must(Trunc(d, scale)) }

// MustCeil is like Ceil but panics instead of returning an error.
func MustCeil(d Decimal) Decimal { return must(Ceil(d)) }

// MustFloor is like Floor but panics instead of returning an error.
func MustFloor(d Decimal) Decimal { return must(Floor(d)) }

// MustQuoTrunc is like QuoTrunc but panics instead of returning an error.
func MustQuoTrunc(a, b Decimal, scale int) Decimal { return must(QuoTrunc(a, b, scale)) }

// MustSqrt is like Sqrt but panics instead of returning an error.
func MustSqrt(d Decimal, scale int) Decimal { return must(Sqrt(d, scale)) }

// MustExp is like Exp but panics instead of returning an error.
func MustExp(d Decimal, scale int) Decimal { return must(Exp(d, scale)) }

// MustLn is like Ln but panics instead of returning an error.
func MustLn(d Decimal, scale int) Decimal { return must(Ln(d, scale)) }

// MustLog10 is like Log10 but panics instead of returning an error.
func MustLog10(d Decimal, scale int) Decimal { return must(Log10(d, scale)) }

// MustPow is like Pow but panics instead of returning an error.
func MustPow(base, exp Decimal, scale int) Decimal { return must(Pow(base, exp, scale)) }
