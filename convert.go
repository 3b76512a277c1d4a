package decimal

import (
	"math"
	"strconv"
)

// L4 conversions between Decimal and Go's built-in numeric types
// (spec.md §4.13).

// ToDecimal converts an int64 into an exact, scale-0 Decimal.
func ToDecimal(n int64) (Decimal, error) {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	v := uintToVar(u)
	if neg && !v.isZero() {
		v.sign = negative
	}
	return v.decimal()
}

// uintToVar packs u into a numVar's limb array, most-significant-limb
// first, base nbase.
func uintToVar(u uint64) numVar {
	if u == 0 {
		return zeroVar(0)
	}
	var rev []int16
	for u > 0 {
		rev = append(rev, int16(u%nbase))
		u /= nbase
	}
	digits := make([]int16, len(rev))
	for i, d := range rev {
		digits[len(rev)-1-i] = d
	}
	return numVar{sign: positive, weight: len(digits) - 1, digits: digits}
}

// ToInt32 converts d to an int32, failing with VALUE_OUT_OF_RANGE if d has
// a nonzero fractional part or does not fit. NaN fails with
// INVALID_ARGUMENT.
func ToInt32(d Decimal) (int32, error) {
	n, err := ToInt64(d)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, traceValueOutOfRange()
	}
	return int32(n), nil
}

// ToInt64 converts d to an int64, failing with VALUE_OUT_OF_RANGE if d has
// a nonzero fractional part or does not fit. NaN fails with
// INVALID_ARGUMENT.
func ToInt64(d Decimal) (int64, error) {
	if d.sign == nan {
		return 0, traceInvalidArgument()
	}
	v := makeVar(d)
	if hasFraction(&v) {
		return 0, traceValueOutOfRange()
	}
	trunc := v
	roundOrTrunc(&trunc, 0, false)

	var u uint64
	for _, limb := range trunc.digits {
		if u > (math.MaxUint64-uint64(limb))/nbase {
			return 0, traceValueOutOfRange()
		}
		u = u*nbase + uint64(limb)
	}
	for i := len(trunc.digits); i <= trunc.weight; i++ {
		if u > math.MaxUint64/nbase {
			return 0, traceValueOutOfRange()
		}
		u *= nbase
	}
	if trunc.sign == negative {
		if u > uint64(math.MaxInt64)+1 {
			return 0, traceValueOutOfRange()
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, traceValueOutOfRange()
	}
	return int64(u), nil
}

// ToFloat32 converts d to the nearest float32, via ToFloat64.
func ToFloat32(d Decimal) (float32, error) {
	f, err := ToFloat64(d)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// ToFloat64 converts d to the nearest float64, by formatting d's decimal
// text and handing it to strconv — the one place this package leans on the
// standard library's own correctly-rounded decimal-to-binary conversion
// rather than reimplementing it, the same division of labor
// encoding/json's decimal handling makes.
func ToFloat64(d Decimal) (float64, error) {
	if d.sign == nan {
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, traceValueOutOfRange()
	}
	return f, nil
}

// FromFloat64 converts f to the Decimal with the same digits as Go's
// shortest round-tripping decimal representation of f (strconv.FormatFloat's
// 'f' form with precision -1). NaN converts to NaN; +/-Inf fails with
// INVALID_ARGUMENT.
func FromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) {
		return NaN, nil
	}
	if math.IsInf(f, 0) {
		return Decimal{}, traceInvalidArgument()
	}
	return Parse(strconv.FormatFloat(f, 'f', -1, 64))
}

// FromFloat32 converts f to the Decimal with the same text as Go's shortest
// round-tripping decimal representation of f.
func FromFloat32(f float32) (Decimal, error) {
	f64 := float64(f)
	if math.IsNaN(f64) {
		return NaN, nil
	}
	if math.IsInf(f64, 0) {
		return Decimal{}, traceInvalidArgument()
	}
	return Parse(strconv.FormatFloat(f64, 'f', -1, 32))
}
