package decimal

// Package-level constants, some of which the transcendental routines use
// internally (Two in the Newton and Ln steps, Ten for ln(10), the Ln
// range-reduction bounds). Each is built directly from its limb representation
// rather than through Parse, so these are available before parse.go's
// grammar exists and carry no parse error to check.
var (
	Zero = Decimal{sign: positive}
	NaN  = Decimal{sign: nan}

	One = Decimal{sign: positive, weight: 0, dscale: 0, digits: []int16{1}}
	Two = Decimal{sign: positive, weight: 0, dscale: 0, digits: []int16{2}}
	Ten = Decimal{sign: positive, weight: 0, dscale: 0, digits: []int16{10}}

	// Half is 0.5.
	Half = Decimal{sign: positive, weight: -1, dscale: 1, digits: []int16{5000}}

	// PointNine and OnePointOne bound the Newton/Taylor-reduction window
	// (0.9, 1.1) Ln uses to decide when it has reduced its argument close
	// enough to 1 for the Taylor series to converge quickly.
	PointNine   = Decimal{sign: positive, weight: -1, dscale: 1, digits: []int16{9000}}
	OnePointOne = Decimal{sign: positive, weight: 0, dscale: 1, digits: []int16{1, 1000}}

	// PointZeroOne is 0.01.
	PointZeroOne = Decimal{sign: positive, weight: -1, dscale: 2, digits: []int16{100}}
)
