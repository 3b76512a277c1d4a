package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approxEqual(t *testing.T, got, want Decimal, scale int) {
	t.Helper()
	diff, err := Sub(got, want)
	require.NoError(t, err)
	assert.Truef(t, isNegligible(diff, scale-2), "got %s, want approximately %s", got.String(), want.String())
}

func TestSqrt(t *testing.T) {
	got, err := Sqrt(MustParse("2"), 20)
	require.NoError(t, err)
	want := MustParse("1.41421356237309504880")
	approxEqual(t, got, want, 20)
}

func TestSqrtPerfectSquare(t *testing.T) {
	got, err := Sqrt(MustParse("144"), 5)
	require.NoError(t, err)
	assert.Equal(t, "12.00000", got.String())
}

func TestSqrtNegative(t *testing.T) {
	_, err := Sqrt(MustParse("-1"), 5)
	assert.Equal(t, ErrCodeInvalidArgument, Code(err))
}

func TestExpZero(t *testing.T) {
	got, err := Exp(Zero, 10)
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())
}

func TestExpOne(t *testing.T) {
	got, err := Exp(One, 15)
	require.NoError(t, err)
	want := MustParse("2.718281828459045")
	approxEqual(t, got, want, 15)
}

func TestLnOfOne(t *testing.T) {
	got, err := Ln(One, 10)
	require.NoError(t, err)
	assert.Equal(t, "0.0000000000", got.String())
}

func TestLnExpInverse(t *testing.T) {
	x := MustParse("5.25")
	lnX, err := Ln(x, 20)
	require.NoError(t, err)
	expLnX, err := Exp(lnX, 10)
	require.NoError(t, err)
	approxEqual(t, expLnX, x, 10)
}

func TestLog10(t *testing.T) {
	got, err := Log10(MustParse("1000"), 10)
	require.NoError(t, err)
	approxEqual(t, got, MustParse("3"), 10)
}

func TestLnNonPositive(t *testing.T) {
	_, err := Ln(Zero, 5)
	assert.Equal(t, ErrCodeInvalidArgument, Code(err))
}

func TestPowIntegerExponent(t *testing.T) {
	got, err := Pow(MustParse("2"), MustParse("10"), 5)
	require.NoError(t, err)
	assert.Equal(t, "1024.00000", got.String())
}

func TestPowNegativeIntegerExponent(t *testing.T) {
	got, err := Pow(MustParse("2"), MustParse("-1"), 5)
	require.NoError(t, err)
	assert.Equal(t, "0.50000", got.String())
}

func TestPowFractionalExponent(t *testing.T) {
	got, err := Pow(MustParse("4"), MustParse("0.5"), 10)
	require.NoError(t, err)
	approxEqual(t, got, MustParse("2"), 10)
}

func TestPowZeroNegative(t *testing.T) {
	_, err := Pow(Zero, MustParse("-1"), 5)
	assert.Equal(t, ErrCodeInvalidArgument, Code(err))
}

func TestPowZeroPositive(t *testing.T) {
	got, err := Pow(Zero, MustParse("3"), 5)
	require.NoError(t, err)
	assert.Equal(t, "0.00000", got.String())
}
