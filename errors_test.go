package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeTaxonomy(t *testing.T) {
	_, divErr := Quo(One, Zero)
	_, argErr := Parse("not-a-number")
	_, rangeErr := ToInt32(MustParse("99999999999999999999999"))

	assert.Equal(t, ErrCodeDivisionByZero, Code(divErr))
	assert.Equal(t, ErrCodeInvalidArgument, Code(argErr))
	assert.Equal(t, ErrCodeValueOutOfRange, Code(rangeErr))
	assert.Equal(t, NoError, Code(nil))
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "DIVISION_BY_ZERO", ErrCodeDivisionByZero.String())
	assert.Equal(t, "INVALID_ARGUMENT", ErrCodeInvalidArgument.String())
	assert.Equal(t, "VALUE_OUT_OF_RANGE", ErrCodeValueOutOfRange.String())
	assert.Equal(t, "NO_ERROR", NoError.String())
}
