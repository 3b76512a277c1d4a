package decimal

import "testing"

func TestToInt64(t *testing.T) {
	tests := []struct {
		d    string
		want int64
	}{
		{"123", 123},
		{"-123", -123},
		{"0", 0},
	}
	for _, tt := range tests {
		n, err := ToInt64(MustParse(tt.d))
		if err != nil {
			t.Fatalf("ToInt64(%s): %v", tt.d, err)
		}
		if n != tt.want {
			t.Errorf("ToInt64(%s) = %d, want %d", tt.d, n, tt.want)
		}
	}
}

func TestToInt64Fraction(t *testing.T) {
	if _, err := ToInt64(MustParse("1.5")); Code(err) != ErrCodeValueOutOfRange {
		t.Errorf("ToInt64(1.5) code = %v, want VALUE_OUT_OF_RANGE", Code(err))
	}
}

func TestToDecimalRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 9999, 10000, 123456789, -123456789} {
		d, err := ToDecimal(n)
		if err != nil {
			t.Fatalf("ToDecimal(%d): %v", n, err)
		}
		got, err := ToInt64(d)
		if err != nil {
			t.Fatalf("ToInt64(ToDecimal(%d)): %v", n, err)
		}
		if got != n {
			t.Errorf("round trip %d -> %s -> %d", n, d.String(), got)
		}
	}
}

func TestToFloat64(t *testing.T) {
	f, err := ToFloat64(MustParse("1.5"))
	if err != nil {
		t.Fatal(err)
	}
	if f != 1.5 {
		t.Errorf("ToFloat64(1.5) = %v, want 1.5", f)
	}
}

func TestFromFloat64(t *testing.T) {
	d, err := FromFloat64(1.5)
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "1.5" {
		t.Errorf("FromFloat64(1.5) = %s, want 1.5", d.String())
	}
}
