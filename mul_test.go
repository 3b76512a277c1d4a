package decimal

import "testing"

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"2", "3", "6"},
		{"1.5", "2", "3.0"},
		{"1.5", "2.5", "3.75"},
		{"-1.5", "2.5", "-3.75"},
		{"-1.5", "-2.5", "3.75"},
		{"0", "123.456", "0.000"},
		{"9999", "9999", "99980001"},
		{"0.1", "0.1", "0.01"},
	}
	for _, tt := range tests {
		a := MustParse(tt.a)
		b := MustParse(tt.b)
		got, err := Mul(a, b)
		if err != nil {
			t.Fatalf("Mul(%s, %s): %v", tt.a, tt.b, err)
		}
		if got.String() != tt.want {
			t.Errorf("Mul(%s, %s) = %s, want %s", tt.a, tt.b, got.String(), tt.want)
		}
	}
}

func TestMulNaN(t *testing.T) {
	got, err := Mul(NaN, Two)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsNaN() {
		t.Errorf("Mul(NaN, 2) = %s, want NaN", got.String())
	}
}
