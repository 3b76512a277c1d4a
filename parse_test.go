package decimal

import "testing"

func TestParseAndString(t *testing.T) {
	tests := []string{
		"0", "1", "-1", "123", "0.5", "-0.5", "1.10", "99.995",
		"0.001", "-0.001", "123.456000", "10000.0001", "0.0000001",
	}
	for _, s := range tests {
		d, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := d.String(); got != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseSign(t *testing.T) {
	d, err := Parse("+5")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "5" {
		t.Errorf("Parse(+5) = %s, want 5", d.String())
	}
}

func TestParseNaN(t *testing.T) {
	for _, s := range []string{"NaN", "nan", "NAN"} {
		d, err := Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		if !d.IsNaN() {
			t.Errorf("Parse(%q) = %s, want NaN", s, d.String())
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "-", "+", "1.2.3", "abc", "1.2a", ".", "1e", "1e+", "1ee2"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", s)
		}
	}
}

func TestParseExponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.5e10", "15000000000"},
		{"1.5E10", "15000000000"},
		{"1.5e+2", "150"},
		{"1.5e-2", "0.015"},
		{"0.12e-1", "0.012"},
		{"100e-2", "1.00"},
		{"-1.5e2", "-150"},
		{"2e0", "2"},
	}
	for _, tt := range tests {
		d, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got := d.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseExact(t *testing.T) {
	if _, err := ParseExact("1.50", 2); err != nil {
		t.Fatalf("ParseExact(1.50, 2): %v", err)
	}
	if _, err := ParseExact("1.5", 2); err == nil {
		t.Error("ParseExact(1.5, 2) succeeded, want error")
	}
}
