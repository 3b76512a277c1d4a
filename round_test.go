package decimal

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		d     string
		scale int
		want  string
	}{
		{"1.25", 1, "1.3"},
		{"1.24", 1, "1.2"},
		{"1.245", 2, "1.25"},
		{"-1.25", 1, "-1.3"},
		{"1.5", 0, "2"},
		{"-1.5", 0, "-2"},
		{"0.5", 0, "1"},
		{"123", 0, "123"},
		{"123.456", 5, "123.45600"},
		{"99.995", 2, "100.00"},
	}
	for _, tt := range tests {
		got, err := Round(MustParse(tt.d), tt.scale)
		if err != nil {
			t.Fatalf("Round(%s, %d): %v", tt.d, tt.scale, err)
		}
		if got.String() != tt.want {
			t.Errorf("Round(%s, %d) = %s, want %s", tt.d, tt.scale, got.String(), tt.want)
		}
	}
}

func TestTrunc(t *testing.T) {
	tests := []struct {
		d     string
		scale int
		want  string
	}{
		{"1.29", 1, "1.2"},
		{"-1.29", 1, "-1.2"},
		{"1.5", 0, "1"},
		{"-1.5", 0, "-1"},
		{"123.456", 5, "123.45600"},
	}
	for _, tt := range tests {
		got, err := Trunc(MustParse(tt.d), tt.scale)
		if err != nil {
			t.Fatalf("Trunc(%s, %d): %v", tt.d, tt.scale, err)
		}
		if got.String() != tt.want {
			t.Errorf("Trunc(%s, %d) = %s, want %s", tt.d, tt.scale, got.String(), tt.want)
		}
	}
}

func TestCeilFloor(t *testing.T) {
	tests := []struct {
		d, ceil, floor string
	}{
		{"1.5", "2", "1"},
		{"-1.5", "-1", "-2"},
		{"2", "2", "2"},
		{"-2", "-2", "-2"},
		{"0.001", "1", "0"},
		{"-0.001", "0", "-1"},
	}
	for _, tt := range tests {
		c, err := Ceil(MustParse(tt.d))
		if err != nil {
			t.Fatalf("Ceil(%s): %v", tt.d, err)
		}
		if c.String() != tt.ceil {
			t.Errorf("Ceil(%s) = %s, want %s", tt.d, c.String(), tt.ceil)
		}
		f, err := Floor(MustParse(tt.d))
		if err != nil {
			t.Fatalf("Floor(%s): %v", tt.d, err)
		}
		if f.String() != tt.floor {
			t.Errorf("Floor(%s) = %s, want %s", tt.d, f.String(), tt.floor)
		}
	}
}
