package loose

import "testing"

func TestFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"-0.2", -0.2},
		{"- 0", 0},
		{"0. 2", 0.2},
		{"-5 0.1", -50.1},
		{"10 24 .3", 1024.3},
		{"50.1!24@.231", 50.1},
		{"82.21.21", 82.21},
		{".5", 0.5},
		{"1e3", 1000},
		{"2e", 2},
	}
	for _, tt := range tests {
		got, err := Float(tt.in)
		if err != nil {
			t.Errorf("Float(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Float(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFloatRejects(t *testing.T) {
	for _, in := range []string{"", "!0", ".-0", "abc", "."} {
		if _, err := Float(in); err == nil {
			t.Errorf("Float(%q) should fail", in)
		}
		if got := FloatOr(in, 42); got != 42 {
			t.Errorf("FloatOr(%q) = %v, want default", in, got)
		}
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"12", 12},
		{"-1 2", -12},
		{"7.9", 7},
		{"+3x", 3},
	}
	for _, tt := range tests {
		got, err := Int(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("Int(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if IsInt("x1") {
		t.Errorf("IsInt(x1) should be false")
	}
	if IntOr("", -1) != -1 {
		t.Errorf("IntOr default not applied")
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"10", 36000},
		{"10.", 36000},
		{"10.30", 37800},
		{"10:30", 37800},
		{"10.3015", 37815},
		{"0.0001", 1},
	}
	for _, tt := range tests {
		got, err := Time(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("Time(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := Time("10.123456"); err == nil {
		t.Errorf("six fractional digits should fail")
	}
	if TimeOr("x", -1) != -1 {
		t.Errorf("TimeOr default not applied")
	}
}

func TestColor(t *testing.T) {
	c, err := Color("#FF8000")
	if err != nil || c != (RGBA{255, 128, 0, 255}) {
		t.Fatalf("Color = %+v, %v", c, err)
	}
	if _, err := Color("FF8000"); err == nil {
		t.Fatalf("missing # should fail")
	}
}
