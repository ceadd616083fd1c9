package mathutil

import "testing"

func TestYawPitchRoll(t *testing.T) {
	tests := []struct {
		yaw, pitch, roll float64
		in, want         Vec3
	}{
		{0, 0, 0, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		{90, 0, 0, Forward, Vec3{1, 0, 0}},
		{0, 90, 0, Forward, Vec3{0, -1, 0}},
		{0, 0, 90, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		// roll is applied first, then yaw
		{90, 0, 90, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{90, 0, 90, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		got := YawPitchRoll(tt.yaw, tt.pitch, tt.roll).MulVec3(tt.in)
		if !got.ApproxEqual(tt.want, 1e-9) {
			t.Errorf("YawPitchRoll(%g, %g, %g) × %v = %v, want %v", tt.yaw, tt.pitch, tt.roll, tt.in, got, tt.want)
		}
	}
}
