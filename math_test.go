package main

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		n, minN, maxN float64
		want          float64
	}{
		{"below", -3, 0, 1, 0},
		{"inside", 0.25, 0, 1, 0.25},
		{"above", 7, 0, 1, 1},
		{"at min", 0, 0, 1, 0},
		{"at max", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.n, tt.minN, tt.maxN); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.n, tt.minN, tt.maxN, got, tt.want)
			}
		})
	}

	if got := Clamp(5, 1, 10); got != 5 {
		t.Errorf("integer Clamp = %v, want 5", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2.0, 10.0, 0.0); got != 2 {
		t.Errorf("Lerp at 0 = %v, want 2", got)
	}
	if got := Lerp(2.0, 10.0, 1.0); got != 10 {
		t.Errorf("Lerp at 1 = %v, want 10", got)
	}
	if got := Lerp(2.0, 10.0, 0.5); got != 6 {
		t.Errorf("Lerp midway = %v, want 6", got)
	}
}

func TestFRectangleInset(t *testing.T) {
	r := FRect(10, 10, 50, 30).Inset(5)
	if want := FRect(15, 15, 45, 25); r != want {
		t.Errorf("Inset(5) = %+v, want %+v", r, want)
	}

	// collapses to the center once the inset eats the whole rect
	r = FRect(0, 0, 10, 10).Inset(20)
	if r.Dx() != 0 || r.Dy() != 0 {
		t.Errorf("overlarge inset left a %vx%v rect", r.Dx(), r.Dy())
	}

	r = FRect(0, 0, 10, 10).Inset(-5)
	if want := FRect(-5, -5, 15, 15); r != want {
		t.Errorf("Inset(-5) = %+v, want %+v", r, want)
	}
}

func TestCenterFRectangle(t *testing.T) {
	r := CenterFRectangle(FRectWH(40, 20), 100, 50)
	if want := FRect(80, 40, 120, 60); r != want {
		t.Errorf("CenterFRectangle = %+v, want %+v", r, want)
	}

	center := FRectangleCenter(r)
	if center.X != 100 || center.Y != 50 {
		t.Errorf("FRectangleCenter = %+v, want (100, 50)", center)
	}
}
