package detect

import "testing"

// TestRepCounterCycles checks that a signal crossing the full hysteresis
// band three times counts exactly three repetitions
func TestRepCounterCycles(t *testing.T) {

	counter := NewRepCounter(DefaultRepParams())

	for cycle := 0; cycle < 3; cycle++ {
		counter.Update(170)
		counter.Update(165)
		counter.Update(60)
		counter.Update(55)
	}

	counter.Update(170)

	if got := counter.Count(); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}

	if counter.Position() != Up {
		t.Errorf("position = %s, want UP", counter.Position())
	}
}

// TestRepCounterHysteresis checks that a signal oscillating strictly inside
// the band never changes the counter
func TestRepCounterHysteresis(t *testing.T) {

	counter := NewRepCounter(DefaultRepParams())

	for _, angle := range []float64{150, 80, 140, 90, 120, 71, 159, 100} {
		if counter.Update(angle) {
			t.Errorf("angle %f inside the band completed a repetition", angle)
		}
	}

	if got := counter.Count(); got != 0 {
		t.Errorf("count = %d, want 0", got)
	}

	if counter.Position() != Up {
		t.Errorf("position = %s, want UP", counter.Position())
	}
}

// TestRepCounterNoDoubleCount checks that staying below the low threshold
// counts a single repetition
func TestRepCounterNoDoubleCount(t *testing.T) {

	counter := NewRepCounter(DefaultRepParams())

	for _, angle := range []float64{170, 60, 65, 55, 60} {
		counter.Update(angle)
	}

	if got := counter.Count(); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}

	if counter.Position() != Down {
		t.Errorf("position = %s, want DOWN", counter.Position())
	}
}

// TestAngle checks the three point angle folds into [0,180]
func TestAngle(t *testing.T) {

	tests := []struct {
		name                   string
		ax, ay, bx, by, cx, cy float64
		want                   float64
	}{
		{"straight", 0, 0, 0, 100, 0, 200, 180},
		{"right angle", 0, 0, 0, 100, 100, 100, 90},
		{"folded reflex", 0, 0, 0, 100, -100, 100, 90},
	}

	for _, tt := range tests {

		got := Angle(tt.ax, tt.ay, tt.bx, tt.by, tt.cx, tt.cy)

		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: angle = %f, want %f", tt.name, got, tt.want)
		}
	}
}
