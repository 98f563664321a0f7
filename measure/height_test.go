package measure

import "testing"

func TestAggregateHeightMedianOdd(t *testing.T) {

	res := AggregateHeight([]float64{150, 152, 148, 151, 149}, DefaultHeightParams())

	if !res.Success {
		t.Fatalf("aggregation failed: %s", res.FailureReason)
	}

	if res.HeightCM != 150 {
		t.Errorf("median = %f, want 150", res.HeightCM)
	}

	if res.MeanCM != 150 {
		t.Errorf("mean = %f, want 150", res.MeanCM)
	}

	if res.Measurements != 5 {
		t.Errorf("measurements = %d, want 5", res.Measurements)
	}

	if res.Confidence != 75 {
		t.Errorf("confidence = %d, want 75", res.Confidence)
	}
}

func TestAggregateHeightMedianEven(t *testing.T) {

	res := AggregateHeight([]float64{148, 150, 152, 154}, DefaultHeightParams())

	if !res.Success {
		t.Fatalf("aggregation failed: %s", res.FailureReason)
	}

	if res.HeightCM != 151 {
		t.Errorf("median = %f, want 151", res.HeightCM)
	}
}

// TestAggregateHeightOutlier checks that an implausible candidate is
// discarded without shifting the median
func TestAggregateHeightOutlier(t *testing.T) {

	base := []float64{150, 152, 148, 151, 149}
	withOutlier := append(append([]float64{}, base...), 300)

	resBase := AggregateHeight(base, DefaultHeightParams())
	resOutlier := AggregateHeight(withOutlier, DefaultHeightParams())

	if resOutlier.HeightCM != resBase.HeightCM {
		t.Errorf("outlier shifted median from %f to %f",
			resBase.HeightCM, resOutlier.HeightCM)
	}

	if resOutlier.Measurements != resBase.Measurements {
		t.Errorf("outlier counted as a measurement: %d vs %d",
			resOutlier.Measurements, resBase.Measurements)
	}
}

// TestAggregateHeightNoSurvivors checks that zero surviving candidates
// yields a failed result rather than a degenerate statistic
func TestAggregateHeightNoSurvivors(t *testing.T) {

	res := AggregateHeight([]float64{20, 300, 0}, DefaultHeightParams())

	if res.Success {
		t.Error("expected failed result")
	}

	if res.Measurements != 0 {
		t.Errorf("measurements = %d, want 0", res.Measurements)
	}

	if res.HeightCM != 0 {
		t.Errorf("height = %f, want 0", res.HeightCM)
	}
}

func TestAggregateHeightConfidenceCap(t *testing.T) {

	candidates := make([]float64, 10)

	for i := range candidates {
		candidates[i] = 170
	}

	res := AggregateHeight(candidates, DefaultHeightParams())

	if res.Confidence != 100 {
		t.Errorf("confidence = %d, want 100", res.Confidence)
	}
}

// TestHeightCandidate checks the pixel distance to centimetre conversion
func TestHeightCandidate(t *testing.T) {

	p := DefaultHeightParams()

	// 3-4-5 triangle scaled by 200: distance 1000px, 0.15 scale
	got := HeightCandidate(0, 0, 600, 800, p)

	if got != 150 {
		t.Errorf("candidate = %f, want 150", got)
	}
}
