package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Distribution
	}{
		{"empty", nil, Distribution{}},
		{"single", []float64{5}, Distribution{Mean: 5, P10: 5, P50: 5, P90: 5}},
		{"one to ten", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Distribution{Mean: 5.5, P10: 1, P50: 5, P90: 9}},
		{"unsorted input", []float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5}, Distribution{Mean: 5.5, P10: 1, P50: 5, P90: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			if math.Abs(got.Mean-tt.want.Mean) > 0.001 {
				t.Errorf("Mean = %v, want %v", got.Mean, tt.want.Mean)
			}
			if got.P10 != tt.want.P10 || got.P50 != tt.want.P50 || got.P90 != tt.want.P90 {
				t.Errorf("percentiles = %v/%v/%v, want %v/%v/%v",
					got.P10, got.P50, got.P90, tt.want.P10, tt.want.P50, tt.want.P90)
			}
		})
	}
}

func TestSummarizeDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Summarize(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}
