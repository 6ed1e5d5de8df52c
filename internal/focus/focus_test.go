package focus

import (
	"math"
	"testing"
)

func TestBoundedTransitions(t *testing.T) {
	for s := 0.0; s <= 100.0; s += 0.25 {
		if d := Decay(s); d < 0 || d > s {
			t.Fatalf("Decay(%v) = %v, want in [0, %v]", s, d, s)
		}
		if r := Reward(s); r < 0 || r > 100 {
			t.Fatalf("Reward(%v) = %v, want in [0, 100]", s, r)
		}
		if p := Penalize(s); p < 0 || p > s {
			t.Fatalf("Penalize(%v) = %v, want in [0, %v]", s, p, s)
		}
	}
}

func TestTransitionValues(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"decay mid", Decay, 50, 49.85},
		{"decay floor", Decay, 0.1, 0},
		{"reward mid", Reward, 50, 54},
		{"reward cap", Reward, 98, 100},
		{"penalize mid", Penalize, 50, 38},
		{"penalize floor", Penalize, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  State
	}{
		{100, High},
		{55, High},
		{54.999, Medium},
		{42, Medium},
		{30.001, Medium},
		{30, Low},
		{0, Low},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestTimePassedReadsRawScore(t *testing.T) {
	tests := []struct {
		score float64
		want  float64
	}{
		{55, TimePassedHigh},
		{54.999, TimePassedMedium},
		{30.001, TimePassedMedium},
		{30, TimePassedLow},
	}
	for _, tt := range tests {
		if got := TimePassed(tt.score); got != tt.want {
			t.Errorf("TimePassed(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	if High.String() != "HIGH" || Medium.String() != "MEDIUM" || Low.String() != "LOW" {
		t.Errorf("unexpected labels: %s %s %s", High, Medium, Low)
	}
}
