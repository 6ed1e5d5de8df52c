// Package focus models the simulated attention score that dilates game time.
//
// The score lives in [0, 100]. It decays a little every tick, recovers on a
// correct judgment and drops sharply on a wrong one or a timeout. Callers
// derive the rate at which game time passes from the raw score; the discrete
// State is for display only.
package focus

import "fmt"

const (
	Min = 0.0
	Max = 100.0

	DecayPerTick  = 0.15
	RewardPoints  = 4.0
	PenaltyPoints = 12.0

	// HighThreshold and LowThreshold are both inclusive.
	HighThreshold = 55.0
	LowThreshold  = 30.0

	// Seconds of game time consumed per tick in each band.
	TimePassedHigh   = 0.07
	TimePassedMedium = 0.10
	TimePassedLow    = 0.14
)

// State is the discretized focus band.
type State int

const (
	Low State = iota
	Medium
	High
)

// String returns the label shown next to the focus meter.
func (s State) String() string {
	switch s {
	case High:
		return "HIGH"
	case Medium:
		return "MEDIUM"
	case Low:
		return "LOW"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Decay applies one tick of attention loss.
func Decay(score float64) float64 {
	return clamp(score - DecayPerTick)
}

// Reward applies the recovery for a successful judgment.
func Reward(score float64) float64 {
	return clamp(score + RewardPoints)
}

// Penalize applies the drop for a failed judgment, including timeouts.
func Penalize(score float64) float64 {
	return clamp(score - PenaltyPoints)
}

// Classify maps a score to its band.
func Classify(score float64) State {
	switch {
	case score >= HighThreshold:
		return High
	case score <= LowThreshold:
		return Low
	default:
		return Medium
	}
}

// TimePassed returns the seconds of game time one tick consumes at the given
// score. Higher focus makes time pass more slowly.
func TimePassed(score float64) float64 {
	switch {
	case score >= HighThreshold:
		return TimePassedHigh
	case score <= LowThreshold:
		return TimePassedLow
	default:
		return TimePassedMedium
	}
}

func clamp(score float64) float64 {
	if score < Min {
		return Min
	}
	if score > Max {
		return Max
	}
	return score
}
