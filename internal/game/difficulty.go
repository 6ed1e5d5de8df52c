package game

// timeLimits maps a level to its per-question time budget in seconds.
var timeLimits = map[int]float64{
	1:  4,
	2:  6,
	3:  6,
	4:  10,
	5:  14,
	6:  16,
	7:  20,
	8:  22,
	9:  26,
	10: 30,
}

// TimeLimit returns the question time budget for a level. Levels outside the
// table use the level 1 budget.
func TimeLimit(level int) float64 {
	if limit, ok := timeLimits[level]; ok {
		return limit
	}
	return timeLimits[MinLevel]
}

// nextLevel applies the round rules. The first matching rule wins.
func nextLevel(level int, accuracy float64, history []float64) int {
	switch {
	case accuracy <= 0.5:
		return max(MinLevel, level-1)
	case len(history) > 0 && (accuracy+history[len(history)-1])/2 > 0.9:
		return min(MaxLevel, level+1)
	default:
		return level
	}
}

// reconcileLevel closes a round. A level change restarts the question timer
// at the new limit, clears the history and requests a batch at the new level.
// Otherwise the accuracy is recorded and a low-water refill may be requested.
func (s *Session) reconcileLevel(accuracy float64) (*LevelChange, *RefillRequest) {
	old := s.Level
	next := nextLevel(old, accuracy, s.RoundHistory)

	if next == old {
		s.RoundHistory = append(s.RoundHistory, accuracy)
		return nil, s.lowWaterRefill()
	}

	s.Level = next
	s.QuestionTimer = TimeLimit(next)
	s.RoundHistory = nil
	if next > s.HighestLevel {
		s.HighestLevel = next
	}

	change := &LevelChange{From: old, To: next, Accuracy: accuracy, Round: s.Rounds}
	s.LevelChanges = append(s.LevelChanges, *change)

	return change, &RefillRequest{
		Generation: s.Generation,
		Level:      next,
		Count:      RefillBatch,
		Reason:     RefillLevelChange,
	}
}
