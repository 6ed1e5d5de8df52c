package game

import (
	"math"

	"github.com/abhisek/swipemath/internal/focus"
	"github.com/abhisek/swipemath/internal/questions"
)

// Snapshot is the read-only view of a session handed to presenters.
type Snapshot struct {
	Phase Phase

	// TimerSeconds is the global timer rounded up to whole seconds.
	TimerSeconds int

	Score int
	Level int

	// Focus is the focus score rounded to the nearest integer.
	Focus      int
	FocusState focus.State

	// QuestionRatio is QuestionTimer divided by the level limit, in [0, 1].
	QuestionRatio float64

	Streak        int
	QueueLen      int
	RoundAnswered int

	// Front is the question on display; HasFront reports whether there is one.
	Front    questions.Question
	HasFront bool

	// Upcoming holds up to two questions behind the front, for stacked cards.
	Upcoming []questions.Question
}

// Snapshot captures the current presentation state.
func (s *Session) Snapshot() Snapshot {
	ratio := 0.0
	if limit := TimeLimit(s.Level); limit > 0 {
		ratio = math.Min(1, math.Max(0, s.QuestionTimer/limit))
	}

	snap := Snapshot{
		Phase:         s.Phase,
		TimerSeconds:  int(math.Ceil(s.GlobalTimer)),
		Score:         s.Score,
		Level:         s.Level,
		Focus:         int(math.Round(s.Focus)),
		FocusState:    focus.Classify(s.Focus),
		QuestionRatio: ratio,
		Streak:        s.Streak,
		QueueLen:      len(s.Queue),
		RoundAnswered: s.RoundAnswered,
	}
	if q, ok := s.Front(); ok {
		snap.Front = q
		snap.HasFront = true
		end := min(len(s.Queue), 3)
		snap.Upcoming = append([]questions.Question(nil), s.Queue[1:end]...)
	}
	return snap
}

// Summary is the end-of-game report.
type Summary struct {
	ID            string
	Score         int
	TotalAnswered int
	TotalCorrect  int
	BestStreak    int
	FinalLevel    int
	HighestLevel  int
	Timeouts      int
	Rounds        int
	LevelChanges  []LevelChange
}

// Accuracy returns the fraction of judgments that succeeded.
func (s Summary) Accuracy() float64 {
	if s.TotalAnswered == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalAnswered)
}

// Summary reports the game totals.
func (s *Session) Summary() Summary {
	return Summary{
		ID:            s.ID,
		Score:         s.Score,
		TotalAnswered: s.TotalAnswered,
		TotalCorrect:  s.TotalCorrect,
		BestStreak:    s.BestStreak,
		FinalLevel:    s.Level,
		HighestLevel:  s.HighestLevel,
		Timeouts:      s.Timeouts,
		Rounds:        s.Rounds,
		LevelChanges:  append([]LevelChange(nil), s.LevelChanges...),
	}
}
