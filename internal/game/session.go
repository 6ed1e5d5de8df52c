// Package game implements the swipe quiz state machine: the focus-dilated
// timers, the judgment evaluator and the adaptive difficulty controller.
//
// A Session is not safe for concurrent use. Hosts serialize access, either by
// driving it from a single event loop or through Runner.
package game

import (
	"fmt"

	"github.com/abhisek/swipemath/internal/focus"
	"github.com/abhisek/swipemath/internal/questions"
)

// Settings are the tunables fixed for the lifetime of a game.
type Settings struct {
	// MaxGameTime is the global countdown in game seconds.
	MaxGameTime float64

	// InitialFocus is the focus score at game start.
	InitialFocus float64

	// StartLevel is the difficulty level at game start.
	StartLevel int
}

// DefaultSettings returns the standard game tunables.
func DefaultSettings() Settings {
	return Settings{
		MaxGameTime:  60,
		InitialFocus: focus.Max,
		StartLevel:   MinLevel,
	}
}

// Session holds every piece of mutable game state.
type Session struct {
	settings Settings

	// ID identifies the current game for persistence.
	ID string

	// Generation increments on every Start. Refill results and tick chains
	// tagged with an older generation are stale.
	Generation uint64

	Phase Phase

	// Queue holds the upcoming questions. The front is on display.
	Queue []questions.Question

	// Focus is the raw focus score in [0, 100].
	Focus float64

	// GlobalTimer is the remaining game time in seconds.
	GlobalTimer float64

	// QuestionTimer is the remaining time for the front question in seconds.
	QuestionTimer float64

	Level int

	// RoundHistory holds the accuracy of each round played at the current level.
	RoundHistory []float64

	Score  int
	Streak int

	// RoundAnswered and RoundCorrect count judgments in the current round.
	RoundAnswered int
	RoundCorrect  int

	// Totals across the whole game, for the summary.
	TotalAnswered int
	TotalCorrect  int
	BestStreak    int
	HighestLevel  int
	Timeouts      int
	Rounds        int
	LevelChanges  []LevelChange

	// timeoutFired is set once a timeout has been issued for the front question.
	timeoutFired bool

	// lowWaterPending is set while a low-water refill is outstanding.
	lowWaterPending bool
}

// NewSession returns a session in the menu phase.
func NewSession(settings Settings) *Session {
	if settings.StartLevel < MinLevel || settings.StartLevel > MaxLevel {
		settings.StartLevel = MinLevel
	}
	return &Session{
		settings: settings,
		Phase:    PhaseMenu,
		Level:    settings.StartLevel,
		Focus:    settings.InitialFocus,
	}
}

// Settings returns the tunables the session was created with.
func (s *Session) Settings() Settings { return s.settings }

// Start resets all state for a new game identified by id and moves to the
// loading phase. The returned request fetches the opening batch.
func (s *Session) Start(id string) RefillRequest {
	gen := s.Generation + 1
	*s = Session{
		settings:     s.settings,
		ID:           id,
		Generation:   gen,
		Phase:        PhaseLoading,
		Focus:        s.settings.InitialFocus,
		GlobalTimer:  s.settings.MaxGameTime,
		Level:        s.settings.StartLevel,
		HighestLevel: s.settings.StartLevel,
	}
	s.QuestionTimer = TimeLimit(s.Level)

	return RefillRequest{
		Generation: gen,
		Level:      s.Level,
		Count:      RefillBatch,
		Reason:     RefillInitial,
	}
}

// ApplyRefill appends the questions fetched for req. Results for an older
// game, or arriving after the game ended, are dropped and false is returned.
// The first non-empty batch moves a loading session into play.
func (s *Session) ApplyRefill(req RefillRequest, qs []questions.Question) bool {
	if req.Generation != s.Generation {
		return false
	}
	if req.Reason == RefillLowWater {
		s.lowWaterPending = false
	}
	if s.Phase != PhaseLoading && s.Phase != PhasePlaying {
		return false
	}

	s.Queue = append(s.Queue, qs...)

	if s.Phase == PhaseLoading && len(s.Queue) > 0 {
		s.Phase = PhasePlaying
		s.QuestionTimer = TimeLimit(s.Level)
		s.timeoutFired = false
	}
	return true
}

// Front returns the question on display.
func (s *Session) Front() (questions.Question, bool) {
	if len(s.Queue) == 0 {
		return questions.Question{}, false
	}
	return s.Queue[0], true
}

// Tick advances the game by one tick. The amount of game time consumed is
// read from the raw focus score. Reaching zero on the global timer ends the
// game and skips the remaining steps.
func (s *Session) Tick() TickResult {
	if s.Phase != PhasePlaying {
		return TickResult{}
	}

	passed := focus.TimePassed(s.Focus)
	res := TickResult{TimePassed: passed}

	s.GlobalTimer -= passed
	if s.GlobalTimer <= 0 {
		s.GlobalTimer = 0
		s.Phase = PhaseGameOver
		res.GameOver = true
		return res
	}

	if len(s.Queue) > 0 {
		s.QuestionTimer = max(0, s.QuestionTimer-passed)
	}

	s.Focus = focus.Decay(s.Focus)

	if s.QuestionTimer == 0 && len(s.Queue) > 0 && !s.timeoutFired {
		s.timeoutFired = true
		out := s.judge(Timeout)
		res.Timeout = &out
	}
	return res
}

// Judge applies a player judgment to the front question. It is ignored
// unless the game is in play with a non-empty queue. Judge panics on a
// direction other than Affirm, Deny or Timeout.
func (s *Session) Judge(dir Direction) JudgmentOutcome {
	if !dir.valid() {
		panic(fmt.Sprintf("game: invalid judgment direction %d", int(dir)))
	}
	if s.Phase != PhasePlaying || len(s.Queue) == 0 {
		return JudgmentOutcome{Direction: dir}
	}
	return s.judge(dir)
}

func (s *Session) judge(dir Direction) JudgmentOutcome {
	q := s.Queue[0]
	success := (dir == Affirm && q.IsCorrect) || (dir == Deny && !q.IsCorrect)

	out := JudgmentOutcome{
		Applied:   true,
		Question:  q,
		Direction: dir,
		Success:   success,
	}

	if success {
		out.ScoreDelta = 10 + 2*s.Streak
		s.Score += out.ScoreDelta
		s.Streak++
		s.RoundCorrect++
		s.TotalCorrect++
		s.BestStreak = max(s.BestStreak, s.Streak)
		s.Focus = focus.Reward(s.Focus)
		out.Feedback = FeedbackSuccess
	} else {
		s.Streak = 0
		s.Focus = focus.Penalize(s.Focus)
		if dir == Timeout {
			s.Timeouts++
		} else {
			out.Feedback = FeedbackFailure
		}
	}

	s.QuestionTimer = TimeLimit(s.Level)
	s.Queue = s.Queue[1:]
	s.timeoutFired = false
	s.TotalAnswered++
	s.RoundAnswered++

	if s.RoundAnswered == QuestionsPerRound {
		s.Rounds++
		accuracy := float64(s.RoundCorrect) / QuestionsPerRound
		out.RoundComplete = true
		out.Accuracy = accuracy
		out.LevelChange, out.Refill = s.reconcileLevel(accuracy)
		s.RoundCorrect = 0
		s.RoundAnswered = 0
	} else {
		out.Refill = s.lowWaterRefill()
	}

	out.Score = s.Score
	out.Streak = s.Streak
	out.Focus = s.Focus
	return out
}

// lowWaterRefill requests a batch at the current level when the queue runs
// low, unless one is already outstanding.
func (s *Session) lowWaterRefill() *RefillRequest {
	if len(s.Queue) >= RefillThreshold || s.lowWaterPending {
		return nil
	}
	s.lowWaterPending = true
	return &RefillRequest{
		Generation: s.Generation,
		Level:      s.Level,
		Count:      RefillBatch,
		Reason:     RefillLowWater,
	}
}
