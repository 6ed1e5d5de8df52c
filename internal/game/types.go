package game

import (
	"fmt"

	"github.com/abhisek/swipemath/internal/questions"
)

const (
	// QuestionsPerRound is the number of judgments between level reconciliations.
	QuestionsPerRound = 10

	// RefillThreshold is the queue length below which more questions are requested.
	RefillThreshold = 5

	// RefillBatch is the number of questions requested per refill.
	RefillBatch = 10

	MinLevel = 1
	MaxLevel = 10
)

// Phase is the game lifecycle state.
type Phase int

const (
	PhaseMenu     Phase = iota // Nothing started yet
	PhaseLoading               // Waiting for the first batch of questions
	PhasePlaying               // Timers running, judgments accepted
	PhaseGameOver              // Global timer reached zero
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Direction is a judgment about the front card. The zero value is invalid.
type Direction int

const (
	Affirm  Direction = iota + 1 // Swipe right: the equation is true
	Deny                         // Swipe left: the equation is false
	Timeout                      // Question timer ran out
)

func (d Direction) String() string {
	switch d {
	case Affirm:
		return "affirm"
	case Deny:
		return "deny"
	case Timeout:
		return "timeout"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) valid() bool {
	return d == Affirm || d == Deny || d == Timeout
}

// Feedback is the presentation cue produced by a judgment.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackSuccess
	FeedbackFailure
)

// RefillReason records why a refill was requested.
type RefillReason int

const (
	RefillInitial RefillReason = iota
	RefillLowWater
	RefillLevelChange
)

func (r RefillReason) String() string {
	switch r {
	case RefillInitial:
		return "initial"
	case RefillLowWater:
		return "low_water"
	case RefillLevelChange:
		return "level_change"
	default:
		return fmt.Sprintf("RefillReason(%d)", int(r))
	}
}

// RefillRequest asks the host to fetch questions and hand them back through
// Session.ApplyRefill. Generation ties the request to one game.
type RefillRequest struct {
	Generation uint64
	Level      int
	Count      int
	Reason     RefillReason
}

// LevelChange records a level transition at the end of a round.
type LevelChange struct {
	From     int
	To       int
	Accuracy float64
	Round    int
}

// JudgmentOutcome describes what a judgment did to the session.
// Applied is false when the judgment was ignored.
type JudgmentOutcome struct {
	Applied    bool
	Question   questions.Question
	Direction  Direction
	Success    bool
	Feedback   Feedback
	ScoreDelta int
	Score      int
	Streak     int
	Focus      float64

	// RoundComplete is set on the judgment that closed a round.
	RoundComplete bool
	Accuracy      float64

	LevelChange *LevelChange
	Refill      *RefillRequest
}

// TickResult describes what one tick did to the session.
type TickResult struct {
	TimePassed float64
	GameOver   bool

	// Timeout is set when the question timer expired on this tick.
	Timeout *JudgmentOutcome
}
