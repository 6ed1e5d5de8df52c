package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/abhisek/swipemath/internal/llm"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int   // max results (0 = unlimited)
	After  int64 // sequence > After
	Before int64 // sequence < Before
}

// Game event kinds.
const (
	GameKindStart = "start"
	GameKindEnd   = "end"
)

// GameStartData is recorded when a game leaves the menu.
type GameStartData struct {
	SessionID string
	Source    string // "llm" or "local"
}

// GameEndData is recorded when the global timer reaches zero.
type GameEndData struct {
	SessionID    string
	Score        int
	Answered     int
	Correct      int
	BestStreak   int
	FinalLevel   int
	HighestLevel int
	Timeouts     int
	Rounds       int
}

// JudgmentData is one applied judgment.
type JudgmentData struct {
	SessionID  string
	QuestionID string
	Equation   string
	IsCorrect  bool
	Direction  string
	Success    bool
	Level      int
	ScoreDelta int
	Streak     int
	Focus      float64
}

// LevelChangeData is one level transition.
type LevelChangeData struct {
	SessionID string
	From      int
	To        int
	Accuracy  float64
	Round     int
}

// GameRecord is a finished game as read back from history.
type GameRecord struct {
	Sequence  int64
	Timestamp time.Time
	GameEndData
}

// Accuracy returns correct/answered, or 0 when nothing was answered.
func (g GameRecord) Accuracy() float64 {
	if g.Answered == 0 {
		return 0
	}
	return float64(g.Correct) / float64(g.Answered)
}

// Stats aggregates every finished game.
type Stats struct {
	Games        int
	BestScore    int
	TotalScore   int
	Answered     int
	Correct      int
	BestStreak   int
	HighestLevel int
}

// Accuracy returns the lifetime accuracy.
func (s Stats) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// LLMEvent is a stored LLM request.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM calls for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	llm.Recorder

	AppendGameStart(ctx context.Context, data GameStartData) error
	AppendGameEnd(ctx context.Context, data GameEndData) error
	AppendJudgment(ctx context.Context, data JudgmentData) error
	AppendLevelChange(ctx context.Context, data LevelChangeData) error

	// RecentGames returns finished games, newest first.
	RecentGames(ctx context.Context, opts QueryOpts) ([]GameRecord, error)

	// Stats aggregates every finished game.
	Stats(ctx context.Context) (Stats, error)

	// LevelChanges returns the level transitions of one game in order.
	LevelChanges(ctx context.Context, sessionID string) ([]LevelChangeData, error)

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given ID, or nil if none exists.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// Reset deletes all game history. LLM request events are kept.
	Reset(ctx context.Context) error
}

// eventRepo implements EventRepo with ent's SQL builders and the global
// sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}
