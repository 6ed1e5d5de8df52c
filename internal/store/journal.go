package store

import (
	"context"
	"errors"

	"github.com/abhisek/swipemath/internal/game"
)

// Journal translates game outcomes into appended events. A Journal over a
// nil repo records nothing.
type Journal struct {
	repo EventRepo
}

// NewJournal creates a Journal writing to repo.
func NewJournal(repo EventRepo) *Journal {
	return &Journal{repo: repo}
}

// Enabled reports whether events are being recorded.
func (j *Journal) Enabled() bool {
	return j != nil && j.repo != nil
}

// Start records the beginning of a game.
func (j *Journal) Start(ctx context.Context, sessionID, source string) error {
	if !j.Enabled() {
		return nil
	}
	return j.repo.AppendGameStart(ctx, GameStartData{SessionID: sessionID, Source: source})
}

// Judgment records an applied judgment and the level change it caused, if
// any. Outcomes that were not applied are skipped.
func (j *Journal) Judgment(ctx context.Context, sessionID string, out game.JudgmentOutcome) error {
	if !j.Enabled() || !out.Applied {
		return nil
	}

	err := j.repo.AppendJudgment(ctx, JudgmentData{
		SessionID:  sessionID,
		QuestionID: out.Question.ID,
		Equation:   out.Question.Equation,
		IsCorrect:  out.Question.IsCorrect,
		Direction:  out.Direction.String(),
		Success:    out.Success,
		Level:      out.Question.Difficulty,
		ScoreDelta: out.ScoreDelta,
		Streak:     out.Streak,
		Focus:      out.Focus,
	})

	if lc := out.LevelChange; lc != nil {
		err = errors.Join(err, j.repo.AppendLevelChange(ctx, LevelChangeData{
			SessionID: sessionID,
			From:      lc.From,
			To:        lc.To,
			Accuracy:  lc.Accuracy,
			Round:     lc.Round,
		}))
	}
	return err
}

// End records the final totals of a game.
func (j *Journal) End(ctx context.Context, sum game.Summary) error {
	if !j.Enabled() {
		return nil
	}
	return j.repo.AppendGameEnd(ctx, GameEndData{
		SessionID:    sum.ID,
		Score:        sum.Score,
		Answered:     sum.TotalAnswered,
		Correct:      sum.TotalCorrect,
		BestStreak:   sum.BestStreak,
		FinalLevel:   sum.FinalLevel,
		HighestLevel: sum.HighestLevel,
		Timeouts:     sum.Timeouts,
		Rounds:       sum.Rounds,
	})
}
