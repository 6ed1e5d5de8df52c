package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

var gameEndColumns = []string{
	"session_id", "score", "answered", "correct", "best_streak",
	"final_level", "highest_level", "timeouts", "rounds",
}

func (r *eventRepo) insert(ctx context.Context, table string, cols []string, vals ...any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	allCols := append([]string{"sequence", "timestamp"}, cols...)
	allVals := append([]any{seqNum, time.Now().UTC()}, vals...)

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(table).
		Columns(allCols...).
		Values(allVals...).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

func (r *eventRepo) AppendGameStart(ctx context.Context, data GameStartData) error {
	err := r.insert(ctx, tableGames,
		[]string{"session_id", "kind", "source"},
		data.SessionID, GameKindStart, data.Source,
	)
	if err != nil {
		return fmt.Errorf("save game start event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendGameEnd(ctx context.Context, data GameEndData) error {
	err := r.insert(ctx, tableGames,
		append([]string{"kind"}, gameEndColumns...),
		GameKindEnd, data.SessionID, data.Score, data.Answered, data.Correct,
		data.BestStreak, data.FinalLevel, data.HighestLevel, data.Timeouts, data.Rounds,
	)
	if err != nil {
		return fmt.Errorf("save game end event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendJudgment(ctx context.Context, data JudgmentData) error {
	err := r.insert(ctx, tableJudgments,
		[]string{
			"session_id", "question_id", "equation", "is_correct", "direction",
			"success", "level", "score_delta", "streak", "focus",
		},
		data.SessionID, data.QuestionID, data.Equation, data.IsCorrect, data.Direction,
		data.Success, data.Level, data.ScoreDelta, data.Streak, data.Focus,
	)
	if err != nil {
		return fmt.Errorf("save judgment event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLevelChange(ctx context.Context, data LevelChangeData) error {
	err := r.insert(ctx, tableLevels,
		[]string{"session_id", "from_level", "to_level", "accuracy", "round"},
		data.SessionID, data.From, data.To, data.Accuracy, data.Round,
	)
	if err != nil {
		return fmt.Errorf("save level change event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentGames(ctx context.Context, opts QueryOpts) ([]GameRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(append([]string{"sequence", "timestamp"}, gameEndColumns...)...).
		From(entsql.Table(tableGames)).
		Where(entsql.EQ("kind", GameKindEnd)).
		OrderBy(entsql.Desc("sequence"))
	applyOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		err := rows.Scan(
			&g.Sequence, &g.Timestamp, &g.SessionID, &g.Score, &g.Answered, &g.Correct,
			&g.BestStreak, &g.FinalLevel, &g.HighestLevel, &g.Timeouts, &g.Rounds,
		)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (r *eventRepo) Stats(ctx context.Context) (Stats, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(
			entsql.Count("*"),
			entsql.Max("score"),
			entsql.Sum("score"),
			entsql.Sum("answered"),
			entsql.Sum("correct"),
			entsql.Max("best_streak"),
			entsql.Max("highest_level"),
		).
		From(entsql.Table(tableGames)).
		Where(entsql.EQ("kind", GameKindEnd)).
		Query()

	var (
		st                             Stats
		best, total, answered, correct sql.NullInt64
		bestStreak, highest            sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&st.Games, &best, &total, &answered, &correct, &bestStreak, &highest,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	st.BestScore = int(best.Int64)
	st.TotalScore = int(total.Int64)
	st.Answered = int(answered.Int64)
	st.Correct = int(correct.Int64)
	st.BestStreak = int(bestStreak.Int64)
	st.HighestLevel = int(highest.Int64)
	return st, nil
}

func (r *eventRepo) LevelChanges(ctx context.Context, sessionID string) ([]LevelChangeData, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("session_id", "from_level", "to_level", "accuracy", "round").
		From(entsql.Table(tableLevels)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("sequence").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query level changes: %w", err)
	}
	defer rows.Close()

	var out []LevelChangeData
	for rows.Next() {
		var lc LevelChangeData
		if err := rows.Scan(&lc.SessionID, &lc.From, &lc.To, &lc.Accuracy, &lc.Round); err != nil {
			return nil, fmt.Errorf("scan level change: %w", err)
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

func (r *eventRepo) Reset(ctx context.Context) error {
	for _, table := range []string{tableGames, tableJudgments, tableLevels} {
		query, args := entsql.Dialect(dialect.SQLite).Delete(table).Query()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
