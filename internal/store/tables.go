package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names.
const (
	tableGames       = "game_events"
	tableJudgments   = "judgment_events"
	tableLevels      = "level_events"
	tableLLMRequests = "llm_request_events"
)

// textSize is the size ent uses for unbounded text columns.
const textSize = 2147483647

// eventColumns are shared by every event table: an auto-increment id, the
// global sequence number and the event timestamp.
func eventColumns(extra ...*schema.Column) []*schema.Column {
	cols := []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	return append(cols, extra...)
}

func eventTable(name string, extra ...*schema.Column) *schema.Table {
	cols := eventColumns(extra...)
	return &schema.Table{
		Name:       name,
		Columns:    cols,
		PrimaryKey: []*schema.Column{cols[0]},
	}
}

var (
	// GamesTable records one row when a game starts and one when it ends.
	GamesTable = eventTable(tableGames,
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "kind", Type: field.TypeString},
		&schema.Column{Name: "source", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "score", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "answered", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "correct", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "best_streak", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "final_level", Type: field.TypeInt, Default: 1},
		&schema.Column{Name: "highest_level", Type: field.TypeInt, Default: 1},
		&schema.Column{Name: "timeouts", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "rounds", Type: field.TypeInt, Default: 0},
	)

	// JudgmentsTable records every applied judgment, including timeouts.
	JudgmentsTable = eventTable(tableJudgments,
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "question_id", Type: field.TypeString},
		&schema.Column{Name: "equation", Type: field.TypeString},
		&schema.Column{Name: "is_correct", Type: field.TypeBool},
		&schema.Column{Name: "direction", Type: field.TypeString},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "level", Type: field.TypeInt},
		&schema.Column{Name: "score_delta", Type: field.TypeInt},
		&schema.Column{Name: "streak", Type: field.TypeInt},
		&schema.Column{Name: "focus", Type: field.TypeFloat64},
	)

	// LevelsTable records every level transition.
	LevelsTable = eventTable(tableLevels,
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "from_level", Type: field.TypeInt},
		&schema.Column{Name: "to_level", Type: field.TypeInt},
		&schema.Column{Name: "accuracy", Type: field.TypeFloat64},
		&schema.Column{Name: "round", Type: field.TypeInt},
	)

	// LLMRequestsTable records every provider call.
	LLMRequestsTable = eventTable(tableLLMRequests,
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Nullable: true},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: textSize, Nullable: true},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: textSize, Nullable: true},
	)

	// Tables lists every table migrated at Open.
	Tables = []*schema.Table{
		GamesTable,
		JudgmentsTable,
		LevelsTable,
		LLMRequestsTable,
	}
)

func init() {
	GamesTable.Indexes = []*schema.Index{
		{Name: "game_events_session_id", Columns: []*schema.Column{GamesTable.Columns[3]}},
	}
	JudgmentsTable.Indexes = []*schema.Index{
		{Name: "judgment_events_session_id", Columns: []*schema.Column{JudgmentsTable.Columns[3]}},
	}
	LLMRequestsTable.Indexes = []*schema.Index{
		{Name: "llm_request_events_purpose", Columns: []*schema.Column{LLMRequestsTable.Columns[5]}},
	}
}
