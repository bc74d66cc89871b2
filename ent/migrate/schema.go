// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChallengeEventsColumns holds the columns for the "challenge_events" table.
	ChallengeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "bank", Type: field.TypeString},
		{Name: "day", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "passed", Type: field.TypeBool, Default: false},
		{Name: "points_awarded", Type: field.TypeInt, Default: 0},
	}
	// ChallengeEventsTable holds the schema information for the "challenge_events" table.
	ChallengeEventsTable = &schema.Table{
		Name:       "challenge_events",
		Columns:    ChallengeEventsColumns,
		PrimaryKey: []*schema.Column{ChallengeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challengeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[1]},
			},
			{
				Name:    "challengeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[2]},
			},
			{
				Name:    "challengeevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[3]},
			},
			{
				Name:    "challengeevent_day",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[5]},
			},
			{
				Name:    "challengeevent_difficulty",
				Unique:  false,
				Columns: []*schema.Column{ChallengeEventsColumns[6]},
			},
		},
	}
	// FocusEventsColumns holds the columns for the "focus_events" table.
	FocusEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "bank", Type: field.TypeString},
		{Name: "day", Type: field.TypeString},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// FocusEventsTable holds the schema information for the "focus_events" table.
	FocusEventsTable = &schema.Table{
		Name:       "focus_events",
		Columns:    FocusEventsColumns,
		PrimaryKey: []*schema.Column{FocusEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "focusevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{FocusEventsColumns[1]},
			},
			{
				Name:    "focusevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FocusEventsColumns[2]},
			},
			{
				Name:    "focusevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{FocusEventsColumns[4]},
			},
			{
				Name:    "focusevent_day",
				Unique:  false,
				Columns: []*schema.Column{FocusEventsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
		},
	}
	// ProfileRecordsColumns holds the columns for the "profile_records" table.
	ProfileRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "token", Type: field.TypeInt64, Default: 1},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfileRecordsTable holds the schema information for the "profile_records" table.
	ProfileRecordsTable = &schema.Table{
		Name:       "profile_records",
		Columns:    ProfileRecordsColumns,
		PrimaryKey: []*schema.Column{ProfileRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profilerecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProfileRecordsColumns[1]},
			},
		},
	}
	// TimerRecordsColumns holds the columns for the "timer_records" table.
	TimerRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slot", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "token", Type: field.TypeInt64, Default: 1},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TimerRecordsTable holds the schema information for the "timer_records" table.
	TimerRecordsTable = &schema.Table{
		Name:       "timer_records",
		Columns:    TimerRecordsColumns,
		PrimaryKey: []*schema.Column{TimerRecordsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChallengeEventsTable,
		FocusEventsTable,
		LlmRequestEventsTable,
		ProfileRecordsTable,
		TimerRecordsTable,
	}
)

func init() {
}
