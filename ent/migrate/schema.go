// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// NodeProgressesColumns holds the columns for the "node_progresses" table.
	NodeProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "roadmap_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
	}
	// NodeProgressesTable holds the schema information for the "node_progresses" table.
	NodeProgressesTable = &schema.Table{
		Name:       "node_progresses",
		Columns:    NodeProgressesColumns,
		PrimaryKey: []*schema.Column{NodeProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "nodeprogress_user_id",
				Unique:  false,
				Columns: []*schema.Column{NodeProgressesColumns[1]},
			},
			{
				Name:    "nodeprogress_created_at",
				Unique:  false,
				Columns: []*schema.Column{NodeProgressesColumns[2]},
			},
			{
				Name:    "nodeprogress_user_id_roadmap_id_node_id",
				Unique:  true,
				Columns: []*schema.Column{NodeProgressesColumns[1], NodeProgressesColumns[3], NodeProgressesColumns[4]},
			},
		},
	}
	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "roadmap_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "percentage", Type: field.TypeInt},
		{Name: "time_taken_minutes", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "test_out", Type: field.TypeBool, Default: false},
		{Name: "answers", Type: field.TypeJSON},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[1]},
			},
			{
				Name:    "quizattempt_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[2]},
			},
			{
				Name:    "quizattempt_roadmap_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[4]},
			},
			{
				Name:    "quizattempt_user_id_roadmap_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[1], QuizAttemptsColumns[4]},
			},
		},
	}
	// SessionSnapshotsColumns holds the columns for the "session_snapshots" table.
	SessionSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "roadmap_id", Type: field.TypeString},
		{Name: "saved_at", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SessionSnapshotsTable holds the schema information for the "session_snapshots" table.
	SessionSnapshotsTable = &schema.Table{
		Name:       "session_snapshots",
		Columns:    SessionSnapshotsColumns,
		PrimaryKey: []*schema.Column{SessionSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionsnapshot_user_id_roadmap_id",
				Unique:  true,
				Columns: []*schema.Column{SessionSnapshotsColumns[1], SessionSnapshotsColumns[2]},
			},
			{
				Name:    "sessionsnapshot_saved_at",
				Unique:  false,
				Columns: []*schema.Column{SessionSnapshotsColumns[3]},
			},
		},
	}
	// TestOutAttemptsColumns holds the columns for the "test_out_attempts" table.
	TestOutAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "card_slug", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "percentage", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
	}
	// TestOutAttemptsTable holds the schema information for the "test_out_attempts" table.
	TestOutAttemptsTable = &schema.Table{
		Name:       "test_out_attempts",
		Columns:    TestOutAttemptsColumns,
		PrimaryKey: []*schema.Column{TestOutAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testoutattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{TestOutAttemptsColumns[1]},
			},
			{
				Name:    "testoutattempt_created_at",
				Unique:  false,
				Columns: []*schema.Column{TestOutAttemptsColumns[2]},
			},
			{
				Name:    "testoutattempt_user_id_card_slug",
				Unique:  false,
				Columns: []*schema.Column{TestOutAttemptsColumns[1], TestOutAttemptsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		NodeProgressesTable,
		QuizAttemptsTable,
		SessionSnapshotsTable,
		TestOutAttemptsTable,
	}
)

func init() {
}
