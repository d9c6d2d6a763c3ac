// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adesai/stride/ent/testoutattempt"
)

// TestOutAttempt is the model entity for the TestOutAttempt schema.
type TestOutAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner this record belongs to
	UserID string `json:"user_id,omitempty"`
	// UTC wall-clock time the record was appended
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Card the learner tried to test out of
	CardSlug string `json:"card_slug,omitempty"`
	// When the attempt finished; the cooldown anchor
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Percentage holds the value of the "percentage" field.
	Percentage int `json:"percentage,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed       bool `json:"passed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestOutAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testoutattempt.FieldPassed:
			values[i] = new(sql.NullBool)
		case testoutattempt.FieldID, testoutattempt.FieldPercentage:
			values[i] = new(sql.NullInt64)
		case testoutattempt.FieldUserID, testoutattempt.FieldCardSlug:
			values[i] = new(sql.NullString)
		case testoutattempt.FieldCreatedAt, testoutattempt.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestOutAttempt fields.
func (_m *TestOutAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testoutattempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case testoutattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case testoutattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case testoutattempt.FieldCardSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_slug", values[i])
			} else if value.Valid {
				_m.CardSlug = value.String
			}
		case testoutattempt.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		case testoutattempt.FieldPercentage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percentage", values[i])
			} else if value.Valid {
				_m.Percentage = int(value.Int64)
			}
		case testoutattempt.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestOutAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *TestOutAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TestOutAttempt.
// Note that you need to call TestOutAttempt.Unwrap() before calling this method if this TestOutAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestOutAttempt) Update() *TestOutAttemptUpdateOne {
	return NewTestOutAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestOutAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestOutAttempt) Unwrap() *TestOutAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestOutAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestOutAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("TestOutAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("card_slug=")
	builder.WriteString(_m.CardSlug)
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percentage))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteByte(')')
	return builder.String()
}

// TestOutAttempts is a parsable slice of TestOutAttempt.
type TestOutAttempts []*TestOutAttempt
