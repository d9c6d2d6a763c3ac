// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adesai/stride/ent/nodeprogress"
)

// NodeProgress is the model entity for the NodeProgress schema.
type NodeProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner this record belongs to
	UserID string `json:"user_id,omitempty"`
	// UTC wall-clock time the record was appended
	CreatedAt time.Time `json:"created_at,omitempty"`
	// RoadmapID holds the value of the "roadmap_id" field.
	RoadmapID string `json:"roadmap_id,omitempty"`
	// Subtopic identifier within the roadmap
	NodeID       string `json:"node_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NodeProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case nodeprogress.FieldID:
			values[i] = new(sql.NullInt64)
		case nodeprogress.FieldUserID, nodeprogress.FieldRoadmapID, nodeprogress.FieldNodeID:
			values[i] = new(sql.NullString)
		case nodeprogress.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NodeProgress fields.
func (_m *NodeProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case nodeprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case nodeprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case nodeprogress.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case nodeprogress.FieldRoadmapID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field roadmap_id", values[i])
			} else if value.Valid {
				_m.RoadmapID = value.String
			}
		case nodeprogress.FieldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value.Valid {
				_m.NodeID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NodeProgress.
// This includes values selected through modifiers, order, etc.
func (_m *NodeProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NodeProgress.
// Note that you need to call NodeProgress.Unwrap() before calling this method if this NodeProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NodeProgress) Update() *NodeProgressUpdateOne {
	return NewNodeProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NodeProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NodeProgress) Unwrap() *NodeProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NodeProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NodeProgress) String() string {
	var builder strings.Builder
	builder.WriteString("NodeProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("roadmap_id=")
	builder.WriteString(_m.RoadmapID)
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(_m.NodeID)
	builder.WriteByte(')')
	return builder.String()
}

// NodeProgresses is a parsable slice of NodeProgress.
type NodeProgresses []*NodeProgress
