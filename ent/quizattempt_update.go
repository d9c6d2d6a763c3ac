// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/adesai/stride/ent/predicate"
	"github.com/adesai/stride/ent/quizattempt"
)

// QuizAttemptUpdate is the builder for updating QuizAttempt entities.
type QuizAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdate) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *QuizAttemptUpdate) SetRoadmapID(v string) *QuizAttemptUpdate {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableRoadmapID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdate) SetScore(v int) *QuizAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableScore(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdate) AddScore(v int) *QuizAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizAttemptUpdate) SetTotalQuestions(v int) *QuizAttemptUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableTotalQuestions(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizAttemptUpdate) AddTotalQuestions(v int) *QuizAttemptUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizAttemptUpdate) SetPercentage(v int) *QuizAttemptUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillablePercentage(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizAttemptUpdate) AddPercentage(v int) *QuizAttemptUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetTimeTakenMinutes sets the "time_taken_minutes" field.
func (_u *QuizAttemptUpdate) SetTimeTakenMinutes(v int) *QuizAttemptUpdate {
	_u.mutation.ResetTimeTakenMinutes()
	_u.mutation.SetTimeTakenMinutes(v)
	return _u
}

// SetNillableTimeTakenMinutes sets the "time_taken_minutes" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableTimeTakenMinutes(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetTimeTakenMinutes(*v)
	}
	return _u
}

// AddTimeTakenMinutes adds value to the "time_taken_minutes" field.
func (_u *QuizAttemptUpdate) AddTimeTakenMinutes(v int) *QuizAttemptUpdate {
	_u.mutation.AddTimeTakenMinutes(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizAttemptUpdate) SetPassed(v bool) *QuizAttemptUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillablePassed(v *bool) *QuizAttemptUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetTestOut sets the "test_out" field.
func (_u *QuizAttemptUpdate) SetTestOut(v bool) *QuizAttemptUpdate {
	_u.mutation.SetTestOut(v)
	return _u
}

// SetNillableTestOut sets the "test_out" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableTestOut(v *bool) *QuizAttemptUpdate {
	if v != nil {
		_u.SetTestOut(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizAttemptUpdate) SetAnswers(v []map[string]interface{}) *QuizAttemptUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *QuizAttemptUpdate) AppendAnswers(v []map[string]interface{}) *QuizAttemptUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdate) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdate) check() error {
	if v, ok := _u.mutation.RoadmapID(); ok {
		if err := quizattempt.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.roadmap_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(quizattempt.FieldRoadmapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizattempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizattempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeTakenMinutes(); ok {
		_spec.SetField(quizattempt.FieldTimeTakenMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenMinutes(); ok {
		_spec.AddField(quizattempt.FieldTimeTakenMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizattempt.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TestOut(); ok {
		_spec.SetField(quizattempt.FieldTestOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizattempt.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizattempt.FieldAnswers, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAttemptUpdateOne is the builder for updating a single QuizAttempt entity.
type QuizAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *QuizAttemptUpdateOne) SetRoadmapID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableRoadmapID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdateOne) SetScore(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableScore(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdateOne) AddScore(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizAttemptUpdateOne) SetTotalQuestions(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableTotalQuestions(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizAttemptUpdateOne) AddTotalQuestions(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizAttemptUpdateOne) SetPercentage(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillablePercentage(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizAttemptUpdateOne) AddPercentage(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetTimeTakenMinutes sets the "time_taken_minutes" field.
func (_u *QuizAttemptUpdateOne) SetTimeTakenMinutes(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetTimeTakenMinutes()
	_u.mutation.SetTimeTakenMinutes(v)
	return _u
}

// SetNillableTimeTakenMinutes sets the "time_taken_minutes" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableTimeTakenMinutes(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetTimeTakenMinutes(*v)
	}
	return _u
}

// AddTimeTakenMinutes adds value to the "time_taken_minutes" field.
func (_u *QuizAttemptUpdateOne) AddTimeTakenMinutes(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddTimeTakenMinutes(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizAttemptUpdateOne) SetPassed(v bool) *QuizAttemptUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillablePassed(v *bool) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetTestOut sets the "test_out" field.
func (_u *QuizAttemptUpdateOne) SetTestOut(v bool) *QuizAttemptUpdateOne {
	_u.mutation.SetTestOut(v)
	return _u
}

// SetNillableTestOut sets the "test_out" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableTestOut(v *bool) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetTestOut(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizAttemptUpdateOne) SetAnswers(v []map[string]interface{}) *QuizAttemptUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *QuizAttemptUpdateOne) AppendAnswers(v []map[string]interface{}) *QuizAttemptUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdateOne) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdateOne) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAttemptUpdateOne) Select(field string, fields ...string) *QuizAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAttempt entity.
func (_u *QuizAttemptUpdateOne) Save(ctx context.Context) (*QuizAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) SaveX(ctx context.Context) *QuizAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.RoadmapID(); ok {
		if err := quizattempt.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.roadmap_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattempt.FieldID)
		for _, f := range fields {
			if !quizattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(quizattempt.FieldRoadmapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizattempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizattempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeTakenMinutes(); ok {
		_spec.SetField(quizattempt.FieldTimeTakenMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenMinutes(); ok {
		_spec.AddField(quizattempt.FieldTimeTakenMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizattempt.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TestOut(); ok {
		_spec.SetField(quizattempt.FieldTestOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizattempt.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizattempt.FieldAnswers, value)
		})
	}
	_node = &QuizAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
