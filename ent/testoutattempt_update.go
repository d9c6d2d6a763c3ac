// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adesai/stride/ent/predicate"
	"github.com/adesai/stride/ent/testoutattempt"
)

// TestOutAttemptUpdate is the builder for updating TestOutAttempt entities.
type TestOutAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *TestOutAttemptMutation
}

// Where appends a list predicates to the TestOutAttemptUpdate builder.
func (_u *TestOutAttemptUpdate) Where(ps ...predicate.TestOutAttempt) *TestOutAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardSlug sets the "card_slug" field.
func (_u *TestOutAttemptUpdate) SetCardSlug(v string) *TestOutAttemptUpdate {
	_u.mutation.SetCardSlug(v)
	return _u
}

// SetNillableCardSlug sets the "card_slug" field if the given value is not nil.
func (_u *TestOutAttemptUpdate) SetNillableCardSlug(v *string) *TestOutAttemptUpdate {
	if v != nil {
		_u.SetCardSlug(*v)
	}
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *TestOutAttemptUpdate) SetPercentage(v int) *TestOutAttemptUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *TestOutAttemptUpdate) SetNillablePercentage(v *int) *TestOutAttemptUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *TestOutAttemptUpdate) AddPercentage(v int) *TestOutAttemptUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *TestOutAttemptUpdate) SetPassed(v bool) *TestOutAttemptUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *TestOutAttemptUpdate) SetNillablePassed(v *bool) *TestOutAttemptUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the TestOutAttemptMutation object of the builder.
func (_u *TestOutAttemptUpdate) Mutation() *TestOutAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestOutAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestOutAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestOutAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestOutAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestOutAttemptUpdate) check() error {
	if v, ok := _u.mutation.CardSlug(); ok {
		if err := testoutattempt.CardSlugValidator(v); err != nil {
			return &ValidationError{Name: "card_slug", err: fmt.Errorf(`ent: validator failed for field "TestOutAttempt.card_slug": %w`, err)}
		}
	}
	return nil
}

func (_u *TestOutAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testoutattempt.Table, testoutattempt.Columns, sqlgraph.NewFieldSpec(testoutattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardSlug(); ok {
		_spec.SetField(testoutattempt.FieldCardSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(testoutattempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(testoutattempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(testoutattempt.FieldPassed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testoutattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestOutAttemptUpdateOne is the builder for updating a single TestOutAttempt entity.
type TestOutAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestOutAttemptMutation
}

// SetCardSlug sets the "card_slug" field.
func (_u *TestOutAttemptUpdateOne) SetCardSlug(v string) *TestOutAttemptUpdateOne {
	_u.mutation.SetCardSlug(v)
	return _u
}

// SetNillableCardSlug sets the "card_slug" field if the given value is not nil.
func (_u *TestOutAttemptUpdateOne) SetNillableCardSlug(v *string) *TestOutAttemptUpdateOne {
	if v != nil {
		_u.SetCardSlug(*v)
	}
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *TestOutAttemptUpdateOne) SetPercentage(v int) *TestOutAttemptUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *TestOutAttemptUpdateOne) SetNillablePercentage(v *int) *TestOutAttemptUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *TestOutAttemptUpdateOne) AddPercentage(v int) *TestOutAttemptUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *TestOutAttemptUpdateOne) SetPassed(v bool) *TestOutAttemptUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *TestOutAttemptUpdateOne) SetNillablePassed(v *bool) *TestOutAttemptUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the TestOutAttemptMutation object of the builder.
func (_u *TestOutAttemptUpdateOne) Mutation() *TestOutAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestOutAttemptUpdate builder.
func (_u *TestOutAttemptUpdateOne) Where(ps ...predicate.TestOutAttempt) *TestOutAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestOutAttemptUpdateOne) Select(field string, fields ...string) *TestOutAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestOutAttempt entity.
func (_u *TestOutAttemptUpdateOne) Save(ctx context.Context) (*TestOutAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestOutAttemptUpdateOne) SaveX(ctx context.Context) *TestOutAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestOutAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestOutAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestOutAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.CardSlug(); ok {
		if err := testoutattempt.CardSlugValidator(v); err != nil {
			return &ValidationError{Name: "card_slug", err: fmt.Errorf(`ent: validator failed for field "TestOutAttempt.card_slug": %w`, err)}
		}
	}
	return nil
}

func (_u *TestOutAttemptUpdateOne) sqlSave(ctx context.Context) (_node *TestOutAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testoutattempt.Table, testoutattempt.Columns, sqlgraph.NewFieldSpec(testoutattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestOutAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testoutattempt.FieldID)
		for _, f := range fields {
			if !testoutattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testoutattempt.FieldID {
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
	if value, ok := _u.mutation.CardSlug(); ok {
		_spec.SetField(testoutattempt.FieldCardSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(testoutattempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(testoutattempt.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(testoutattempt.FieldPassed, field.TypeBool, value)
	}
	_node = &TestOutAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testoutattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
