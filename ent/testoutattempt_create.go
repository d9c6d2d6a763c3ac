// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adesai/stride/ent/testoutattempt"
)

// TestOutAttemptCreate is the builder for creating a TestOutAttempt entity.
type TestOutAttemptCreate struct {
	config
	mutation *TestOutAttemptMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TestOutAttemptCreate) SetUserID(v string) *TestOutAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestOutAttemptCreate) SetCreatedAt(v time.Time) *TestOutAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestOutAttemptCreate) SetNillableCreatedAt(v *time.Time) *TestOutAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCardSlug sets the "card_slug" field.
func (_c *TestOutAttemptCreate) SetCardSlug(v string) *TestOutAttemptCreate {
	_c.mutation.SetCardSlug(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TestOutAttemptCreate) SetCompletedAt(v time.Time) *TestOutAttemptCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *TestOutAttemptCreate) SetPercentage(v int) *TestOutAttemptCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *TestOutAttemptCreate) SetPassed(v bool) *TestOutAttemptCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// Mutation returns the TestOutAttemptMutation object of the builder.
func (_c *TestOutAttemptCreate) Mutation() *TestOutAttemptMutation {
	return _c.mutation
}

// Save creates the TestOutAttempt in the database.
func (_c *TestOutAttemptCreate) Save(ctx context.Context) (*TestOutAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestOutAttemptCreate) SaveX(ctx context.Context) *TestOutAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestOutAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestOutAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestOutAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testoutattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestOutAttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TestOutAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := testoutattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TestOutAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestOutAttempt.created_at"`)}
	}
	if _, ok := _c.mutation.CardSlug(); !ok {
		return &ValidationError{Name: "card_slug", err: errors.New(`ent: missing required field "TestOutAttempt.card_slug"`)}
	}
	if v, ok := _c.mutation.CardSlug(); ok {
		if err := testoutattempt.CardSlugValidator(v); err != nil {
			return &ValidationError{Name: "card_slug", err: fmt.Errorf(`ent: validator failed for field "TestOutAttempt.card_slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "TestOutAttempt.completed_at"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "TestOutAttempt.percentage"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "TestOutAttempt.passed"`)}
	}
	return nil
}

func (_c *TestOutAttemptCreate) sqlSave(ctx context.Context) (*TestOutAttempt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestOutAttemptCreate) createSpec() (*TestOutAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &TestOutAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testoutattempt.Table, sqlgraph.NewFieldSpec(testoutattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(testoutattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testoutattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CardSlug(); ok {
		_spec.SetField(testoutattempt.FieldCardSlug, field.TypeString, value)
		_node.CardSlug = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(testoutattempt.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(testoutattempt.FieldPercentage, field.TypeInt, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(testoutattempt.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	return _node, _spec
}

// TestOutAttemptCreateBulk is the builder for creating many TestOutAttempt entities in bulk.
type TestOutAttemptCreateBulk struct {
	config
	err      error
	builders []*TestOutAttemptCreate
}

// Save creates the TestOutAttempt entities in the database.
func (_c *TestOutAttemptCreateBulk) Save(ctx context.Context) ([]*TestOutAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestOutAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestOutAttemptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestOutAttemptCreateBulk) SaveX(ctx context.Context) []*TestOutAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestOutAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestOutAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
