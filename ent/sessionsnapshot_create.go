// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adesai/stride/ent/sessionsnapshot"
)

// SessionSnapshotCreate is the builder for creating a SessionSnapshot entity.
type SessionSnapshotCreate struct {
	config
	mutation *SessionSnapshotMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SessionSnapshotCreate) SetUserID(v string) *SessionSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRoadmapID sets the "roadmap_id" field.
func (_c *SessionSnapshotCreate) SetRoadmapID(v string) *SessionSnapshotCreate {
	_c.mutation.SetRoadmapID(v)
	return _c
}

// SetSavedAt sets the "saved_at" field.
func (_c *SessionSnapshotCreate) SetSavedAt(v time.Time) *SessionSnapshotCreate {
	_c.mutation.SetSavedAt(v)
	return _c
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_c *SessionSnapshotCreate) SetNillableSavedAt(v *time.Time) *SessionSnapshotCreate {
	if v != nil {
		_c.SetSavedAt(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *SessionSnapshotCreate) SetData(v map[string]interface{}) *SessionSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the SessionSnapshotMutation object of the builder.
func (_c *SessionSnapshotCreate) Mutation() *SessionSnapshotMutation {
	return _c.mutation
}

// Save creates the SessionSnapshot in the database.
func (_c *SessionSnapshotCreate) Save(ctx context.Context) (*SessionSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionSnapshotCreate) SaveX(ctx context.Context) *SessionSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionSnapshotCreate) defaults() {
	if _, ok := _c.mutation.SavedAt(); !ok {
		v := sessionsnapshot.DefaultSavedAt()
		_c.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionSnapshotCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionSnapshot.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := sessionsnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoadmapID(); !ok {
		return &ValidationError{Name: "roadmap_id", err: errors.New(`ent: missing required field "SessionSnapshot.roadmap_id"`)}
	}
	if v, ok := _c.mutation.RoadmapID(); ok {
		if err := sessionsnapshot.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "SessionSnapshot.roadmap_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SavedAt(); !ok {
		return &ValidationError{Name: "saved_at", err: errors.New(`ent: missing required field "SessionSnapshot.saved_at"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "SessionSnapshot.data"`)}
	}
	return nil
}

func (_c *SessionSnapshotCreate) sqlSave(ctx context.Context) (*SessionSnapshot, error) {
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

func (_c *SessionSnapshotCreate) createSpec() (*SessionSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionsnapshot.Table, sqlgraph.NewFieldSpec(sessionsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessionsnapshot.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RoadmapID(); ok {
		_spec.SetField(sessionsnapshot.FieldRoadmapID, field.TypeString, value)
		_node.RoadmapID = value
	}
	if value, ok := _c.mutation.SavedAt(); ok {
		_spec.SetField(sessionsnapshot.FieldSavedAt, field.TypeTime, value)
		_node.SavedAt = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(sessionsnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// SessionSnapshotCreateBulk is the builder for creating many SessionSnapshot entities in bulk.
type SessionSnapshotCreateBulk struct {
	config
	err      error
	builders []*SessionSnapshotCreate
}

// Save creates the SessionSnapshot entities in the database.
func (_c *SessionSnapshotCreateBulk) Save(ctx context.Context) ([]*SessionSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionSnapshotMutation)
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
func (_c *SessionSnapshotCreateBulk) SaveX(ctx context.Context) []*SessionSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
