// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adesai/stride/ent/nodeprogress"
)

// NodeProgressCreate is the builder for creating a NodeProgress entity.
type NodeProgressCreate struct {
	config
	mutation *NodeProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *NodeProgressCreate) SetUserID(v string) *NodeProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NodeProgressCreate) SetCreatedAt(v time.Time) *NodeProgressCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NodeProgressCreate) SetNillableCreatedAt(v *time.Time) *NodeProgressCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRoadmapID sets the "roadmap_id" field.
func (_c *NodeProgressCreate) SetRoadmapID(v string) *NodeProgressCreate {
	_c.mutation.SetRoadmapID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *NodeProgressCreate) SetNodeID(v string) *NodeProgressCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// Mutation returns the NodeProgressMutation object of the builder.
func (_c *NodeProgressCreate) Mutation() *NodeProgressMutation {
	return _c.mutation
}

// Save creates the NodeProgress in the database.
func (_c *NodeProgressCreate) Save(ctx context.Context) (*NodeProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NodeProgressCreate) SaveX(ctx context.Context) *NodeProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NodeProgressCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := nodeprogress.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NodeProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "NodeProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := nodeprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "NodeProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NodeProgress.created_at"`)}
	}
	if _, ok := _c.mutation.RoadmapID(); !ok {
		return &ValidationError{Name: "roadmap_id", err: errors.New(`ent: missing required field "NodeProgress.roadmap_id"`)}
	}
	if v, ok := _c.mutation.RoadmapID(); ok {
		if err := nodeprogress.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "NodeProgress.roadmap_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "NodeProgress.node_id"`)}
	}
	if v, ok := _c.mutation.NodeID(); ok {
		if err := nodeprogress.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "NodeProgress.node_id": %w`, err)}
		}
	}
	return nil
}

func (_c *NodeProgressCreate) sqlSave(ctx context.Context) (*NodeProgress, error) {
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

func (_c *NodeProgressCreate) createSpec() (*NodeProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &NodeProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nodeprogress.Table, sqlgraph.NewFieldSpec(nodeprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(nodeprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(nodeprogress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RoadmapID(); ok {
		_spec.SetField(nodeprogress.FieldRoadmapID, field.TypeString, value)
		_node.RoadmapID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(nodeprogress.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	return _node, _spec
}

// NodeProgressCreateBulk is the builder for creating many NodeProgress entities in bulk.
type NodeProgressCreateBulk struct {
	config
	err      error
	builders []*NodeProgressCreate
}

// Save creates the NodeProgress entities in the database.
func (_c *NodeProgressCreateBulk) Save(ctx context.Context) ([]*NodeProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NodeProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NodeProgressMutation)
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
func (_c *NodeProgressCreateBulk) SaveX(ctx context.Context) []*NodeProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
