// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adesai/stride/ent/nodeprogress"
	"github.com/adesai/stride/ent/predicate"
)

// NodeProgressUpdate is the builder for updating NodeProgress entities.
type NodeProgressUpdate struct {
	config
	hooks    []Hook
	mutation *NodeProgressMutation
}

// Where appends a list predicates to the NodeProgressUpdate builder.
func (_u *NodeProgressUpdate) Where(ps ...predicate.NodeProgress) *NodeProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *NodeProgressUpdate) SetRoadmapID(v string) *NodeProgressUpdate {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *NodeProgressUpdate) SetNillableRoadmapID(v *string) *NodeProgressUpdate {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *NodeProgressUpdate) SetNodeID(v string) *NodeProgressUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeProgressUpdate) SetNillableNodeID(v *string) *NodeProgressUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// Mutation returns the NodeProgressMutation object of the builder.
func (_u *NodeProgressUpdate) Mutation() *NodeProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NodeProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NodeProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeProgressUpdate) check() error {
	if v, ok := _u.mutation.RoadmapID(); ok {
		if err := nodeprogress.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "NodeProgress.roadmap_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := nodeprogress.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "NodeProgress.node_id": %w`, err)}
		}
	}
	return nil
}

func (_u *NodeProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nodeprogress.Table, nodeprogress.Columns, sqlgraph.NewFieldSpec(nodeprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(nodeprogress.FieldRoadmapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(nodeprogress.FieldNodeID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nodeprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NodeProgressUpdateOne is the builder for updating a single NodeProgress entity.
type NodeProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NodeProgressMutation
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *NodeProgressUpdateOne) SetRoadmapID(v string) *NodeProgressUpdateOne {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *NodeProgressUpdateOne) SetNillableRoadmapID(v *string) *NodeProgressUpdateOne {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *NodeProgressUpdateOne) SetNodeID(v string) *NodeProgressUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeProgressUpdateOne) SetNillableNodeID(v *string) *NodeProgressUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// Mutation returns the NodeProgressMutation object of the builder.
func (_u *NodeProgressUpdateOne) Mutation() *NodeProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the NodeProgressUpdate builder.
func (_u *NodeProgressUpdateOne) Where(ps ...predicate.NodeProgress) *NodeProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NodeProgressUpdateOne) Select(field string, fields ...string) *NodeProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NodeProgress entity.
func (_u *NodeProgressUpdateOne) Save(ctx context.Context) (*NodeProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeProgressUpdateOne) SaveX(ctx context.Context) *NodeProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NodeProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeProgressUpdateOne) check() error {
	if v, ok := _u.mutation.RoadmapID(); ok {
		if err := nodeprogress.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "NodeProgress.roadmap_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := nodeprogress.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "NodeProgress.node_id": %w`, err)}
		}
	}
	return nil
}

func (_u *NodeProgressUpdateOne) sqlSave(ctx context.Context) (_node *NodeProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nodeprogress.Table, nodeprogress.Columns, sqlgraph.NewFieldSpec(nodeprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NodeProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nodeprogress.FieldID)
		for _, f := range fields {
			if !nodeprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nodeprogress.FieldID {
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
		_spec.SetField(nodeprogress.FieldRoadmapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(nodeprogress.FieldNodeID, field.TypeString, value)
	}
	_node = &NodeProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nodeprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
