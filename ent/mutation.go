// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adesai/stride/ent/nodeprogress"
	"github.com/adesai/stride/ent/predicate"
	"github.com/adesai/stride/ent/quizattempt"
	"github.com/adesai/stride/ent/sessionsnapshot"
	"github.com/adesai/stride/ent/testoutattempt"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeNodeProgress    = "NodeProgress"
	TypeQuizAttempt     = "QuizAttempt"
	TypeSessionSnapshot = "SessionSnapshot"
	TypeTestOutAttempt  = "TestOutAttempt"
)

// NodeProgressMutation represents an operation that mutates the NodeProgress nodes in the graph.
type NodeProgressMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	created_at    *time.Time
	roadmap_id    *string
	node_id       *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*NodeProgress, error)
	predicates    []predicate.NodeProgress
}

var _ ent.Mutation = (*NodeProgressMutation)(nil)

// nodeprogressOption allows management of the mutation configuration using functional options.
type nodeprogressOption func(*NodeProgressMutation)

// newNodeProgressMutation creates new mutation for the NodeProgress entity.
func newNodeProgressMutation(c config, op Op, opts ...nodeprogressOption) *NodeProgressMutation {
	m := &NodeProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeNodeProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNodeProgressID sets the ID field of the mutation.
func withNodeProgressID(id int) nodeprogressOption {
	return func(m *NodeProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *NodeProgress
		)
		m.oldValue = func(ctx context.Context) (*NodeProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NodeProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNodeProgress sets the old NodeProgress of the mutation.
func withNodeProgress(node *NodeProgress) nodeprogressOption {
	return func(m *NodeProgressMutation) {
		m.oldValue = func(context.Context) (*NodeProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NodeProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NodeProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NodeProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NodeProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NodeProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *NodeProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NodeProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NodeProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NodeProgressMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NodeProgressMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NodeProgressMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRoadmapID sets the "roadmap_id" field.
func (m *NodeProgressMutation) SetRoadmapID(s string) {
	m.roadmap_id = &s
}

// RoadmapID returns the value of the "roadmap_id" field in the mutation.
func (m *NodeProgressMutation) RoadmapID() (r string, exists bool) {
	v := m.roadmap_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoadmapID returns the old "roadmap_id" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldRoadmapID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoadmapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoadmapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoadmapID: %w", err)
	}
	return oldValue.RoadmapID, nil
}

// ResetRoadmapID resets all changes to the "roadmap_id" field.
func (m *NodeProgressMutation) ResetRoadmapID() {
	m.roadmap_id = nil
}

// SetNodeID sets the "node_id" field.
func (m *NodeProgressMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *NodeProgressMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the NodeProgress entity.
// If the NodeProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeProgressMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *NodeProgressMutation) ResetNodeID() {
	m.node_id = nil
}

// Where appends a list predicates to the NodeProgressMutation builder.
func (m *NodeProgressMutation) Where(ps ...predicate.NodeProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NodeProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NodeProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NodeProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NodeProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NodeProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NodeProgress).
func (m *NodeProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NodeProgressMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, nodeprogress.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, nodeprogress.FieldCreatedAt)
	}
	if m.roadmap_id != nil {
		fields = append(fields, nodeprogress.FieldRoadmapID)
	}
	if m.node_id != nil {
		fields = append(fields, nodeprogress.FieldNodeID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NodeProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nodeprogress.FieldUserID:
		return m.UserID()
	case nodeprogress.FieldCreatedAt:
		return m.CreatedAt()
	case nodeprogress.FieldRoadmapID:
		return m.RoadmapID()
	case nodeprogress.FieldNodeID:
		return m.NodeID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NodeProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nodeprogress.FieldUserID:
		return m.OldUserID(ctx)
	case nodeprogress.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case nodeprogress.FieldRoadmapID:
		return m.OldRoadmapID(ctx)
	case nodeprogress.FieldNodeID:
		return m.OldNodeID(ctx)
	}
	return nil, fmt.Errorf("unknown NodeProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nodeprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case nodeprogress.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case nodeprogress.FieldRoadmapID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoadmapID(v)
		return nil
	case nodeprogress.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	}
	return fmt.Errorf("unknown NodeProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NodeProgressMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NodeProgressMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NodeProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NodeProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NodeProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NodeProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown NodeProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NodeProgressMutation) ResetField(name string) error {
	switch name {
	case nodeprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case nodeprogress.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case nodeprogress.FieldRoadmapID:
		m.ResetRoadmapID()
		return nil
	case nodeprogress.FieldNodeID:
		m.ResetNodeID()
		return nil
	}
	return fmt.Errorf("unknown NodeProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NodeProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NodeProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NodeProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NodeProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NodeProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NodeProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NodeProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NodeProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NodeProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NodeProgress edge %s", name)
}

// QuizAttemptMutation represents an operation that mutates the QuizAttempt nodes in the graph.
type QuizAttemptMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *string
	created_at            *time.Time
	attempt_id            *string
	roadmap_id            *string
	score                 *int
	addscore              *int
	total_questions       *int
	addtotal_questions    *int
	percentage            *int
	addpercentage         *int
	time_taken_minutes    *int
	addtime_taken_minutes *int
	passed                *bool
	test_out              *bool
	answers               *[]map[string]interface{}
	appendanswers         []map[string]interface{}
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*QuizAttempt, error)
	predicates            []predicate.QuizAttempt
}

var _ ent.Mutation = (*QuizAttemptMutation)(nil)

// quizattemptOption allows management of the mutation configuration using functional options.
type quizattemptOption func(*QuizAttemptMutation)

// newQuizAttemptMutation creates new mutation for the QuizAttempt entity.
func newQuizAttemptMutation(c config, op Op, opts ...quizattemptOption) *QuizAttemptMutation {
	m := &QuizAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizAttemptID sets the ID field of the mutation.
func withQuizAttemptID(id int) quizattemptOption {
	return func(m *QuizAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizAttempt
		)
		m.oldValue = func(ctx context.Context) (*QuizAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizAttempt sets the old QuizAttempt of the mutation.
func withQuizAttempt(node *QuizAttempt) quizattemptOption {
	return func(m *QuizAttemptMutation) {
		m.oldValue = func(context.Context) (*QuizAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizAttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizAttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *QuizAttemptMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuizAttemptMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuizAttemptMutation) ResetUserID() {
	m.user_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuizAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuizAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuizAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *QuizAttemptMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *QuizAttemptMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *QuizAttemptMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetRoadmapID sets the "roadmap_id" field.
func (m *QuizAttemptMutation) SetRoadmapID(s string) {
	m.roadmap_id = &s
}

// RoadmapID returns the value of the "roadmap_id" field in the mutation.
func (m *QuizAttemptMutation) RoadmapID() (r string, exists bool) {
	v := m.roadmap_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoadmapID returns the old "roadmap_id" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldRoadmapID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoadmapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoadmapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoadmapID: %w", err)
	}
	return oldValue.RoadmapID, nil
}

// ResetRoadmapID resets all changes to the "roadmap_id" field.
func (m *QuizAttemptMutation) ResetRoadmapID() {
	m.roadmap_id = nil
}

// SetScore sets the "score" field.
func (m *QuizAttemptMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *QuizAttemptMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *QuizAttemptMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *QuizAttemptMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *QuizAttemptMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *QuizAttemptMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *QuizAttemptMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *QuizAttemptMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *QuizAttemptMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *QuizAttemptMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetPercentage sets the "percentage" field.
func (m *QuizAttemptMutation) SetPercentage(i int) {
	m.percentage = &i
	m.addpercentage = nil
}

// Percentage returns the value of the "percentage" field in the mutation.
func (m *QuizAttemptMutation) Percentage() (r int, exists bool) {
	v := m.percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldPercentage returns the old "percentage" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldPercentage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercentage: %w", err)
	}
	return oldValue.Percentage, nil
}

// AddPercentage adds i to the "percentage" field.
func (m *QuizAttemptMutation) AddPercentage(i int) {
	if m.addpercentage != nil {
		*m.addpercentage += i
	} else {
		m.addpercentage = &i
	}
}

// AddedPercentage returns the value that was added to the "percentage" field in this mutation.
func (m *QuizAttemptMutation) AddedPercentage() (r int, exists bool) {
	v := m.addpercentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercentage resets all changes to the "percentage" field.
func (m *QuizAttemptMutation) ResetPercentage() {
	m.percentage = nil
	m.addpercentage = nil
}

// SetTimeTakenMinutes sets the "time_taken_minutes" field.
func (m *QuizAttemptMutation) SetTimeTakenMinutes(i int) {
	m.time_taken_minutes = &i
	m.addtime_taken_minutes = nil
}

// TimeTakenMinutes returns the value of the "time_taken_minutes" field in the mutation.
func (m *QuizAttemptMutation) TimeTakenMinutes() (r int, exists bool) {
	v := m.time_taken_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeTakenMinutes returns the old "time_taken_minutes" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldTimeTakenMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeTakenMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeTakenMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeTakenMinutes: %w", err)
	}
	return oldValue.TimeTakenMinutes, nil
}

// AddTimeTakenMinutes adds i to the "time_taken_minutes" field.
func (m *QuizAttemptMutation) AddTimeTakenMinutes(i int) {
	if m.addtime_taken_minutes != nil {
		*m.addtime_taken_minutes += i
	} else {
		m.addtime_taken_minutes = &i
	}
}

// AddedTimeTakenMinutes returns the value that was added to the "time_taken_minutes" field in this mutation.
func (m *QuizAttemptMutation) AddedTimeTakenMinutes() (r int, exists bool) {
	v := m.addtime_taken_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeTakenMinutes resets all changes to the "time_taken_minutes" field.
func (m *QuizAttemptMutation) ResetTimeTakenMinutes() {
	m.time_taken_minutes = nil
	m.addtime_taken_minutes = nil
}

// SetPassed sets the "passed" field.
func (m *QuizAttemptMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *QuizAttemptMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *QuizAttemptMutation) ResetPassed() {
	m.passed = nil
}

// SetTestOut sets the "test_out" field.
func (m *QuizAttemptMutation) SetTestOut(b bool) {
	m.test_out = &b
}

// TestOut returns the value of the "test_out" field in the mutation.
func (m *QuizAttemptMutation) TestOut() (r bool, exists bool) {
	v := m.test_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTestOut returns the old "test_out" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldTestOut(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestOut: %w", err)
	}
	return oldValue.TestOut, nil
}

// ResetTestOut resets all changes to the "test_out" field.
func (m *QuizAttemptMutation) ResetTestOut() {
	m.test_out = nil
}

// SetAnswers sets the "answers" field.
func (m *QuizAttemptMutation) SetAnswers(value []map[string]interface{}) {
	m.answers = &value
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *QuizAttemptMutation) Answers() (r []map[string]interface{}, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldAnswers(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds value to the "answers" field.
func (m *QuizAttemptMutation) AppendAnswers(value []map[string]interface{}) {
	m.appendanswers = append(m.appendanswers, value...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *QuizAttemptMutation) AppendedAnswers() ([]map[string]interface{}, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ResetAnswers resets all changes to the "answers" field.
func (m *QuizAttemptMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
}

// Where appends a list predicates to the QuizAttemptMutation builder.
func (m *QuizAttemptMutation) Where(ps ...predicate.QuizAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizAttempt).
func (m *QuizAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizAttemptMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, quizattempt.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, quizattempt.FieldCreatedAt)
	}
	if m.attempt_id != nil {
		fields = append(fields, quizattempt.FieldAttemptID)
	}
	if m.roadmap_id != nil {
		fields = append(fields, quizattempt.FieldRoadmapID)
	}
	if m.score != nil {
		fields = append(fields, quizattempt.FieldScore)
	}
	if m.total_questions != nil {
		fields = append(fields, quizattempt.FieldTotalQuestions)
	}
	if m.percentage != nil {
		fields = append(fields, quizattempt.FieldPercentage)
	}
	if m.time_taken_minutes != nil {
		fields = append(fields, quizattempt.FieldTimeTakenMinutes)
	}
	if m.passed != nil {
		fields = append(fields, quizattempt.FieldPassed)
	}
	if m.test_out != nil {
		fields = append(fields, quizattempt.FieldTestOut)
	}
	if m.answers != nil {
		fields = append(fields, quizattempt.FieldAnswers)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizattempt.FieldUserID:
		return m.UserID()
	case quizattempt.FieldCreatedAt:
		return m.CreatedAt()
	case quizattempt.FieldAttemptID:
		return m.AttemptID()
	case quizattempt.FieldRoadmapID:
		return m.RoadmapID()
	case quizattempt.FieldScore:
		return m.Score()
	case quizattempt.FieldTotalQuestions:
		return m.TotalQuestions()
	case quizattempt.FieldPercentage:
		return m.Percentage()
	case quizattempt.FieldTimeTakenMinutes:
		return m.TimeTakenMinutes()
	case quizattempt.FieldPassed:
		return m.Passed()
	case quizattempt.FieldTestOut:
		return m.TestOut()
	case quizattempt.FieldAnswers:
		return m.Answers()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizattempt.FieldUserID:
		return m.OldUserID(ctx)
	case quizattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case quizattempt.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case quizattempt.FieldRoadmapID:
		return m.OldRoadmapID(ctx)
	case quizattempt.FieldScore:
		return m.OldScore(ctx)
	case quizattempt.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case quizattempt.FieldPercentage:
		return m.OldPercentage(ctx)
	case quizattempt.FieldTimeTakenMinutes:
		return m.OldTimeTakenMinutes(ctx)
	case quizattempt.FieldPassed:
		return m.OldPassed(ctx)
	case quizattempt.FieldTestOut:
		return m.OldTestOut(ctx)
	case quizattempt.FieldAnswers:
		return m.OldAnswers(ctx)
	}
	return nil, fmt.Errorf("unknown QuizAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizattempt.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case quizattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case quizattempt.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case quizattempt.FieldRoadmapID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoadmapID(v)
		return nil
	case quizattempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case quizattempt.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case quizattempt.FieldPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercentage(v)
		return nil
	case quizattempt.FieldTimeTakenMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeTakenMinutes(v)
		return nil
	case quizattempt.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case quizattempt.FieldTestOut:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestOut(v)
		return nil
	case quizattempt.FieldAnswers:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, quizattempt.FieldScore)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, quizattempt.FieldTotalQuestions)
	}
	if m.addpercentage != nil {
		fields = append(fields, quizattempt.FieldPercentage)
	}
	if m.addtime_taken_minutes != nil {
		fields = append(fields, quizattempt.FieldTimeTakenMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizattempt.FieldScore:
		return m.AddedScore()
	case quizattempt.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case quizattempt.FieldPercentage:
		return m.AddedPercentage()
	case quizattempt.FieldTimeTakenMinutes:
		return m.AddedTimeTakenMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizattempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case quizattempt.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case quizattempt.FieldPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercentage(v)
		return nil
	case quizattempt.FieldTimeTakenMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeTakenMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizAttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizAttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuizAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizAttemptMutation) ResetField(name string) error {
	switch name {
	case quizattempt.FieldUserID:
		m.ResetUserID()
		return nil
	case quizattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case quizattempt.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case quizattempt.FieldRoadmapID:
		m.ResetRoadmapID()
		return nil
	case quizattempt.FieldScore:
		m.ResetScore()
		return nil
	case quizattempt.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case quizattempt.FieldPercentage:
		m.ResetPercentage()
		return nil
	case quizattempt.FieldTimeTakenMinutes:
		m.ResetTimeTakenMinutes()
		return nil
	case quizattempt.FieldPassed:
		m.ResetPassed()
		return nil
	case quizattempt.FieldTestOut:
		m.ResetTestOut()
		return nil
	case quizattempt.FieldAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizAttempt edge %s", name)
}

// SessionSnapshotMutation represents an operation that mutates the SessionSnapshot nodes in the graph.
type SessionSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	roadmap_id    *string
	saved_at      *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SessionSnapshot, error)
	predicates    []predicate.SessionSnapshot
}

var _ ent.Mutation = (*SessionSnapshotMutation)(nil)

// sessionsnapshotOption allows management of the mutation configuration using functional options.
type sessionsnapshotOption func(*SessionSnapshotMutation)

// newSessionSnapshotMutation creates new mutation for the SessionSnapshot entity.
func newSessionSnapshotMutation(c config, op Op, opts ...sessionsnapshotOption) *SessionSnapshotMutation {
	m := &SessionSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionSnapshotID sets the ID field of the mutation.
func withSessionSnapshotID(id int) sessionsnapshotOption {
	return func(m *SessionSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionSnapshot
		)
		m.oldValue = func(ctx context.Context) (*SessionSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionSnapshot sets the old SessionSnapshot of the mutation.
func withSessionSnapshot(node *SessionSnapshot) sessionsnapshotOption {
	return func(m *SessionSnapshotMutation) {
		m.oldValue = func(context.Context) (*SessionSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionSnapshotMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionSnapshotMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionSnapshot entity.
// If the SessionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSnapshotMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionSnapshotMutation) ResetUserID() {
	m.user_id = nil
}

// SetRoadmapID sets the "roadmap_id" field.
func (m *SessionSnapshotMutation) SetRoadmapID(s string) {
	m.roadmap_id = &s
}

// RoadmapID returns the value of the "roadmap_id" field in the mutation.
func (m *SessionSnapshotMutation) RoadmapID() (r string, exists bool) {
	v := m.roadmap_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoadmapID returns the old "roadmap_id" field's value of the SessionSnapshot entity.
// If the SessionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSnapshotMutation) OldRoadmapID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoadmapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoadmapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoadmapID: %w", err)
	}
	return oldValue.RoadmapID, nil
}

// ResetRoadmapID resets all changes to the "roadmap_id" field.
func (m *SessionSnapshotMutation) ResetRoadmapID() {
	m.roadmap_id = nil
}

// SetSavedAt sets the "saved_at" field.
func (m *SessionSnapshotMutation) SetSavedAt(t time.Time) {
	m.saved_at = &t
}

// SavedAt returns the value of the "saved_at" field in the mutation.
func (m *SessionSnapshotMutation) SavedAt() (r time.Time, exists bool) {
	v := m.saved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSavedAt returns the old "saved_at" field's value of the SessionSnapshot entity.
// If the SessionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSnapshotMutation) OldSavedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSavedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSavedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSavedAt: %w", err)
	}
	return oldValue.SavedAt, nil
}

// ResetSavedAt resets all changes to the "saved_at" field.
func (m *SessionSnapshotMutation) ResetSavedAt() {
	m.saved_at = nil
}

// SetData sets the "data" field.
func (m *SessionSnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SessionSnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the SessionSnapshot entity.
// If the SessionSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionSnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SessionSnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SessionSnapshotMutation builder.
func (m *SessionSnapshotMutation) Where(ps ...predicate.SessionSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionSnapshot).
func (m *SessionSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, sessionsnapshot.FieldUserID)
	}
	if m.roadmap_id != nil {
		fields = append(fields, sessionsnapshot.FieldRoadmapID)
	}
	if m.saved_at != nil {
		fields = append(fields, sessionsnapshot.FieldSavedAt)
	}
	if m.data != nil {
		fields = append(fields, sessionsnapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionsnapshot.FieldUserID:
		return m.UserID()
	case sessionsnapshot.FieldRoadmapID:
		return m.RoadmapID()
	case sessionsnapshot.FieldSavedAt:
		return m.SavedAt()
	case sessionsnapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionsnapshot.FieldUserID:
		return m.OldUserID(ctx)
	case sessionsnapshot.FieldRoadmapID:
		return m.OldRoadmapID(ctx)
	case sessionsnapshot.FieldSavedAt:
		return m.OldSavedAt(ctx)
	case sessionsnapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown SessionSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionsnapshot.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionsnapshot.FieldRoadmapID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoadmapID(v)
		return nil
	case sessionsnapshot.FieldSavedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSavedAt(v)
		return nil
	case sessionsnapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown SessionSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionSnapshotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionSnapshotMutation) ResetField(name string) error {
	switch name {
	case sessionsnapshot.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionsnapshot.FieldRoadmapID:
		m.ResetRoadmapID()
		return nil
	case sessionsnapshot.FieldSavedAt:
		m.ResetSavedAt()
		return nil
	case sessionsnapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown SessionSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionSnapshot edge %s", name)
}

// TestOutAttemptMutation represents an operation that mutates the TestOutAttempt nodes in the graph.
type TestOutAttemptMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	created_at    *time.Time
	card_slug     *string
	completed_at  *time.Time
	percentage    *int
	addpercentage *int
	passed        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TestOutAttempt, error)
	predicates    []predicate.TestOutAttempt
}

var _ ent.Mutation = (*TestOutAttemptMutation)(nil)

// testoutattemptOption allows management of the mutation configuration using functional options.
type testoutattemptOption func(*TestOutAttemptMutation)

// newTestOutAttemptMutation creates new mutation for the TestOutAttempt entity.
func newTestOutAttemptMutation(c config, op Op, opts ...testoutattemptOption) *TestOutAttemptMutation {
	m := &TestOutAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeTestOutAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestOutAttemptID sets the ID field of the mutation.
func withTestOutAttemptID(id int) testoutattemptOption {
	return func(m *TestOutAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *TestOutAttempt
		)
		m.oldValue = func(ctx context.Context) (*TestOutAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestOutAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestOutAttempt sets the old TestOutAttempt of the mutation.
func withTestOutAttempt(node *TestOutAttempt) testoutattemptOption {
	return func(m *TestOutAttemptMutation) {
		m.oldValue = func(context.Context) (*TestOutAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestOutAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestOutAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestOutAttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestOutAttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestOutAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TestOutAttemptMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TestOutAttemptMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TestOutAttempt entity.
// If the TestOutAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestOutAttemptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TestOutAttemptMutation) ResetUserID() {
	m.user_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TestOutAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestOutAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestOutAttempt entity.
// If the TestOutAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestOutAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestOutAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCardSlug sets the "card_slug" field.
func (m *TestOutAttemptMutation) SetCardSlug(s string) {
	m.card_slug = &s
}

// CardSlug returns the value of the "card_slug" field in the mutation.
func (m *TestOutAttemptMutation) CardSlug() (r string, exists bool) {
	v := m.card_slug
	if v == nil {
		return
	}
	return *v, true
}

// OldCardSlug returns the old "card_slug" field's value of the TestOutAttempt entity.
// If the TestOutAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestOutAttemptMutation) OldCardSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardSlug: %w", err)
	}
	return oldValue.CardSlug, nil
}

// ResetCardSlug resets all changes to the "card_slug" field.
func (m *TestOutAttemptMutation) ResetCardSlug() {
	m.card_slug = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TestOutAttemptMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TestOutAttemptMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TestOutAttempt entity.
// If the TestOutAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestOutAttemptMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TestOutAttemptMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// SetPercentage sets the "percentage" field.
func (m *TestOutAttemptMutation) SetPercentage(i int) {
	m.percentage = &i
	m.addpercentage = nil
}

// Percentage returns the value of the "percentage" field in the mutation.
func (m *TestOutAttemptMutation) Percentage() (r int, exists bool) {
	v := m.percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldPercentage returns the old "percentage" field's value of the TestOutAttempt entity.
// If the TestOutAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestOutAttemptMutation) OldPercentage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercentage: %w", err)
	}
	return oldValue.Percentage, nil
}

// AddPercentage adds i to the "percentage" field.
func (m *TestOutAttemptMutation) AddPercentage(i int) {
	if m.addpercentage != nil {
		*m.addpercentage += i
	} else {
		m.addpercentage = &i
	}
}

// AddedPercentage returns the value that was added to the "percentage" field in this mutation.
func (m *TestOutAttemptMutation) AddedPercentage() (r int, exists bool) {
	v := m.addpercentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercentage resets all changes to the "percentage" field.
func (m *TestOutAttemptMutation) ResetPercentage() {
	m.percentage = nil
	m.addpercentage = nil
}

// SetPassed sets the "passed" field.
func (m *TestOutAttemptMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *TestOutAttemptMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the TestOutAttempt entity.
// If the TestOutAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestOutAttemptMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *TestOutAttemptMutation) ResetPassed() {
	m.passed = nil
}

// Where appends a list predicates to the TestOutAttemptMutation builder.
func (m *TestOutAttemptMutation) Where(ps ...predicate.TestOutAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestOutAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestOutAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestOutAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestOutAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestOutAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestOutAttempt).
func (m *TestOutAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestOutAttemptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, testoutattempt.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, testoutattempt.FieldCreatedAt)
	}
	if m.card_slug != nil {
		fields = append(fields, testoutattempt.FieldCardSlug)
	}
	if m.completed_at != nil {
		fields = append(fields, testoutattempt.FieldCompletedAt)
	}
	if m.percentage != nil {
		fields = append(fields, testoutattempt.FieldPercentage)
	}
	if m.passed != nil {
		fields = append(fields, testoutattempt.FieldPassed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestOutAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testoutattempt.FieldUserID:
		return m.UserID()
	case testoutattempt.FieldCreatedAt:
		return m.CreatedAt()
	case testoutattempt.FieldCardSlug:
		return m.CardSlug()
	case testoutattempt.FieldCompletedAt:
		return m.CompletedAt()
	case testoutattempt.FieldPercentage:
		return m.Percentage()
	case testoutattempt.FieldPassed:
		return m.Passed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestOutAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testoutattempt.FieldUserID:
		return m.OldUserID(ctx)
	case testoutattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case testoutattempt.FieldCardSlug:
		return m.OldCardSlug(ctx)
	case testoutattempt.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case testoutattempt.FieldPercentage:
		return m.OldPercentage(ctx)
	case testoutattempt.FieldPassed:
		return m.OldPassed(ctx)
	}
	return nil, fmt.Errorf("unknown TestOutAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestOutAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testoutattempt.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case testoutattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case testoutattempt.FieldCardSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardSlug(v)
		return nil
	case testoutattempt.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case testoutattempt.FieldPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercentage(v)
		return nil
	case testoutattempt.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	}
	return fmt.Errorf("unknown TestOutAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestOutAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addpercentage != nil {
		fields = append(fields, testoutattempt.FieldPercentage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestOutAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testoutattempt.FieldPercentage:
		return m.AddedPercentage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestOutAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testoutattempt.FieldPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown TestOutAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestOutAttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestOutAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestOutAttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TestOutAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestOutAttemptMutation) ResetField(name string) error {
	switch name {
	case testoutattempt.FieldUserID:
		m.ResetUserID()
		return nil
	case testoutattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case testoutattempt.FieldCardSlug:
		m.ResetCardSlug()
		return nil
	case testoutattempt.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case testoutattempt.FieldPercentage:
		m.ResetPercentage()
		return nil
	case testoutattempt.FieldPassed:
		m.ResetPassed()
		return nil
	}
	return fmt.Errorf("unknown TestOutAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestOutAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestOutAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestOutAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestOutAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestOutAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestOutAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestOutAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TestOutAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestOutAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TestOutAttempt edge %s", name)
}
