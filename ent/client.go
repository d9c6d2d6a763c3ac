// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/adesai/stride/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/adesai/stride/ent/nodeprogress"
	"github.com/adesai/stride/ent/quizattempt"
	"github.com/adesai/stride/ent/sessionsnapshot"
	"github.com/adesai/stride/ent/testoutattempt"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// NodeProgress is the client for interacting with the NodeProgress builders.
	NodeProgress *NodeProgressClient
	// QuizAttempt is the client for interacting with the QuizAttempt builders.
	QuizAttempt *QuizAttemptClient
	// SessionSnapshot is the client for interacting with the SessionSnapshot builders.
	SessionSnapshot *SessionSnapshotClient
	// TestOutAttempt is the client for interacting with the TestOutAttempt builders.
	TestOutAttempt *TestOutAttemptClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.NodeProgress = NewNodeProgressClient(c.config)
	c.QuizAttempt = NewQuizAttemptClient(c.config)
	c.SessionSnapshot = NewSessionSnapshotClient(c.config)
	c.TestOutAttempt = NewTestOutAttemptClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		NodeProgress:    NewNodeProgressClient(cfg),
		QuizAttempt:     NewQuizAttemptClient(cfg),
		SessionSnapshot: NewSessionSnapshotClient(cfg),
		TestOutAttempt:  NewTestOutAttemptClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		NodeProgress:    NewNodeProgressClient(cfg),
		QuizAttempt:     NewQuizAttemptClient(cfg),
		SessionSnapshot: NewSessionSnapshotClient(cfg),
		TestOutAttempt:  NewTestOutAttemptClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		NodeProgress.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.NodeProgress.Use(hooks...)
	c.QuizAttempt.Use(hooks...)
	c.SessionSnapshot.Use(hooks...)
	c.TestOutAttempt.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.NodeProgress.Intercept(interceptors...)
	c.QuizAttempt.Intercept(interceptors...)
	c.SessionSnapshot.Intercept(interceptors...)
	c.TestOutAttempt.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *NodeProgressMutation:
		return c.NodeProgress.mutate(ctx, m)
	case *QuizAttemptMutation:
		return c.QuizAttempt.mutate(ctx, m)
	case *SessionSnapshotMutation:
		return c.SessionSnapshot.mutate(ctx, m)
	case *TestOutAttemptMutation:
		return c.TestOutAttempt.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// NodeProgressClient is a client for the NodeProgress schema.
type NodeProgressClient struct {
	config
}

// NewNodeProgressClient returns a client for the NodeProgress from the given config.
func NewNodeProgressClient(c config) *NodeProgressClient {
	return &NodeProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nodeprogress.Hooks(f(g(h())))`.
func (c *NodeProgressClient) Use(hooks ...Hook) {
	c.hooks.NodeProgress = append(c.hooks.NodeProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nodeprogress.Intercept(f(g(h())))`.
func (c *NodeProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.NodeProgress = append(c.inters.NodeProgress, interceptors...)
}

// Create returns a builder for creating a NodeProgress entity.
func (c *NodeProgressClient) Create() *NodeProgressCreate {
	mutation := newNodeProgressMutation(c.config, OpCreate)
	return &NodeProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NodeProgress entities.
func (c *NodeProgressClient) CreateBulk(builders ...*NodeProgressCreate) *NodeProgressCreateBulk {
	return &NodeProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NodeProgressClient) MapCreateBulk(slice any, setFunc func(*NodeProgressCreate, int)) *NodeProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NodeProgressCreateBulk{err: fmt.Errorf("calling to NodeProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NodeProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NodeProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NodeProgress.
func (c *NodeProgressClient) Update() *NodeProgressUpdate {
	mutation := newNodeProgressMutation(c.config, OpUpdate)
	return &NodeProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NodeProgressClient) UpdateOne(_m *NodeProgress) *NodeProgressUpdateOne {
	mutation := newNodeProgressMutation(c.config, OpUpdateOne, withNodeProgress(_m))
	return &NodeProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NodeProgressClient) UpdateOneID(id int) *NodeProgressUpdateOne {
	mutation := newNodeProgressMutation(c.config, OpUpdateOne, withNodeProgressID(id))
	return &NodeProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NodeProgress.
func (c *NodeProgressClient) Delete() *NodeProgressDelete {
	mutation := newNodeProgressMutation(c.config, OpDelete)
	return &NodeProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NodeProgressClient) DeleteOne(_m *NodeProgress) *NodeProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NodeProgressClient) DeleteOneID(id int) *NodeProgressDeleteOne {
	builder := c.Delete().Where(nodeprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NodeProgressDeleteOne{builder}
}

// Query returns a query builder for NodeProgress.
func (c *NodeProgressClient) Query() *NodeProgressQuery {
	return &NodeProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNodeProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a NodeProgress entity by its id.
func (c *NodeProgressClient) Get(ctx context.Context, id int) (*NodeProgress, error) {
	return c.Query().Where(nodeprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NodeProgressClient) GetX(ctx context.Context, id int) *NodeProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NodeProgressClient) Hooks() []Hook {
	return c.hooks.NodeProgress
}

// Interceptors returns the client interceptors.
func (c *NodeProgressClient) Interceptors() []Interceptor {
	return c.inters.NodeProgress
}

func (c *NodeProgressClient) mutate(ctx context.Context, m *NodeProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NodeProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NodeProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NodeProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NodeProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NodeProgress mutation op: %q", m.Op())
	}
}

// QuizAttemptClient is a client for the QuizAttempt schema.
type QuizAttemptClient struct {
	config
}

// NewQuizAttemptClient returns a client for the QuizAttempt from the given config.
func NewQuizAttemptClient(c config) *QuizAttemptClient {
	return &QuizAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizattempt.Hooks(f(g(h())))`.
func (c *QuizAttemptClient) Use(hooks ...Hook) {
	c.hooks.QuizAttempt = append(c.hooks.QuizAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizattempt.Intercept(f(g(h())))`.
func (c *QuizAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizAttempt = append(c.inters.QuizAttempt, interceptors...)
}

// Create returns a builder for creating a QuizAttempt entity.
func (c *QuizAttemptClient) Create() *QuizAttemptCreate {
	mutation := newQuizAttemptMutation(c.config, OpCreate)
	return &QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizAttempt entities.
func (c *QuizAttemptClient) CreateBulk(builders ...*QuizAttemptCreate) *QuizAttemptCreateBulk {
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizAttemptClient) MapCreateBulk(slice any, setFunc func(*QuizAttemptCreate, int)) *QuizAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizAttemptCreateBulk{err: fmt.Errorf("calling to QuizAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizAttempt.
func (c *QuizAttemptClient) Update() *QuizAttemptUpdate {
	mutation := newQuizAttemptMutation(c.config, OpUpdate)
	return &QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizAttemptClient) UpdateOne(_m *QuizAttempt) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttempt(_m))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizAttemptClient) UpdateOneID(id int) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttemptID(id))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizAttempt.
func (c *QuizAttemptClient) Delete() *QuizAttemptDelete {
	mutation := newQuizAttemptMutation(c.config, OpDelete)
	return &QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizAttemptClient) DeleteOne(_m *QuizAttempt) *QuizAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizAttemptClient) DeleteOneID(id int) *QuizAttemptDeleteOne {
	builder := c.Delete().Where(quizattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizAttemptDeleteOne{builder}
}

// Query returns a query builder for QuizAttempt.
func (c *QuizAttemptClient) Query() *QuizAttemptQuery {
	return &QuizAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizAttempt entity by its id.
func (c *QuizAttemptClient) Get(ctx context.Context, id int) (*QuizAttempt, error) {
	return c.Query().Where(quizattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizAttemptClient) GetX(ctx context.Context, id int) *QuizAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizAttemptClient) Hooks() []Hook {
	return c.hooks.QuizAttempt
}

// Interceptors returns the client interceptors.
func (c *QuizAttemptClient) Interceptors() []Interceptor {
	return c.inters.QuizAttempt
}

func (c *QuizAttemptClient) mutate(ctx context.Context, m *QuizAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizAttempt mutation op: %q", m.Op())
	}
}

// SessionSnapshotClient is a client for the SessionSnapshot schema.
type SessionSnapshotClient struct {
	config
}

// NewSessionSnapshotClient returns a client for the SessionSnapshot from the given config.
func NewSessionSnapshotClient(c config) *SessionSnapshotClient {
	return &SessionSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionsnapshot.Hooks(f(g(h())))`.
func (c *SessionSnapshotClient) Use(hooks ...Hook) {
	c.hooks.SessionSnapshot = append(c.hooks.SessionSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionsnapshot.Intercept(f(g(h())))`.
func (c *SessionSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionSnapshot = append(c.inters.SessionSnapshot, interceptors...)
}

// Create returns a builder for creating a SessionSnapshot entity.
func (c *SessionSnapshotClient) Create() *SessionSnapshotCreate {
	mutation := newSessionSnapshotMutation(c.config, OpCreate)
	return &SessionSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionSnapshot entities.
func (c *SessionSnapshotClient) CreateBulk(builders ...*SessionSnapshotCreate) *SessionSnapshotCreateBulk {
	return &SessionSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionSnapshotClient) MapCreateBulk(slice any, setFunc func(*SessionSnapshotCreate, int)) *SessionSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionSnapshotCreateBulk{err: fmt.Errorf("calling to SessionSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionSnapshot.
func (c *SessionSnapshotClient) Update() *SessionSnapshotUpdate {
	mutation := newSessionSnapshotMutation(c.config, OpUpdate)
	return &SessionSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionSnapshotClient) UpdateOne(_m *SessionSnapshot) *SessionSnapshotUpdateOne {
	mutation := newSessionSnapshotMutation(c.config, OpUpdateOne, withSessionSnapshot(_m))
	return &SessionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionSnapshotClient) UpdateOneID(id int) *SessionSnapshotUpdateOne {
	mutation := newSessionSnapshotMutation(c.config, OpUpdateOne, withSessionSnapshotID(id))
	return &SessionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionSnapshot.
func (c *SessionSnapshotClient) Delete() *SessionSnapshotDelete {
	mutation := newSessionSnapshotMutation(c.config, OpDelete)
	return &SessionSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionSnapshotClient) DeleteOne(_m *SessionSnapshot) *SessionSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionSnapshotClient) DeleteOneID(id int) *SessionSnapshotDeleteOne {
	builder := c.Delete().Where(sessionsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionSnapshotDeleteOne{builder}
}

// Query returns a query builder for SessionSnapshot.
func (c *SessionSnapshotClient) Query() *SessionSnapshotQuery {
	return &SessionSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionSnapshot entity by its id.
func (c *SessionSnapshotClient) Get(ctx context.Context, id int) (*SessionSnapshot, error) {
	return c.Query().Where(sessionsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionSnapshotClient) GetX(ctx context.Context, id int) *SessionSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionSnapshotClient) Hooks() []Hook {
	return c.hooks.SessionSnapshot
}

// Interceptors returns the client interceptors.
func (c *SessionSnapshotClient) Interceptors() []Interceptor {
	return c.inters.SessionSnapshot
}

func (c *SessionSnapshotClient) mutate(ctx context.Context, m *SessionSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionSnapshot mutation op: %q", m.Op())
	}
}

// TestOutAttemptClient is a client for the TestOutAttempt schema.
type TestOutAttemptClient struct {
	config
}

// NewTestOutAttemptClient returns a client for the TestOutAttempt from the given config.
func NewTestOutAttemptClient(c config) *TestOutAttemptClient {
	return &TestOutAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `testoutattempt.Hooks(f(g(h())))`.
func (c *TestOutAttemptClient) Use(hooks ...Hook) {
	c.hooks.TestOutAttempt = append(c.hooks.TestOutAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `testoutattempt.Intercept(f(g(h())))`.
func (c *TestOutAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.TestOutAttempt = append(c.inters.TestOutAttempt, interceptors...)
}

// Create returns a builder for creating a TestOutAttempt entity.
func (c *TestOutAttemptClient) Create() *TestOutAttemptCreate {
	mutation := newTestOutAttemptMutation(c.config, OpCreate)
	return &TestOutAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TestOutAttempt entities.
func (c *TestOutAttemptClient) CreateBulk(builders ...*TestOutAttemptCreate) *TestOutAttemptCreateBulk {
	return &TestOutAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestOutAttemptClient) MapCreateBulk(slice any, setFunc func(*TestOutAttemptCreate, int)) *TestOutAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestOutAttemptCreateBulk{err: fmt.Errorf("calling to TestOutAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestOutAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestOutAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TestOutAttempt.
func (c *TestOutAttemptClient) Update() *TestOutAttemptUpdate {
	mutation := newTestOutAttemptMutation(c.config, OpUpdate)
	return &TestOutAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestOutAttemptClient) UpdateOne(_m *TestOutAttempt) *TestOutAttemptUpdateOne {
	mutation := newTestOutAttemptMutation(c.config, OpUpdateOne, withTestOutAttempt(_m))
	return &TestOutAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestOutAttemptClient) UpdateOneID(id int) *TestOutAttemptUpdateOne {
	mutation := newTestOutAttemptMutation(c.config, OpUpdateOne, withTestOutAttemptID(id))
	return &TestOutAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TestOutAttempt.
func (c *TestOutAttemptClient) Delete() *TestOutAttemptDelete {
	mutation := newTestOutAttemptMutation(c.config, OpDelete)
	return &TestOutAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestOutAttemptClient) DeleteOne(_m *TestOutAttempt) *TestOutAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestOutAttemptClient) DeleteOneID(id int) *TestOutAttemptDeleteOne {
	builder := c.Delete().Where(testoutattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestOutAttemptDeleteOne{builder}
}

// Query returns a query builder for TestOutAttempt.
func (c *TestOutAttemptClient) Query() *TestOutAttemptQuery {
	return &TestOutAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTestOutAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a TestOutAttempt entity by its id.
func (c *TestOutAttemptClient) Get(ctx context.Context, id int) (*TestOutAttempt, error) {
	return c.Query().Where(testoutattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestOutAttemptClient) GetX(ctx context.Context, id int) *TestOutAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TestOutAttemptClient) Hooks() []Hook {
	return c.hooks.TestOutAttempt
}

// Interceptors returns the client interceptors.
func (c *TestOutAttemptClient) Interceptors() []Interceptor {
	return c.inters.TestOutAttempt
}

func (c *TestOutAttemptClient) mutate(ctx context.Context, m *TestOutAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestOutAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestOutAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestOutAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestOutAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TestOutAttempt mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		NodeProgress, QuizAttempt, SessionSnapshot, TestOutAttempt []ent.Hook
	}
	inters struct {
		NodeProgress, QuizAttempt, SessionSnapshot, TestOutAttempt []ent.Interceptor
	}
)
