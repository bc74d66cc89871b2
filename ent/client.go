// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/akshad/studyquest/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/akshad/studyquest/ent/challengeevent"
	"github.com/akshad/studyquest/ent/focusevent"
	"github.com/akshad/studyquest/ent/llmrequestevent"
	"github.com/akshad/studyquest/ent/profilerecord"
	"github.com/akshad/studyquest/ent/timerrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChallengeEvent is the client for interacting with the ChallengeEvent builders.
	ChallengeEvent *ChallengeEventClient
	// FocusEvent is the client for interacting with the FocusEvent builders.
	FocusEvent *FocusEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// ProfileRecord is the client for interacting with the ProfileRecord builders.
	ProfileRecord *ProfileRecordClient
	// TimerRecord is the client for interacting with the TimerRecord builders.
	TimerRecord *TimerRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChallengeEvent = NewChallengeEventClient(c.config)
	c.FocusEvent = NewFocusEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.ProfileRecord = NewProfileRecordClient(c.config)
	c.TimerRecord = NewTimerRecordClient(c.config)
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
		ChallengeEvent:  NewChallengeEventClient(cfg),
		FocusEvent:      NewFocusEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		ProfileRecord:   NewProfileRecordClient(cfg),
		TimerRecord:     NewTimerRecordClient(cfg),
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
		ChallengeEvent:  NewChallengeEventClient(cfg),
		FocusEvent:      NewFocusEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		ProfileRecord:   NewProfileRecordClient(cfg),
		TimerRecord:     NewTimerRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChallengeEvent.
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
	c.ChallengeEvent.Use(hooks...)
	c.FocusEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.ProfileRecord.Use(hooks...)
	c.TimerRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChallengeEvent.Intercept(interceptors...)
	c.FocusEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.ProfileRecord.Intercept(interceptors...)
	c.TimerRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChallengeEventMutation:
		return c.ChallengeEvent.mutate(ctx, m)
	case *FocusEventMutation:
		return c.FocusEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *ProfileRecordMutation:
		return c.ProfileRecord.mutate(ctx, m)
	case *TimerRecordMutation:
		return c.TimerRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChallengeEventClient is a client for the ChallengeEvent schema.
type ChallengeEventClient struct {
	config
}

// NewChallengeEventClient returns a client for the ChallengeEvent from the given config.
func NewChallengeEventClient(c config) *ChallengeEventClient {
	return &ChallengeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `challengeevent.Hooks(f(g(h())))`.
func (c *ChallengeEventClient) Use(hooks ...Hook) {
	c.hooks.ChallengeEvent = append(c.hooks.ChallengeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `challengeevent.Intercept(f(g(h())))`.
func (c *ChallengeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChallengeEvent = append(c.inters.ChallengeEvent, interceptors...)
}

// Create returns a builder for creating a ChallengeEvent entity.
func (c *ChallengeEventClient) Create() *ChallengeEventCreate {
	mutation := newChallengeEventMutation(c.config, OpCreate)
	return &ChallengeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChallengeEvent entities.
func (c *ChallengeEventClient) CreateBulk(builders ...*ChallengeEventCreate) *ChallengeEventCreateBulk {
	return &ChallengeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChallengeEventClient) MapCreateBulk(slice any, setFunc func(*ChallengeEventCreate, int)) *ChallengeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChallengeEventCreateBulk{err: fmt.Errorf("calling to ChallengeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChallengeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChallengeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChallengeEvent.
func (c *ChallengeEventClient) Update() *ChallengeEventUpdate {
	mutation := newChallengeEventMutation(c.config, OpUpdate)
	return &ChallengeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChallengeEventClient) UpdateOne(_m *ChallengeEvent) *ChallengeEventUpdateOne {
	mutation := newChallengeEventMutation(c.config, OpUpdateOne, withChallengeEvent(_m))
	return &ChallengeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChallengeEventClient) UpdateOneID(id int) *ChallengeEventUpdateOne {
	mutation := newChallengeEventMutation(c.config, OpUpdateOne, withChallengeEventID(id))
	return &ChallengeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChallengeEvent.
func (c *ChallengeEventClient) Delete() *ChallengeEventDelete {
	mutation := newChallengeEventMutation(c.config, OpDelete)
	return &ChallengeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChallengeEventClient) DeleteOne(_m *ChallengeEvent) *ChallengeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChallengeEventClient) DeleteOneID(id int) *ChallengeEventDeleteOne {
	builder := c.Delete().Where(challengeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChallengeEventDeleteOne{builder}
}

// Query returns a query builder for ChallengeEvent.
func (c *ChallengeEventClient) Query() *ChallengeEventQuery {
	return &ChallengeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChallengeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ChallengeEvent entity by its id.
func (c *ChallengeEventClient) Get(ctx context.Context, id int) (*ChallengeEvent, error) {
	return c.Query().Where(challengeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChallengeEventClient) GetX(ctx context.Context, id int) *ChallengeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChallengeEventClient) Hooks() []Hook {
	return c.hooks.ChallengeEvent
}

// Interceptors returns the client interceptors.
func (c *ChallengeEventClient) Interceptors() []Interceptor {
	return c.inters.ChallengeEvent
}

func (c *ChallengeEventClient) mutate(ctx context.Context, m *ChallengeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChallengeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChallengeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChallengeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChallengeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChallengeEvent mutation op: %q", m.Op())
	}
}

// FocusEventClient is a client for the FocusEvent schema.
type FocusEventClient struct {
	config
}

// NewFocusEventClient returns a client for the FocusEvent from the given config.
func NewFocusEventClient(c config) *FocusEventClient {
	return &FocusEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `focusevent.Hooks(f(g(h())))`.
func (c *FocusEventClient) Use(hooks ...Hook) {
	c.hooks.FocusEvent = append(c.hooks.FocusEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `focusevent.Intercept(f(g(h())))`.
func (c *FocusEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.FocusEvent = append(c.inters.FocusEvent, interceptors...)
}

// Create returns a builder for creating a FocusEvent entity.
func (c *FocusEventClient) Create() *FocusEventCreate {
	mutation := newFocusEventMutation(c.config, OpCreate)
	return &FocusEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FocusEvent entities.
func (c *FocusEventClient) CreateBulk(builders ...*FocusEventCreate) *FocusEventCreateBulk {
	return &FocusEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FocusEventClient) MapCreateBulk(slice any, setFunc func(*FocusEventCreate, int)) *FocusEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FocusEventCreateBulk{err: fmt.Errorf("calling to FocusEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FocusEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FocusEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FocusEvent.
func (c *FocusEventClient) Update() *FocusEventUpdate {
	mutation := newFocusEventMutation(c.config, OpUpdate)
	return &FocusEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FocusEventClient) UpdateOne(_m *FocusEvent) *FocusEventUpdateOne {
	mutation := newFocusEventMutation(c.config, OpUpdateOne, withFocusEvent(_m))
	return &FocusEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FocusEventClient) UpdateOneID(id int) *FocusEventUpdateOne {
	mutation := newFocusEventMutation(c.config, OpUpdateOne, withFocusEventID(id))
	return &FocusEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FocusEvent.
func (c *FocusEventClient) Delete() *FocusEventDelete {
	mutation := newFocusEventMutation(c.config, OpDelete)
	return &FocusEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FocusEventClient) DeleteOne(_m *FocusEvent) *FocusEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FocusEventClient) DeleteOneID(id int) *FocusEventDeleteOne {
	builder := c.Delete().Where(focusevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FocusEventDeleteOne{builder}
}

// Query returns a query builder for FocusEvent.
func (c *FocusEventClient) Query() *FocusEventQuery {
	return &FocusEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFocusEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a FocusEvent entity by its id.
func (c *FocusEventClient) Get(ctx context.Context, id int) (*FocusEvent, error) {
	return c.Query().Where(focusevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FocusEventClient) GetX(ctx context.Context, id int) *FocusEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FocusEventClient) Hooks() []Hook {
	return c.hooks.FocusEvent
}

// Interceptors returns the client interceptors.
func (c *FocusEventClient) Interceptors() []Interceptor {
	return c.inters.FocusEvent
}

func (c *FocusEventClient) mutate(ctx context.Context, m *FocusEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FocusEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FocusEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FocusEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FocusEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FocusEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// ProfileRecordClient is a client for the ProfileRecord schema.
type ProfileRecordClient struct {
	config
}

// NewProfileRecordClient returns a client for the ProfileRecord from the given config.
func NewProfileRecordClient(c config) *ProfileRecordClient {
	return &ProfileRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profilerecord.Hooks(f(g(h())))`.
func (c *ProfileRecordClient) Use(hooks ...Hook) {
	c.hooks.ProfileRecord = append(c.hooks.ProfileRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profilerecord.Intercept(f(g(h())))`.
func (c *ProfileRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProfileRecord = append(c.inters.ProfileRecord, interceptors...)
}

// Create returns a builder for creating a ProfileRecord entity.
func (c *ProfileRecordClient) Create() *ProfileRecordCreate {
	mutation := newProfileRecordMutation(c.config, OpCreate)
	return &ProfileRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProfileRecord entities.
func (c *ProfileRecordClient) CreateBulk(builders ...*ProfileRecordCreate) *ProfileRecordCreateBulk {
	return &ProfileRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileRecordClient) MapCreateBulk(slice any, setFunc func(*ProfileRecordCreate, int)) *ProfileRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileRecordCreateBulk{err: fmt.Errorf("calling to ProfileRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProfileRecord.
func (c *ProfileRecordClient) Update() *ProfileRecordUpdate {
	mutation := newProfileRecordMutation(c.config, OpUpdate)
	return &ProfileRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileRecordClient) UpdateOne(_m *ProfileRecord) *ProfileRecordUpdateOne {
	mutation := newProfileRecordMutation(c.config, OpUpdateOne, withProfileRecord(_m))
	return &ProfileRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileRecordClient) UpdateOneID(id int) *ProfileRecordUpdateOne {
	mutation := newProfileRecordMutation(c.config, OpUpdateOne, withProfileRecordID(id))
	return &ProfileRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProfileRecord.
func (c *ProfileRecordClient) Delete() *ProfileRecordDelete {
	mutation := newProfileRecordMutation(c.config, OpDelete)
	return &ProfileRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileRecordClient) DeleteOne(_m *ProfileRecord) *ProfileRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileRecordClient) DeleteOneID(id int) *ProfileRecordDeleteOne {
	builder := c.Delete().Where(profilerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileRecordDeleteOne{builder}
}

// Query returns a query builder for ProfileRecord.
func (c *ProfileRecordClient) Query() *ProfileRecordQuery {
	return &ProfileRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfileRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ProfileRecord entity by its id.
func (c *ProfileRecordClient) Get(ctx context.Context, id int) (*ProfileRecord, error) {
	return c.Query().Where(profilerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileRecordClient) GetX(ctx context.Context, id int) *ProfileRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileRecordClient) Hooks() []Hook {
	return c.hooks.ProfileRecord
}

// Interceptors returns the client interceptors.
func (c *ProfileRecordClient) Interceptors() []Interceptor {
	return c.inters.ProfileRecord
}

func (c *ProfileRecordClient) mutate(ctx context.Context, m *ProfileRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProfileRecord mutation op: %q", m.Op())
	}
}

// TimerRecordClient is a client for the TimerRecord schema.
type TimerRecordClient struct {
	config
}

// NewTimerRecordClient returns a client for the TimerRecord from the given config.
func NewTimerRecordClient(c config) *TimerRecordClient {
	return &TimerRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timerrecord.Hooks(f(g(h())))`.
func (c *TimerRecordClient) Use(hooks ...Hook) {
	c.hooks.TimerRecord = append(c.hooks.TimerRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timerrecord.Intercept(f(g(h())))`.
func (c *TimerRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimerRecord = append(c.inters.TimerRecord, interceptors...)
}

// Create returns a builder for creating a TimerRecord entity.
func (c *TimerRecordClient) Create() *TimerRecordCreate {
	mutation := newTimerRecordMutation(c.config, OpCreate)
	return &TimerRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimerRecord entities.
func (c *TimerRecordClient) CreateBulk(builders ...*TimerRecordCreate) *TimerRecordCreateBulk {
	return &TimerRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimerRecordClient) MapCreateBulk(slice any, setFunc func(*TimerRecordCreate, int)) *TimerRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimerRecordCreateBulk{err: fmt.Errorf("calling to TimerRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimerRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimerRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimerRecord.
func (c *TimerRecordClient) Update() *TimerRecordUpdate {
	mutation := newTimerRecordMutation(c.config, OpUpdate)
	return &TimerRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimerRecordClient) UpdateOne(_m *TimerRecord) *TimerRecordUpdateOne {
	mutation := newTimerRecordMutation(c.config, OpUpdateOne, withTimerRecord(_m))
	return &TimerRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimerRecordClient) UpdateOneID(id int) *TimerRecordUpdateOne {
	mutation := newTimerRecordMutation(c.config, OpUpdateOne, withTimerRecordID(id))
	return &TimerRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimerRecord.
func (c *TimerRecordClient) Delete() *TimerRecordDelete {
	mutation := newTimerRecordMutation(c.config, OpDelete)
	return &TimerRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimerRecordClient) DeleteOne(_m *TimerRecord) *TimerRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimerRecordClient) DeleteOneID(id int) *TimerRecordDeleteOne {
	builder := c.Delete().Where(timerrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimerRecordDeleteOne{builder}
}

// Query returns a query builder for TimerRecord.
func (c *TimerRecordClient) Query() *TimerRecordQuery {
	return &TimerRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimerRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a TimerRecord entity by its id.
func (c *TimerRecordClient) Get(ctx context.Context, id int) (*TimerRecord, error) {
	return c.Query().Where(timerrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimerRecordClient) GetX(ctx context.Context, id int) *TimerRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TimerRecordClient) Hooks() []Hook {
	return c.hooks.TimerRecord
}

// Interceptors returns the client interceptors.
func (c *TimerRecordClient) Interceptors() []Interceptor {
	return c.inters.TimerRecord
}

func (c *TimerRecordClient) mutate(ctx context.Context, m *TimerRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimerRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimerRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimerRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimerRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TimerRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChallengeEvent, FocusEvent, LLMRequestEvent, ProfileRecord,
		TimerRecord []ent.Hook
	}
	inters struct {
		ChallengeEvent, FocusEvent, LLMRequestEvent, ProfileRecord,
		TimerRecord []ent.Interceptor
	}
)
