// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/butlerhq/butlerd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/butlerhq/butlerd/ent/approvalevent"
	"github.com/butlerhq/butlerd/ent/approvalrule"
	"github.com/butlerhq/butlerd/ent/contact"
	"github.com/butlerhq/butlerd/ent/contactchannel"
	"github.com/butlerhq/butlerd/ent/inboxrecord"
	"github.com/butlerhq/butlerd/ent/kventry"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/ent/scheduledtask"
	"github.com/butlerhq/butlerd/ent/session"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ApprovalEvent is the client for interacting with the ApprovalEvent builders.
	ApprovalEvent *ApprovalEventClient
	// ApprovalRule is the client for interacting with the ApprovalRule builders.
	ApprovalRule *ApprovalRuleClient
	// Contact is the client for interacting with the Contact builders.
	Contact *ContactClient
	// ContactChannel is the client for interacting with the ContactChannel builders.
	ContactChannel *ContactChannelClient
	// InboxRecord is the client for interacting with the InboxRecord builders.
	InboxRecord *InboxRecordClient
	// KVEntry is the client for interacting with the KVEntry builders.
	KVEntry *KVEntryClient
	// PendingAction is the client for interacting with the PendingAction builders.
	PendingAction *PendingActionClient
	// ScheduledTask is the client for interacting with the ScheduledTask builders.
	ScheduledTask *ScheduledTaskClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ApprovalEvent = NewApprovalEventClient(c.config)
	c.ApprovalRule = NewApprovalRuleClient(c.config)
	c.Contact = NewContactClient(c.config)
	c.ContactChannel = NewContactChannelClient(c.config)
	c.InboxRecord = NewInboxRecordClient(c.config)
	c.KVEntry = NewKVEntryClient(c.config)
	c.PendingAction = NewPendingActionClient(c.config)
	c.ScheduledTask = NewScheduledTaskClient(c.config)
	c.Session = NewSessionClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		ApprovalEvent:  NewApprovalEventClient(cfg),
		ApprovalRule:   NewApprovalRuleClient(cfg),
		Contact:        NewContactClient(cfg),
		ContactChannel: NewContactChannelClient(cfg),
		InboxRecord:    NewInboxRecordClient(cfg),
		KVEntry:        NewKVEntryClient(cfg),
		PendingAction:  NewPendingActionClient(cfg),
		ScheduledTask:  NewScheduledTaskClient(cfg),
		Session:        NewSessionClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		ApprovalEvent:  NewApprovalEventClient(cfg),
		ApprovalRule:   NewApprovalRuleClient(cfg),
		Contact:        NewContactClient(cfg),
		ContactChannel: NewContactChannelClient(cfg),
		InboxRecord:    NewInboxRecordClient(cfg),
		KVEntry:        NewKVEntryClient(cfg),
		PendingAction:  NewPendingActionClient(cfg),
		ScheduledTask:  NewScheduledTaskClient(cfg),
		Session:        NewSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ApprovalEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.ApprovalEvent, c.ApprovalRule, c.Contact, c.ContactChannel, c.InboxRecord,
		c.KVEntry, c.PendingAction, c.ScheduledTask, c.Session,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ApprovalEvent, c.ApprovalRule, c.Contact, c.ContactChannel, c.InboxRecord,
		c.KVEntry, c.PendingAction, c.ScheduledTask, c.Session,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApprovalEventMutation:
		return c.ApprovalEvent.mutate(ctx, m)
	case *ApprovalRuleMutation:
		return c.ApprovalRule.mutate(ctx, m)
	case *ContactMutation:
		return c.Contact.mutate(ctx, m)
	case *ContactChannelMutation:
		return c.ContactChannel.mutate(ctx, m)
	case *InboxRecordMutation:
		return c.InboxRecord.mutate(ctx, m)
	case *KVEntryMutation:
		return c.KVEntry.mutate(ctx, m)
	case *PendingActionMutation:
		return c.PendingAction.mutate(ctx, m)
	case *ScheduledTaskMutation:
		return c.ScheduledTask.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApprovalEventClient is a client for the ApprovalEvent schema.
type ApprovalEventClient struct {
	config
}

// NewApprovalEventClient returns a client for the ApprovalEvent from the given config.
func NewApprovalEventClient(c config) *ApprovalEventClient {
	return &ApprovalEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalevent.Hooks(f(g(h())))`.
func (c *ApprovalEventClient) Use(hooks ...Hook) {
	c.hooks.ApprovalEvent = append(c.hooks.ApprovalEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalevent.Intercept(f(g(h())))`.
func (c *ApprovalEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalEvent = append(c.inters.ApprovalEvent, interceptors...)
}

// Create returns a builder for creating a ApprovalEvent entity.
func (c *ApprovalEventClient) Create() *ApprovalEventCreate {
	mutation := newApprovalEventMutation(c.config, OpCreate)
	return &ApprovalEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalEvent entities.
func (c *ApprovalEventClient) CreateBulk(builders ...*ApprovalEventCreate) *ApprovalEventCreateBulk {
	return &ApprovalEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalEventClient) MapCreateBulk(slice any, setFunc func(*ApprovalEventCreate, int)) *ApprovalEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalEventCreateBulk{err: fmt.Errorf("calling to ApprovalEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalEvent.
func (c *ApprovalEventClient) Update() *ApprovalEventUpdate {
	mutation := newApprovalEventMutation(c.config, OpUpdate)
	return &ApprovalEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalEventClient) UpdateOne(_m *ApprovalEvent) *ApprovalEventUpdateOne {
	mutation := newApprovalEventMutation(c.config, OpUpdateOne, withApprovalEvent(_m))
	return &ApprovalEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalEventClient) UpdateOneID(id string) *ApprovalEventUpdateOne {
	mutation := newApprovalEventMutation(c.config, OpUpdateOne, withApprovalEventID(id))
	return &ApprovalEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalEvent.
func (c *ApprovalEventClient) Delete() *ApprovalEventDelete {
	mutation := newApprovalEventMutation(c.config, OpDelete)
	return &ApprovalEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalEventClient) DeleteOne(_m *ApprovalEvent) *ApprovalEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalEventClient) DeleteOneID(id string) *ApprovalEventDeleteOne {
	builder := c.Delete().Where(approvalevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalEventDeleteOne{builder}
}

// Query returns a query builder for ApprovalEvent.
func (c *ApprovalEventClient) Query() *ApprovalEventQuery {
	return &ApprovalEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalEvent entity by its id.
func (c *ApprovalEventClient) Get(ctx context.Context, id string) (*ApprovalEvent, error) {
	return c.Query().Where(approvalevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalEventClient) GetX(ctx context.Context, id string) *ApprovalEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApprovalEventClient) Hooks() []Hook {
	return c.hooks.ApprovalEvent
}

// Interceptors returns the client interceptors.
func (c *ApprovalEventClient) Interceptors() []Interceptor {
	return c.inters.ApprovalEvent
}

func (c *ApprovalEventClient) mutate(ctx context.Context, m *ApprovalEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalEvent mutation op: %q", m.Op())
	}
}

// ApprovalRuleClient is a client for the ApprovalRule schema.
type ApprovalRuleClient struct {
	config
}

// NewApprovalRuleClient returns a client for the ApprovalRule from the given config.
func NewApprovalRuleClient(c config) *ApprovalRuleClient {
	return &ApprovalRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalrule.Hooks(f(g(h())))`.
func (c *ApprovalRuleClient) Use(hooks ...Hook) {
	c.hooks.ApprovalRule = append(c.hooks.ApprovalRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalrule.Intercept(f(g(h())))`.
func (c *ApprovalRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalRule = append(c.inters.ApprovalRule, interceptors...)
}

// Create returns a builder for creating a ApprovalRule entity.
func (c *ApprovalRuleClient) Create() *ApprovalRuleCreate {
	mutation := newApprovalRuleMutation(c.config, OpCreate)
	return &ApprovalRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalRule entities.
func (c *ApprovalRuleClient) CreateBulk(builders ...*ApprovalRuleCreate) *ApprovalRuleCreateBulk {
	return &ApprovalRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalRuleClient) MapCreateBulk(slice any, setFunc func(*ApprovalRuleCreate, int)) *ApprovalRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalRuleCreateBulk{err: fmt.Errorf("calling to ApprovalRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalRule.
func (c *ApprovalRuleClient) Update() *ApprovalRuleUpdate {
	mutation := newApprovalRuleMutation(c.config, OpUpdate)
	return &ApprovalRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalRuleClient) UpdateOne(_m *ApprovalRule) *ApprovalRuleUpdateOne {
	mutation := newApprovalRuleMutation(c.config, OpUpdateOne, withApprovalRule(_m))
	return &ApprovalRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalRuleClient) UpdateOneID(id string) *ApprovalRuleUpdateOne {
	mutation := newApprovalRuleMutation(c.config, OpUpdateOne, withApprovalRuleID(id))
	return &ApprovalRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalRule.
func (c *ApprovalRuleClient) Delete() *ApprovalRuleDelete {
	mutation := newApprovalRuleMutation(c.config, OpDelete)
	return &ApprovalRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalRuleClient) DeleteOne(_m *ApprovalRule) *ApprovalRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalRuleClient) DeleteOneID(id string) *ApprovalRuleDeleteOne {
	builder := c.Delete().Where(approvalrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalRuleDeleteOne{builder}
}

// Query returns a query builder for ApprovalRule.
func (c *ApprovalRuleClient) Query() *ApprovalRuleQuery {
	return &ApprovalRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalRule},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalRule entity by its id.
func (c *ApprovalRuleClient) Get(ctx context.Context, id string) (*ApprovalRule, error) {
	return c.Query().Where(approvalrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalRuleClient) GetX(ctx context.Context, id string) *ApprovalRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApprovalRuleClient) Hooks() []Hook {
	return c.hooks.ApprovalRule
}

// Interceptors returns the client interceptors.
func (c *ApprovalRuleClient) Interceptors() []Interceptor {
	return c.inters.ApprovalRule
}

func (c *ApprovalRuleClient) mutate(ctx context.Context, m *ApprovalRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalRule mutation op: %q", m.Op())
	}
}

// ContactClient is a client for the Contact schema.
type ContactClient struct {
	config
}

// NewContactClient returns a client for the Contact from the given config.
func NewContactClient(c config) *ContactClient {
	return &ContactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contact.Hooks(f(g(h())))`.
func (c *ContactClient) Use(hooks ...Hook) {
	c.hooks.Contact = append(c.hooks.Contact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contact.Intercept(f(g(h())))`.
func (c *ContactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Contact = append(c.inters.Contact, interceptors...)
}

// Create returns a builder for creating a Contact entity.
func (c *ContactClient) Create() *ContactCreate {
	mutation := newContactMutation(c.config, OpCreate)
	return &ContactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Contact entities.
func (c *ContactClient) CreateBulk(builders ...*ContactCreate) *ContactCreateBulk {
	return &ContactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContactClient) MapCreateBulk(slice any, setFunc func(*ContactCreate, int)) *ContactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContactCreateBulk{err: fmt.Errorf("calling to ContactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Contact.
func (c *ContactClient) Update() *ContactUpdate {
	mutation := newContactMutation(c.config, OpUpdate)
	return &ContactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContactClient) UpdateOne(_m *Contact) *ContactUpdateOne {
	mutation := newContactMutation(c.config, OpUpdateOne, withContact(_m))
	return &ContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContactClient) UpdateOneID(id string) *ContactUpdateOne {
	mutation := newContactMutation(c.config, OpUpdateOne, withContactID(id))
	return &ContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Contact.
func (c *ContactClient) Delete() *ContactDelete {
	mutation := newContactMutation(c.config, OpDelete)
	return &ContactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContactClient) DeleteOne(_m *Contact) *ContactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContactClient) DeleteOneID(id string) *ContactDeleteOne {
	builder := c.Delete().Where(contact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContactDeleteOne{builder}
}

// Query returns a query builder for Contact.
func (c *ContactClient) Query() *ContactQuery {
	return &ContactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContact},
		inters: c.Interceptors(),
	}
}

// Get returns a Contact entity by its id.
func (c *ContactClient) Get(ctx context.Context, id string) (*Contact, error) {
	return c.Query().Where(contact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContactClient) GetX(ctx context.Context, id string) *Contact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChannels queries the channels edge of a Contact.
func (c *ContactClient) QueryChannels(_m *Contact) *ContactChannelQuery {
	query := (&ContactChannelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contact.Table, contact.FieldID, id),
			sqlgraph.To(contactchannel.Table, contactchannel.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contact.ChannelsTable, contact.ChannelsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContactClient) Hooks() []Hook {
	return c.hooks.Contact
}

// Interceptors returns the client interceptors.
func (c *ContactClient) Interceptors() []Interceptor {
	return c.inters.Contact
}

func (c *ContactClient) mutate(ctx context.Context, m *ContactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Contact mutation op: %q", m.Op())
	}
}

// ContactChannelClient is a client for the ContactChannel schema.
type ContactChannelClient struct {
	config
}

// NewContactChannelClient returns a client for the ContactChannel from the given config.
func NewContactChannelClient(c config) *ContactChannelClient {
	return &ContactChannelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contactchannel.Hooks(f(g(h())))`.
func (c *ContactChannelClient) Use(hooks ...Hook) {
	c.hooks.ContactChannel = append(c.hooks.ContactChannel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contactchannel.Intercept(f(g(h())))`.
func (c *ContactChannelClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContactChannel = append(c.inters.ContactChannel, interceptors...)
}

// Create returns a builder for creating a ContactChannel entity.
func (c *ContactChannelClient) Create() *ContactChannelCreate {
	mutation := newContactChannelMutation(c.config, OpCreate)
	return &ContactChannelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContactChannel entities.
func (c *ContactChannelClient) CreateBulk(builders ...*ContactChannelCreate) *ContactChannelCreateBulk {
	return &ContactChannelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContactChannelClient) MapCreateBulk(slice any, setFunc func(*ContactChannelCreate, int)) *ContactChannelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContactChannelCreateBulk{err: fmt.Errorf("calling to ContactChannelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContactChannelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContactChannelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContactChannel.
func (c *ContactChannelClient) Update() *ContactChannelUpdate {
	mutation := newContactChannelMutation(c.config, OpUpdate)
	return &ContactChannelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContactChannelClient) UpdateOne(_m *ContactChannel) *ContactChannelUpdateOne {
	mutation := newContactChannelMutation(c.config, OpUpdateOne, withContactChannel(_m))
	return &ContactChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContactChannelClient) UpdateOneID(id string) *ContactChannelUpdateOne {
	mutation := newContactChannelMutation(c.config, OpUpdateOne, withContactChannelID(id))
	return &ContactChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContactChannel.
func (c *ContactChannelClient) Delete() *ContactChannelDelete {
	mutation := newContactChannelMutation(c.config, OpDelete)
	return &ContactChannelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContactChannelClient) DeleteOne(_m *ContactChannel) *ContactChannelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContactChannelClient) DeleteOneID(id string) *ContactChannelDeleteOne {
	builder := c.Delete().Where(contactchannel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContactChannelDeleteOne{builder}
}

// Query returns a query builder for ContactChannel.
func (c *ContactChannelClient) Query() *ContactChannelQuery {
	return &ContactChannelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContactChannel},
		inters: c.Interceptors(),
	}
}

// Get returns a ContactChannel entity by its id.
func (c *ContactChannelClient) Get(ctx context.Context, id string) (*ContactChannel, error) {
	return c.Query().Where(contactchannel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContactChannelClient) GetX(ctx context.Context, id string) *ContactChannel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContact queries the contact edge of a ContactChannel.
func (c *ContactChannelClient) QueryContact(_m *ContactChannel) *ContactQuery {
	query := (&ContactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contactchannel.Table, contactchannel.FieldID, id),
			sqlgraph.To(contact.Table, contact.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contactchannel.ContactTable, contactchannel.ContactColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContactChannelClient) Hooks() []Hook {
	return c.hooks.ContactChannel
}

// Interceptors returns the client interceptors.
func (c *ContactChannelClient) Interceptors() []Interceptor {
	return c.inters.ContactChannel
}

func (c *ContactChannelClient) mutate(ctx context.Context, m *ContactChannelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContactChannelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContactChannelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContactChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContactChannelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContactChannel mutation op: %q", m.Op())
	}
}

// InboxRecordClient is a client for the InboxRecord schema.
type InboxRecordClient struct {
	config
}

// NewInboxRecordClient returns a client for the InboxRecord from the given config.
func NewInboxRecordClient(c config) *InboxRecordClient {
	return &InboxRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inboxrecord.Hooks(f(g(h())))`.
func (c *InboxRecordClient) Use(hooks ...Hook) {
	c.hooks.InboxRecord = append(c.hooks.InboxRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inboxrecord.Intercept(f(g(h())))`.
func (c *InboxRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.InboxRecord = append(c.inters.InboxRecord, interceptors...)
}

// Create returns a builder for creating a InboxRecord entity.
func (c *InboxRecordClient) Create() *InboxRecordCreate {
	mutation := newInboxRecordMutation(c.config, OpCreate)
	return &InboxRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InboxRecord entities.
func (c *InboxRecordClient) CreateBulk(builders ...*InboxRecordCreate) *InboxRecordCreateBulk {
	return &InboxRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InboxRecordClient) MapCreateBulk(slice any, setFunc func(*InboxRecordCreate, int)) *InboxRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InboxRecordCreateBulk{err: fmt.Errorf("calling to InboxRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InboxRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InboxRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InboxRecord.
func (c *InboxRecordClient) Update() *InboxRecordUpdate {
	mutation := newInboxRecordMutation(c.config, OpUpdate)
	return &InboxRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InboxRecordClient) UpdateOne(_m *InboxRecord) *InboxRecordUpdateOne {
	mutation := newInboxRecordMutation(c.config, OpUpdateOne, withInboxRecord(_m))
	return &InboxRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InboxRecordClient) UpdateOneID(id string) *InboxRecordUpdateOne {
	mutation := newInboxRecordMutation(c.config, OpUpdateOne, withInboxRecordID(id))
	return &InboxRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InboxRecord.
func (c *InboxRecordClient) Delete() *InboxRecordDelete {
	mutation := newInboxRecordMutation(c.config, OpDelete)
	return &InboxRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InboxRecordClient) DeleteOne(_m *InboxRecord) *InboxRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InboxRecordClient) DeleteOneID(id string) *InboxRecordDeleteOne {
	builder := c.Delete().Where(inboxrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InboxRecordDeleteOne{builder}
}

// Query returns a query builder for InboxRecord.
func (c *InboxRecordClient) Query() *InboxRecordQuery {
	return &InboxRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInboxRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a InboxRecord entity by its id.
func (c *InboxRecordClient) Get(ctx context.Context, id string) (*InboxRecord, error) {
	return c.Query().Where(inboxrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InboxRecordClient) GetX(ctx context.Context, id string) *InboxRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InboxRecordClient) Hooks() []Hook {
	return c.hooks.InboxRecord
}

// Interceptors returns the client interceptors.
func (c *InboxRecordClient) Interceptors() []Interceptor {
	return c.inters.InboxRecord
}

func (c *InboxRecordClient) mutate(ctx context.Context, m *InboxRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InboxRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InboxRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InboxRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InboxRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InboxRecord mutation op: %q", m.Op())
	}
}

// KVEntryClient is a client for the KVEntry schema.
type KVEntryClient struct {
	config
}

// NewKVEntryClient returns a client for the KVEntry from the given config.
func NewKVEntryClient(c config) *KVEntryClient {
	return &KVEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `kventry.Hooks(f(g(h())))`.
func (c *KVEntryClient) Use(hooks ...Hook) {
	c.hooks.KVEntry = append(c.hooks.KVEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `kventry.Intercept(f(g(h())))`.
func (c *KVEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.KVEntry = append(c.inters.KVEntry, interceptors...)
}

// Create returns a builder for creating a KVEntry entity.
func (c *KVEntryClient) Create() *KVEntryCreate {
	mutation := newKVEntryMutation(c.config, OpCreate)
	return &KVEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KVEntry entities.
func (c *KVEntryClient) CreateBulk(builders ...*KVEntryCreate) *KVEntryCreateBulk {
	return &KVEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KVEntryClient) MapCreateBulk(slice any, setFunc func(*KVEntryCreate, int)) *KVEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KVEntryCreateBulk{err: fmt.Errorf("calling to KVEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KVEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KVEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KVEntry.
func (c *KVEntryClient) Update() *KVEntryUpdate {
	mutation := newKVEntryMutation(c.config, OpUpdate)
	return &KVEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KVEntryClient) UpdateOne(_m *KVEntry) *KVEntryUpdateOne {
	mutation := newKVEntryMutation(c.config, OpUpdateOne, withKVEntry(_m))
	return &KVEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KVEntryClient) UpdateOneID(id int) *KVEntryUpdateOne {
	mutation := newKVEntryMutation(c.config, OpUpdateOne, withKVEntryID(id))
	return &KVEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KVEntry.
func (c *KVEntryClient) Delete() *KVEntryDelete {
	mutation := newKVEntryMutation(c.config, OpDelete)
	return &KVEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KVEntryClient) DeleteOne(_m *KVEntry) *KVEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KVEntryClient) DeleteOneID(id int) *KVEntryDeleteOne {
	builder := c.Delete().Where(kventry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KVEntryDeleteOne{builder}
}

// Query returns a query builder for KVEntry.
func (c *KVEntryClient) Query() *KVEntryQuery {
	return &KVEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKVEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a KVEntry entity by its id.
func (c *KVEntryClient) Get(ctx context.Context, id int) (*KVEntry, error) {
	return c.Query().Where(kventry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KVEntryClient) GetX(ctx context.Context, id int) *KVEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KVEntryClient) Hooks() []Hook {
	return c.hooks.KVEntry
}

// Interceptors returns the client interceptors.
func (c *KVEntryClient) Interceptors() []Interceptor {
	return c.inters.KVEntry
}

func (c *KVEntryClient) mutate(ctx context.Context, m *KVEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KVEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KVEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KVEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KVEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KVEntry mutation op: %q", m.Op())
	}
}

// PendingActionClient is a client for the PendingAction schema.
type PendingActionClient struct {
	config
}

// NewPendingActionClient returns a client for the PendingAction from the given config.
func NewPendingActionClient(c config) *PendingActionClient {
	return &PendingActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pendingaction.Hooks(f(g(h())))`.
func (c *PendingActionClient) Use(hooks ...Hook) {
	c.hooks.PendingAction = append(c.hooks.PendingAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pendingaction.Intercept(f(g(h())))`.
func (c *PendingActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PendingAction = append(c.inters.PendingAction, interceptors...)
}

// Create returns a builder for creating a PendingAction entity.
func (c *PendingActionClient) Create() *PendingActionCreate {
	mutation := newPendingActionMutation(c.config, OpCreate)
	return &PendingActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PendingAction entities.
func (c *PendingActionClient) CreateBulk(builders ...*PendingActionCreate) *PendingActionCreateBulk {
	return &PendingActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PendingActionClient) MapCreateBulk(slice any, setFunc func(*PendingActionCreate, int)) *PendingActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PendingActionCreateBulk{err: fmt.Errorf("calling to PendingActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PendingActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PendingActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PendingAction.
func (c *PendingActionClient) Update() *PendingActionUpdate {
	mutation := newPendingActionMutation(c.config, OpUpdate)
	return &PendingActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PendingActionClient) UpdateOne(_m *PendingAction) *PendingActionUpdateOne {
	mutation := newPendingActionMutation(c.config, OpUpdateOne, withPendingAction(_m))
	return &PendingActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PendingActionClient) UpdateOneID(id string) *PendingActionUpdateOne {
	mutation := newPendingActionMutation(c.config, OpUpdateOne, withPendingActionID(id))
	return &PendingActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PendingAction.
func (c *PendingActionClient) Delete() *PendingActionDelete {
	mutation := newPendingActionMutation(c.config, OpDelete)
	return &PendingActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PendingActionClient) DeleteOne(_m *PendingAction) *PendingActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PendingActionClient) DeleteOneID(id string) *PendingActionDeleteOne {
	builder := c.Delete().Where(pendingaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PendingActionDeleteOne{builder}
}

// Query returns a query builder for PendingAction.
func (c *PendingActionClient) Query() *PendingActionQuery {
	return &PendingActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePendingAction},
		inters: c.Interceptors(),
	}
}

// Get returns a PendingAction entity by its id.
func (c *PendingActionClient) Get(ctx context.Context, id string) (*PendingAction, error) {
	return c.Query().Where(pendingaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PendingActionClient) GetX(ctx context.Context, id string) *PendingAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PendingActionClient) Hooks() []Hook {
	return c.hooks.PendingAction
}

// Interceptors returns the client interceptors.
func (c *PendingActionClient) Interceptors() []Interceptor {
	return c.inters.PendingAction
}

func (c *PendingActionClient) mutate(ctx context.Context, m *PendingActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PendingActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PendingActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PendingActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PendingActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PendingAction mutation op: %q", m.Op())
	}
}

// ScheduledTaskClient is a client for the ScheduledTask schema.
type ScheduledTaskClient struct {
	config
}

// NewScheduledTaskClient returns a client for the ScheduledTask from the given config.
func NewScheduledTaskClient(c config) *ScheduledTaskClient {
	return &ScheduledTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduledtask.Hooks(f(g(h())))`.
func (c *ScheduledTaskClient) Use(hooks ...Hook) {
	c.hooks.ScheduledTask = append(c.hooks.ScheduledTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduledtask.Intercept(f(g(h())))`.
func (c *ScheduledTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduledTask = append(c.inters.ScheduledTask, interceptors...)
}

// Create returns a builder for creating a ScheduledTask entity.
func (c *ScheduledTaskClient) Create() *ScheduledTaskCreate {
	mutation := newScheduledTaskMutation(c.config, OpCreate)
	return &ScheduledTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduledTask entities.
func (c *ScheduledTaskClient) CreateBulk(builders ...*ScheduledTaskCreate) *ScheduledTaskCreateBulk {
	return &ScheduledTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduledTaskClient) MapCreateBulk(slice any, setFunc func(*ScheduledTaskCreate, int)) *ScheduledTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduledTaskCreateBulk{err: fmt.Errorf("calling to ScheduledTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduledTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduledTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduledTask.
func (c *ScheduledTaskClient) Update() *ScheduledTaskUpdate {
	mutation := newScheduledTaskMutation(c.config, OpUpdate)
	return &ScheduledTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduledTaskClient) UpdateOne(_m *ScheduledTask) *ScheduledTaskUpdateOne {
	mutation := newScheduledTaskMutation(c.config, OpUpdateOne, withScheduledTask(_m))
	return &ScheduledTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduledTaskClient) UpdateOneID(id string) *ScheduledTaskUpdateOne {
	mutation := newScheduledTaskMutation(c.config, OpUpdateOne, withScheduledTaskID(id))
	return &ScheduledTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduledTask.
func (c *ScheduledTaskClient) Delete() *ScheduledTaskDelete {
	mutation := newScheduledTaskMutation(c.config, OpDelete)
	return &ScheduledTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduledTaskClient) DeleteOne(_m *ScheduledTask) *ScheduledTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduledTaskClient) DeleteOneID(id string) *ScheduledTaskDeleteOne {
	builder := c.Delete().Where(scheduledtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduledTaskDeleteOne{builder}
}

// Query returns a query builder for ScheduledTask.
func (c *ScheduledTaskClient) Query() *ScheduledTaskQuery {
	return &ScheduledTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduledTask},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduledTask entity by its id.
func (c *ScheduledTaskClient) Get(ctx context.Context, id string) (*ScheduledTask, error) {
	return c.Query().Where(scheduledtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduledTaskClient) GetX(ctx context.Context, id string) *ScheduledTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduledTaskClient) Hooks() []Hook {
	return c.hooks.ScheduledTask
}

// Interceptors returns the client interceptors.
func (c *ScheduledTaskClient) Interceptors() []Interceptor {
	return c.inters.ScheduledTask
}

func (c *ScheduledTaskClient) mutate(ctx context.Context, m *ScheduledTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduledTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduledTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduledTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduledTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScheduledTask mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ApprovalEvent, ApprovalRule, Contact, ContactChannel, InboxRecord, KVEntry,
		PendingAction, ScheduledTask, Session []ent.Hook
	}
	inters struct {
		ApprovalEvent, ApprovalRule, Contact, ContactChannel, InboxRecord, KVEntry,
		PendingAction, ScheduledTask, Session []ent.Interceptor
	}
)
