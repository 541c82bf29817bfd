// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/enerjitakip/fatura-extract/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/enerjitakip/fatura-extract/gen/ent/extractjob"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoice"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoicefile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractJob is the client for interacting with the ExtractJob builders.
	ExtractJob *ExtractJobClient
	// Invoice is the client for interacting with the Invoice builders.
	Invoice *InvoiceClient
	// InvoiceFile is the client for interacting with the InvoiceFile builders.
	InvoiceFile *InvoiceFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractJob = NewExtractJobClient(c.config)
	c.Invoice = NewInvoiceClient(c.config)
	c.InvoiceFile = NewInvoiceFileClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		ExtractJob:  NewExtractJobClient(cfg),
		Invoice:     NewInvoiceClient(cfg),
		InvoiceFile: NewInvoiceFileClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		ExtractJob:  NewExtractJobClient(cfg),
		Invoice:     NewInvoiceClient(cfg),
		InvoiceFile: NewInvoiceFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractJob.
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
	c.ExtractJob.Use(hooks...)
	c.Invoice.Use(hooks...)
	c.InvoiceFile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExtractJob.Intercept(interceptors...)
	c.Invoice.Intercept(interceptors...)
	c.InvoiceFile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractJobMutation:
		return c.ExtractJob.mutate(ctx, m)
	case *InvoiceMutation:
		return c.Invoice.mutate(ctx, m)
	case *InvoiceFileMutation:
		return c.InvoiceFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractJobClient is a client for the ExtractJob schema.
type ExtractJobClient struct {
	config
}

// NewExtractJobClient returns a client for the ExtractJob from the given config.
func NewExtractJobClient(c config) *ExtractJobClient {
	return &ExtractJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractjob.Hooks(f(g(h())))`.
func (c *ExtractJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractJob = append(c.hooks.ExtractJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractjob.Intercept(f(g(h())))`.
func (c *ExtractJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractJob = append(c.inters.ExtractJob, interceptors...)
}

// Create returns a builder for creating a ExtractJob entity.
func (c *ExtractJobClient) Create() *ExtractJobCreate {
	mutation := newExtractJobMutation(c.config, OpCreate)
	return &ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractJob entities.
func (c *ExtractJobClient) CreateBulk(builders ...*ExtractJobCreate) *ExtractJobCreateBulk {
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractJobClient) MapCreateBulk(slice any, setFunc func(*ExtractJobCreate, int)) *ExtractJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractJobCreateBulk{err: fmt.Errorf("calling to ExtractJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractJob.
func (c *ExtractJobClient) Update() *ExtractJobUpdate {
	mutation := newExtractJobMutation(c.config, OpUpdate)
	return &ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractJobClient) UpdateOne(_m *ExtractJob) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJob(_m))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractJobClient) UpdateOneID(id uuid.UUID) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJobID(id))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractJob.
func (c *ExtractJobClient) Delete() *ExtractJobDelete {
	mutation := newExtractJobMutation(c.config, OpDelete)
	return &ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractJobClient) DeleteOne(_m *ExtractJob) *ExtractJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractJobClient) DeleteOneID(id uuid.UUID) *ExtractJobDeleteOne {
	builder := c.Delete().Where(extractjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractJobDeleteOne{builder}
}

// Query returns a query builder for ExtractJob.
func (c *ExtractJobClient) Query() *ExtractJobQuery {
	return &ExtractJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractJob entity by its id.
func (c *ExtractJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractJob, error) {
	return c.Query().Where(extractjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ExtractJob.
func (c *ExtractJobClient) QueryFile(_m *ExtractJob) *InvoiceFileQuery {
	query := (&InvoiceFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(invoicefile.Table, invoicefile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.FileTable, extractjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvoice queries the invoice edge of a ExtractJob.
func (c *ExtractJobClient) QueryInvoice(_m *ExtractJob) *InvoiceQuery {
	query := (&InvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(invoice.Table, invoice.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.InvoiceTable, extractjob.InvoiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractJobClient) Hooks() []Hook {
	return c.hooks.ExtractJob
}

// Interceptors returns the client interceptors.
func (c *ExtractJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractJob
}

func (c *ExtractJobClient) mutate(ctx context.Context, m *ExtractJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractJob mutation op: %q", m.Op())
	}
}

// InvoiceClient is a client for the Invoice schema.
type InvoiceClient struct {
	config
}

// NewInvoiceClient returns a client for the Invoice from the given config.
func NewInvoiceClient(c config) *InvoiceClient {
	return &InvoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoice.Hooks(f(g(h())))`.
func (c *InvoiceClient) Use(hooks ...Hook) {
	c.hooks.Invoice = append(c.hooks.Invoice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoice.Intercept(f(g(h())))`.
func (c *InvoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Invoice = append(c.inters.Invoice, interceptors...)
}

// Create returns a builder for creating a Invoice entity.
func (c *InvoiceClient) Create() *InvoiceCreate {
	mutation := newInvoiceMutation(c.config, OpCreate)
	return &InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Invoice entities.
func (c *InvoiceClient) CreateBulk(builders ...*InvoiceCreate) *InvoiceCreateBulk {
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceClient) MapCreateBulk(slice any, setFunc func(*InvoiceCreate, int)) *InvoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceCreateBulk{err: fmt.Errorf("calling to InvoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Invoice.
func (c *InvoiceClient) Update() *InvoiceUpdate {
	mutation := newInvoiceMutation(c.config, OpUpdate)
	return &InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceClient) UpdateOne(_m *Invoice) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoice(_m))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceClient) UpdateOneID(id uuid.UUID) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoiceID(id))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Invoice.
func (c *InvoiceClient) Delete() *InvoiceDelete {
	mutation := newInvoiceMutation(c.config, OpDelete)
	return &InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceClient) DeleteOne(_m *Invoice) *InvoiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceClient) DeleteOneID(id uuid.UUID) *InvoiceDeleteOne {
	builder := c.Delete().Where(invoice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceDeleteOne{builder}
}

// Query returns a query builder for Invoice.
func (c *InvoiceClient) Query() *InvoiceQuery {
	return &InvoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoice},
		inters: c.Interceptors(),
	}
}

// Get returns a Invoice entity by its id.
func (c *InvoiceClient) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return c.Query().Where(invoice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceClient) GetX(ctx context.Context, id uuid.UUID) *Invoice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFiles queries the files edge of a Invoice.
func (c *InvoiceClient) QueryFiles(_m *Invoice) *InvoiceFileQuery {
	query := (&InvoiceFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoice.Table, invoice.FieldID, id),
			sqlgraph.To(invoicefile.Table, invoicefile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, invoice.FilesTable, invoice.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Invoice.
func (c *InvoiceClient) QueryJobs(_m *Invoice) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoice.Table, invoice.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, invoice.JobsTable, invoice.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvoiceClient) Hooks() []Hook {
	return c.hooks.Invoice
}

// Interceptors returns the client interceptors.
func (c *InvoiceClient) Interceptors() []Interceptor {
	return c.inters.Invoice
}

func (c *InvoiceClient) mutate(ctx context.Context, m *InvoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Invoice mutation op: %q", m.Op())
	}
}

// InvoiceFileClient is a client for the InvoiceFile schema.
type InvoiceFileClient struct {
	config
}

// NewInvoiceFileClient returns a client for the InvoiceFile from the given config.
func NewInvoiceFileClient(c config) *InvoiceFileClient {
	return &InvoiceFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoicefile.Hooks(f(g(h())))`.
func (c *InvoiceFileClient) Use(hooks ...Hook) {
	c.hooks.InvoiceFile = append(c.hooks.InvoiceFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoicefile.Intercept(f(g(h())))`.
func (c *InvoiceFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvoiceFile = append(c.inters.InvoiceFile, interceptors...)
}

// Create returns a builder for creating a InvoiceFile entity.
func (c *InvoiceFileClient) Create() *InvoiceFileCreate {
	mutation := newInvoiceFileMutation(c.config, OpCreate)
	return &InvoiceFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvoiceFile entities.
func (c *InvoiceFileClient) CreateBulk(builders ...*InvoiceFileCreate) *InvoiceFileCreateBulk {
	return &InvoiceFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceFileClient) MapCreateBulk(slice any, setFunc func(*InvoiceFileCreate, int)) *InvoiceFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceFileCreateBulk{err: fmt.Errorf("calling to InvoiceFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvoiceFile.
func (c *InvoiceFileClient) Update() *InvoiceFileUpdate {
	mutation := newInvoiceFileMutation(c.config, OpUpdate)
	return &InvoiceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceFileClient) UpdateOne(_m *InvoiceFile) *InvoiceFileUpdateOne {
	mutation := newInvoiceFileMutation(c.config, OpUpdateOne, withInvoiceFile(_m))
	return &InvoiceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceFileClient) UpdateOneID(id uuid.UUID) *InvoiceFileUpdateOne {
	mutation := newInvoiceFileMutation(c.config, OpUpdateOne, withInvoiceFileID(id))
	return &InvoiceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvoiceFile.
func (c *InvoiceFileClient) Delete() *InvoiceFileDelete {
	mutation := newInvoiceFileMutation(c.config, OpDelete)
	return &InvoiceFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceFileClient) DeleteOne(_m *InvoiceFile) *InvoiceFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceFileClient) DeleteOneID(id uuid.UUID) *InvoiceFileDeleteOne {
	builder := c.Delete().Where(invoicefile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceFileDeleteOne{builder}
}

// Query returns a query builder for InvoiceFile.
func (c *InvoiceFileClient) Query() *InvoiceFileQuery {
	return &InvoiceFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoiceFile},
		inters: c.Interceptors(),
	}
}

// Get returns a InvoiceFile entity by its id.
func (c *InvoiceFileClient) Get(ctx context.Context, id uuid.UUID) (*InvoiceFile, error) {
	return c.Query().Where(invoicefile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceFileClient) GetX(ctx context.Context, id uuid.UUID) *InvoiceFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvoice queries the invoice edge of a InvoiceFile.
func (c *InvoiceFileClient) QueryInvoice(_m *InvoiceFile) *InvoiceQuery {
	query := (&InvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoicefile.Table, invoicefile.FieldID, id),
			sqlgraph.To(invoice.Table, invoice.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, invoicefile.InvoiceTable, invoicefile.InvoiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a InvoiceFile.
func (c *InvoiceFileClient) QueryJobs(_m *InvoiceFile) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoicefile.Table, invoicefile.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, invoicefile.JobsTable, invoicefile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvoiceFileClient) Hooks() []Hook {
	return c.hooks.InvoiceFile
}

// Interceptors returns the client interceptors.
func (c *InvoiceFileClient) Interceptors() []Interceptor {
	return c.inters.InvoiceFile
}

func (c *InvoiceFileClient) mutate(ctx context.Context, m *InvoiceFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvoiceFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractJob, Invoice, InvoiceFile []ent.Hook
	}
	inters struct {
		ExtractJob, Invoice, InvoiceFile []ent.Interceptor
	}
)
