// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/enerjitakip/fatura-extract/gen/ent/extractjob"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoice"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoicefile"
	"github.com/google/uuid"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *InvoiceCreate) SetProfileID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *InvoiceCreate) SetInvoiceNumber(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *InvoiceCreate) SetInvoiceDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *InvoiceCreate) SetDueDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDueDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *InvoiceCreate) SetAmount(v float64) *InvoiceCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *InvoiceCreate) SetProvider(v string) *InvoiceCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableProvider(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetInvoiceType sets the "invoice_type" field.
func (_c *InvoiceCreate) SetInvoiceType(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceType(v)
	return _c
}

// SetNillableInvoiceType sets the "invoice_type" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceType(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceType(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *InvoiceCreate) SetUnit(v string) *InvoiceCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUnit(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetPeriod sets the "period" field.
func (_c *InvoiceCreate) SetPeriod(v string) *InvoiceCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePeriod(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetPeriod(*v)
	}
	return _c
}

// SetConsumption sets the "consumption" field.
func (_c *InvoiceCreate) SetConsumption(v string) *InvoiceCreate {
	_c.mutation.SetConsumption(v)
	return _c
}

// SetNillableConsumption sets the "consumption" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableConsumption(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetConsumption(*v)
	}
	return _c
}

// SetAccountNumber sets the "account_number" field.
func (_c *InvoiceCreate) SetAccountNumber(v string) *InvoiceCreate {
	_c.mutation.SetAccountNumber(v)
	return _c
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableAccountNumber(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetAccountNumber(*v)
	}
	return _c
}

// SetInstallationNumber sets the "installation_number" field.
func (_c *InvoiceCreate) SetInstallationNumber(v string) *InvoiceCreate {
	_c.mutation.SetInstallationNumber(v)
	return _c
}

// SetNillableInstallationNumber sets the "installation_number" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInstallationNumber(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetInstallationNumber(*v)
	}
	return _c
}

// SetCustomerNumber sets the "customer_number" field.
func (_c *InvoiceCreate) SetCustomerNumber(v string) *InvoiceCreate {
	_c.mutation.SetCustomerNumber(v)
	return _c
}

// SetNillableCustomerNumber sets the "customer_number" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCustomerNumber(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetCustomerNumber(*v)
	}
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *InvoiceCreate) SetFullName(v string) *InvoiceCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableFullName(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetFullName(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *InvoiceCreate) SetAddress(v string) *InvoiceCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableAddress(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetConsumerGroup sets the "consumer_group" field.
func (_c *InvoiceCreate) SetConsumerGroup(v string) *InvoiceCreate {
	_c.mutation.SetConsumerGroup(v)
	return _c
}

// SetNillableConsumerGroup sets the "consumer_group" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableConsumerGroup(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetConsumerGroup(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddFileIDs adds the "files" edge to the InvoiceFile entity by IDs.
func (_c *InvoiceCreate) AddFileIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the InvoiceFile entity.
func (_c *InvoiceCreate) AddFiles(v ...*InvoiceFile) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *InvoiceCreate) AddJobIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *InvoiceCreate) AddJobs(v ...*ExtractJob) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Invoice.profile_id"`)}
	}
	if _, ok := _c.mutation.InvoiceNumber(); !ok {
		return &ValidationError{Name: "invoice_number", err: errors.New(`ent: missing required field "Invoice.invoice_number"`)}
	}
	if v, ok := _c.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InvoiceDate(); !ok {
		return &ValidationError{Name: "invoice_date", err: errors.New(`ent: missing required field "Invoice.invoice_date"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Invoice.amount"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(invoice.FieldProfileID, field.TypeUUID, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(invoice.FieldProvider, field.TypeString, value)
		_node.Provider = &value
	}
	if value, ok := _c.mutation.InvoiceType(); ok {
		_spec.SetField(invoice.FieldInvoiceType, field.TypeString, value)
		_node.InvoiceType = &value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(invoice.FieldUnit, field.TypeString, value)
		_node.Unit = &value
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(invoice.FieldPeriod, field.TypeString, value)
		_node.Period = &value
	}
	if value, ok := _c.mutation.Consumption(); ok {
		_spec.SetField(invoice.FieldConsumption, field.TypeString, value)
		_node.Consumption = &value
	}
	if value, ok := _c.mutation.AccountNumber(); ok {
		_spec.SetField(invoice.FieldAccountNumber, field.TypeString, value)
		_node.AccountNumber = &value
	}
	if value, ok := _c.mutation.InstallationNumber(); ok {
		_spec.SetField(invoice.FieldInstallationNumber, field.TypeString, value)
		_node.InstallationNumber = &value
	}
	if value, ok := _c.mutation.CustomerNumber(); ok {
		_spec.SetField(invoice.FieldCustomerNumber, field.TypeString, value)
		_node.CustomerNumber = &value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(invoice.FieldFullName, field.TypeString, value)
		_node.FullName = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(invoice.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.ConsumerGroup(); ok {
		_spec.SetField(invoice.FieldConsumerGroup, field.TypeString, value)
		_node.ConsumerGroup = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.FilesTable,
			Columns: []string{invoice.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
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
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
