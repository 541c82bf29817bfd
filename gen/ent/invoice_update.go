// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/enerjitakip/fatura-extract/gen/ent/extractjob"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoice"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoicefile"
	"github.com/enerjitakip/fatura-extract/gen/ent/predicate"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *InvoiceUpdate) SetProfileID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableProfileID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdate) SetDueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdate) ClearDueDate() *InvoiceUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InvoiceUpdate) SetAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InvoiceUpdate) AddAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *InvoiceUpdate) SetProvider(v string) *InvoiceUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableProvider(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *InvoiceUpdate) ClearProvider() *InvoiceUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetInvoiceType sets the "invoice_type" field.
func (_u *InvoiceUpdate) SetInvoiceType(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceType(v)
	return _u
}

// SetNillableInvoiceType sets the "invoice_type" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceType(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceType(*v)
	}
	return _u
}

// ClearInvoiceType clears the value of the "invoice_type" field.
func (_u *InvoiceUpdate) ClearInvoiceType() *InvoiceUpdate {
	_u.mutation.ClearInvoiceType()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *InvoiceUpdate) SetUnit(v string) *InvoiceUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableUnit(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *InvoiceUpdate) ClearUnit() *InvoiceUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetPeriod sets the "period" field.
func (_u *InvoiceUpdate) SetPeriod(v string) *InvoiceUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePeriod(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// ClearPeriod clears the value of the "period" field.
func (_u *InvoiceUpdate) ClearPeriod() *InvoiceUpdate {
	_u.mutation.ClearPeriod()
	return _u
}

// SetConsumption sets the "consumption" field.
func (_u *InvoiceUpdate) SetConsumption(v string) *InvoiceUpdate {
	_u.mutation.SetConsumption(v)
	return _u
}

// SetNillableConsumption sets the "consumption" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableConsumption(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetConsumption(*v)
	}
	return _u
}

// ClearConsumption clears the value of the "consumption" field.
func (_u *InvoiceUpdate) ClearConsumption() *InvoiceUpdate {
	_u.mutation.ClearConsumption()
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *InvoiceUpdate) SetAccountNumber(v string) *InvoiceUpdate {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAccountNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *InvoiceUpdate) ClearAccountNumber() *InvoiceUpdate {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetInstallationNumber sets the "installation_number" field.
func (_u *InvoiceUpdate) SetInstallationNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInstallationNumber(v)
	return _u
}

// SetNillableInstallationNumber sets the "installation_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInstallationNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInstallationNumber(*v)
	}
	return _u
}

// ClearInstallationNumber clears the value of the "installation_number" field.
func (_u *InvoiceUpdate) ClearInstallationNumber() *InvoiceUpdate {
	_u.mutation.ClearInstallationNumber()
	return _u
}

// SetCustomerNumber sets the "customer_number" field.
func (_u *InvoiceUpdate) SetCustomerNumber(v string) *InvoiceUpdate {
	_u.mutation.SetCustomerNumber(v)
	return _u
}

// SetNillableCustomerNumber sets the "customer_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerNumber(*v)
	}
	return _u
}

// ClearCustomerNumber clears the value of the "customer_number" field.
func (_u *InvoiceUpdate) ClearCustomerNumber() *InvoiceUpdate {
	_u.mutation.ClearCustomerNumber()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *InvoiceUpdate) SetFullName(v string) *InvoiceUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFullName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *InvoiceUpdate) ClearFullName() *InvoiceUpdate {
	_u.mutation.ClearFullName()
	return _u
}

// SetAddress sets the "address" field.
func (_u *InvoiceUpdate) SetAddress(v string) *InvoiceUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *InvoiceUpdate) ClearAddress() *InvoiceUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetConsumerGroup sets the "consumer_group" field.
func (_u *InvoiceUpdate) SetConsumerGroup(v string) *InvoiceUpdate {
	_u.mutation.SetConsumerGroup(v)
	return _u
}

// SetNillableConsumerGroup sets the "consumer_group" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableConsumerGroup(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetConsumerGroup(*v)
	}
	return _u
}

// ClearConsumerGroup clears the value of the "consumer_group" field.
func (_u *InvoiceUpdate) ClearConsumerGroup() *InvoiceUpdate {
	_u.mutation.ClearConsumerGroup()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileIDs adds the "files" edge to the InvoiceFile entity by IDs.
func (_u *InvoiceUpdate) AddFileIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdate) AddFiles(v ...*InvoiceFile) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *InvoiceUpdate) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdate) AddJobs(v ...*ExtractJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdate) ClearFiles() *InvoiceUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to InvoiceFile entities by IDs.
func (_u *InvoiceUpdate) RemoveFileIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to InvoiceFile entities.
func (_u *InvoiceUpdate) RemoveFiles(v ...*InvoiceFile) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdate) ClearJobs() *InvoiceUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *InvoiceUpdate) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *InvoiceUpdate) RemoveJobs(v ...*ExtractJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(invoice.FieldProfileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(invoice.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(invoice.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceType(); ok {
		_spec.SetField(invoice.FieldInvoiceType, field.TypeString, value)
	}
	if _u.mutation.InvoiceTypeCleared() {
		_spec.ClearField(invoice.FieldInvoiceType, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(invoice.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(invoice.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(invoice.FieldPeriod, field.TypeString, value)
	}
	if _u.mutation.PeriodCleared() {
		_spec.ClearField(invoice.FieldPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.Consumption(); ok {
		_spec.SetField(invoice.FieldConsumption, field.TypeString, value)
	}
	if _u.mutation.ConsumptionCleared() {
		_spec.ClearField(invoice.FieldConsumption, field.TypeString)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(invoice.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(invoice.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InstallationNumber(); ok {
		_spec.SetField(invoice.FieldInstallationNumber, field.TypeString, value)
	}
	if _u.mutation.InstallationNumberCleared() {
		_spec.ClearField(invoice.FieldInstallationNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerNumber(); ok {
		_spec.SetField(invoice.FieldCustomerNumber, field.TypeString, value)
	}
	if _u.mutation.CustomerNumberCleared() {
		_spec.ClearField(invoice.FieldCustomerNumber, field.TypeString)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(invoice.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(invoice.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(invoice.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(invoice.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ConsumerGroup(); ok {
		_spec.SetField(invoice.FieldConsumerGroup, field.TypeString, value)
	}
	if _u.mutation.ConsumerGroupCleared() {
		_spec.ClearField(invoice.FieldConsumerGroup, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *InvoiceUpdateOne) SetProfileID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableProfileID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdateOne) SetDueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdateOne) ClearDueDate() *InvoiceUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InvoiceUpdateOne) SetAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InvoiceUpdateOne) AddAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *InvoiceUpdateOne) SetProvider(v string) *InvoiceUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableProvider(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *InvoiceUpdateOne) ClearProvider() *InvoiceUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetInvoiceType sets the "invoice_type" field.
func (_u *InvoiceUpdateOne) SetInvoiceType(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceType(v)
	return _u
}

// SetNillableInvoiceType sets the "invoice_type" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceType(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceType(*v)
	}
	return _u
}

// ClearInvoiceType clears the value of the "invoice_type" field.
func (_u *InvoiceUpdateOne) ClearInvoiceType() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceType()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *InvoiceUpdateOne) SetUnit(v string) *InvoiceUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableUnit(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *InvoiceUpdateOne) ClearUnit() *InvoiceUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetPeriod sets the "period" field.
func (_u *InvoiceUpdateOne) SetPeriod(v string) *InvoiceUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePeriod(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// ClearPeriod clears the value of the "period" field.
func (_u *InvoiceUpdateOne) ClearPeriod() *InvoiceUpdateOne {
	_u.mutation.ClearPeriod()
	return _u
}

// SetConsumption sets the "consumption" field.
func (_u *InvoiceUpdateOne) SetConsumption(v string) *InvoiceUpdateOne {
	_u.mutation.SetConsumption(v)
	return _u
}

// SetNillableConsumption sets the "consumption" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableConsumption(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetConsumption(*v)
	}
	return _u
}

// ClearConsumption clears the value of the "consumption" field.
func (_u *InvoiceUpdateOne) ClearConsumption() *InvoiceUpdateOne {
	_u.mutation.ClearConsumption()
	return _u
}

// SetAccountNumber sets the "account_number" field.
func (_u *InvoiceUpdateOne) SetAccountNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetAccountNumber(v)
	return _u
}

// SetNillableAccountNumber sets the "account_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAccountNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAccountNumber(*v)
	}
	return _u
}

// ClearAccountNumber clears the value of the "account_number" field.
func (_u *InvoiceUpdateOne) ClearAccountNumber() *InvoiceUpdateOne {
	_u.mutation.ClearAccountNumber()
	return _u
}

// SetInstallationNumber sets the "installation_number" field.
func (_u *InvoiceUpdateOne) SetInstallationNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInstallationNumber(v)
	return _u
}

// SetNillableInstallationNumber sets the "installation_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInstallationNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInstallationNumber(*v)
	}
	return _u
}

// ClearInstallationNumber clears the value of the "installation_number" field.
func (_u *InvoiceUpdateOne) ClearInstallationNumber() *InvoiceUpdateOne {
	_u.mutation.ClearInstallationNumber()
	return _u
}

// SetCustomerNumber sets the "customer_number" field.
func (_u *InvoiceUpdateOne) SetCustomerNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetCustomerNumber(v)
	return _u
}

// SetNillableCustomerNumber sets the "customer_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerNumber(*v)
	}
	return _u
}

// ClearCustomerNumber clears the value of the "customer_number" field.
func (_u *InvoiceUpdateOne) ClearCustomerNumber() *InvoiceUpdateOne {
	_u.mutation.ClearCustomerNumber()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *InvoiceUpdateOne) SetFullName(v string) *InvoiceUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFullName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// ClearFullName clears the value of the "full_name" field.
func (_u *InvoiceUpdateOne) ClearFullName() *InvoiceUpdateOne {
	_u.mutation.ClearFullName()
	return _u
}

// SetAddress sets the "address" field.
func (_u *InvoiceUpdateOne) SetAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *InvoiceUpdateOne) ClearAddress() *InvoiceUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetConsumerGroup sets the "consumer_group" field.
func (_u *InvoiceUpdateOne) SetConsumerGroup(v string) *InvoiceUpdateOne {
	_u.mutation.SetConsumerGroup(v)
	return _u
}

// SetNillableConsumerGroup sets the "consumer_group" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableConsumerGroup(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetConsumerGroup(*v)
	}
	return _u
}

// ClearConsumerGroup clears the value of the "consumer_group" field.
func (_u *InvoiceUpdateOne) ClearConsumerGroup() *InvoiceUpdateOne {
	_u.mutation.ClearConsumerGroup()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileIDs adds the "files" edge to the InvoiceFile entity by IDs.
func (_u *InvoiceUpdateOne) AddFileIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdateOne) AddFiles(v ...*InvoiceFile) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *InvoiceUpdateOne) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdateOne) AddJobs(v ...*ExtractJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the InvoiceFile entity.
func (_u *InvoiceUpdateOne) ClearFiles() *InvoiceUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to InvoiceFile entities by IDs.
func (_u *InvoiceUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to InvoiceFile entities.
func (_u *InvoiceUpdateOne) RemoveFiles(v ...*InvoiceFile) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdateOne) ClearJobs() *InvoiceUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *InvoiceUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *InvoiceUpdateOne) RemoveJobs(v ...*ExtractJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(invoice.FieldProfileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(invoice.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(invoice.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceType(); ok {
		_spec.SetField(invoice.FieldInvoiceType, field.TypeString, value)
	}
	if _u.mutation.InvoiceTypeCleared() {
		_spec.ClearField(invoice.FieldInvoiceType, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(invoice.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(invoice.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(invoice.FieldPeriod, field.TypeString, value)
	}
	if _u.mutation.PeriodCleared() {
		_spec.ClearField(invoice.FieldPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.Consumption(); ok {
		_spec.SetField(invoice.FieldConsumption, field.TypeString, value)
	}
	if _u.mutation.ConsumptionCleared() {
		_spec.ClearField(invoice.FieldConsumption, field.TypeString)
	}
	if value, ok := _u.mutation.AccountNumber(); ok {
		_spec.SetField(invoice.FieldAccountNumber, field.TypeString, value)
	}
	if _u.mutation.AccountNumberCleared() {
		_spec.ClearField(invoice.FieldAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InstallationNumber(); ok {
		_spec.SetField(invoice.FieldInstallationNumber, field.TypeString, value)
	}
	if _u.mutation.InstallationNumberCleared() {
		_spec.ClearField(invoice.FieldInstallationNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerNumber(); ok {
		_spec.SetField(invoice.FieldCustomerNumber, field.TypeString, value)
	}
	if _u.mutation.CustomerNumberCleared() {
		_spec.ClearField(invoice.FieldCustomerNumber, field.TypeString)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(invoice.FieldFullName, field.TypeString, value)
	}
	if _u.mutation.FullNameCleared() {
		_spec.ClearField(invoice.FieldFullName, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(invoice.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(invoice.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ConsumerGroup(); ok {
		_spec.SetField(invoice.FieldConsumerGroup, field.TypeString, value)
	}
	if _u.mutation.ConsumerGroupCleared() {
		_spec.ClearField(invoice.FieldConsumerGroup, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
