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

// InvoiceFileUpdate is the builder for updating InvoiceFile entities.
type InvoiceFileUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceFileMutation
}

// Where appends a list predicates to the InvoiceFileUpdate builder.
func (_u *InvoiceFileUpdate) Where(ps ...predicate.InvoiceFile) *InvoiceFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *InvoiceFileUpdate) SetProfileID(v uuid.UUID) *InvoiceFileUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *InvoiceFileUpdate) SetNillableProfileID(v *uuid.UUID) *InvoiceFileUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceFileUpdate) SetInvoiceID(v uuid.UUID) *InvoiceFileUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceFileUpdate) SetNillableInvoiceID(v *uuid.UUID) *InvoiceFileUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (_u *InvoiceFileUpdate) ClearInvoiceID() *InvoiceFileUpdate {
	_u.mutation.ClearInvoiceID()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *InvoiceFileUpdate) SetSourcePath(v string) *InvoiceFileUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *InvoiceFileUpdate) SetNillableSourcePath(v *string) *InvoiceFileUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *InvoiceFileUpdate) SetContentHash(v []byte) *InvoiceFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *InvoiceFileUpdate) SetFilename(v string) *InvoiceFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *InvoiceFileUpdate) SetNillableFilename(v *string) *InvoiceFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *InvoiceFileUpdate) SetFileExt(v string) *InvoiceFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *InvoiceFileUpdate) SetNillableFileExt(v *string) *InvoiceFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *InvoiceFileUpdate) SetFileSize(v int) *InvoiceFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *InvoiceFileUpdate) SetNillableFileSize(v *int) *InvoiceFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *InvoiceFileUpdate) AddFileSize(v int) *InvoiceFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *InvoiceFileUpdate) SetUploadedAt(v time.Time) *InvoiceFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *InvoiceFileUpdate) SetNillableUploadedAt(v *time.Time) *InvoiceFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *InvoiceFileUpdate) SetInvoice(v *Invoice) *InvoiceFileUpdate {
	return _u.SetInvoiceID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *InvoiceFileUpdate) AddJobIDs(ids ...uuid.UUID) *InvoiceFileUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *InvoiceFileUpdate) AddJobs(v ...*ExtractJob) *InvoiceFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceFileMutation object of the builder.
func (_u *InvoiceFileUpdate) Mutation() *InvoiceFileMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *InvoiceFileUpdate) ClearInvoice() *InvoiceFileUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *InvoiceFileUpdate) ClearJobs() *InvoiceFileUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *InvoiceFileUpdate) RemoveJobIDs(ids ...uuid.UUID) *InvoiceFileUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *InvoiceFileUpdate) RemoveJobs(v ...*ExtractJob) *InvoiceFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceFileUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := invoicefile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := invoicefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := invoicefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := invoicefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := invoicefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicefile.Table, invoicefile.Columns, sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(invoicefile.FieldProfileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(invoicefile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(invoicefile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(invoicefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(invoicefile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(invoicefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(invoicefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(invoicefile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoicefile.InvoiceTable,
			Columns: []string{invoicefile.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoicefile.InvoiceTable,
			Columns: []string{invoicefile.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
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
			Table:   invoicefile.JobsTable,
			Columns: []string{invoicefile.JobsColumn},
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
			Table:   invoicefile.JobsTable,
			Columns: []string{invoicefile.JobsColumn},
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
			Table:   invoicefile.JobsTable,
			Columns: []string{invoicefile.JobsColumn},
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
			err = &NotFoundError{invoicefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceFileUpdateOne is the builder for updating a single InvoiceFile entity.
type InvoiceFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceFileMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *InvoiceFileUpdateOne) SetProfileID(v uuid.UUID) *InvoiceFileUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *InvoiceFileUpdateOne) SetNillableProfileID(v *uuid.UUID) *InvoiceFileUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *InvoiceFileUpdateOne) SetInvoiceID(v uuid.UUID) *InvoiceFileUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *InvoiceFileUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *InvoiceFileUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (_u *InvoiceFileUpdateOne) ClearInvoiceID() *InvoiceFileUpdateOne {
	_u.mutation.ClearInvoiceID()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *InvoiceFileUpdateOne) SetSourcePath(v string) *InvoiceFileUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *InvoiceFileUpdateOne) SetNillableSourcePath(v *string) *InvoiceFileUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *InvoiceFileUpdateOne) SetContentHash(v []byte) *InvoiceFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *InvoiceFileUpdateOne) SetFilename(v string) *InvoiceFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *InvoiceFileUpdateOne) SetNillableFilename(v *string) *InvoiceFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *InvoiceFileUpdateOne) SetFileExt(v string) *InvoiceFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *InvoiceFileUpdateOne) SetNillableFileExt(v *string) *InvoiceFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *InvoiceFileUpdateOne) SetFileSize(v int) *InvoiceFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *InvoiceFileUpdateOne) SetNillableFileSize(v *int) *InvoiceFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *InvoiceFileUpdateOne) AddFileSize(v int) *InvoiceFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *InvoiceFileUpdateOne) SetUploadedAt(v time.Time) *InvoiceFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *InvoiceFileUpdateOne) SetNillableUploadedAt(v *time.Time) *InvoiceFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *InvoiceFileUpdateOne) SetInvoice(v *Invoice) *InvoiceFileUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *InvoiceFileUpdateOne) AddJobIDs(ids ...uuid.UUID) *InvoiceFileUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *InvoiceFileUpdateOne) AddJobs(v ...*ExtractJob) *InvoiceFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceFileMutation object of the builder.
func (_u *InvoiceFileUpdateOne) Mutation() *InvoiceFileMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *InvoiceFileUpdateOne) ClearInvoice() *InvoiceFileUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *InvoiceFileUpdateOne) ClearJobs() *InvoiceFileUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *InvoiceFileUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *InvoiceFileUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *InvoiceFileUpdateOne) RemoveJobs(v ...*ExtractJob) *InvoiceFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the InvoiceFileUpdate builder.
func (_u *InvoiceFileUpdateOne) Where(ps ...predicate.InvoiceFile) *InvoiceFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceFileUpdateOne) Select(field string, fields ...string) *InvoiceFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceFile entity.
func (_u *InvoiceFileUpdateOne) Save(ctx context.Context) (*InvoiceFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceFileUpdateOne) SaveX(ctx context.Context) *InvoiceFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceFileUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := invoicefile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := invoicefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := invoicefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := invoicefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := invoicefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceFileUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicefile.Table, invoicefile.Columns, sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoicefile.FieldID)
		for _, f := range fields {
			if !invoicefile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoicefile.FieldID {
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
		_spec.SetField(invoicefile.FieldProfileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(invoicefile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(invoicefile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(invoicefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(invoicefile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(invoicefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(invoicefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(invoicefile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoicefile.InvoiceTable,
			Columns: []string{invoicefile.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoicefile.InvoiceTable,
			Columns: []string{invoicefile.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
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
			Table:   invoicefile.JobsTable,
			Columns: []string{invoicefile.JobsColumn},
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
			Table:   invoicefile.JobsTable,
			Columns: []string{invoicefile.JobsColumn},
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
			Table:   invoicefile.JobsTable,
			Columns: []string{invoicefile.JobsColumn},
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
	_node = &InvoiceFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
