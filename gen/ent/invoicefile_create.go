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

// InvoiceFileCreate is the builder for creating a InvoiceFile entity.
type InvoiceFileCreate struct {
	config
	mutation *InvoiceFileMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *InvoiceFileCreate) SetProfileID(v uuid.UUID) *InvoiceFileCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *InvoiceFileCreate) SetInvoiceID(v uuid.UUID) *InvoiceFileCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_c *InvoiceFileCreate) SetNillableInvoiceID(v *uuid.UUID) *InvoiceFileCreate {
	if v != nil {
		_c.SetInvoiceID(*v)
	}
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *InvoiceFileCreate) SetSourcePath(v string) *InvoiceFileCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *InvoiceFileCreate) SetContentHash(v []byte) *InvoiceFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *InvoiceFileCreate) SetFilename(v string) *InvoiceFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *InvoiceFileCreate) SetFileExt(v string) *InvoiceFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *InvoiceFileCreate) SetFileSize(v int) *InvoiceFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *InvoiceFileCreate) SetUploadedAt(v time.Time) *InvoiceFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *InvoiceFileCreate) SetNillableUploadedAt(v *time.Time) *InvoiceFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceFileCreate) SetID(v uuid.UUID) *InvoiceFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceFileCreate) SetNillableID(v *uuid.UUID) *InvoiceFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *InvoiceFileCreate) SetInvoice(v *Invoice) *InvoiceFileCreate {
	return _c.SetInvoiceID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *InvoiceFileCreate) AddJobIDs(ids ...uuid.UUID) *InvoiceFileCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *InvoiceFileCreate) AddJobs(v ...*ExtractJob) *InvoiceFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the InvoiceFileMutation object of the builder.
func (_c *InvoiceFileCreate) Mutation() *InvoiceFileMutation {
	return _c.mutation
}

// Save creates the InvoiceFile in the database.
func (_c *InvoiceFileCreate) Save(ctx context.Context) (*InvoiceFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceFileCreate) SaveX(ctx context.Context) *InvoiceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceFileCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := invoicefile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoicefile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceFileCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "InvoiceFile.profile_id"`)}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "InvoiceFile.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := invoicefile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "InvoiceFile.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := invoicefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "InvoiceFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := invoicefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "InvoiceFile.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := invoicefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "InvoiceFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := invoicefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "InvoiceFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "InvoiceFile.uploaded_at"`)}
	}
	return nil
}

func (_c *InvoiceFileCreate) sqlSave(ctx context.Context) (*InvoiceFile, error) {
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

func (_c *InvoiceFileCreate) createSpec() (*InvoiceFile, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoicefile.Table, sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(invoicefile.FieldProfileID, field.TypeUUID, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(invoicefile.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(invoicefile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(invoicefile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(invoicefile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(invoicefile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(invoicefile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_node.InvoiceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceFileCreateBulk is the builder for creating many InvoiceFile entities in bulk.
type InvoiceFileCreateBulk struct {
	config
	err      error
	builders []*InvoiceFileCreate
}

// Save creates the InvoiceFile entities in the database.
func (_c *InvoiceFileCreateBulk) Save(ctx context.Context) ([]*InvoiceFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceFileMutation)
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
func (_c *InvoiceFileCreateBulk) SaveX(ctx context.Context) []*InvoiceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
