// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/enerjitakip/fatura-extract/gen/ent/extractjob"
	"github.com/enerjitakip/fatura-extract/gen/ent/predicate"
)

// ExtractJobDelete is the builder for deleting a ExtractJob entity.
type ExtractJobDelete struct {
	config
	hooks    []Hook
	mutation *ExtractJobMutation
}

// Where appends a list predicates to the ExtractJobDelete builder.
func (_d *ExtractJobDelete) Where(ps ...predicate.ExtractJob) *ExtractJobDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractJobDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractjob.Table, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractJobDeleteOne is the builder for deleting a single ExtractJob entity.
type ExtractJobDeleteOne struct {
	_d *ExtractJobDelete
}

// Where appends a list predicates to the ExtractJobDelete builder.
func (_d *ExtractJobDeleteOne) Where(ps ...predicate.ExtractJob) *ExtractJobDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractJobDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractjob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractJobDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
