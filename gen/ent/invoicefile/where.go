// Code generated by ent, DO NOT EDIT.

package invoicefile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/enerjitakip/fatura-extract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldProfileID, v))
}

// InvoiceID applies equality check predicate on the "invoice_id" field. It's identical to InvoiceIDEQ.
func InvoiceID(v uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldInvoiceID, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldSourcePath, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldContentHash, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldFileExt, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldFileSize, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldUploadedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLTE(FieldProfileID, v))
}

// InvoiceIDEQ applies the EQ predicate on the "invoice_id" field.
func InvoiceIDEQ(v uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldInvoiceID, v))
}

// InvoiceIDNEQ applies the NEQ predicate on the "invoice_id" field.
func InvoiceIDNEQ(v uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNEQ(FieldInvoiceID, v))
}

// InvoiceIDIn applies the In predicate on the "invoice_id" field.
func InvoiceIDIn(vs ...uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldIn(FieldInvoiceID, vs...))
}

// InvoiceIDNotIn applies the NotIn predicate on the "invoice_id" field.
func InvoiceIDNotIn(vs ...uuid.UUID) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNotIn(FieldInvoiceID, vs...))
}

// InvoiceIDIsNil applies the IsNil predicate on the "invoice_id" field.
func InvoiceIDIsNil() predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldIsNull(FieldInvoiceID))
}

// InvoiceIDNotNil applies the NotNil predicate on the "invoice_id" field.
func InvoiceIDNotNil() predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNotNull(FieldInvoiceID))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldContainsFold(FieldSourcePath, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLTE(FieldContentHash, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldContainsFold(FieldFileExt, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLTE(FieldFileSize, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasInvoice applies the HasEdge predicate on the "invoice" edge.
func HasInvoice() predicate.InvoiceFile {
	return predicate.InvoiceFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvoiceTable, InvoiceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvoiceWith applies the HasEdge predicate on the "invoice" edge with a given conditions (other predicates).
func HasInvoiceWith(preds ...predicate.Invoice) predicate.InvoiceFile {
	return predicate.InvoiceFile(func(s *sql.Selector) {
		step := newInvoiceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.InvoiceFile {
	return predicate.InvoiceFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.InvoiceFile {
	return predicate.InvoiceFile(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvoiceFile) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvoiceFile) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvoiceFile) predicate.InvoiceFile {
	return predicate.InvoiceFile(sql.NotPredicates(p))
}
