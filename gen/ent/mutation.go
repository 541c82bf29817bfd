// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/enerjitakip/fatura-extract/gen/ent/extractjob"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoice"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoicefile"
	"github.com/enerjitakip/fatura-extract/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractJob  = "ExtractJob"
	TypeInvoice     = "Invoice"
	TypeInvoiceFile = "InvoiceFile"
)

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	profile_id               *uuid.UUID
	format                   *string
	started_at               *time.Time
	finished_at              *time.Time
	status                   *string
	error_message            *string
	extraction_confidence    *float32
	addextraction_confidence *float32
	needs_review             *bool
	ocr_text                 *string
	extracted_json           *json.RawMessage
	appendextracted_json     json.RawMessage
	engine_name              *string
	engine_params            *json.RawMessage
	appendengine_params      json.RawMessage
	clearedFields            map[string]struct{}
	file                     *uuid.UUID
	clearedfile              bool
	invoice                  *uuid.UUID
	clearedinvoice           bool
	done                     bool
	oldValue                 func(context.Context) (*ExtractJob, error)
	predicates               []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ExtractJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ExtractJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ExtractJobMutation) ResetFileID() {
	m.file = nil
}

// SetProfileID sets the "profile_id" field.
func (m *ExtractJobMutation) SetProfileID(u uuid.UUID) {
	m.profile_id = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *ExtractJobMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *ExtractJobMutation) ResetProfileID() {
	m.profile_id = nil
}

// SetInvoiceID sets the "invoice_id" field.
func (m *ExtractJobMutation) SetInvoiceID(u uuid.UUID) {
	m.invoice = &u
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *ExtractJobMutation) InvoiceID() (r uuid.UUID, exists bool) {
	v := m.invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldInvoiceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (m *ExtractJobMutation) ClearInvoiceID() {
	m.invoice = nil
	m.clearedFields[extractjob.FieldInvoiceID] = struct{}{}
}

// InvoiceIDCleared returns if the "invoice_id" field was cleared in this mutation.
func (m *ExtractJobMutation) InvoiceIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldInvoiceID]
	return ok
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *ExtractJobMutation) ResetInvoiceID() {
	m.invoice = nil
	delete(m.clearedFields, extractjob.FieldInvoiceID)
}

// SetFormat sets the "format" field.
func (m *ExtractJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ExtractJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[extractjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ExtractJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, extractjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *ExtractJobMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *ExtractJobMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *ExtractJobMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *ExtractJobMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *ExtractJobMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[extractjob.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *ExtractJobMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, extractjob.FieldExtractionConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetOcrText sets the "ocr_text" field.
func (m *ExtractJobMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ExtractJobMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ExtractJobMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[extractjob.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ExtractJobMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ExtractJobMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, extractjob.FieldOcrText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ExtractJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ExtractJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ExtractJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ExtractJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ExtractJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[extractjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ExtractJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, extractjob.FieldExtractedJSON)
}

// SetEngineName sets the "engine_name" field.
func (m *ExtractJobMutation) SetEngineName(s string) {
	m.engine_name = &s
}

// EngineName returns the value of the "engine_name" field in the mutation.
func (m *ExtractJobMutation) EngineName() (r string, exists bool) {
	v := m.engine_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineName returns the old "engine_name" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldEngineName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineName: %w", err)
	}
	return oldValue.EngineName, nil
}

// ClearEngineName clears the value of the "engine_name" field.
func (m *ExtractJobMutation) ClearEngineName() {
	m.engine_name = nil
	m.clearedFields[extractjob.FieldEngineName] = struct{}{}
}

// EngineNameCleared returns if the "engine_name" field was cleared in this mutation.
func (m *ExtractJobMutation) EngineNameCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldEngineName]
	return ok
}

// ResetEngineName resets all changes to the "engine_name" field.
func (m *ExtractJobMutation) ResetEngineName() {
	m.engine_name = nil
	delete(m.clearedFields, extractjob.FieldEngineName)
}

// SetEngineParams sets the "engine_params" field.
func (m *ExtractJobMutation) SetEngineParams(jm json.RawMessage) {
	m.engine_params = &jm
	m.appendengine_params = nil
}

// EngineParams returns the value of the "engine_params" field in the mutation.
func (m *ExtractJobMutation) EngineParams() (r json.RawMessage, exists bool) {
	v := m.engine_params
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineParams returns the old "engine_params" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldEngineParams(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineParams: %w", err)
	}
	return oldValue.EngineParams, nil
}

// AppendEngineParams adds jm to the "engine_params" field.
func (m *ExtractJobMutation) AppendEngineParams(jm json.RawMessage) {
	m.appendengine_params = append(m.appendengine_params, jm...)
}

// AppendedEngineParams returns the list of values that were appended to the "engine_params" field in this mutation.
func (m *ExtractJobMutation) AppendedEngineParams() (json.RawMessage, bool) {
	if len(m.appendengine_params) == 0 {
		return nil, false
	}
	return m.appendengine_params, true
}

// ClearEngineParams clears the value of the "engine_params" field.
func (m *ExtractJobMutation) ClearEngineParams() {
	m.engine_params = nil
	m.appendengine_params = nil
	m.clearedFields[extractjob.FieldEngineParams] = struct{}{}
}

// EngineParamsCleared returns if the "engine_params" field was cleared in this mutation.
func (m *ExtractJobMutation) EngineParamsCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldEngineParams]
	return ok
}

// ResetEngineParams resets all changes to the "engine_params" field.
func (m *ExtractJobMutation) ResetEngineParams() {
	m.engine_params = nil
	m.appendengine_params = nil
	delete(m.clearedFields, extractjob.FieldEngineParams)
}

// ClearFile clears the "file" edge to the InvoiceFile entity.
func (m *ExtractJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extractjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the InvoiceFile entity was cleared.
func (m *ExtractJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (m *ExtractJobMutation) ClearInvoice() {
	m.clearedinvoice = true
	m.clearedFields[extractjob.FieldInvoiceID] = struct{}{}
}

// InvoiceCleared reports if the "invoice" edge to the Invoice entity was cleared.
func (m *ExtractJobMutation) InvoiceCleared() bool {
	return m.InvoiceIDCleared() || m.clearedinvoice
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *ExtractJobMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.file != nil {
		fields = append(fields, extractjob.FieldFileID)
	}
	if m.profile_id != nil {
		fields = append(fields, extractjob.FieldProfileID)
	}
	if m.invoice != nil {
		fields = append(fields, extractjob.FieldInvoiceID)
	}
	if m.format != nil {
		fields = append(fields, extractjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, extractjob.FieldNeedsReview)
	}
	if m.ocr_text != nil {
		fields = append(fields, extractjob.FieldOcrText)
	}
	if m.extracted_json != nil {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.engine_name != nil {
		fields = append(fields, extractjob.FieldEngineName)
	}
	if m.engine_params != nil {
		fields = append(fields, extractjob.FieldEngineParams)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldFileID:
		return m.FileID()
	case extractjob.FieldProfileID:
		return m.ProfileID()
	case extractjob.FieldInvoiceID:
		return m.InvoiceID()
	case extractjob.FieldFormat:
		return m.Format()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case extractjob.FieldNeedsReview:
		return m.NeedsReview()
	case extractjob.FieldOcrText:
		return m.OcrText()
	case extractjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case extractjob.FieldEngineName:
		return m.EngineName()
	case extractjob.FieldEngineParams:
		return m.EngineParams()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldFileID:
		return m.OldFileID(ctx)
	case extractjob.FieldProfileID:
		return m.OldProfileID(ctx)
	case extractjob.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case extractjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case extractjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extractjob.FieldOcrText:
		return m.OldOcrText(ctx)
	case extractjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case extractjob.FieldEngineName:
		return m.OldEngineName(ctx)
	case extractjob.FieldEngineParams:
		return m.OldEngineParams(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case extractjob.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case extractjob.FieldInvoiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case extractjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case extractjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extractjob.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case extractjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case extractjob.FieldEngineName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineName(v)
		return nil
	case extractjob.FieldEngineParams:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineParams(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldInvoiceID) {
		fields = append(fields, extractjob.FieldInvoiceID)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldStatus) {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldExtractionConfidence) {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	if m.FieldCleared(extractjob.FieldOcrText) {
		fields = append(fields, extractjob.FieldOcrText)
	}
	if m.FieldCleared(extractjob.FieldExtractedJSON) {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.FieldCleared(extractjob.FieldEngineName) {
		fields = append(fields, extractjob.FieldEngineName)
	}
	if m.FieldCleared(extractjob.FieldEngineParams) {
		fields = append(fields, extractjob.FieldEngineParams)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldInvoiceID:
		m.ClearInvoiceID()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ClearStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case extractjob.FieldOcrText:
		m.ClearOcrText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case extractjob.FieldEngineName:
		m.ClearEngineName()
		return nil
	case extractjob.FieldEngineParams:
		m.ClearEngineParams()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldFileID:
		m.ResetFileID()
		return nil
	case extractjob.FieldProfileID:
		m.ResetProfileID()
		return nil
	case extractjob.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case extractjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case extractjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extractjob.FieldOcrText:
		m.ResetOcrText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case extractjob.FieldEngineName:
		m.ResetEngineName()
		return nil
	case extractjob.FieldEngineParams:
		m.ResetEngineParams()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.invoice != nil {
		edges = append(edges, extractjob.EdgeInvoice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.clearedinvoice {
		edges = append(edges, extractjob.EdgeInvoice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeFile:
		return m.clearedfile
	case extractjob.EdgeInvoice:
		return m.clearedinvoice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ClearFile()
		return nil
	case extractjob.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ResetFile()
		return nil
	case extractjob.EdgeInvoice:
		m.ResetInvoice()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	profile_id          *uuid.UUID
	invoice_number      *string
	invoice_date        *time.Time
	due_date            *time.Time
	amount              *float64
	addamount           *float64
	provider            *string
	invoice_type        *string
	unit                *string
	period              *string
	consumption         *string
	account_number      *string
	installation_number *string
	customer_number     *string
	full_name           *string
	address             *string
	consumer_group      *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	files               map[uuid.UUID]struct{}
	removedfiles        map[uuid.UUID]struct{}
	clearedfiles        bool
	jobs                map[uuid.UUID]struct{}
	removedjobs         map[uuid.UUID]struct{}
	clearedjobs         bool
	done                bool
	oldValue            func(context.Context) (*Invoice, error)
	predicates          []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *InvoiceMutation) SetProfileID(u uuid.UUID) {
	m.profile_id = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *InvoiceMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *InvoiceMutation) ResetProfileID() {
	m.profile_id = nil
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *InvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *InvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *InvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *InvoiceMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *InvoiceMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *InvoiceMutation) ResetInvoiceDate() {
	m.invoice_date = nil
}

// SetDueDate sets the "due_date" field.
func (m *InvoiceMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *InvoiceMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *InvoiceMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[invoice.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *InvoiceMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *InvoiceMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, invoice.FieldDueDate)
}

// SetAmount sets the "amount" field.
func (m *InvoiceMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *InvoiceMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *InvoiceMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *InvoiceMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *InvoiceMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetProvider sets the "provider" field.
func (m *InvoiceMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *InvoiceMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *InvoiceMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[invoice.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *InvoiceMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[invoice.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *InvoiceMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, invoice.FieldProvider)
}

// SetInvoiceType sets the "invoice_type" field.
func (m *InvoiceMutation) SetInvoiceType(s string) {
	m.invoice_type = &s
}

// InvoiceType returns the value of the "invoice_type" field in the mutation.
func (m *InvoiceMutation) InvoiceType() (r string, exists bool) {
	v := m.invoice_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceType returns the old "invoice_type" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceType: %w", err)
	}
	return oldValue.InvoiceType, nil
}

// ClearInvoiceType clears the value of the "invoice_type" field.
func (m *InvoiceMutation) ClearInvoiceType() {
	m.invoice_type = nil
	m.clearedFields[invoice.FieldInvoiceType] = struct{}{}
}

// InvoiceTypeCleared returns if the "invoice_type" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceTypeCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceType]
	return ok
}

// ResetInvoiceType resets all changes to the "invoice_type" field.
func (m *InvoiceMutation) ResetInvoiceType() {
	m.invoice_type = nil
	delete(m.clearedFields, invoice.FieldInvoiceType)
}

// SetUnit sets the "unit" field.
func (m *InvoiceMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *InvoiceMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *InvoiceMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[invoice.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *InvoiceMutation) UnitCleared() bool {
	_, ok := m.clearedFields[invoice.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *InvoiceMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, invoice.FieldUnit)
}

// SetPeriod sets the "period" field.
func (m *InvoiceMutation) SetPeriod(s string) {
	m.period = &s
}

// Period returns the value of the "period" field in the mutation.
func (m *InvoiceMutation) Period() (r string, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPeriod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ClearPeriod clears the value of the "period" field.
func (m *InvoiceMutation) ClearPeriod() {
	m.period = nil
	m.clearedFields[invoice.FieldPeriod] = struct{}{}
}

// PeriodCleared returns if the "period" field was cleared in this mutation.
func (m *InvoiceMutation) PeriodCleared() bool {
	_, ok := m.clearedFields[invoice.FieldPeriod]
	return ok
}

// ResetPeriod resets all changes to the "period" field.
func (m *InvoiceMutation) ResetPeriod() {
	m.period = nil
	delete(m.clearedFields, invoice.FieldPeriod)
}

// SetConsumption sets the "consumption" field.
func (m *InvoiceMutation) SetConsumption(s string) {
	m.consumption = &s
}

// Consumption returns the value of the "consumption" field in the mutation.
func (m *InvoiceMutation) Consumption() (r string, exists bool) {
	v := m.consumption
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumption returns the old "consumption" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldConsumption(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumption: %w", err)
	}
	return oldValue.Consumption, nil
}

// ClearConsumption clears the value of the "consumption" field.
func (m *InvoiceMutation) ClearConsumption() {
	m.consumption = nil
	m.clearedFields[invoice.FieldConsumption] = struct{}{}
}

// ConsumptionCleared returns if the "consumption" field was cleared in this mutation.
func (m *InvoiceMutation) ConsumptionCleared() bool {
	_, ok := m.clearedFields[invoice.FieldConsumption]
	return ok
}

// ResetConsumption resets all changes to the "consumption" field.
func (m *InvoiceMutation) ResetConsumption() {
	m.consumption = nil
	delete(m.clearedFields, invoice.FieldConsumption)
}

// SetAccountNumber sets the "account_number" field.
func (m *InvoiceMutation) SetAccountNumber(s string) {
	m.account_number = &s
}

// AccountNumber returns the value of the "account_number" field in the mutation.
func (m *InvoiceMutation) AccountNumber() (r string, exists bool) {
	v := m.account_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountNumber returns the old "account_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldAccountNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountNumber: %w", err)
	}
	return oldValue.AccountNumber, nil
}

// ClearAccountNumber clears the value of the "account_number" field.
func (m *InvoiceMutation) ClearAccountNumber() {
	m.account_number = nil
	m.clearedFields[invoice.FieldAccountNumber] = struct{}{}
}

// AccountNumberCleared returns if the "account_number" field was cleared in this mutation.
func (m *InvoiceMutation) AccountNumberCleared() bool {
	_, ok := m.clearedFields[invoice.FieldAccountNumber]
	return ok
}

// ResetAccountNumber resets all changes to the "account_number" field.
func (m *InvoiceMutation) ResetAccountNumber() {
	m.account_number = nil
	delete(m.clearedFields, invoice.FieldAccountNumber)
}

// SetInstallationNumber sets the "installation_number" field.
func (m *InvoiceMutation) SetInstallationNumber(s string) {
	m.installation_number = &s
}

// InstallationNumber returns the value of the "installation_number" field in the mutation.
func (m *InvoiceMutation) InstallationNumber() (r string, exists bool) {
	v := m.installation_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInstallationNumber returns the old "installation_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInstallationNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstallationNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstallationNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstallationNumber: %w", err)
	}
	return oldValue.InstallationNumber, nil
}

// ClearInstallationNumber clears the value of the "installation_number" field.
func (m *InvoiceMutation) ClearInstallationNumber() {
	m.installation_number = nil
	m.clearedFields[invoice.FieldInstallationNumber] = struct{}{}
}

// InstallationNumberCleared returns if the "installation_number" field was cleared in this mutation.
func (m *InvoiceMutation) InstallationNumberCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInstallationNumber]
	return ok
}

// ResetInstallationNumber resets all changes to the "installation_number" field.
func (m *InvoiceMutation) ResetInstallationNumber() {
	m.installation_number = nil
	delete(m.clearedFields, invoice.FieldInstallationNumber)
}

// SetCustomerNumber sets the "customer_number" field.
func (m *InvoiceMutation) SetCustomerNumber(s string) {
	m.customer_number = &s
}

// CustomerNumber returns the value of the "customer_number" field in the mutation.
func (m *InvoiceMutation) CustomerNumber() (r string, exists bool) {
	v := m.customer_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerNumber returns the old "customer_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCustomerNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerNumber: %w", err)
	}
	return oldValue.CustomerNumber, nil
}

// ClearCustomerNumber clears the value of the "customer_number" field.
func (m *InvoiceMutation) ClearCustomerNumber() {
	m.customer_number = nil
	m.clearedFields[invoice.FieldCustomerNumber] = struct{}{}
}

// CustomerNumberCleared returns if the "customer_number" field was cleared in this mutation.
func (m *InvoiceMutation) CustomerNumberCleared() bool {
	_, ok := m.clearedFields[invoice.FieldCustomerNumber]
	return ok
}

// ResetCustomerNumber resets all changes to the "customer_number" field.
func (m *InvoiceMutation) ResetCustomerNumber() {
	m.customer_number = nil
	delete(m.clearedFields, invoice.FieldCustomerNumber)
}

// SetFullName sets the "full_name" field.
func (m *InvoiceMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *InvoiceMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFullName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ClearFullName clears the value of the "full_name" field.
func (m *InvoiceMutation) ClearFullName() {
	m.full_name = nil
	m.clearedFields[invoice.FieldFullName] = struct{}{}
}

// FullNameCleared returns if the "full_name" field was cleared in this mutation.
func (m *InvoiceMutation) FullNameCleared() bool {
	_, ok := m.clearedFields[invoice.FieldFullName]
	return ok
}

// ResetFullName resets all changes to the "full_name" field.
func (m *InvoiceMutation) ResetFullName() {
	m.full_name = nil
	delete(m.clearedFields, invoice.FieldFullName)
}

// SetAddress sets the "address" field.
func (m *InvoiceMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *InvoiceMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *InvoiceMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[invoice.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *InvoiceMutation) AddressCleared() bool {
	_, ok := m.clearedFields[invoice.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *InvoiceMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, invoice.FieldAddress)
}

// SetConsumerGroup sets the "consumer_group" field.
func (m *InvoiceMutation) SetConsumerGroup(s string) {
	m.consumer_group = &s
}

// ConsumerGroup returns the value of the "consumer_group" field in the mutation.
func (m *InvoiceMutation) ConsumerGroup() (r string, exists bool) {
	v := m.consumer_group
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumerGroup returns the old "consumer_group" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldConsumerGroup(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumerGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumerGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumerGroup: %w", err)
	}
	return oldValue.ConsumerGroup, nil
}

// ClearConsumerGroup clears the value of the "consumer_group" field.
func (m *InvoiceMutation) ClearConsumerGroup() {
	m.consumer_group = nil
	m.clearedFields[invoice.FieldConsumerGroup] = struct{}{}
}

// ConsumerGroupCleared returns if the "consumer_group" field was cleared in this mutation.
func (m *InvoiceMutation) ConsumerGroupCleared() bool {
	_, ok := m.clearedFields[invoice.FieldConsumerGroup]
	return ok
}

// ResetConsumerGroup resets all changes to the "consumer_group" field.
func (m *InvoiceMutation) ResetConsumerGroup() {
	m.consumer_group = nil
	delete(m.clearedFields, invoice.FieldConsumerGroup)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFileIDs adds the "files" edge to the InvoiceFile entity by ids.
func (m *InvoiceMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the InvoiceFile entity.
func (m *InvoiceMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the InvoiceFile entity was cleared.
func (m *InvoiceMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the InvoiceFile entity by IDs.
func (m *InvoiceMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the InvoiceFile entity.
func (m *InvoiceMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *InvoiceMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *InvoiceMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *InvoiceMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *InvoiceMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *InvoiceMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *InvoiceMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *InvoiceMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *InvoiceMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *InvoiceMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.profile_id != nil {
		fields = append(fields, invoice.FieldProfileID)
	}
	if m.invoice_number != nil {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.invoice_date != nil {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.due_date != nil {
		fields = append(fields, invoice.FieldDueDate)
	}
	if m.amount != nil {
		fields = append(fields, invoice.FieldAmount)
	}
	if m.provider != nil {
		fields = append(fields, invoice.FieldProvider)
	}
	if m.invoice_type != nil {
		fields = append(fields, invoice.FieldInvoiceType)
	}
	if m.unit != nil {
		fields = append(fields, invoice.FieldUnit)
	}
	if m.period != nil {
		fields = append(fields, invoice.FieldPeriod)
	}
	if m.consumption != nil {
		fields = append(fields, invoice.FieldConsumption)
	}
	if m.account_number != nil {
		fields = append(fields, invoice.FieldAccountNumber)
	}
	if m.installation_number != nil {
		fields = append(fields, invoice.FieldInstallationNumber)
	}
	if m.customer_number != nil {
		fields = append(fields, invoice.FieldCustomerNumber)
	}
	if m.full_name != nil {
		fields = append(fields, invoice.FieldFullName)
	}
	if m.address != nil {
		fields = append(fields, invoice.FieldAddress)
	}
	if m.consumer_group != nil {
		fields = append(fields, invoice.FieldConsumerGroup)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoice.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldProfileID:
		return m.ProfileID()
	case invoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case invoice.FieldInvoiceDate:
		return m.InvoiceDate()
	case invoice.FieldDueDate:
		return m.DueDate()
	case invoice.FieldAmount:
		return m.Amount()
	case invoice.FieldProvider:
		return m.Provider()
	case invoice.FieldInvoiceType:
		return m.InvoiceType()
	case invoice.FieldUnit:
		return m.Unit()
	case invoice.FieldPeriod:
		return m.Period()
	case invoice.FieldConsumption:
		return m.Consumption()
	case invoice.FieldAccountNumber:
		return m.AccountNumber()
	case invoice.FieldInstallationNumber:
		return m.InstallationNumber()
	case invoice.FieldCustomerNumber:
		return m.CustomerNumber()
	case invoice.FieldFullName:
		return m.FullName()
	case invoice.FieldAddress:
		return m.Address()
	case invoice.FieldConsumerGroup:
		return m.ConsumerGroup()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	case invoice.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldProfileID:
		return m.OldProfileID(ctx)
	case invoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case invoice.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case invoice.FieldDueDate:
		return m.OldDueDate(ctx)
	case invoice.FieldAmount:
		return m.OldAmount(ctx)
	case invoice.FieldProvider:
		return m.OldProvider(ctx)
	case invoice.FieldInvoiceType:
		return m.OldInvoiceType(ctx)
	case invoice.FieldUnit:
		return m.OldUnit(ctx)
	case invoice.FieldPeriod:
		return m.OldPeriod(ctx)
	case invoice.FieldConsumption:
		return m.OldConsumption(ctx)
	case invoice.FieldAccountNumber:
		return m.OldAccountNumber(ctx)
	case invoice.FieldInstallationNumber:
		return m.OldInstallationNumber(ctx)
	case invoice.FieldCustomerNumber:
		return m.OldCustomerNumber(ctx)
	case invoice.FieldFullName:
		return m.OldFullName(ctx)
	case invoice.FieldAddress:
		return m.OldAddress(ctx)
	case invoice.FieldConsumerGroup:
		return m.OldConsumerGroup(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case invoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case invoice.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case invoice.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case invoice.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case invoice.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case invoice.FieldInvoiceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceType(v)
		return nil
	case invoice.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case invoice.FieldPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case invoice.FieldConsumption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumption(v)
		return nil
	case invoice.FieldAccountNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountNumber(v)
		return nil
	case invoice.FieldInstallationNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstallationNumber(v)
		return nil
	case invoice.FieldCustomerNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerNumber(v)
		return nil
	case invoice.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case invoice.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case invoice.FieldConsumerGroup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumerGroup(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, invoice.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldDueDate) {
		fields = append(fields, invoice.FieldDueDate)
	}
	if m.FieldCleared(invoice.FieldProvider) {
		fields = append(fields, invoice.FieldProvider)
	}
	if m.FieldCleared(invoice.FieldInvoiceType) {
		fields = append(fields, invoice.FieldInvoiceType)
	}
	if m.FieldCleared(invoice.FieldUnit) {
		fields = append(fields, invoice.FieldUnit)
	}
	if m.FieldCleared(invoice.FieldPeriod) {
		fields = append(fields, invoice.FieldPeriod)
	}
	if m.FieldCleared(invoice.FieldConsumption) {
		fields = append(fields, invoice.FieldConsumption)
	}
	if m.FieldCleared(invoice.FieldAccountNumber) {
		fields = append(fields, invoice.FieldAccountNumber)
	}
	if m.FieldCleared(invoice.FieldInstallationNumber) {
		fields = append(fields, invoice.FieldInstallationNumber)
	}
	if m.FieldCleared(invoice.FieldCustomerNumber) {
		fields = append(fields, invoice.FieldCustomerNumber)
	}
	if m.FieldCleared(invoice.FieldFullName) {
		fields = append(fields, invoice.FieldFullName)
	}
	if m.FieldCleared(invoice.FieldAddress) {
		fields = append(fields, invoice.FieldAddress)
	}
	if m.FieldCleared(invoice.FieldConsumerGroup) {
		fields = append(fields, invoice.FieldConsumerGroup)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldDueDate:
		m.ClearDueDate()
		return nil
	case invoice.FieldProvider:
		m.ClearProvider()
		return nil
	case invoice.FieldInvoiceType:
		m.ClearInvoiceType()
		return nil
	case invoice.FieldUnit:
		m.ClearUnit()
		return nil
	case invoice.FieldPeriod:
		m.ClearPeriod()
		return nil
	case invoice.FieldConsumption:
		m.ClearConsumption()
		return nil
	case invoice.FieldAccountNumber:
		m.ClearAccountNumber()
		return nil
	case invoice.FieldInstallationNumber:
		m.ClearInstallationNumber()
		return nil
	case invoice.FieldCustomerNumber:
		m.ClearCustomerNumber()
		return nil
	case invoice.FieldFullName:
		m.ClearFullName()
		return nil
	case invoice.FieldAddress:
		m.ClearAddress()
		return nil
	case invoice.FieldConsumerGroup:
		m.ClearConsumerGroup()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldProfileID:
		m.ResetProfileID()
		return nil
	case invoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case invoice.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case invoice.FieldDueDate:
		m.ResetDueDate()
		return nil
	case invoice.FieldAmount:
		m.ResetAmount()
		return nil
	case invoice.FieldProvider:
		m.ResetProvider()
		return nil
	case invoice.FieldInvoiceType:
		m.ResetInvoiceType()
		return nil
	case invoice.FieldUnit:
		m.ResetUnit()
		return nil
	case invoice.FieldPeriod:
		m.ResetPeriod()
		return nil
	case invoice.FieldConsumption:
		m.ResetConsumption()
		return nil
	case invoice.FieldAccountNumber:
		m.ResetAccountNumber()
		return nil
	case invoice.FieldInstallationNumber:
		m.ResetInstallationNumber()
		return nil
	case invoice.FieldCustomerNumber:
		m.ResetCustomerNumber()
		return nil
	case invoice.FieldFullName:
		m.ResetFullName()
		return nil
	case invoice.FieldAddress:
		m.ResetAddress()
		return nil
	case invoice.FieldConsumerGroup:
		m.ResetConsumerGroup()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.files != nil {
		edges = append(edges, invoice.EdgeFiles)
	}
	if m.jobs != nil {
		edges = append(edges, invoice.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case invoice.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfiles != nil {
		edges = append(edges, invoice.EdgeFiles)
	}
	if m.removedjobs != nil {
		edges = append(edges, invoice.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case invoice.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfiles {
		edges = append(edges, invoice.EdgeFiles)
	}
	if m.clearedjobs {
		edges = append(edges, invoice.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case invoice.EdgeFiles:
		return m.clearedfiles
	case invoice.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	switch name {
	case invoice.EdgeFiles:
		m.ResetFiles()
		return nil
	case invoice.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Invoice edge %s", name)
}

// InvoiceFileMutation represents an operation that mutates the InvoiceFile nodes in the graph.
type InvoiceFileMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	profile_id     *uuid.UUID
	source_path    *string
	content_hash   *[]byte
	filename       *string
	file_ext       *string
	file_size      *int
	addfile_size   *int
	uploaded_at    *time.Time
	clearedFields  map[string]struct{}
	invoice        *uuid.UUID
	clearedinvoice bool
	jobs           map[uuid.UUID]struct{}
	removedjobs    map[uuid.UUID]struct{}
	clearedjobs    bool
	done           bool
	oldValue       func(context.Context) (*InvoiceFile, error)
	predicates     []predicate.InvoiceFile
}

var _ ent.Mutation = (*InvoiceFileMutation)(nil)

// invoicefileOption allows management of the mutation configuration using functional options.
type invoicefileOption func(*InvoiceFileMutation)

// newInvoiceFileMutation creates new mutation for the InvoiceFile entity.
func newInvoiceFileMutation(c config, op Op, opts ...invoicefileOption) *InvoiceFileMutation {
	m := &InvoiceFileMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceFileID sets the ID field of the mutation.
func withInvoiceFileID(id uuid.UUID) invoicefileOption {
	return func(m *InvoiceFileMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceFile
		)
		m.oldValue = func(ctx context.Context) (*InvoiceFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceFile sets the old InvoiceFile of the mutation.
func withInvoiceFile(node *InvoiceFile) invoicefileOption {
	return func(m *InvoiceFileMutation) {
		m.oldValue = func(context.Context) (*InvoiceFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceFile entities.
func (m *InvoiceFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *InvoiceFileMutation) SetProfileID(u uuid.UUID) {
	m.profile_id = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *InvoiceFileMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the InvoiceFile entity.
// If the InvoiceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceFileMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *InvoiceFileMutation) ResetProfileID() {
	m.profile_id = nil
}

// SetInvoiceID sets the "invoice_id" field.
func (m *InvoiceFileMutation) SetInvoiceID(u uuid.UUID) {
	m.invoice = &u
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *InvoiceFileMutation) InvoiceID() (r uuid.UUID, exists bool) {
	v := m.invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the InvoiceFile entity.
// If the InvoiceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceFileMutation) OldInvoiceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (m *InvoiceFileMutation) ClearInvoiceID() {
	m.invoice = nil
	m.clearedFields[invoicefile.FieldInvoiceID] = struct{}{}
}

// InvoiceIDCleared returns if the "invoice_id" field was cleared in this mutation.
func (m *InvoiceFileMutation) InvoiceIDCleared() bool {
	_, ok := m.clearedFields[invoicefile.FieldInvoiceID]
	return ok
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *InvoiceFileMutation) ResetInvoiceID() {
	m.invoice = nil
	delete(m.clearedFields, invoicefile.FieldInvoiceID)
}

// SetSourcePath sets the "source_path" field.
func (m *InvoiceFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *InvoiceFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the InvoiceFile entity.
// If the InvoiceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *InvoiceFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *InvoiceFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *InvoiceFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the InvoiceFile entity.
// If the InvoiceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *InvoiceFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *InvoiceFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *InvoiceFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the InvoiceFile entity.
// If the InvoiceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *InvoiceFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *InvoiceFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *InvoiceFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the InvoiceFile entity.
// If the InvoiceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *InvoiceFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *InvoiceFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *InvoiceFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the InvoiceFile entity.
// If the InvoiceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *InvoiceFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *InvoiceFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *InvoiceFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *InvoiceFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *InvoiceFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the InvoiceFile entity.
// If the InvoiceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *InvoiceFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (m *InvoiceFileMutation) ClearInvoice() {
	m.clearedinvoice = true
	m.clearedFields[invoicefile.FieldInvoiceID] = struct{}{}
}

// InvoiceCleared reports if the "invoice" edge to the Invoice entity was cleared.
func (m *InvoiceFileMutation) InvoiceCleared() bool {
	return m.InvoiceIDCleared() || m.clearedinvoice
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *InvoiceFileMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *InvoiceFileMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *InvoiceFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *InvoiceFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *InvoiceFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *InvoiceFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *InvoiceFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *InvoiceFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *InvoiceFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the InvoiceFileMutation builder.
func (m *InvoiceFileMutation) Where(ps ...predicate.InvoiceFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceFile).
func (m *InvoiceFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceFileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.profile_id != nil {
		fields = append(fields, invoicefile.FieldProfileID)
	}
	if m.invoice != nil {
		fields = append(fields, invoicefile.FieldInvoiceID)
	}
	if m.source_path != nil {
		fields = append(fields, invoicefile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, invoicefile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, invoicefile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, invoicefile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, invoicefile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, invoicefile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoicefile.FieldProfileID:
		return m.ProfileID()
	case invoicefile.FieldInvoiceID:
		return m.InvoiceID()
	case invoicefile.FieldSourcePath:
		return m.SourcePath()
	case invoicefile.FieldContentHash:
		return m.ContentHash()
	case invoicefile.FieldFilename:
		return m.Filename()
	case invoicefile.FieldFileExt:
		return m.FileExt()
	case invoicefile.FieldFileSize:
		return m.FileSize()
	case invoicefile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoicefile.FieldProfileID:
		return m.OldProfileID(ctx)
	case invoicefile.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case invoicefile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case invoicefile.FieldContentHash:
		return m.OldContentHash(ctx)
	case invoicefile.FieldFilename:
		return m.OldFilename(ctx)
	case invoicefile.FieldFileExt:
		return m.OldFileExt(ctx)
	case invoicefile.FieldFileSize:
		return m.OldFileSize(ctx)
	case invoicefile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoicefile.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case invoicefile.FieldInvoiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case invoicefile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case invoicefile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case invoicefile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case invoicefile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case invoicefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case invoicefile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, invoicefile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoicefile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoicefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoicefile.FieldInvoiceID) {
		fields = append(fields, invoicefile.FieldInvoiceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceFileMutation) ClearField(name string) error {
	switch name {
	case invoicefile.FieldInvoiceID:
		m.ClearInvoiceID()
		return nil
	}
	return fmt.Errorf("unknown InvoiceFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceFileMutation) ResetField(name string) error {
	switch name {
	case invoicefile.FieldProfileID:
		m.ResetProfileID()
		return nil
	case invoicefile.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case invoicefile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case invoicefile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case invoicefile.FieldFilename:
		m.ResetFilename()
		return nil
	case invoicefile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case invoicefile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case invoicefile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown InvoiceFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.invoice != nil {
		edges = append(edges, invoicefile.EdgeInvoice)
	}
	if m.jobs != nil {
		edges = append(edges, invoicefile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoicefile.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	case invoicefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, invoicefile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case invoicefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedinvoice {
		edges = append(edges, invoicefile.EdgeInvoice)
	}
	if m.clearedjobs {
		edges = append(edges, invoicefile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceFileMutation) EdgeCleared(name string) bool {
	switch name {
	case invoicefile.EdgeInvoice:
		return m.clearedinvoice
	case invoicefile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceFileMutation) ClearEdge(name string) error {
	switch name {
	case invoicefile.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown InvoiceFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceFileMutation) ResetEdge(name string) error {
	switch name {
	case invoicefile.EdgeInvoice:
		m.ResetInvoice()
		return nil
	case invoicefile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown InvoiceFile edge %s", name)
}
