// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoice"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoicefile"
	"github.com/google/uuid"
)

// InvoiceFile is the model entity for the InvoiceFile schema.
type InvoiceFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// InvoiceID holds the value of the "invoice_id" field.
	InvoiceID *uuid.UUID `json:"invoice_id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceFileQuery when eager-loading is set.
	Edges        InvoiceFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceFileEdges holds the relations/edges for other nodes in the graph.
type InvoiceFileEdges struct {
	// Invoice holds the value of the invoice edge.
	Invoice *Invoice `json:"invoice,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// InvoiceOrErr returns the Invoice value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceFileEdges) InvoiceOrErr() (*Invoice, error) {
	if e.Invoice != nil {
		return e.Invoice, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: invoice.Label}
	}
	return nil, &NotLoadedError{edge: "invoice"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceFileEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InvoiceFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoicefile.FieldInvoiceID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case invoicefile.FieldContentHash:
			values[i] = new([]byte)
		case invoicefile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case invoicefile.FieldSourcePath, invoicefile.FieldFilename, invoicefile.FieldFileExt:
			values[i] = new(sql.NullString)
		case invoicefile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case invoicefile.FieldID, invoicefile.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InvoiceFile fields.
func (_m *InvoiceFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoicefile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoicefile.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case invoicefile.FieldInvoiceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_id", values[i])
			} else if value.Valid {
				_m.InvoiceID = new(uuid.UUID)
				*_m.InvoiceID = *value.S.(*uuid.UUID)
			}
		case invoicefile.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case invoicefile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case invoicefile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case invoicefile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case invoicefile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case invoicefile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InvoiceFile.
// This includes values selected through modifiers, order, etc.
func (_m *InvoiceFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvoice queries the "invoice" edge of the InvoiceFile entity.
func (_m *InvoiceFile) QueryInvoice() *InvoiceQuery {
	return NewInvoiceFileClient(_m.config).QueryInvoice(_m)
}

// QueryJobs queries the "jobs" edge of the InvoiceFile entity.
func (_m *InvoiceFile) QueryJobs() *ExtractJobQuery {
	return NewInvoiceFileClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this InvoiceFile.
// Note that you need to call InvoiceFile.Unwrap() before calling this method if this InvoiceFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InvoiceFile) Update() *InvoiceFileUpdateOne {
	return NewInvoiceFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InvoiceFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InvoiceFile) Unwrap() *InvoiceFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InvoiceFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InvoiceFile) String() string {
	var builder strings.Builder
	builder.WriteString("InvoiceFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	if v := _m.InvoiceID; v != nil {
		builder.WriteString("invoice_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InvoiceFiles is a parsable slice of InvoiceFile.
type InvoiceFiles []*InvoiceFile
