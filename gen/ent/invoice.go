// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoice"
	"github.com/google/uuid"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber string `json:"invoice_number,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate time.Time `json:"invoice_date,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider *string `json:"provider,omitempty"`
	// InvoiceType holds the value of the "invoice_type" field.
	InvoiceType *string `json:"invoice_type,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit *string `json:"unit,omitempty"`
	// Period holds the value of the "period" field.
	Period *string `json:"period,omitempty"`
	// Consumption holds the value of the "consumption" field.
	Consumption *string `json:"consumption,omitempty"`
	// AccountNumber holds the value of the "account_number" field.
	AccountNumber *string `json:"account_number,omitempty"`
	// InstallationNumber holds the value of the "installation_number" field.
	InstallationNumber *string `json:"installation_number,omitempty"`
	// CustomerNumber holds the value of the "customer_number" field.
	CustomerNumber *string `json:"customer_number,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName *string `json:"full_name,omitempty"`
	// Address holds the value of the "address" field.
	Address *string `json:"address,omitempty"`
	// ConsumerGroup holds the value of the "consumer_group" field.
	ConsumerGroup *string `json:"consumer_group,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Files holds the value of the files edge.
	Files []*InvoiceFile `json:"files,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) FilesOrErr() ([]*InvoiceFile, error) {
	if e.loadedTypes[0] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case invoice.FieldInvoiceNumber, invoice.FieldProvider, invoice.FieldInvoiceType, invoice.FieldUnit, invoice.FieldPeriod, invoice.FieldConsumption, invoice.FieldAccountNumber, invoice.FieldInstallationNumber, invoice.FieldCustomerNumber, invoice.FieldFullName, invoice.FieldAddress, invoice.FieldConsumerGroup:
			values[i] = new(sql.NullString)
		case invoice.FieldInvoiceDate, invoice.FieldDueDate, invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID, invoice.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case invoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = value.String
			}
		case invoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = value.Time
			}
		case invoice.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case invoice.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case invoice.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = new(string)
				*_m.Provider = value.String
			}
		case invoice.FieldInvoiceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_type", values[i])
			} else if value.Valid {
				_m.InvoiceType = new(string)
				*_m.InvoiceType = value.String
			}
		case invoice.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = new(string)
				*_m.Unit = value.String
			}
		case invoice.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = new(string)
				*_m.Period = value.String
			}
		case invoice.FieldConsumption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consumption", values[i])
			} else if value.Valid {
				_m.Consumption = new(string)
				*_m.Consumption = value.String
			}
		case invoice.FieldAccountNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_number", values[i])
			} else if value.Valid {
				_m.AccountNumber = new(string)
				*_m.AccountNumber = value.String
			}
		case invoice.FieldInstallationNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field installation_number", values[i])
			} else if value.Valid {
				_m.InstallationNumber = new(string)
				*_m.InstallationNumber = value.String
			}
		case invoice.FieldCustomerNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_number", values[i])
			} else if value.Valid {
				_m.CustomerNumber = new(string)
				*_m.CustomerNumber = value.String
			}
		case invoice.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = new(string)
				*_m.FullName = value.String
			}
		case invoice.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = new(string)
				*_m.Address = value.String
			}
		case invoice.FieldConsumerGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consumer_group", values[i])
			} else if value.Valid {
				_m.ConsumerGroup = new(string)
				*_m.ConsumerGroup = value.String
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFiles queries the "files" edge of the Invoice entity.
func (_m *Invoice) QueryFiles() *InvoiceFileQuery {
	return NewInvoiceClient(_m.config).QueryFiles(_m)
}

// QueryJobs queries the "jobs" edge of the Invoice entity.
func (_m *Invoice) QueryJobs() *ExtractJobQuery {
	return NewInvoiceClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("invoice_number=")
	builder.WriteString(_m.InvoiceNumber)
	builder.WriteString(", ")
	builder.WriteString("invoice_date=")
	builder.WriteString(_m.InvoiceDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	if v := _m.Provider; v != nil {
		builder.WriteString("provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceType; v != nil {
		builder.WriteString("invoice_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Unit; v != nil {
		builder.WriteString("unit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Period; v != nil {
		builder.WriteString("period=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Consumption; v != nil {
		builder.WriteString("consumption=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AccountNumber; v != nil {
		builder.WriteString("account_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InstallationNumber; v != nil {
		builder.WriteString("installation_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CustomerNumber; v != nil {
		builder.WriteString("customer_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FullName; v != nil {
		builder.WriteString("full_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Address; v != nil {
		builder.WriteString("address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConsumerGroup; v != nil {
		builder.WriteString("consumer_group=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
