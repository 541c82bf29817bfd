package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents an extracted utility invoice for data transfer between layers.
type Invoice struct {
	ID                 uuid.UUID  `json:"id"`
	ProfileID          uuid.UUID  `json:"profile_id"`
	InvoiceNumber      string     `json:"invoice_number"`
	Provider           *string    `json:"provider,omitempty"`
	InvoiceType        *string    `json:"invoice_type,omitempty"`
	Unit               *string    `json:"unit,omitempty"`
	InvoiceDate        time.Time  `json:"invoice_date"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	Amount             float64    `json:"amount"`
	Period             *string    `json:"period,omitempty"`
	Consumption        *string    `json:"consumption,omitempty"`
	AccountNumber      *string    `json:"account_number,omitempty"`
	InstallationNumber *string    `json:"installation_number,omitempty"`
	CustomerNumber     *string    `json:"customer_number,omitempty"`
	FullName           *string    `json:"full_name,omitempty"`
	Address            *string    `json:"address,omitempty"`
	ConsumerGroup      *string    `json:"consumer_group,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
