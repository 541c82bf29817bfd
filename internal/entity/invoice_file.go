package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceFile represents an ingested invoice file for data transfer between layers.
type InvoiceFile struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	SourcePath  string    `json:"source_path"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
