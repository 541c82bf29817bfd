package utils

import (
	"fmt"
	"time"

	"github.com/enerjitakip/fatura-extract/gen/ent"
	invoicespb "github.com/enerjitakip/fatura-extract/gen/invoices/v1"
	"github.com/enerjitakip/fatura-extract/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StrPtrOrNil maps an empty extraction value to a NULL column.
func StrPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ToPBInvoice(inv *entity.Invoice) *invoicespb.Invoice {
	out := &invoicespb.Invoice{
		Id:                 inv.ID.String(),
		ProfileId:          inv.ProfileID.String(),
		InvoiceNumber:      inv.InvoiceNumber,
		InvoiceDate:        inv.InvoiceDate.Format("2006-01-02"),
		Amount:             fmt.Sprintf("%.2f", inv.Amount),
		Provider:           strOrEmpty(inv.Provider),
		InvoiceType:        strOrEmpty(inv.InvoiceType),
		Unit:               strOrEmpty(inv.Unit),
		Period:             strOrEmpty(inv.Period),
		Consumption:        strOrEmpty(inv.Consumption),
		AccountNumber:      strOrEmpty(inv.AccountNumber),
		InstallationNumber: strOrEmpty(inv.InstallationNumber),
		CustomerNumber:     strOrEmpty(inv.CustomerNumber),
		FullName:           strOrEmpty(inv.FullName),
		Address:            strOrEmpty(inv.Address),
		ConsumerGroup:      strOrEmpty(inv.ConsumerGroup),
		CreatedAt:          inv.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          inv.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if inv.DueDate != nil {
		out.DueDate = inv.DueDate.Format("2006-01-02")
	}
	return out
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToInvoice(e *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:                 e.ID,
		ProfileID:          e.ProfileID,
		InvoiceNumber:      e.InvoiceNumber,
		Provider:           e.Provider,
		InvoiceType:        e.InvoiceType,
		Unit:               e.Unit,
		InvoiceDate:        e.InvoiceDate,
		DueDate:            e.DueDate,
		Amount:             e.Amount,
		Period:             e.Period,
		Consumption:        e.Consumption,
		AccountNumber:      e.AccountNumber,
		InstallationNumber: e.InstallationNumber,
		CustomerNumber:     e.CustomerNumber,
		FullName:           e.FullName,
		Address:            e.Address,
		ConsumerGroup:      e.ConsumerGroup,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func ToInvoiceFile(e *ent.InvoiceFile) *entity.InvoiceFile {
	return &entity.InvoiceFile{
		ID:          e.ID,
		ProfileID:   e.ProfileID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:                   e.ID,
		FileID:               e.FileID,
		ProfileID:            e.ProfileID,
		InvoiceID:            e.InvoiceID,
		Format:               e.Format,
		StartedAt:            e.StartedAt,
		FinishedAt:           e.FinishedAt,
		Status:               e.Status,
		ErrorMessage:         e.ErrorMessage,
		ExtractionConfidence: e.ExtractionConfidence,
		NeedsReview:          e.NeedsReview,
		OCRText:              e.OcrText,
		ExtractedJSON:        e.ExtractedJSON,
		EngineName:           e.EngineName,
		EngineParams:         e.EngineParams,
	}
}
