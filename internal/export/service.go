package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/enerjitakip/fatura-extract/internal/entity"
	"github.com/enerjitakip/fatura-extract/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	invoicesRepo repository.InvoiceRepository
	logger       *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoicesRepo: invoices, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the given profile and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices for profile.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	invoices, err := s.invoicesRepo.ListInvoices(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Faturalar"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Fatura No",
		"Fatura Tarihi",
		"Son Ödeme Tarihi",
		"Tutar (TL)",
		"Sağlayıcı",
		"Tür",
		"Dönem",
		"Tüketim",
		"Abone No",
		"Adres",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, inv.InvoiceNumber)
		if !inv.InvoiceDate.IsZero() {
			write(2, inv.InvoiceDate.Format("2006-01-02"))
		} else {
			write(2, "")
		}
		if inv.DueDate != nil {
			write(3, inv.DueDate.Format("2006-01-02"))
		} else {
			write(3, "")
		}
		write(4, fmt.Sprintf("%.2f", inv.Amount))
		write(5, deref(inv.Provider))
		write(6, deref(inv.InvoiceType))
		write(7, deref(inv.Period))
		write(8, consumptionLabel(inv))
		write(9, deref(inv.AccountNumber))
		write(10, truncate(deref(inv.Address), 140))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // number
	_ = f.SetColWidth(sheet, "B", "C", 14) // dates
	_ = f.SetColWidth(sheet, "D", "D", 12) // amount
	_ = f.SetColWidth(sheet, "E", "E", 22) // provider
	_ = f.SetColWidth(sheet, "F", "H", 14) // type, period, consumption
	_ = f.SetColWidth(sheet, "I", "I", 16) // account
	_ = f.SetColWidth(sheet, "J", "J", 48) // address

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func consumptionLabel(inv *entity.Invoice) string {
	c := deref(inv.Consumption)
	if c == "" {
		return ""
	}
	if u := deref(inv.Unit); u != "" {
		return c + " " + u
	}
	return c
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
