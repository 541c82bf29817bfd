package repository

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/enerjitakip/fatura-extract/gen/ent"
	entinvoice "github.com/enerjitakip/fatura-extract/gen/ent/invoice"
	"github.com/enerjitakip/fatura-extract/internal/entity"
	"github.com/enerjitakip/fatura-extract/internal/extraction"
	"github.com/enerjitakip/fatura-extract/internal/utils"
)

// CreateInvoiceRequest wraps parameters for upserting an invoice from a
// finished extraction.
type CreateInvoiceRequest struct {
	File    *ent.InvoiceFile
	JobID   uuid.UUID
	Invoice extraction.ExtractedInvoice
}

type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	ListInvoices(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error)
	UpsertFromExtraction(ctx context.Context, request *CreateInvoiceRequest) (*entity.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query().Where(entinvoice.ProfileID(profileID))
	if fromDate != nil {
		q = q.Where(entinvoice.InvoiceDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entinvoice.InvoiceDateLTE(*toDate))
	}
	rows, err := q.Order(entinvoice.ByInvoiceDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

// UpsertFromExtraction creates or updates the invoice row keyed on
// (profile_id, invoice_number) and links the source file to it. The caller
// guarantees invoiceNumber, invoiceDate and amount are resolved.
func (r *invoiceRepository) UpsertFromExtraction(ctx context.Context, request *CreateInvoiceRequest) (*entity.Invoice, error) {
	inv := request.Invoice
	file := request.File

	invoiceDate, err := time.Parse("2006-01-02", inv.InvoiceDate)
	if err != nil {
		return nil, err
	}
	amount, err := strconv.ParseFloat(inv.Amount, 64)
	if err != nil {
		return nil, err
	}
	var dueDate *time.Time
	if inv.DueDate != "" {
		d, err := time.Parse("2006-01-02", inv.DueDate)
		if err != nil {
			return nil, err
		}
		dueDate = &d
	}

	existing, err := r.client.Invoice.Query().
		Where(
			entinvoice.ProfileID(file.ProfileID),
			entinvoice.InvoiceNumber(inv.InvoiceNumber),
		).Only(ctx)

	var row *ent.Invoice
	switch {
	case err == nil:
		row, err = existing.Update().
			SetInvoiceDate(invoiceDate).
			SetAmount(amount).
			SetNillableDueDate(dueDate).
			SetNillableProvider(utils.StrPtrOrNil(inv.Provider)).
			SetNillableInvoiceType(utils.StrPtrOrNil(inv.InvoiceType)).
			SetNillableUnit(utils.StrPtrOrNil(inv.Unit)).
			SetNillablePeriod(utils.StrPtrOrNil(inv.Period)).
			SetNillableConsumption(utils.StrPtrOrNil(inv.Consumption)).
			SetNillableAccountNumber(utils.StrPtrOrNil(inv.AccountNumber)).
			SetNillableInstallationNumber(utils.StrPtrOrNil(inv.InstallationNumber)).
			SetNillableCustomerNumber(utils.StrPtrOrNil(inv.CustomerNumber)).
			SetNillableFullName(utils.StrPtrOrNil(inv.FullName)).
			SetNillableAddress(utils.StrPtrOrNil(inv.Address)).
			SetNillableConsumerGroup(utils.StrPtrOrNil(inv.ConsumerGroup)).
			Save(ctx)
	case ent.IsNotFound(err):
		row, err = r.client.Invoice.Create().
			SetProfileID(file.ProfileID).
			SetInvoiceNumber(inv.InvoiceNumber).
			SetInvoiceDate(invoiceDate).
			SetAmount(amount).
			SetNillableDueDate(dueDate).
			SetNillableProvider(utils.StrPtrOrNil(inv.Provider)).
			SetNillableInvoiceType(utils.StrPtrOrNil(inv.InvoiceType)).
			SetNillableUnit(utils.StrPtrOrNil(inv.Unit)).
			SetNillablePeriod(utils.StrPtrOrNil(inv.Period)).
			SetNillableConsumption(utils.StrPtrOrNil(inv.Consumption)).
			SetNillableAccountNumber(utils.StrPtrOrNil(inv.AccountNumber)).
			SetNillableInstallationNumber(utils.StrPtrOrNil(inv.InstallationNumber)).
			SetNillableCustomerNumber(utils.StrPtrOrNil(inv.CustomerNumber)).
			SetNillableFullName(utils.StrPtrOrNil(inv.FullName)).
			SetNillableAddress(utils.StrPtrOrNil(inv.Address)).
			SetNillableConsumerGroup(utils.StrPtrOrNil(inv.ConsumerGroup)).
			Save(ctx)
	default:
		return nil, err
	}
	if err != nil {
		r.logger.Error("invoice upsert failed",
			"profile_id", file.ProfileID, "invoice_number", inv.InvoiceNumber, "error", err)
		return nil, err
	}

	// link file -> invoice (idempotent)
	if err := r.client.InvoiceFile.UpdateOneID(file.ID).SetInvoiceID(row.ID).Exec(ctx); err != nil {
		return nil, err
	}

	return utils.ToInvoice(row), nil
}
