package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	invoicespb "github.com/enerjitakip/fatura-extract/gen/invoices/v1"
	"github.com/enerjitakip/fatura-extract/internal/common"
	"github.com/enerjitakip/fatura-extract/internal/extraction"
	"github.com/enerjitakip/fatura-extract/internal/ingest"
	processor "github.com/enerjitakip/fatura-extract/internal/pipeline"
	"github.com/enerjitakip/fatura-extract/internal/repository"
	"github.com/enerjitakip/fatura-extract/internal/utils"
)

type InvoicesService struct {
	invoicespb.UnimplementedInvoicesServiceServer
	ingestor     ingest.Ingestor
	processor    *processor.Processor
	jobsRepo     repository.ExtractJobRepository
	invoicesRepo repository.InvoiceRepository
	logger       *slog.Logger
}

func NewInvoicesService(
	ing ingest.Ingestor,
	proc *processor.Processor,
	jobs repository.ExtractJobRepository,
	invoices repository.InvoiceRepository,
	logger *slog.Logger,
) *InvoicesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoicesService{
		ingestor:     ing,
		processor:    proc,
		jobsRepo:     jobs,
		invoicesRepo: invoices,
		logger:       logger,
	}
}

// ExtractInvoice registers the file, runs both pipeline stages synchronously
// and returns the persisted extraction outcome.
func (s *InvoicesService) ExtractInvoice(ctx context.Context, req *invoicespb.ExtractInvoiceRequest) (*invoicespb.ExtractInvoiceResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	profileID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, common.InvalidArgumentError("path is required")
	}

	r, err := s.ingestor.IngestPath(ctx, profileID, path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest: %v", err)
	}
	fileID, err := uuid.Parse(r.FileID)
	if err != nil {
		return nil, common.InternalError("ingest returned malformed file id")
	}

	jobID, procErr := s.processor.ProcessFile(ctx, fileID)
	if procErr != nil && jobID == uuid.Nil {
		s.logger.Error("extract.pipeline.failed", "file_id", r.FileID, "error", procErr)
		return nil, common.InternalErrorf("extraction: %v", procErr)
	}

	job, _, err := s.jobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		s.logger.Error("extract.job.load_failed", "job_id", jobID.String(), "error", err)
		return nil, common.InternalError("load extract job failed")
	}

	resp := &invoicespb.ExtractInvoiceResponse{
		JobId:         job.ID.String(),
		FileId:        r.FileID,
		ExtractedJson: string(job.ExtractedJSON),
		NeedsReview:   job.NeedsReview,
	}
	if job.ExtractionConfidence != nil {
		resp.Confidence = *job.ExtractionConfidence
	}
	if len(job.ExtractedJSON) > 0 {
		var inv extraction.ExtractedInvoice
		if err := json.Unmarshal(job.ExtractedJSON, &inv); err == nil {
			resp.Warning = inv.Warning
		}
	}
	if job.InvoiceID != nil {
		stored, err := s.invoicesRepo.GetByID(ctx, *job.InvoiceID)
		if err == nil {
			resp.Invoice = utils.ToPBInvoice(stored)
		}
	}
	if procErr != nil {
		s.logger.Warn("extract.finished_with_error", "job_id", resp.JobId, "error", procErr)
	}
	return resp, nil
}

func (s *InvoicesService) GetInvoice(ctx context.Context, req *invoicespb.GetInvoiceRequest) (*invoicespb.GetInvoiceResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}

	inv, err := s.invoicesRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, common.NotFoundError("invoice not found")
		}
		s.logger.Warn("get invoice failed", "id", id.String(), "error", err)
		return nil, common.InternalError("get invoice failed")
	}
	return &invoicespb.GetInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

func (s *InvoicesService) ListInvoices(ctx context.Context, req *invoicespb.ListInvoicesRequest) (*invoicespb.ListInvoicesResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	v := common.NewValidator().
		Field("profile_id", pid, common.Required, common.UUID).
		Field("from_date", req.GetFromDate(), common.ISODate).
		Field("to_date", req.GetToDate(), common.ISODate)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	profileID, _ := uuid.Parse(pid)

	fromPtr, _ := parseOptionalDate(req.GetFromDate())
	toPtr, _ := parseOptionalDate(req.GetToDate())

	invs, err := s.invoicesRepo.ListInvoices(ctx, profileID, fromPtr, toPtr)
	if err != nil {
		s.logger.Warn("list invoices failed", "profile_id", pid, "error", err)
		return nil, common.InternalError("list invoices failed")
	}

	out := make([]*invoicespb.Invoice, 0, len(invs))
	for _, inv := range invs {
		out = append(out, utils.ToPBInvoice(inv))
	}
	return &invoicespb.ListInvoicesResponse{Invoices: out}, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := utils.ParseYMD(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
