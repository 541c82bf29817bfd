package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/enerjitakip/fatura-extract/constants"
	"github.com/enerjitakip/fatura-extract/internal/extraction"
	"github.com/enerjitakip/fatura-extract/internal/repository"
)

// Config holds thresholds and behavior flags for the parse stage.
type Config struct {
	MinConfidence float32 // default 0.60
}

type ParseStage struct {
	Logger       *slog.Logger
	Cfg          Config
	JobsRepo     repository.ExtractJobRepository
	InvoicesRepo repository.InvoiceRepository
	Engine       *extraction.Engine
}

func NewParseStage(
	logger *slog.Logger,
	cfg Config,
	jobs repository.ExtractJobRepository,
	invoices repository.InvoiceRepository,
	engine *extraction.Engine,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &ParseStage{
		Logger:       logger,
		Cfg:          cfg,
		JobsRepo:     jobs,
		InvoicesRepo: invoices,
		Engine:       engine,
	}
}

// Run executes the field-extraction stage for an existing OCR job. The
// recognition result normally comes in-memory from the OCR stage; when rec is
// empty the persisted ocr_text is used instead (no word boxes, so spatial
// reconstruction falls back to the text heuristic).
// Effects: writes extracted_json, extraction_confidence, needs_review;
// upserts the invoice row and links job and file to it.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID, rec extraction.RecognitionResult) (uuid.UUID, error) {
	job, file, err := p.JobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if rec.FullText == "" {
		if job.Status == nil || *job.Status != string(constants.JobStatusOCROK) || job.OcrText == nil {
			return job.ID, fmt.Errorf("job not ready for parse: job_id=%s", job.ID)
		}
		rec.FullText = *job.OcrText
	}

	p.Logger.Info("field extraction start",
		"job_id", job.ID, "file_id", file.ID,
		"ocr_bytes", len(rec.FullText), "words", len(rec.Words),
	)

	res := p.Engine.Extract(rec)
	confidence := resolvedFraction(res.Resolutions)
	needsReview := res.Invoice.Warning != "" || confidence < p.Cfg.MinConfidence

	raw, err := json.Marshal(res.Invoice)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("marshal result: %w", err)
	}
	if err := extraction.ValidateInvoiceJSON(raw); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("result schema: %w", err)
	}

	// Upsert only when the identifying fields resolved; a warned result is
	// still persisted on the job for manual correction.
	if res.Invoice.Warning == "" {
		inv, err := p.InvoicesRepo.UpsertFromExtraction(ctx, &repository.CreateInvoiceRequest{
			File:    file,
			JobID:   job.ID,
			Invoice: res.Invoice,
		})
		if err != nil {
			_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, fmt.Errorf("upsert invoice: %w", err)
		}
		if err := p.JobsRepo.SetInvoiceID(ctx, job.ID, inv.ID); err != nil {
			_ = p.JobsRepo.FinishFailure(ctx, job.ID, fmt.Sprintf("link job->invoice: %v", err))
			return job.ID, err
		}
		p.Logger.Info("invoice upserted",
			"job_id", job.ID, "invoice_id", inv.ID,
			"invoice_number", inv.InvoiceNumber, "amount", inv.Amount,
		)
	} else {
		needsReview = true
		p.Logger.Warn("extraction incomplete; invoice not upserted",
			"job_id", job.ID, "warning", res.Invoice.Warning)
	}

	if err := p.JobsRepo.FinishParseSuccess(ctx, job.ID, raw, confidence, needsReview); err != nil {
		return job.ID, err
	}
	return job.ID, nil
}

// resolvedFraction scores an extraction by the share of fields that resolved
// to a non-empty value.
func resolvedFraction(resolutions []extraction.Resolution) float32 {
	if len(resolutions) == 0 {
		return 0
	}
	resolved := 0
	for _, r := range resolutions {
		if r.Source != extraction.SourceUnresolved {
			resolved++
		}
	}
	return float32(resolved) / float32(len(resolutions))
}
