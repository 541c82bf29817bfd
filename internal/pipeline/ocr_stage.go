package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/enerjitakip/fatura-extract/constants"
	"github.com/enerjitakip/fatura-extract/internal/extract"
	"github.com/enerjitakip/fatura-extract/internal/extraction"
	"github.com/enerjitakip/fatura-extract/internal/repository"
)

type OCRStage struct {
	FilesRepo  repository.InvoiceFileRepository
	JobsRepo   repository.ExtractJobRepository
	Recognizer extract.Recognizer
	Lang       string
	Logger     *slog.Logger
}

func NewOCRStage(files repository.InvoiceFileRepository, jobs repository.ExtractJobRepository, rec extract.Recognizer, lang string, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	if lang == "" {
		lang = "tur"
	}
	return &OCRStage{FilesRepo: files, JobsRepo: jobs, Recognizer: rec, Lang: lang, Logger: logger}
}

// Run starts an extract_job, runs both recognition passes, and persists the
// OCR text. Returns the job ID and the in-memory recognition result so the
// parse stage keeps the word boxes the job row cannot hold.
func (p *OCRStage) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, extraction.RecognitionResult, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, extraction.RecognitionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, extraction.RecognitionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	// Start job in RUNNING
	job, err := p.JobsRepo.Start(ctx, row.ID, row.ProfileID, format)
	if err != nil {
		return uuid.Nil, extraction.RecognitionResult{}, err
	}

	rec, err := p.Recognizer.Recognize(ctx, row.SourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, rec, err
	}

	params := map[string]any{"lang": p.Lang, "words": len(rec.Words)}
	if err := p.JobsRepo.FinishOCRSuccess(ctx, job.ID, rec.FullText, params); err != nil {
		return job.ID, rec, err
	}

	return job.ID, rec, nil
}
