package processor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Processor coordinates OCR (recognition) then field extraction (parse).
type Processor struct {
	Logger *slog.Logger
	OCR    *OCRStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Parse: parse}
}

// ProcessFile runs recognition for a fileID (creating/advancing extract_job),
// then runs field extraction on the recognition result and upserts the
// invoice. Returns the final jobID (same one started by the OCR stage).
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	jobID, rec, err := p.OCR.Run(ctx, fileID)
	if err != nil {
		p.Logger.Error("processor.ocr.failed", "file_id", fileID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.ocr.ok",
		"file_id", fileID,
		"job_id", jobID,
		"text_bytes", len(rec.FullText),
		"words", len(rec.Words),
	)

	if _, err := p.Parse.Run(ctx, jobID, rec); err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}
