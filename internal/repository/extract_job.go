package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/enerjitakip/fatura-extract/constants"
	"github.com/enerjitakip/fatura-extract/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID, profileID uuid.UUID, format string) (*ent.ExtractJob, error)
	GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.InvoiceFile, error)
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText string, engineParams map[string]any) error
	FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extracted json.RawMessage, confidence float32, needsReview bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	SetInvoiceID(ctx context.Context, jobID, invoiceID uuid.UUID) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID, profileID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetProfileID(profileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *extractJobRepo) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.InvoiceFile, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	file, err := r.ent.InvoiceFile.Get(ctx, job.FileID)
	if err != nil {
		return nil, nil, err
	}
	return job, file, nil
}

func (r *extractJobRepo) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText string, engineParams map[string]any) error {
	var params []byte
	if engineParams != nil {
		if b, err := json.Marshal(engineParams); err == nil {
			params = b
		}
	}
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetEngineName("tesseract").
		SetEngineParams(params).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished OCR stage", "job_id", jobID)
	return nil
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extracted json.RawMessage, confidence float32, needsReview bool) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetExtractedJSON(extracted).
		SetExtractionConfidence(confidence).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParseOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSE_OK)", "job_id", jobID, "confidence", confidence, "needs_review", needsReview)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) SetInvoiceID(ctx context.Context, jobID, invoiceID uuid.UUID) error {
	return r.ent.ExtractJob.UpdateOneID(jobID).SetInvoiceID(invoiceID).Exec(ctx)
}
