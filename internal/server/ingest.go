package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	invoicespb "github.com/enerjitakip/fatura-extract/gen/invoices/v1"
	"github.com/enerjitakip/fatura-extract/internal/common"
	"github.com/enerjitakip/fatura-extract/internal/ingest"
	processor "github.com/enerjitakip/fatura-extract/internal/pipeline"
)

type IngestionService struct {
	invoicespb.UnimplementedIngestionServiceServer
	ingestor  ingest.Ingestor
	processor *processor.Processor
	logger    *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, proc *processor.Processor, logger *slog.Logger) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{
		ingestor:  ing,
		processor: proc,
		logger:    logger,
	}
}

// IngestFile implements invoicespb.IngestionServiceServer
func (s *IngestionService) IngestFile(ctx context.Context, req *invoicespb.IngestFileRequest) (*invoicespb.IngestResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	if pid == "" {
		s.logger.Error("ingest request missing profile_id")
		return nil, common.InvalidArgumentError("profile_id is required")
	}
	profileID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid profile_id format for ingest", "profile_id", pid, "error", err)
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "profile_id", profileID)
		return nil, common.InvalidArgumentError("path is required")
	}

	s.logger.Info("starting file ingest", "profile_id", profileID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, profileID, path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "profile_id", profileID, "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := toPBIngestResponse(r)

	fileUUID, _ := uuid.Parse(r.FileID)
	s.logger.Info("starting file processing", "file_id", r.FileID)
	if _, err := s.processor.ProcessFile(ctx, fileUUID); err != nil {
		s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *invoicespb.IngestDirectoryRequest) (*invoicespb.IngestDirectoryResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	if pid == "" {
		s.logger.Error("ingest directory request missing profile_id")
		return nil, common.InvalidArgumentError("profile_id is required")
	}
	profileID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid profile_id format for ingest directory", "profile_id", pid, "error", err)
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "profile_id", profileID)
		return nil, common.InvalidArgumentError("root_path is required")
	}
	skipHidden := req.GetSkipHidden()

	s.logger.Info("starting directory ingest", "profile_id", profileID, "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, profileID, root, skipHidden)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "profile_id", profileID, "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &invoicespb.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*invoicespb.IngestResponse, 0, len(results)),
	}

	s.logger.Info("starting processing of ingested files", "profile_id", profileID, "file_count", len(results))
	for _, r := range results {
		item := toPBIngestResponse(r)
		item.Error = r.Err

		if r.Err == "" && r.FileID != "" {
			if fileUUID, err := uuid.Parse(r.FileID); err == nil {
				if _, pErr := s.processor.ProcessFile(ctx, fileUUID); pErr != nil {
					// keep going; one broken scan should not block the batch
					s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", pErr)
					item.Error = pErr.Error()
				}
			}
		}

		out.Results = append(out.Results, item)
	}
	return out, nil
}

func toPBIngestResponse(r ingest.IngestionResult) *invoicespb.IngestResponse {
	return &invoicespb.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
	}
}
