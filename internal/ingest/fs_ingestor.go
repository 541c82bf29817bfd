package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/enerjitakip/fatura-extract/constants"
	"github.com/enerjitakip/fatura-extract/internal/repository"
)

// FSIngestor reads invoice files from the local filesystem and registers
// them, deduplicated by content hash.
type FSIngestor struct {
	FilesRepo repository.InvoiceFileRepository
	Logger    *slog.Logger
}

func NewFSIngestor(files repository.InvoiceFileRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{FilesRepo: files, Logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, profileID uuid.UUID, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, fmt.Errorf("open: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			i.Logger.Warn("close file failed", "path", abs, "error", cerr)
		}
	}()

	st, err := f.Stat()
	if err != nil {
		return out, fmt.Errorf("stat: %w", err)
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return out, fmt.Errorf("hash: %w", err)
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, dedup, err := i.FilesRepo.UpsertByHash(ctx, profileID, abs, ext, int(st.Size()), sum, now)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		FileID:       row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		UploadedAt:   row.UploadedAt,
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	profileID uuid.UUID,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !AllowedExt(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, profileID, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
