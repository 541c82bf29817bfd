package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/enerjitakip/fatura-extract/internal/async"
	"github.com/enerjitakip/fatura-extract/internal/common"
	"github.com/enerjitakip/fatura-extract/internal/export"
	"github.com/enerjitakip/fatura-extract/internal/extraction"
	"github.com/enerjitakip/fatura-extract/internal/ingest"
	"github.com/enerjitakip/fatura-extract/internal/ocr"
	pipeline "github.com/enerjitakip/fatura-extract/internal/pipeline"
	repo "github.com/enerjitakip/fatura-extract/internal/repository"
	svc "github.com/enerjitakip/fatura-extract/internal/server"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		profileStr = flag.String("profile", "", "profile UUID (or PROFILE_ID env var)")
		dir        = flag.String("dir", "", "directory to process invoices from (required)")
		out        = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr    = flag.String("from", "", "from date YYYY-MM-DD")
		toStr      = flag.String("to", "", "to date YYYY-MM-DD")
		watch      = flag.Bool("watch", false, "keep running and process files dropped into the directory")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "faturalar.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	pidStr := *profileStr
	if pidStr == "" {
		pidStr = os.Getenv("PROFILE_ID")
	}
	if pidStr == "" {
		printError("Error: --profile or PROFILE_ID is required\n")
		os.Exit(1)
	}
	profileID, err := uuid.Parse(pidStr)
	if err != nil {
		printError("Error: profile must be a UUID: %v\n", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	filesRepo := repo.NewInvoiceFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	recognizer := ocr.NewEngine(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Lang:        cfg.OCR.Lang,
		TessdataDir: cfg.OCR.TessdataDir,
		DPI:         cfg.OCR.DPI,
		Preprocess:  cfg.OCR.Preprocess,
	}, logger)
	engine := extraction.NewEngine(extraction.Config{}, logger)

	ocrStage := pipeline.NewOCRStage(filesRepo, jobsRepo, recognizer, cfg.OCR.Lang, logger)
	parseStage := pipeline.NewParseStage(logger, pipeline.Config{
		MinConfidence: cfg.Pipeline.MinConfidence,
	}, jobsRepo, invoicesRepo, engine)
	processor := pipeline.NewProcessor(logger, ocrStage, parseStage)

	queue := async.NewWorkerQueue(ctx, cfg.Pipeline.Workers, cfg.Pipeline.QueueSize, func(ctx context.Context, fileID uuid.UUID) error {
		_, err := processor.ProcessFile(ctx, fileID)
		return err
	}, logger)

	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	logger.Info("ingesting directory", "dir", *dir, "profile_id", profileID)
	results, stats, err := ingestor.IngestDirectory(ctx, profileID, *dir, true)
	if err != nil {
		logger.Error("directory ingest failed", "error", err)
		os.Exit(1)
	}
	logger.Info("directory ingest completed",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	for _, r := range results {
		if r.Err != "" || r.FileID == "" {
			continue
		}
		fileID, perr := uuid.Parse(r.FileID)
		if perr != nil {
			continue
		}
		if qerr := queue.Enqueue(ctx, async.Job{FileID: fileID}); qerr != nil {
			logger.Error("enqueue failed", "file_id", r.FileID, "error", qerr)
		}
	}

	if *watch {
		runWatch(ctx, ingestor, queue, profileID, *dir, logger)
	}

	// Drain the queue before exporting so every invoice lands first.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	queue.Shutdown(shutdownCtx)
	cancel()

	exportSvc := export.NewService(invoicesRepo, logger)
	xlsx, err := exportSvc.ExportInvoicesXLSX(context.Background(), profileID, from, to)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("write export file failed", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("export written", "path", *out, "bytes", len(xlsx))
}

// runWatch blocks until the signal context is cancelled, enqueueing every
// invoice file dropped under dir.
func runWatch(ctx context.Context, ingestor ingest.Ingestor, queue async.Queue, profileID uuid.UUID, dir string, logger *slog.Logger) {
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{dir},
		Debounce: 2 * time.Second,
	})
	if err != nil {
		logger.Error("watcher start failed", "dir", dir, "error", err)
		return
	}
	logger.Info("watching for new invoices", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return
		case werr, ok := <-errs:
			if !ok {
				return
			}
			logger.Error("watcher error", "error", werr)
		case path, ok := <-events:
			if !ok {
				return
			}
			r, ierr := ingestor.IngestPath(ctx, profileID, path)
			if ierr != nil {
				logger.Error("ingest failed", "path", path, "error", ierr)
				continue
			}
			fileID, perr := uuid.Parse(r.FileID)
			if perr != nil {
				continue
			}
			if qerr := queue.Enqueue(ctx, async.Job{FileID: fileID}); qerr != nil {
				logger.Error("enqueue failed", "file_id", r.FileID, "error", qerr)
			}
		}
	}
}
