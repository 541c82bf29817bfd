package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicespb "github.com/enerjitakip/fatura-extract/gen/invoices/v1"
	"github.com/enerjitakip/fatura-extract/internal/common"
	"github.com/enerjitakip/fatura-extract/internal/export"
	"github.com/enerjitakip/fatura-extract/internal/extraction"
	"github.com/enerjitakip/fatura-extract/internal/ingest"
	"github.com/enerjitakip/fatura-extract/internal/ocr"
	pipeline "github.com/enerjitakip/fatura-extract/internal/pipeline"
	repo "github.com/enerjitakip/fatura-extract/internal/repository"
	svc "github.com/enerjitakip/fatura-extract/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

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

	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	invoicesService := svc.NewInvoicesService(ingestor, processor, jobsRepo, invoicesRepo, logger)
	invoicespb.RegisterInvoicesServiceServer(grpcServer, invoicesService)

	exportService := svc.NewExportServer(export.NewService(invoicesRepo, logger), logger)
	invoicespb.RegisterExportServiceServer(grpcServer, exportService)

	ingestionService := svc.NewIngestionService(ingestor, processor, logger)
	invoicespb.RegisterIngestionServiceServer(grpcServer, ingestionService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("faturad listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
