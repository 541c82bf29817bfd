package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/enerjitakip/fatura-extract/internal/extract"
	"github.com/enerjitakip/fatura-extract/internal/extraction"
	"github.com/enerjitakip/fatura-extract/internal/ocr"
)

// One-shot extraction: recognize one invoice file and print the canonical
// JSON to stdout. No database, no daemon.
func main() {
	var (
		lang        = flag.String("lang", "", "tesseract language (default tur)")
		preprocess  = flag.Bool("preprocess", false, "enhance the image before recognition")
		resolutions = flag.Bool("resolutions", false, "include per-field provenance in the output")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: extract [flags] <invoice.pdf|invoice.png>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	recognizer := ocr.NewEngine(ocr.Config{
		Tesseract:   os.Getenv("TESSERACT_BIN"),
		Pdftoppm:    os.Getenv("PDFTOPPM_BIN"),
		Lang:        *lang,
		TessdataDir: os.Getenv("TESSDATA_PREFIX"),
		Preprocess:  *preprocess,
	}, logger)
	engine := extraction.NewEngine(extraction.Config{}, logger)
	service := extract.NewService(recognizer, engine, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := service.ExtractInvoice(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract: %v\n", err)
		os.Exit(1)
	}

	var out any = res.Invoice
	if *resolutions {
		out = res
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "extract: encode: %v\n", err)
		os.Exit(1)
	}
}
