package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/enerjitakip/fatura-extract/constants"
	"github.com/enerjitakip/fatura-extract/internal/extraction"
)

// Sentinel errors for the two failure classes of a recognition call.
var (
	// ErrInput: the image file is missing or empty. Checked before
	// tesseract runs; no partial result is produced.
	ErrInput = errors.New("invalid input image")
	// ErrRecognition: tesseract failed during a pass. Propagated without
	// retry; the whole extraction aborts.
	ErrRecognition = errors.New("recognition failed")
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	Lang        string // default "tur"
	TessdataDir string
	DPI         int // rasterization DPI for PDF inputs, default 300

	Preprocess bool // enhance the image before recognition
}

// Engine runs tesseract twice per image under two configuration profiles and
// merges the passes into one RecognitionResult. Each call acquires and
// releases its own resources; there is no pooling and no caching.
type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Lang == "" {
		cfg.Lang = "tur"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Engine{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Recognize validates the input file, rasterizes PDFs, optionally enhances
// the image, then runs the standard and table passes sequentially. Full text
// comes from the standard pass, word boxes from the table pass.
func (e *Engine) Recognize(ctx context.Context, path string) (extraction.RecognitionResult, error) {
	st, err := os.Stat(path)
	if err != nil {
		return extraction.RecognitionResult{}, fmt.Errorf("%w: %s: %v", ErrInput, path, err)
	}
	if st.Size() == 0 {
		return extraction.RecognitionResult{}, fmt.Errorf("%w: %s: empty file", ErrInput, path)
	}

	cleanup := func() {}
	if constants.MapExtToFormat(filepath.Ext(path)) == constants.PDF {
		path, cleanup, err = e.rasterizePDF(ctx, path)
		if err != nil {
			return extraction.RecognitionResult{}, err
		}
	}
	defer cleanup()

	if e.cfg.Preprocess {
		enhanced, c, perr := enhanceImage(path)
		if perr != nil {
			// enhancement is best-effort; recognize the original instead
			e.logger.Warn("image preprocess failed", "path", path, "error", perr)
		} else {
			defer c()
			path = enhanced
		}
	}

	e.logger.Debug("recognition start", "path", path, "lang", e.cfg.Lang)

	text, err := e.runPass(ctx, ProfileStandard, path)
	if err != nil {
		return extraction.RecognitionResult{}, err
	}
	tsv, err := e.runPass(ctx, ProfileTable, path)
	if err != nil {
		return extraction.RecognitionResult{}, err
	}

	words := ParseTSVWords(tsv)
	e.logger.Debug("recognition done", "text_bytes", len(text), "words", len(words))

	return extraction.RecognitionResult{FullText: text, Words: words}, nil
}

func (e *Engine) runPass(ctx context.Context, profile Profile, path string) (string, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, profile.args(e.cfg, path)...)
	if err != nil {
		return "", fmt.Errorf("%w: %s pass: %v: %s", ErrRecognition, profile, err, truncate(string(errb), 512))
	}
	return string(out), nil
}

// rasterizePDF renders the first page of a PDF to a temp PNG.
// pdftoppm -r <dpi> -png -f 1 -l 1 <in.pdf> <tmp/page>
func (e *Engine) rasterizePDF(ctx context.Context, path string) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "fx-pp-*")
	if err != nil {
		return "", func() {}, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	prefix := filepath.Join(tmpDir, "page")
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", "-f", "1", "-l", "1", path, prefix)
	if err != nil {
		return "", cleanup, fmt.Errorf("%w: rasterize: %v: %s", ErrRecognition, err, truncate(string(errb), 512))
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	if len(matches) == 0 {
		return "", cleanup, fmt.Errorf("%w: pdftoppm produced no images", ErrRecognition)
	}
	return matches[0], cleanup, nil
}
