// Package extraction recovers structured invoice fields from raw OCR output.
//
// Several independent heuristics run over the same recognition result: label
// anchored candidate extractors, spatial clustering of word bounding boxes,
// and a line-oriented label/value parser. A merger reconciles them in a
// fixed priority order and a formatter maps the outcome to the canonical
// schema, recording per-field provenance so the merge policy stays auditable.
package extraction

import (
	"log/slog"
	"time"
)

// Config holds engine tuning. The zero value is production behavior.
type Config struct {
	Priority PatternPriority
	Now      func() time.Time // injectable clock for date plausibility
}

// Engine runs the full field-extraction pass over one recognition result.
// It holds no per-call state; a single Engine is safe for concurrent use.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Extract reconciles all heuristics into one canonical result. It never
// fails: implausible values are silently dropped at the candidate stage and
// unresolved required fields surface as a warning on the invoice.
func (e *Engine) Extract(rec RecognitionResult) Result {
	now := e.cfg.Now()

	labelPairs := ParseLabelTable(rec.FullText)

	table, hasTable := ReconstructTable(rec.Words)
	var fallbackRows [][]string
	if !hasTable {
		fallbackRows = FallbackTableRows(rec.FullText)
	}

	candidates := map[FieldKind][]FieldCandidate{
		FieldInvoiceNumber: InvoiceNumberCandidates(rec.FullText, e.cfg.Priority),
		FieldAmount:        AmountCandidates(rec.FullText, e.cfg.Priority),
		FieldInvoiceDate:   DateCandidates(rec.FullText, PurposeInvoiceDate, now, e.cfg.Priority),
		FieldDueDate:       DateCandidates(rec.FullText, PurposeDueDate, now, e.cfg.Priority),
	}

	fields := mergeFields(mergeInput{
		fullText:   rec.FullText,
		labelPairs: labelPairs,
		table:      table,
		hasTable:   hasTable,
		candidates: candidates,
	})

	res := formatResult(fields, table, hasTable, fallbackRows, rec.FullText)

	for _, r := range res.Resolutions {
		e.logger.Debug("field resolved",
			"field", r.Kind, "source", r.Source, "confidence", r.Confidence)
	}
	if res.Invoice.Warning != "" {
		e.logger.Warn("extraction incomplete", "warning", res.Invoice.Warning)
	}
	return res
}
