package extract

import (
	"context"
	"log/slog"

	"github.com/enerjitakip/fatura-extract/internal/extraction"
)

// Service runs recognition and field extraction as one synchronous call.
// Both collaborators are stateless, so a single Service handles concurrent
// extractions without locking.
type Service struct {
	rec    Recognizer
	engine *extraction.Engine
	logger *slog.Logger
}

func NewService(rec Recognizer, engine *extraction.Engine, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{rec: rec, engine: engine, logger: logger}
}

// ExtractInvoice recognizes the image and reconciles all field heuristics.
// Recognition errors abort the call; extraction itself never fails.
func (s *Service) ExtractInvoice(ctx context.Context, path string) (extraction.Result, error) {
	rec, err := s.rec.Recognize(ctx, path)
	if err != nil {
		return extraction.Result{}, err
	}
	res := s.engine.Extract(rec)
	s.logger.Info("invoice extracted",
		"path", path,
		"invoice_number", res.Invoice.InvoiceNumber != "",
		"amount", res.Invoice.Amount != "",
		"warning", res.Invoice.Warning,
	)
	return res, nil
}
