package extract

import (
	"context"

	"github.com/enerjitakip/fatura-extract/internal/extraction"
)

// Recognizer produces raw OCR output for one invoice image. Implemented by
// the tesseract engine; stubbed in tests.
type Recognizer interface {
	Recognize(ctx context.Context, path string) (extraction.RecognitionResult, error)
}

// InvoiceExtractor is the interface the pipeline and servers depend on: one
// image path in, one canonical result out.
type InvoiceExtractor interface {
	ExtractInvoice(ctx context.Context, path string) (extraction.Result, error)
}
