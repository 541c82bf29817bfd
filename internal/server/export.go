package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	invoicespb "github.com/enerjitakip/fatura-extract/gen/invoices/v1"
	"github.com/enerjitakip/fatura-extract/internal/common"
	"github.com/enerjitakip/fatura-extract/internal/export"
)

type ExportServer struct {
	invoicespb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

// ExportInvoices produces an XLSX workbook for the profile's invoices.
// Date window semantics:
// - only from -> from..today (inclusive)
// - only to   -> beginning..to (inclusive)
// - none      -> all.
func (s *ExportServer) ExportInvoices(ctx context.Context, req *invoicespb.ExportInvoicesRequest) (*invoicespb.ExportInvoicesResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	profileID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}

	fromPtr, err := parseOptionalDate(req.GetFromDate())
	if err != nil {
		return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
	}
	toPtr, err := parseOptionalDate(req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
	}

	xlsx, err := s.svc.ExportInvoicesXLSX(ctx, profileID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "profile_id", pid, "err", err)
		return nil, common.InternalError("export failed")
	}

	return &invoicespb.ExportInvoicesResponse{Xlsx: xlsx}, nil
}
