package repository

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/enerjitakip/fatura-extract/gen/ent"
	entfile "github.com/enerjitakip/fatura-extract/gen/ent/invoicefile"
)

type InvoiceFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error)
	GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.InvoiceFile, error)
	Create(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error)
	UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error)
}

type invoiceFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewInvoiceFileRepository(entc *ent.Client, logger *slog.Logger) InvoiceFileRepository {
	return &invoiceFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *invoiceFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error) {
	return r.ent.InvoiceFile.Get(ctx, id)
}

func (r *invoiceFileRepo) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Query().
		Where(
			entfile.ProfileID(profileID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *invoiceFileRepo) Create(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Create().
		SetProfileID(profileID).
		SetSourcePath(sourcePath).
		SetFilename(filepath.Base(sourcePath)).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice file", "profile_id", profileID, "source_path", sourcePath, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *invoiceFileRepo) UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error) {
	if existing, err := r.GetByProfileAndHash(ctx, profileID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, profileID, sourcePath, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert invoice file by hash", "profile_id", profileID, "source_path", sourcePath, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
