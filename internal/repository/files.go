package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eventsnap/eventsnap/gen/ent"
	entfile "github.com/eventsnap/eventsnap/gen/ent/flyerfile"
)

type FlyerFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.FlyerFile, error)
	GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.FlyerFile, error)
	Create(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.FlyerFile, error)
	UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.FlyerFile, bool, error)
}

type flyerFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFlyerFileRepository(entc *ent.Client, logger *slog.Logger) FlyerFileRepository {
	return &flyerFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *flyerFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.FlyerFile, error) {
	return r.ent.FlyerFile.Get(ctx, id)
}

func (r *flyerFileRepo) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.FlyerFile, error) {
	row, err := r.ent.FlyerFile.Query().
		Where(
			entfile.ProfileID(profileID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *flyerFileRepo) Create(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.FlyerFile, error) {
	row, err := r.ent.FlyerFile.Create().
		SetProfileID(profileID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create flyer file", "profile_id", profileID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *flyerFileRepo) UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.FlyerFile, bool, error) {
	if existing, err := r.GetByProfileAndHash(ctx, profileID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, profileID, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert flyer file by hash", "profile_id", profileID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
