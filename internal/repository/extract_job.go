package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eventsnap/eventsnap/constants"
	"github.com/eventsnap/eventsnap/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID, profileID uuid.UUID, format string, status constants.JobStatus) (*ent.ExtractJob, error)
	GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.FlyerFile, error)
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, method string, confidence float32) error
	FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extracted json.RawMessage, needsReview bool, eventID *uuid.UUID, parserVersion string) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID, profileID uuid.UUID, format string, status constants.JobStatus) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetProfileID(profileID).
		SetFormat(format).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *extractJobRepo) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.FlyerFile, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	file, err := r.ent.FlyerFile.Get(ctx, job.FileID)
	if err != nil {
		return nil, nil, err
	}
	return job, file, nil
}

func (r *extractJobRepo) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, method string, confidence float32) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetExtractionConfidence(confidence).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished OCR stage", "job_id", jobID, "method", method, "confidence", confidence)
	return nil
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extracted json.RawMessage, needsReview bool, eventID *uuid.UUID, parserVersion string) error {
	upd := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetExtractedJSON(extracted).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed))
	if eventID != nil {
		upd = upd.SetEventID(*eventID)
	}
	if parserVersion != "" {
		upd = upd.SetParserVersion(parserVersion)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("extract_job finish(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSED)", "job_id", jobID, "needs_review", needsReview)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
