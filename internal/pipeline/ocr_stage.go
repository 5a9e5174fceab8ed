package processor

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/eventsnap/eventsnap/constants"
	"github.com/eventsnap/eventsnap/internal/extract"
	"github.com/eventsnap/eventsnap/internal/ocr"
	"github.com/eventsnap/eventsnap/internal/repository"
)

type OCRStage struct {
	FilesRepo     repository.FlyerFileRepository
	JobsRepo      repository.ExtractJobRepository
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewOCRStage(files repository.FlyerFileRepository, jobs repository.ExtractJobRepository, tx extract.TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{FilesRepo: files, JobsRepo: jobs, TextExtractor: tx, Logger: logger}
}

// Run starts an extract_job, runs OCR, and persists the OCR text.
// Returns the job ID and the extraction summary. The parse stage is NOT called.
func (p *OCRStage) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	// Start job in RUNNING
	job, err := p.JobsRepo.Start(ctx, row.ID, row.ProfileID, format, constants.JobStatusRunning)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}

	// let the HEIC converter reuse cached conversions keyed by content hash
	ctx = ocr.WithContentHash(ctx, hex.EncodeToString(row.ContentHash))

	res, err := p.TextExtractor.Extract(ctx, row.SourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	if format == constants.IMAGE && res.Confidence > 0 && res.Confidence < ocr.ImageConfidenceThreshold {
		p.Logger.Warn("image ocr confidence low", "file_id", fileID, "job_id", job.ID, "conf", res.Confidence)
	}

	if err := p.JobsRepo.FinishOCRSuccess(ctx, job.ID, res.Text, res.Method, res.Confidence); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}
