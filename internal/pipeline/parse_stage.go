package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/eventsnap/eventsnap/constants"
	"github.com/eventsnap/eventsnap/internal/extract"
	"github.com/eventsnap/eventsnap/internal/parser"
	"github.com/eventsnap/eventsnap/internal/repository"
)

// ParserVersion is stamped on every job the rules parser completes.
const ParserVersion = "rules/1"

// Config holds thresholds and behavior flags for the parse stage.
type Config struct {
	MinConfidence float32 // default 0.25
}

type ParseStage struct {
	Logger         *slog.Logger
	Cfg            Config
	JobsRepo       repository.ExtractJobRepository
	EventsRepo     repository.EventRepository
	CategoriesRepo repository.CategoryRepository
	Extractor      extract.FieldExtractor

	schema map[string]any
}

func NewParseStage(
	logger *slog.Logger,
	cfg Config,
	jobs repository.ExtractJobRepository,
	events repository.EventRepository,
	categories repository.CategoryRepository,
	fe extract.FieldExtractor,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.25
	}
	return &ParseStage{
		Logger:         logger,
		Cfg:            cfg,
		JobsRepo:       jobs,
		EventsRepo:     events,
		CategoriesRepo: categories,
		Extractor:      fe,
		schema:         parser.BuildEventJSONSchema(),
	}
}

// Run executes the field-parse stage for an existing OCR job (jobID).
// Preconditions: job is OCR_OK with non-empty ocr_text and a valid file link.
// Effects: writes extracted_json and needs_review; when title and date were
// both found, upserts an events row and links file -> event.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, file, err := p.JobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusOCROK) || job.OcrText == nil {
		return job.ID, fmt.Errorf("job not ready for parse: status=%v ocr_text_empty=%t", job.Status, job.OcrText == nil)
	}

	p.Logger.Info("parse fields start", "job_id", job.ID, "file_id", file.ID, "ocr_bytes", len(*job.OcrText))

	res, err := p.Extractor.ExtractFields(ctx, *job.OcrText)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("extract fields: %w", err)
	}
	if err := parser.ValidateJSONAgainstSchema(p.schema, res.JSON); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("validate fields: %w", err)
	}

	fields := res.Fields
	canon, ok := constants.Canonicalize(fields.Category)
	if !ok {
		// the classifier only emits canonical labels, but guard anyway
		p.Logger.Warn("category unknown", "label", fields.Category)
		canon = constants.Other
	}

	// Heuristic needs_review: too little extracted, or the extraction is
	// missing the two fields an events row requires.
	needsReview := fields.Title == "" || fields.Date == ""
	if res.Confidence < p.Cfg.MinConfidence {
		needsReview = true
	}
	ocrConf := job.ExtractionConfidence
	if ocrConf != nil && *ocrConf > 0 && *ocrConf < 0.4 {
		needsReview = true
	}

	var eventID *uuid.UUID
	if fields.Title != "" && fields.Date != "" {
		cat, err := p.CategoriesRepo.EnsureByName(ctx, string(canon))
		if err != nil {
			_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, fmt.Errorf("ensure category: %w", err)
		}
		ev, err := p.EventsRepo.UpsertFromFields(ctx, &repository.CreateEventRequest{
			File:       file,
			JobID:      job.ID,
			Fields:     fields,
			CategoryID: &cat.ID,
		})
		if err != nil {
			_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, fmt.Errorf("upsert event: %w", err)
		}
		eventID = &ev.ID
	}

	if err := p.JobsRepo.FinishParseSuccess(ctx, job.ID, res.JSON, needsReview, eventID, ParserVersion); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parsed fields successfully",
		"job_id", job.ID,
		"title", fields.Title, "date", fields.Date,
		"category", string(canon),
		"filled_fields", fields.FilledCount(),
		"needs_review", needsReview,
		"event_created", eventID != nil,
	)
	return job.ID, nil
}
