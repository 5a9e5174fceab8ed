package extract

import (
	"context"
	"time"

	"github.com/eventsnap/eventsnap/internal/parser"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "IMAGE"
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

// FieldExtractor is Stage 2: text -> structured event fields.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, text string) (FieldsResult, error)
}

type FieldsResult struct {
	Fields parser.Fields
	// JSON is the canonical serialization of Fields, validated against the
	// event schema before persistence.
	JSON       []byte
	Confidence float32
}
