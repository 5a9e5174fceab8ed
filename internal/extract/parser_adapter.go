package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/eventsnap/eventsnap/internal/parser"
)

// scalarFieldCount is the number of optional scalar fields on parser.Fields,
// the denominator for the coverage-based confidence below.
const scalarFieldCount = 15

// ParserAdapter runs the rule-based field parser as Stage 2.
type ParserAdapter struct {
	p      *parser.Parser
	logger *slog.Logger
}

func NewParserAdapter(p *parser.Parser, logger *slog.Logger) *ParserAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParserAdapter{p: p, logger: logger}
}

func (a *ParserAdapter) ExtractFields(ctx context.Context, text string) (FieldsResult, error) {
	if err := ctx.Err(); err != nil {
		return FieldsResult{}, err
	}

	fields := a.p.Parse(text)
	raw, err := json.Marshal(fields)
	if err != nil {
		return FieldsResult{}, fmt.Errorf("marshaling parsed fields: %w", err)
	}

	filled := fields.FilledCount()
	conf := float32(filled) / float32(scalarFieldCount)
	a.logger.Debug("fields.extracted", "filled_fields", filled, "confidence", conf)

	return FieldsResult{Fields: fields, JSON: raw, Confidence: conf}, nil
}
