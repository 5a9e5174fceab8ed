package extract

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/eventsnap/eventsnap/internal/parser"
)

const flyerText = `Spring Open Pickleball Tournament
Saturday, April 12, 2025
9:00 AM to 3:00 PM
Riverside Community Center
Entry fee: $25 per player
Register at https://example.org/spring-open`

func TestExtractFields(t *testing.T) {
	ref := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	a := NewParserAdapter(parser.New(parser.WithReferenceDate(ref)), nil)

	res, err := a.ExtractFields(context.Background(), flyerText)
	if err != nil {
		t.Fatalf("ExtractFields: %v", err)
	}

	if res.Fields.Date != "2025-04-12" {
		t.Errorf("date = %q, want 2025-04-12", res.Fields.Date)
	}
	if res.Fields.StartTime != "09:00" {
		t.Errorf("start_time = %q, want 09:00", res.Fields.StartTime)
	}
	if res.Confidence <= 0 || res.Confidence > 1 {
		t.Errorf("confidence = %v, want in (0, 1]", res.Confidence)
	}

	var roundTrip parser.Fields
	if err := json.Unmarshal(res.JSON, &roundTrip); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if roundTrip.Date != res.Fields.Date {
		t.Errorf("JSON date = %q, want %q", roundTrip.Date, res.Fields.Date)
	}
}

func TestExtractFieldsCancelledContext(t *testing.T) {
	a := NewParserAdapter(parser.New(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.ExtractFields(ctx, flyerText); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestExtractFieldsEmptyTextStillSucceeds(t *testing.T) {
	a := NewParserAdapter(parser.New(), nil)

	res, err := a.ExtractFields(context.Background(), "")
	if err != nil {
		t.Fatalf("ExtractFields: %v", err)
	}
	if res.Fields.Category == "" {
		t.Error("category must always be set")
	}
	if res.Confidence != 0 {
		t.Errorf("confidence = %v, want 0 for empty text", res.Confidence)
	}
}
