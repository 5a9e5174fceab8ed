package utils

import (
	"time"

	"github.com/eventsnap/eventsnap/gen/ent"
	eventspb "github.com/eventsnap/eventsnap/gen/proto/events/v1"
	"github.com/eventsnap/eventsnap/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBProfile(p *ent.Profile) *eventspb.Profile {
	return &eventspb.Profile{
		Id:              p.ID.String(),
		Name:            p.Name,
		DefaultTimezone: p.DefaultTimezone,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBProfileFromEntity(p *entity.Profile) *eventspb.Profile {
	return &eventspb.Profile{
		Id:              p.ID.String(),
		Name:            p.Name,
		DefaultTimezone: p.DefaultTimezone,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBEvent(e *entity.Event) *eventspb.Event {
	out := &eventspb.Event{
		Id:               e.ID.String(),
		ProfileId:        e.ProfileID.String(),
		Title:            e.Title,
		EventDate:        e.EventDate.Format("2006-01-02"),
		StartTime:        strOrEmpty(e.StartTime),
		EndTime:          strOrEmpty(e.EndTime),
		Venue:            strOrEmpty(e.Venue),
		Address:          strOrEmpty(e.Address),
		Fee:              strOrEmpty(e.Fee),
		RegistrationLink: strOrEmpty(e.RegistrationLink),
		ContactName1:     strOrEmpty(e.ContactName1),
		ContactPhone1:    strOrEmpty(e.ContactPhone1),
		ContactName2:     strOrEmpty(e.ContactName2),
		ContactTitle2:    strOrEmpty(e.ContactTitle2),
		Organization:     strOrEmpty(e.Organization),
		Notes:            strOrEmpty(e.Notes),
		Categories:       e.Categories,
		Category:         e.CategoryName,
		CreatedAt:        e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if e.RegistrationDeadline != nil {
		out.RegistrationDeadline = e.RegistrationDeadline.Format("2006-01-02")
	}
	return out
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToProfile(e *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:              e.ID,
		Name:            e.Name,
		DefaultTimezone: e.DefaultTimezone,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToEvent converts an Ent row to the transfer struct. The coarse category
// name comes from the loaded category edge when present.
func ToEvent(e *ent.Event) *entity.Event {
	out := &entity.Event{
		ID:                   e.ID,
		ProfileID:            e.ProfileID,
		Title:                e.Title,
		EventDate:            e.EventDate,
		StartTime:            e.StartTime,
		EndTime:              e.EndTime,
		Venue:                e.Venue,
		Address:              e.Address,
		Fee:                  e.Fee,
		RegistrationDeadline: e.RegistrationDeadline,
		RegistrationLink:     e.RegistrationLink,
		ContactName1:         e.ContactName1,
		ContactPhone1:        e.ContactPhone1,
		ContactName2:         e.ContactName2,
		ContactTitle2:        e.ContactTitle2,
		Organization:         e.Organization,
		Notes:                e.Notes,
		Categories:           e.Categories,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
	if cat := e.Edges.Category; cat != nil {
		out.CategoryName = cat.Name
	}
	return out
}

func ToFlyerFile(e *ent.FlyerFile) *entity.FlyerFile {
	return &entity.FlyerFile{
		ID:          e.ID,
		ProfileID:   e.ProfileID,
		EventID:     e.EventID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:                   e.ID,
		FileID:               e.FileID,
		ProfileID:            e.ProfileID,
		EventID:              e.EventID,
		Format:               e.Format,
		StartedAt:            e.StartedAt,
		FinishedAt:           e.FinishedAt,
		Status:               e.Status,
		ErrorMessage:         e.ErrorMessage,
		ExtractionConfidence: e.ExtractionConfidence,
		NeedsReview:          e.NeedsReview,
		OCRText:              e.OcrText,
		ExtractedJSON:        e.ExtractedJSON,
		ParserVersion:        e.ParserVersion,
	}
}

func ToCategory(c *ent.Category) *entity.Category {
	return &entity.Category{
		ID:   c.ID,
		Name: c.Name,
	}
}
