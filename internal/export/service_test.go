package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/eventsnap/eventsnap/internal/entity"
	"github.com/eventsnap/eventsnap/internal/repository"
)

type fakeEventsRepo struct {
	events []*entity.Event
}

func (f *fakeEventsRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return f.events[0], nil
}

func (f *fakeEventsRepo) ListEvents(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Event, error) {
	return f.events, nil
}

func (f *fakeEventsRepo) ListRecent(ctx context.Context, profileID uuid.UUID, limit int) ([]*entity.Event, error) {
	return f.events, nil
}

func (f *fakeEventsRepo) UpsertFromFields(ctx context.Context, request *repository.CreateEventRequest) (*entity.Event, error) {
	return f.events[0], nil
}

func (f *fakeEventsRepo) Create(ctx context.Context, e *entity.Event, categoryID *uuid.UUID) (*entity.Event, error) {
	return e, nil
}

func (f *fakeEventsRepo) Update(ctx context.Context, e *entity.Event, categoryID *uuid.UUID) (*entity.Event, error) {
	return e, nil
}

func (f *fakeEventsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func strptr(s string) *string { return &s }

func sampleEvents() []*entity.Event {
	deadline := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
	return []*entity.Event{
		{
			ID:                   uuid.New(),
			ProfileID:            uuid.New(),
			Title:                "Spring Open Pickleball Tournament",
			EventDate:            time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
			StartTime:            strptr("09:00"),
			EndTime:              strptr("15:00"),
			Venue:                strptr("Riverside Community Center"),
			Address:              strptr("500 River Rd, Austin, TX"),
			Fee:                  strptr("$25 per player"),
			RegistrationDeadline: &deadline,
			RegistrationLink:     strptr("https://example.org/spring-open"),
			ContactName1:         strptr("Dana Park"),
			ContactPhone1:        strptr("512-555-0188"),
			CategoryName:         "Sports",
			Categories:           []string{"Tournament", "Men's Doubles"},
		},
		{
			ID:           uuid.New(),
			ProfileID:    uuid.New(),
			Title:        "Community Art Walk",
			EventDate:    time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC),
			CategoryName: "Cultural",
		},
	}
}

func TestExportEventsXLSX(t *testing.T) {
	svc := NewService(&fakeEventsRepo{events: sampleEvents()}, nil)

	data, err := svc.ExportEventsXLSX(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatalf("ExportEventsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Events", "B2")
	if err != nil {
		t.Fatalf("reading cell: %v", err)
	}
	if got != "Spring Open Pickleball Tournament" {
		t.Errorf("B2 = %q, want event title", got)
	}

	timeCell, _ := f.GetCellValue("Events", "D2")
	if timeCell != "9:00 AM - 3:00 PM" {
		t.Errorf("D2 = %q, want 9:00 AM - 3:00 PM", timeCell)
	}
}

func TestExportEventsICS(t *testing.T) {
	svc := NewService(&fakeEventsRepo{events: sampleEvents()}, nil)

	data, err := svc.ExportEventsICS(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatalf("ExportEventsICS: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"SUMMARY:Spring Open Pickleball Tournament",
		"DTSTART:20250412T090000",
		"DTEND:20250412T150000",
		"LOCATION:Riverside Community Center",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("calendar missing %q", want)
		}
	}

	// The second event has no clock, so it must be all-day.
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20250503") {
		t.Error("all-day event missing date-valued DTSTART")
	}
}

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"09:00", "9:00 AM"},
		{"15:30", "3:30 PM"},
		{"00:05", "12:05 AM"},
		{"12:00", "12:00 PM"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := to12Hour(tt.in); got != tt.want {
			t.Errorf("to12Hour(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEventWindow(t *testing.T) {
	day := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	ev := &entity.Event{EventDate: day, StartTime: strptr("21:00"), EndTime: strptr("01:00")}
	start, end, allDay := eventWindow(ev)
	if allDay {
		t.Fatal("event with clock must not be all-day")
	}
	if !end.After(start) {
		t.Errorf("past-midnight end %v must land after start %v", end, start)
	}
	if end.Day() != 13 {
		t.Errorf("end day = %d, want 13", end.Day())
	}

	ev = &entity.Event{EventDate: day, StartTime: strptr("18:00")}
	start, end, _ = eventWindow(ev)
	if end.Sub(start) != 2*time.Hour {
		t.Errorf("missing end time must default to two hours, got %v", end.Sub(start))
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 140); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	long := strings.Repeat("x", 200)
	got := truncate(long, 10)
	if len(got) > 12 { // ellipsis is multi-byte
		t.Errorf("truncated length = %d", len(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated value %q missing ellipsis", got)
	}
}

func TestExportEventICS(t *testing.T) {
	evs := sampleEvents()
	svc := NewService(&fakeEventsRepo{events: evs}, nil)

	data, err := svc.ExportEventICS(context.Background(), evs[0].ID)
	if err != nil {
		t.Fatalf("ExportEventICS: %v", err)
	}

	out := string(data)
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("VEVENT count = %d, want 1", got)
	}
	if !strings.Contains(out, "UID:"+evs[0].ID.String()) {
		t.Error("calendar missing event UID")
	}
	if !strings.Contains(out, "URL:https://example.org/spring-open") {
		t.Error("calendar missing registration link")
	}
}
