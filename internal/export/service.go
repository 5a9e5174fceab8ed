package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/eventsnap/eventsnap/internal/entity"
	"github.com/eventsnap/eventsnap/internal/repository"
)

// Service is a tiny façade over repositories that renders event exports.
type Service struct {
	eventsRepo repository.EventRepository
	logger     *slog.Logger
}

func NewService(eventsRepo repository.EventRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{eventsRepo: eventsRepo, logger: logger}
}

// ExportEventsXLSX returns an XLSX workbook (as bytes) for the given profile and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all events for profile.
func (s *Service) ExportEventsXLSX(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	fromDate, toDate := normalizeWindow(from, to)

	evs, err := s.eventsRepo.ListEvents(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Events"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Title",
		"Category",
		"Time",
		"Venue",
		"Address",
		"Fee",
		"Registration Deadline",
		"Registration Link",
		"Contact",
		"Organization",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, ev := range evs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, ev.EventDate.Format("2006-01-02"))
		write(2, ev.Title)
		write(3, ev.CategoryName)
		write(4, timeRange(ev))
		write(5, strOr(ev.Venue))
		write(6, strOr(ev.Address))
		write(7, strOr(ev.Fee))
		if ev.RegistrationDeadline != nil {
			write(8, ev.RegistrationDeadline.Format("2006-01-02"))
		} else {
			write(8, "")
		}
		write(9, strOr(ev.RegistrationLink))
		write(10, contactLine(ev))
		write(11, strOr(ev.Organization))
		write(12, truncate(strOr(ev.Notes), 140))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 32) // title
	_ = f.SetColWidth(sheet, "C", "C", 14) // category
	_ = f.SetColWidth(sheet, "D", "D", 20) // time
	_ = f.SetColWidth(sheet, "E", "F", 30) // venue, address
	_ = f.SetColWidth(sheet, "G", "H", 16) // fee, deadline
	_ = f.SetColWidth(sheet, "I", "I", 40) // link
	_ = f.SetColWidth(sheet, "J", "K", 26) // contact, org
	_ = f.SetColWidth(sheet, "L", "L", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(evs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func normalizeWindow(from, to *time.Time) (*time.Time, *time.Time) {
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	return fromDate, toDate
}

// timeRange renders "6:00 PM – 8:00 PM" style ranges from 24-hour fields.
func timeRange(ev *entity.Event) string {
	startClock := strOr(ev.StartTime)
	if startClock == "" {
		return ""
	}
	out := to12Hour(startClock)
	if endClock := strOr(ev.EndTime); endClock != "" {
		out += " - " + to12Hour(endClock)
	}
	return out
}

func to12Hour(clock string) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return strings.TrimLeft(t.Format("3:04 PM"), " ")
}

func contactLine(ev *entity.Event) string {
	name := strOr(ev.ContactName1)
	phone := strOr(ev.ContactPhone1)
	switch {
	case name != "" && phone != "":
		return name + " " + phone
	case name != "":
		return name
	default:
		return phone
	}
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
