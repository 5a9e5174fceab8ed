package export

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/eventsnap/eventsnap/internal/entity"
)

// ExportEventsICS returns an iCalendar document for the given profile and
// date window, one VEVENT per stored event. Events without a start time are
// emitted as all-day entries.
func (s *Service) ExportEventsICS(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	fromDate, toDate := normalizeWindow(from, to)

	evs, err := s.eventsRepo.ListEvents(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//eventsnap//events//EN")

	now := time.Now().UTC()
	for _, ev := range evs {
		addCalendarEvent(cal, ev, now)
	}

	s.logger.Info("export.ics.ok",
		"profile_id", profileID.String(),
		"events", len(evs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return []byte(cal.Serialize()), nil
}

// ExportEventICS returns an iCalendar document holding a single event, for
// add-to-calendar links.
func (s *Service) ExportEventICS(ctx context.Context, eventID uuid.UUID) ([]byte, error) {
	ev, err := s.eventsRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//eventsnap//events//EN")
	addCalendarEvent(cal, ev, time.Now().UTC())

	s.logger.Info("export.ics.ok", "event_id", eventID.String(), "events", 1)
	return []byte(cal.Serialize()), nil
}

func addCalendarEvent(cal *ics.Calendar, ev *entity.Event, now time.Time) {
	ve := cal.AddEvent(ev.ID.String())
	ve.SetCreatedTime(now)
	ve.SetDtStampTime(now)
	ve.SetSummary(ev.Title)

	startAt, endAt, allDay := eventWindow(ev)
	if allDay {
		ve.SetAllDayStartAt(startAt)
		ve.SetAllDayEndAt(endAt)
	} else {
		ve.SetStartAt(startAt)
		ve.SetEndAt(endAt)
	}

	if loc := icsLocation(ev); loc != "" {
		ve.SetLocation(loc)
	}
	if desc := icsDescription(ev); desc != "" {
		ve.SetDescription(desc)
	}
	if link := strOr(ev.RegistrationLink); link != "" {
		ve.SetURL(link)
	}
}

// eventWindow resolves the calendar window for an event. Clock fields are
// HH:MM in the event's local day; without a start clock the event spans the
// whole day, and without an end clock it defaults to two hours long.
func eventWindow(ev *entity.Event) (start, end time.Time, allDay bool) {
	day := ev.EventDate
	startClock := strOr(ev.StartTime)
	if startClock == "" {
		return day, day.AddDate(0, 0, 1), true
	}
	start = atClock(day, startClock)
	if endClock := strOr(ev.EndTime); endClock != "" {
		end = atClock(day, endClock)
		if !end.After(start) {
			// End before start means the event runs past midnight.
			end = end.AddDate(0, 0, 1)
		}
	} else {
		end = start.Add(2 * time.Hour)
	}
	return start, end, false
}

func atClock(day time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

func icsLocation(ev *entity.Event) string {
	venue := strOr(ev.Venue)
	addr := strOr(ev.Address)
	switch {
	case venue != "" && addr != "":
		return venue + ", " + addr
	case venue != "":
		return venue
	default:
		return addr
	}
}

func icsDescription(ev *entity.Event) string {
	var lines []string
	if fee := strOr(ev.Fee); fee != "" {
		lines = append(lines, "Fee: "+fee)
	}
	if ev.RegistrationDeadline != nil {
		lines = append(lines, "Register by: "+ev.RegistrationDeadline.Format("2006-01-02"))
	}
	if contact := contactLine(ev); contact != "" {
		lines = append(lines, "Contact: "+contact)
	}
	if org := strOr(ev.Organization); org != "" {
		lines = append(lines, "Organized by: "+org)
	}
	if notes := strOr(ev.Notes); notes != "" {
		lines = append(lines, notes)
	}
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
