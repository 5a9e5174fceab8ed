// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eventsnap/eventsnap/gen/ent/category"
	"github.com/eventsnap/eventsnap/gen/ent/event"
	"github.com/eventsnap/eventsnap/gen/ent/profile"
	"github.com/google/uuid"
)

// Event is the model entity for the Event schema.
type Event struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// EventDate holds the value of the "event_date" field.
	EventDate time.Time `json:"event_date,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime *string `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime *string `json:"end_time,omitempty"`
	// Venue holds the value of the "venue" field.
	Venue *string `json:"venue,omitempty"`
	// Address holds the value of the "address" field.
	Address *string `json:"address,omitempty"`
	// Fee holds the value of the "fee" field.
	Fee *string `json:"fee,omitempty"`
	// RegistrationDeadline holds the value of the "registration_deadline" field.
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	// RegistrationLink holds the value of the "registration_link" field.
	RegistrationLink *string `json:"registration_link,omitempty"`
	// ContactName1 holds the value of the "contact_name1" field.
	ContactName1 *string `json:"contact_name1,omitempty"`
	// ContactPhone1 holds the value of the "contact_phone1" field.
	ContactPhone1 *string `json:"contact_phone1,omitempty"`
	// ContactName2 holds the value of the "contact_name2" field.
	ContactName2 *string `json:"contact_name2,omitempty"`
	// ContactTitle2 holds the value of the "contact_title2" field.
	ContactTitle2 *string `json:"contact_title2,omitempty"`
	// Organization holds the value of the "organization" field.
	Organization *string `json:"organization,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Categories holds the value of the "categories" field.
	Categories []string `json:"categories,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EventQuery when eager-loading is set.
	Edges        EventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EventEdges holds the relations/edges for other nodes in the graph.
type EventEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Category holds the value of the category edge.
	Category *Category `json:"category,omitempty"`
	// Files holds the value of the files edge.
	Files []*FlyerFile `json:"files,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EventEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// CategoryOrErr returns the Category value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EventEdges) CategoryOrErr() (*Category, error) {
	if e.Category != nil {
		return e.Category, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: category.Label}
	}
	return nil, &NotLoadedError{edge: "category"}
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e EventEdges) FilesOrErr() ([]*FlyerFile, error) {
	if e.loadedTypes[2] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e EventEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[3] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Event) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case event.FieldCategoryID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case event.FieldCategories:
			values[i] = new([]byte)
		case event.FieldTitle, event.FieldStartTime, event.FieldEndTime, event.FieldVenue, event.FieldAddress, event.FieldFee, event.FieldRegistrationLink, event.FieldContactName1, event.FieldContactPhone1, event.FieldContactName2, event.FieldContactTitle2, event.FieldOrganization, event.FieldNotes:
			values[i] = new(sql.NullString)
		case event.FieldEventDate, event.FieldRegistrationDeadline, event.FieldCreatedAt, event.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case event.FieldID, event.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Event fields.
func (_m *Event) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case event.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case event.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case event.FieldCategoryID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = new(uuid.UUID)
				*_m.CategoryID = *value.S.(*uuid.UUID)
			}
		case event.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case event.FieldEventDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field event_date", values[i])
			} else if value.Valid {
				_m.EventDate = value.Time
			}
		case event.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = new(string)
				*_m.StartTime = value.String
			}
		case event.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(string)
				*_m.EndTime = value.String
			}
		case event.FieldVenue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field venue", values[i])
			} else if value.Valid {
				_m.Venue = new(string)
				*_m.Venue = value.String
			}
		case event.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = new(string)
				*_m.Address = value.String
			}
		case event.FieldFee:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fee", values[i])
			} else if value.Valid {
				_m.Fee = new(string)
				*_m.Fee = value.String
			}
		case event.FieldRegistrationDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field registration_deadline", values[i])
			} else if value.Valid {
				_m.RegistrationDeadline = new(time.Time)
				*_m.RegistrationDeadline = value.Time
			}
		case event.FieldRegistrationLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field registration_link", values[i])
			} else if value.Valid {
				_m.RegistrationLink = new(string)
				*_m.RegistrationLink = value.String
			}
		case event.FieldContactName1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_name1", values[i])
			} else if value.Valid {
				_m.ContactName1 = new(string)
				*_m.ContactName1 = value.String
			}
		case event.FieldContactPhone1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_phone1", values[i])
			} else if value.Valid {
				_m.ContactPhone1 = new(string)
				*_m.ContactPhone1 = value.String
			}
		case event.FieldContactName2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_name2", values[i])
			} else if value.Valid {
				_m.ContactName2 = new(string)
				*_m.ContactName2 = value.String
			}
		case event.FieldContactTitle2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_title2", values[i])
			} else if value.Valid {
				_m.ContactTitle2 = new(string)
				*_m.ContactTitle2 = value.String
			}
		case event.FieldOrganization:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization", values[i])
			} else if value.Valid {
				_m.Organization = new(string)
				*_m.Organization = value.String
			}
		case event.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case event.FieldCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Categories); err != nil {
					return fmt.Errorf("unmarshal field categories: %w", err)
				}
			}
		case event.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case event.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Event.
// This includes values selected through modifiers, order, etc.
func (_m *Event) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the Event entity.
func (_m *Event) QueryProfile() *ProfileQuery {
	return NewEventClient(_m.config).QueryProfile(_m)
}

// QueryCategory queries the "category" edge of the Event entity.
func (_m *Event) QueryCategory() *CategoryQuery {
	return NewEventClient(_m.config).QueryCategory(_m)
}

// QueryFiles queries the "files" edge of the Event entity.
func (_m *Event) QueryFiles() *FlyerFileQuery {
	return NewEventClient(_m.config).QueryFiles(_m)
}

// QueryJobs queries the "jobs" edge of the Event entity.
func (_m *Event) QueryJobs() *ExtractJobQuery {
	return NewEventClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Event.
// Note that you need to call Event.Unwrap() before calling this method if this Event
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Event) Update() *EventUpdateOne {
	return NewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Event entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Event) Unwrap() *Event {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Event is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Event) String() string {
	var builder strings.Builder
	builder.WriteString("Event(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	if v := _m.CategoryID; v != nil {
		builder.WriteString("category_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("event_date=")
	builder.WriteString(_m.EventDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartTime; v != nil {
		builder.WriteString("start_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Venue; v != nil {
		builder.WriteString("venue=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Address; v != nil {
		builder.WriteString("address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Fee; v != nil {
		builder.WriteString("fee=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RegistrationDeadline; v != nil {
		builder.WriteString("registration_deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RegistrationLink; v != nil {
		builder.WriteString("registration_link=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContactName1; v != nil {
		builder.WriteString("contact_name1=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContactPhone1; v != nil {
		builder.WriteString("contact_phone1=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContactName2; v != nil {
		builder.WriteString("contact_name2=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContactTitle2; v != nil {
		builder.WriteString("contact_title2=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Organization; v != nil {
		builder.WriteString("organization=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Categories))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Events is a parsable slice of Event.
type Events []*Event
