package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var reClock = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func validClock(s string) error {
	if s == "" || reClock.MatchString(s) {
		return nil
	}
	return errClock
}

var errClock = errors.New("invalid 24-hour clock value")

type Event struct{ ent.Schema }

func (Event) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "events"},
	}
}

func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("category_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.String("title").NotEmpty(),
		field.Time("event_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		// HH:MM, 24-hour clock, local to the venue.
		field.String("start_time").Optional().Nillable().
			Validate(validClock),
		field.String("end_time").Optional().Nillable().
			Validate(validClock),
		field.String("venue").Optional().Nillable(),
		field.String("address").Optional().Nillable(),
		field.String("fee").Optional().Nillable(),
		field.Time("registration_deadline").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("registration_link").Optional().Nillable(),
		field.String("contact_name1").Optional().Nillable(),
		field.String("contact_phone1").Optional().Nillable(),
		field.String("contact_name2").Optional().Nillable(),
		field.String("contact_title2").Optional().Nillable(),
		field.String("organization").Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		// Sub-category labels in discovery order.
		field.JSON("categories", []string{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY events -> ONE profile (FK: events.profile_id)
		edge.From("profile", Profile.Type).
			Ref("events").
			Field("profile_id").
			Required().
			Unique(),
		// MANY events -> ONE coarse category (FK: events.category_id)
		edge.From("category", Category.Type).
			Ref("events").
			Field("category_id").
			Unique(),
		// ONE event -> MANY files
		edge.To("files", FlyerFile.Type),
		// ONE event -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "event_date"),
		index.Fields("profile_id", "created_at"),
	}
}
