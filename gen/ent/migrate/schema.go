// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "event_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "start_time", Type: field.TypeString, Nullable: true},
		{Name: "end_time", Type: field.TypeString, Nullable: true},
		{Name: "venue", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "fee", Type: field.TypeString, Nullable: true},
		{Name: "registration_deadline", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "registration_link", Type: field.TypeString, Nullable: true},
		{Name: "contact_name1", Type: field.TypeString, Nullable: true},
		{Name: "contact_phone1", Type: field.TypeString, Nullable: true},
		{Name: "contact_name2", Type: field.TypeString, Nullable: true},
		{Name: "contact_title2", Type: field.TypeString, Nullable: true},
		{Name: "organization", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "categories", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeUUID, Nullable: true},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_categories_events",
				Columns:    []*schema.Column{EventsColumns[19]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "events_profiles_events",
				Columns:    []*schema.Column{EventsColumns[20]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_profile_id_event_date",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[20], EventsColumns[2]},
			},
			{
				Name:    "event_profile_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[20], EventsColumns[17]},
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "parser_version", Type: field.TypeString, Nullable: true},
		{Name: "event_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_events_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[11]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_flyer_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{FlyerFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_job_profiles_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[13]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_profile_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[13], ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12]},
			},
			{
				Name:    "extractjob_event_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[11]},
			},
		},
	}
	// FlyerFilesColumns holds the columns for the "flyer_files" table.
	FlyerFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeUUID, Nullable: true},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// FlyerFilesTable holds the schema information for the "flyer_files" table.
	FlyerFilesTable = &schema.Table{
		Name:       "flyer_files",
		Columns:    FlyerFilesColumns,
		PrimaryKey: []*schema.Column{FlyerFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "flyer_files_events_files",
				Columns:    []*schema.Column{FlyerFilesColumns[7]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "flyer_files_profiles_files",
				Columns:    []*schema.Column{FlyerFilesColumns[8]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "flyerfile_profile_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{FlyerFilesColumns[8], FlyerFilesColumns[2]},
			},
			{
				Name:    "flyerfile_profile_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{FlyerFilesColumns[8], FlyerFilesColumns[6]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "default_timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		EventsTable,
		ExtractJobTable,
		FlyerFilesTable,
		ProfilesTable,
	}
)

func init() {
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	EventsTable.ForeignKeys[0].RefTable = CategoriesTable
	EventsTable.ForeignKeys[1].RefTable = ProfilesTable
	EventsTable.Annotation = &entsql.Annotation{
		Table: "events",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = EventsTable
	ExtractJobTable.ForeignKeys[1].RefTable = FlyerFilesTable
	ExtractJobTable.ForeignKeys[2].RefTable = ProfilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	FlyerFilesTable.ForeignKeys[0].RefTable = EventsTable
	FlyerFilesTable.ForeignKeys[1].RefTable = ProfilesTable
	FlyerFilesTable.Annotation = &entsql.Annotation{
		Table: "flyer_files",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
}
