// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/eventsnap/eventsnap/db/ent/schema"
	"github.com/eventsnap/eventsnap/gen/ent/category"
	"github.com/eventsnap/eventsnap/gen/ent/event"
	"github.com/eventsnap/eventsnap/gen/ent/extractjob"
	"github.com/eventsnap/eventsnap/gen/ent/flyerfile"
	"github.com/eventsnap/eventsnap/gen/ent/profile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = func() func(string) error {
		validators := categoryDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescTitle is the schema descriptor for title field.
	eventDescTitle := eventFields[3].Descriptor()
	// event.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	event.TitleValidator = eventDescTitle.Validators[0].(func(string) error)
	// eventDescStartTime is the schema descriptor for start_time field.
	eventDescStartTime := eventFields[5].Descriptor()
	// event.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	event.StartTimeValidator = eventDescStartTime.Validators[0].(func(string) error)
	// eventDescEndTime is the schema descriptor for end_time field.
	eventDescEndTime := eventFields[6].Descriptor()
	// event.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	event.EndTimeValidator = eventDescEndTime.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[19].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventFields[20].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// eventDescID is the schema descriptor for id field.
	eventDescID := eventFields[0].Descriptor()
	// event.DefaultID holds the default value on creation for the id field.
	event.DefaultID = eventDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[10].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	flyerfileFields := schema.FlyerFile{}.Fields()
	_ = flyerfileFields
	// flyerfileDescSourcePath is the schema descriptor for source_path field.
	flyerfileDescSourcePath := flyerfileFields[3].Descriptor()
	// flyerfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	flyerfile.SourcePathValidator = flyerfileDescSourcePath.Validators[0].(func(string) error)
	// flyerfileDescContentHash is the schema descriptor for content_hash field.
	flyerfileDescContentHash := flyerfileFields[4].Descriptor()
	// flyerfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	flyerfile.ContentHashValidator = flyerfileDescContentHash.Validators[0].(func([]byte) error)
	// flyerfileDescFilename is the schema descriptor for filename field.
	flyerfileDescFilename := flyerfileFields[5].Descriptor()
	// flyerfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	flyerfile.FilenameValidator = flyerfileDescFilename.Validators[0].(func(string) error)
	// flyerfileDescFileExt is the schema descriptor for file_ext field.
	flyerfileDescFileExt := flyerfileFields[6].Descriptor()
	// flyerfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	flyerfile.FileExtValidator = flyerfileDescFileExt.Validators[0].(func(string) error)
	// flyerfileDescFileSize is the schema descriptor for file_size field.
	flyerfileDescFileSize := flyerfileFields[7].Descriptor()
	// flyerfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	flyerfile.FileSizeValidator = flyerfileDescFileSize.Validators[0].(func(int) error)
	// flyerfileDescUploadedAt is the schema descriptor for uploaded_at field.
	flyerfileDescUploadedAt := flyerfileFields[8].Descriptor()
	// flyerfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	flyerfile.DefaultUploadedAt = flyerfileDescUploadedAt.Default.(func() time.Time)
	// flyerfileDescID is the schema descriptor for id field.
	flyerfileDescID := flyerfileFields[0].Descriptor()
	// flyerfile.DefaultID holds the default value on creation for the id field.
	flyerfile.DefaultID = flyerfileDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescDefaultTimezone is the schema descriptor for default_timezone field.
	profileDescDefaultTimezone := profileFields[2].Descriptor()
	// profile.DefaultDefaultTimezone holds the default value on creation for the default_timezone field.
	profile.DefaultDefaultTimezone = profileDescDefaultTimezone.Default.(string)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
}
