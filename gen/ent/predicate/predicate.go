// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// FlyerFile is the predicate function for flyerfile builders.
type FlyerFile func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
