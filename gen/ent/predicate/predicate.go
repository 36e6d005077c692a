// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Batch is the predicate function for batch builders.
type Batch func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)
