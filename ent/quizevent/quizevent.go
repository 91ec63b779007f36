// Code generated by ent, DO NOT EDIT.

package quizevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizevent type in the database.
	Label = "quiz_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldQuizID holds the string denoting the quiz_id field in the database.
	FieldQuizID = "quiz_id"
	// FieldRequested holds the string denoting the requested field in the database.
	FieldRequested = "requested"
	// FieldKept holds the string denoting the kept field in the database.
	FieldKept = "kept"
	// FieldDropped holds the string denoting the dropped field in the database.
	FieldDropped = "dropped"
	// FieldMcqCount holds the string denoting the mcq_count field in the database.
	FieldMcqCount = "mcq_count"
	// FieldShortCount holds the string denoting the short_count field in the database.
	FieldShortCount = "short_count"
	// FieldSourceChars holds the string denoting the source_chars field in the database.
	FieldSourceChars = "source_chars"
	// FieldItemsJSON holds the string denoting the items_json field in the database.
	FieldItemsJSON = "items_json"
	// Table holds the table name of the quizevent in the database.
	Table = "quiz_events"
)

// Columns holds all SQL columns for quizevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldQuizID,
	FieldRequested,
	FieldKept,
	FieldDropped,
	FieldMcqCount,
	FieldShortCount,
	FieldSourceChars,
	FieldItemsJSON,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	QuizIDValidator func(string) error
	// DefaultDropped holds the default value on creation for the "dropped" field.
	DefaultDropped int
	// DefaultMcqCount holds the default value on creation for the "mcq_count" field.
	DefaultMcqCount int
	// DefaultShortCount holds the default value on creation for the "short_count" field.
	DefaultShortCount int
	// DefaultSourceChars holds the default value on creation for the "source_chars" field.
	DefaultSourceChars int
	// DefaultItemsJSON holds the default value on creation for the "items_json" field.
	DefaultItemsJSON string
)

// OrderOption defines the ordering options for the QuizEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByQuizID orders the results by the quiz_id field.
func ByQuizID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizID, opts...).ToFunc()
}

// ByRequested orders the results by the requested field.
func ByRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequested, opts...).ToFunc()
}

// ByKept orders the results by the kept field.
func ByKept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKept, opts...).ToFunc()
}

// ByDropped orders the results by the dropped field.
func ByDropped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDropped, opts...).ToFunc()
}

// ByMcqCount orders the results by the mcq_count field.
func ByMcqCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMcqCount, opts...).ToFunc()
}

// ByShortCount orders the results by the short_count field.
func ByShortCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortCount, opts...).ToFunc()
}

// BySourceChars orders the results by the source_chars field.
func BySourceChars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceChars, opts...).ToFunc()
}

// ByItemsJSON orders the results by the items_json field.
func ByItemsJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsJSON, opts...).ToFunc()
}
