// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docentlabs/docent/ent/quizevent"
)

// QuizEvent is the model entity for the QuizEvent schema.
type QuizEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned at generation time
	QuizID string `json:"quiz_id,omitempty"`
	// Question count asked for, after clamping
	Requested int `json:"requested,omitempty"`
	// Questions that survived validation
	Kept int `json:"kept,omitempty"`
	// Malformed questions discarded
	Dropped int `json:"dropped,omitempty"`
	// Multiple-choice questions kept
	McqCount int `json:"mcq_count,omitempty"`
	// Short-answer questions kept
	ShortCount int `json:"short_count,omitempty"`
	// Length of the source document in runes
	SourceChars int `json:"source_chars,omitempty"`
	// Full quiz serialized as JSON
	ItemsJSON    string `json:"items_json,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizevent.FieldID, quizevent.FieldSequence, quizevent.FieldRequested, quizevent.FieldKept, quizevent.FieldDropped, quizevent.FieldMcqCount, quizevent.FieldShortCount, quizevent.FieldSourceChars:
			values[i] = new(sql.NullInt64)
		case quizevent.FieldQuizID, quizevent.FieldItemsJSON:
			values[i] = new(sql.NullString)
		case quizevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizEvent fields.
func (_m *QuizEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case quizevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case quizevent.FieldQuizID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_id", values[i])
			} else if value.Valid {
				_m.QuizID = value.String
			}
		case quizevent.FieldRequested:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requested", values[i])
			} else if value.Valid {
				_m.Requested = int(value.Int64)
			}
		case quizevent.FieldKept:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field kept", values[i])
			} else if value.Valid {
				_m.Kept = int(value.Int64)
			}
		case quizevent.FieldDropped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dropped", values[i])
			} else if value.Valid {
				_m.Dropped = int(value.Int64)
			}
		case quizevent.FieldMcqCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mcq_count", values[i])
			} else if value.Valid {
				_m.McqCount = int(value.Int64)
			}
		case quizevent.FieldShortCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field short_count", values[i])
			} else if value.Valid {
				_m.ShortCount = int(value.Int64)
			}
		case quizevent.FieldSourceChars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_chars", values[i])
			} else if value.Valid {
				_m.SourceChars = int(value.Int64)
			}
		case quizevent.FieldItemsJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field items_json", values[i])
			} else if value.Valid {
				_m.ItemsJSON = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QuizEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizEvent.
// Note that you need to call QuizEvent.Unwrap() before calling this method if this QuizEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizEvent) Update() *QuizEventUpdateOne {
	return NewQuizEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizEvent) Unwrap() *QuizEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("quiz_id=")
	builder.WriteString(_m.QuizID)
	builder.WriteString(", ")
	builder.WriteString("requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.Requested))
	builder.WriteString(", ")
	builder.WriteString("kept=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kept))
	builder.WriteString(", ")
	builder.WriteString("dropped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dropped))
	builder.WriteString(", ")
	builder.WriteString("mcq_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.McqCount))
	builder.WriteString(", ")
	builder.WriteString("short_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShortCount))
	builder.WriteString(", ")
	builder.WriteString("source_chars=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceChars))
	builder.WriteString(", ")
	builder.WriteString("items_json=")
	builder.WriteString(_m.ItemsJSON)
	builder.WriteByte(')')
	return builder.String()
}

// QuizEvents is a parsable slice of QuizEvent.
type QuizEvents []*QuizEvent
