// Code generated by ent, DO NOT EDIT.

package quizevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/docentlabs/docent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuizID applies equality check predicate on the "quiz_id" field. It's identical to QuizIDEQ.
func QuizID(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldQuizID, v))
}

// Requested applies equality check predicate on the "requested" field. It's identical to RequestedEQ.
func Requested(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldRequested, v))
}

// Kept applies equality check predicate on the "kept" field. It's identical to KeptEQ.
func Kept(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldKept, v))
}

// Dropped applies equality check predicate on the "dropped" field. It's identical to DroppedEQ.
func Dropped(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldDropped, v))
}

// McqCount applies equality check predicate on the "mcq_count" field. It's identical to McqCountEQ.
func McqCount(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldMcqCount, v))
}

// ShortCount applies equality check predicate on the "short_count" field. It's identical to ShortCountEQ.
func ShortCount(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldShortCount, v))
}

// SourceChars applies equality check predicate on the "source_chars" field. It's identical to SourceCharsEQ.
func SourceChars(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSourceChars, v))
}

// ItemsJSON applies equality check predicate on the "items_json" field. It's identical to ItemsJSONEQ.
func ItemsJSON(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldItemsJSON, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuizIDEQ applies the EQ predicate on the "quiz_id" field.
func QuizIDEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldQuizID, v))
}

// QuizIDNEQ applies the NEQ predicate on the "quiz_id" field.
func QuizIDNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldQuizID, v))
}

// QuizIDIn applies the In predicate on the "quiz_id" field.
func QuizIDIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldQuizID, vs...))
}

// QuizIDNotIn applies the NotIn predicate on the "quiz_id" field.
func QuizIDNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldQuizID, vs...))
}

// QuizIDGT applies the GT predicate on the "quiz_id" field.
func QuizIDGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldQuizID, v))
}

// QuizIDGTE applies the GTE predicate on the "quiz_id" field.
func QuizIDGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldQuizID, v))
}

// QuizIDLT applies the LT predicate on the "quiz_id" field.
func QuizIDLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldQuizID, v))
}

// QuizIDLTE applies the LTE predicate on the "quiz_id" field.
func QuizIDLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldQuizID, v))
}

// QuizIDContains applies the Contains predicate on the "quiz_id" field.
func QuizIDContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldQuizID, v))
}

// QuizIDHasPrefix applies the HasPrefix predicate on the "quiz_id" field.
func QuizIDHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldQuizID, v))
}

// QuizIDHasSuffix applies the HasSuffix predicate on the "quiz_id" field.
func QuizIDHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldQuizID, v))
}

// QuizIDEqualFold applies the EqualFold predicate on the "quiz_id" field.
func QuizIDEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldQuizID, v))
}

// QuizIDContainsFold applies the ContainsFold predicate on the "quiz_id" field.
func QuizIDContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldQuizID, v))
}

// RequestedEQ applies the EQ predicate on the "requested" field.
func RequestedEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldRequested, v))
}

// RequestedNEQ applies the NEQ predicate on the "requested" field.
func RequestedNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldRequested, v))
}

// RequestedIn applies the In predicate on the "requested" field.
func RequestedIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldRequested, vs...))
}

// RequestedNotIn applies the NotIn predicate on the "requested" field.
func RequestedNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldRequested, vs...))
}

// RequestedGT applies the GT predicate on the "requested" field.
func RequestedGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldRequested, v))
}

// RequestedGTE applies the GTE predicate on the "requested" field.
func RequestedGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldRequested, v))
}

// RequestedLT applies the LT predicate on the "requested" field.
func RequestedLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldRequested, v))
}

// RequestedLTE applies the LTE predicate on the "requested" field.
func RequestedLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldRequested, v))
}

// KeptEQ applies the EQ predicate on the "kept" field.
func KeptEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldKept, v))
}

// KeptNEQ applies the NEQ predicate on the "kept" field.
func KeptNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldKept, v))
}

// KeptIn applies the In predicate on the "kept" field.
func KeptIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldKept, vs...))
}

// KeptNotIn applies the NotIn predicate on the "kept" field.
func KeptNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldKept, vs...))
}

// KeptGT applies the GT predicate on the "kept" field.
func KeptGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldKept, v))
}

// KeptGTE applies the GTE predicate on the "kept" field.
func KeptGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldKept, v))
}

// KeptLT applies the LT predicate on the "kept" field.
func KeptLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldKept, v))
}

// KeptLTE applies the LTE predicate on the "kept" field.
func KeptLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldKept, v))
}

// DroppedEQ applies the EQ predicate on the "dropped" field.
func DroppedEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldDropped, v))
}

// DroppedNEQ applies the NEQ predicate on the "dropped" field.
func DroppedNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldDropped, v))
}

// DroppedIn applies the In predicate on the "dropped" field.
func DroppedIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldDropped, vs...))
}

// DroppedNotIn applies the NotIn predicate on the "dropped" field.
func DroppedNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldDropped, vs...))
}

// DroppedGT applies the GT predicate on the "dropped" field.
func DroppedGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldDropped, v))
}

// DroppedGTE applies the GTE predicate on the "dropped" field.
func DroppedGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldDropped, v))
}

// DroppedLT applies the LT predicate on the "dropped" field.
func DroppedLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldDropped, v))
}

// DroppedLTE applies the LTE predicate on the "dropped" field.
func DroppedLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldDropped, v))
}

// McqCountEQ applies the EQ predicate on the "mcq_count" field.
func McqCountEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldMcqCount, v))
}

// McqCountNEQ applies the NEQ predicate on the "mcq_count" field.
func McqCountNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldMcqCount, v))
}

// McqCountIn applies the In predicate on the "mcq_count" field.
func McqCountIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldMcqCount, vs...))
}

// McqCountNotIn applies the NotIn predicate on the "mcq_count" field.
func McqCountNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldMcqCount, vs...))
}

// McqCountGT applies the GT predicate on the "mcq_count" field.
func McqCountGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldMcqCount, v))
}

// McqCountGTE applies the GTE predicate on the "mcq_count" field.
func McqCountGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldMcqCount, v))
}

// McqCountLT applies the LT predicate on the "mcq_count" field.
func McqCountLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldMcqCount, v))
}

// McqCountLTE applies the LTE predicate on the "mcq_count" field.
func McqCountLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldMcqCount, v))
}

// ShortCountEQ applies the EQ predicate on the "short_count" field.
func ShortCountEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldShortCount, v))
}

// ShortCountNEQ applies the NEQ predicate on the "short_count" field.
func ShortCountNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldShortCount, v))
}

// ShortCountIn applies the In predicate on the "short_count" field.
func ShortCountIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldShortCount, vs...))
}

// ShortCountNotIn applies the NotIn predicate on the "short_count" field.
func ShortCountNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldShortCount, vs...))
}

// ShortCountGT applies the GT predicate on the "short_count" field.
func ShortCountGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldShortCount, v))
}

// ShortCountGTE applies the GTE predicate on the "short_count" field.
func ShortCountGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldShortCount, v))
}

// ShortCountLT applies the LT predicate on the "short_count" field.
func ShortCountLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldShortCount, v))
}

// ShortCountLTE applies the LTE predicate on the "short_count" field.
func ShortCountLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldShortCount, v))
}

// SourceCharsEQ applies the EQ predicate on the "source_chars" field.
func SourceCharsEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSourceChars, v))
}

// SourceCharsNEQ applies the NEQ predicate on the "source_chars" field.
func SourceCharsNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldSourceChars, v))
}

// SourceCharsIn applies the In predicate on the "source_chars" field.
func SourceCharsIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldSourceChars, vs...))
}

// SourceCharsNotIn applies the NotIn predicate on the "source_chars" field.
func SourceCharsNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldSourceChars, vs...))
}

// SourceCharsGT applies the GT predicate on the "source_chars" field.
func SourceCharsGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldSourceChars, v))
}

// SourceCharsGTE applies the GTE predicate on the "source_chars" field.
func SourceCharsGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldSourceChars, v))
}

// SourceCharsLT applies the LT predicate on the "source_chars" field.
func SourceCharsLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldSourceChars, v))
}

// SourceCharsLTE applies the LTE predicate on the "source_chars" field.
func SourceCharsLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldSourceChars, v))
}

// ItemsJSONEQ applies the EQ predicate on the "items_json" field.
func ItemsJSONEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldItemsJSON, v))
}

// ItemsJSONNEQ applies the NEQ predicate on the "items_json" field.
func ItemsJSONNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldItemsJSON, v))
}

// ItemsJSONIn applies the In predicate on the "items_json" field.
func ItemsJSONIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldItemsJSON, vs...))
}

// ItemsJSONNotIn applies the NotIn predicate on the "items_json" field.
func ItemsJSONNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldItemsJSON, vs...))
}

// ItemsJSONGT applies the GT predicate on the "items_json" field.
func ItemsJSONGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldItemsJSON, v))
}

// ItemsJSONGTE applies the GTE predicate on the "items_json" field.
func ItemsJSONGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldItemsJSON, v))
}

// ItemsJSONLT applies the LT predicate on the "items_json" field.
func ItemsJSONLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldItemsJSON, v))
}

// ItemsJSONLTE applies the LTE predicate on the "items_json" field.
func ItemsJSONLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldItemsJSON, v))
}

// ItemsJSONContains applies the Contains predicate on the "items_json" field.
func ItemsJSONContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldItemsJSON, v))
}

// ItemsJSONHasPrefix applies the HasPrefix predicate on the "items_json" field.
func ItemsJSONHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldItemsJSON, v))
}

// ItemsJSONHasSuffix applies the HasSuffix predicate on the "items_json" field.
func ItemsJSONHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldItemsJSON, v))
}

// ItemsJSONEqualFold applies the EqualFold predicate on the "items_json" field.
func ItemsJSONEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldItemsJSON, v))
}

// ItemsJSONContainsFold applies the ContainsFold predicate on the "items_json" field.
func ItemsJSONContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldItemsJSON, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.NotPredicates(p))
}
