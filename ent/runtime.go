// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docentlabs/docent/ent/answerevent"
	"github.com/docentlabs/docent/ent/llmrequestevent"
	"github.com/docentlabs/docent/ent/quizevent"
	"github.com/docentlabs/docent/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescQuizID is the schema descriptor for quiz_id field.
	answereventDescQuizID := answereventFields[0].Descriptor()
	// answerevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	answerevent.QuizIDValidator = answereventDescQuizID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[2].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescGivenAnswer is the schema descriptor for given_answer field.
	answereventDescGivenAnswer := answereventFields[4].Descriptor()
	// answerevent.DefaultGivenAnswer holds the default value on creation for the given_answer field.
	answerevent.DefaultGivenAnswer = answereventDescGivenAnswer.Default.(string)
	// answereventDescScore is the schema descriptor for score field.
	answereventDescScore := answereventFields[6].Descriptor()
	// answerevent.DefaultScore holds the default value on creation for the score field.
	answerevent.DefaultScore = answereventDescScore.Default.(float64)
	// answereventDescRubricHit is the schema descriptor for rubric_hit field.
	answereventDescRubricHit := answereventFields[7].Descriptor()
	// answerevent.DefaultRubricHit holds the default value on creation for the rubric_hit field.
	answerevent.DefaultRubricHit = answereventDescRubricHit.Default.(int)
	// answereventDescRubricTotal is the schema descriptor for rubric_total field.
	answereventDescRubricTotal := answereventFields[8].Descriptor()
	// answerevent.DefaultRubricTotal holds the default value on creation for the rubric_total field.
	answerevent.DefaultRubricTotal = answereventDescRubricTotal.Default.(int)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[9].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescQuizID is the schema descriptor for quiz_id field.
	quizeventDescQuizID := quizeventFields[0].Descriptor()
	// quizevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizevent.QuizIDValidator = quizeventDescQuizID.Validators[0].(func(string) error)
	// quizeventDescDropped is the schema descriptor for dropped field.
	quizeventDescDropped := quizeventFields[3].Descriptor()
	// quizevent.DefaultDropped holds the default value on creation for the dropped field.
	quizevent.DefaultDropped = quizeventDescDropped.Default.(int)
	// quizeventDescMcqCount is the schema descriptor for mcq_count field.
	quizeventDescMcqCount := quizeventFields[4].Descriptor()
	// quizevent.DefaultMcqCount holds the default value on creation for the mcq_count field.
	quizevent.DefaultMcqCount = quizeventDescMcqCount.Default.(int)
	// quizeventDescShortCount is the schema descriptor for short_count field.
	quizeventDescShortCount := quizeventFields[5].Descriptor()
	// quizevent.DefaultShortCount holds the default value on creation for the short_count field.
	quizevent.DefaultShortCount = quizeventDescShortCount.Default.(int)
	// quizeventDescSourceChars is the schema descriptor for source_chars field.
	quizeventDescSourceChars := quizeventFields[6].Descriptor()
	// quizevent.DefaultSourceChars holds the default value on creation for the source_chars field.
	quizevent.DefaultSourceChars = quizeventDescSourceChars.Default.(int)
	// quizeventDescItemsJSON is the schema descriptor for items_json field.
	quizeventDescItemsJSON := quizeventFields[7].Descriptor()
	// quizevent.DefaultItemsJSON holds the default value on creation for the items_json field.
	quizevent.DefaultItemsJSON = quizeventDescItemsJSON.Default.(string)
}
