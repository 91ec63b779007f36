// Package quizgen generates and validates quizzes from document material.
package quizgen

import "encoding/json"

// ItemType discriminates the two question shapes.
type ItemType string

const (
	TypeMCQ   ItemType = "mcq"
	TypeShort ItemType = "short"
)

// MCQOptionCount is the required number of choices for an MCQ item.
const MCQOptionCount = 4

// RubricMinKeywords and RubricMaxKeywords bound the grading rubric of a
// short-answer item.
const (
	RubricMinKeywords = 3
	RubricMaxKeywords = 6
)

// Item is a single quiz question. MCQ items carry Options and AnswerIndex;
// short-answer items carry Answer and RubricKeywords. Every item carries a
// brief explanation of its answer.
type Item struct {
	Type           ItemType `json:"type"`
	Question       string   `json:"question"`
	Options        []string `json:"options,omitempty"`
	AnswerIndex    int      `json:"answer_index"`
	Answer         string   `json:"answer,omitempty"`
	RubricKeywords []string `json:"rubric_keywords,omitempty"`
	Explanation    string   `json:"explanation"`
}

// MarshalJSON emits only the fields that belong to the item's variant, so
// short items never serialize a spurious answer_index.
func (it Item) MarshalJSON() ([]byte, error) {
	switch it.Type {
	case TypeShort:
		return json.Marshal(struct {
			Type           ItemType `json:"type"`
			Question       string   `json:"question"`
			Answer         string   `json:"answer"`
			RubricKeywords []string `json:"rubric_keywords"`
			Explanation    string   `json:"explanation"`
		}{it.Type, it.Question, it.Answer, it.RubricKeywords, it.Explanation})
	default:
		return json.Marshal(struct {
			Type        ItemType `json:"type"`
			Question    string   `json:"question"`
			Options     []string `json:"options"`
			AnswerIndex int      `json:"answer_index"`
			Explanation string   `json:"explanation"`
		}{it.Type, it.Question, it.Options, it.AnswerIndex, it.Explanation})
	}
}

// Quiz is a validated set of questions identified by a generation-time UUID.
type Quiz struct {
	ID        string `json:"quiz_id"`
	Questions []Item `json:"items"`
}

// Stats reports what happened during generation and validation.
type Stats struct {
	Requested int // after clamping
	Parsed    int // items the model returned
	Kept      int // items that passed validation
	Dropped   int // items discarded as malformed
}
