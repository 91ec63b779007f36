package quizgen

import "fmt"

const generateSystem = "You are a quiz author. You respond with a single JSON object and nothing else: " +
	"no prose, no markdown, no code fences."

func generatePrompt(material string, count int) string {
	return fmt.Sprintf(`Write %d quiz questions about the material below. Mix multiple-choice and short-answer questions.

Respond with exactly this JSON shape:
{
  "items": [
    {"type": "mcq", "question": "...", "options": ["...", "...", "...", "..."], "answer_index": 0, "explanation": "..."},
    {"type": "short", "question": "...", "answer": "...", "rubric_keywords": ["...", "...", "..."], "explanation": "..."}
  ]
}

Rules:
- Every mcq item has exactly %d options and answer_index points at the correct one.
- Every short item has a model answer and %d to %d rubric_keywords that a correct answer should mention.
- Every item has a one- or two-sentence explanation of why the answer is correct.
- Questions must be answerable from the material alone.

Material:
%s`, count, MCQOptionCount, RubricMinKeywords, RubricMaxKeywords, material)
}

const feedbackSystem = "You are a patient tutor. Explain in two or three sentences why the learner's answer " +
	"is wrong and what the correct answer is. Be concrete and encouraging."

func feedbackMCQPrompt(item Item, givenIndex int) string {
	given := "no answer"
	if givenIndex >= 0 && givenIndex < len(item.Options) {
		given = item.Options[givenIndex]
	}
	return fmt.Sprintf("Question: %s\nChoices: %v\nCorrect answer: %s\nExplanation: %s\nLearner chose: %s",
		item.Question, item.Options, item.Options[item.AnswerIndex], item.Explanation, given)
}

func feedbackShortPrompt(item Item, givenAnswer string) string {
	if givenAnswer == "" {
		givenAnswer = "(blank)"
	}
	return fmt.Sprintf("Question: %s\nModel answer: %s\nExpected ideas: %v\nExplanation: %s\nLearner wrote: %s",
		item.Question, item.Answer, item.RubricKeywords, item.Explanation, givenAnswer)
}
