package quiz

// feedbackMsg delivers model-written feedback for a wrong answer.
type feedbackMsg struct {
	Index int
	Text  string
	Err   error
}
