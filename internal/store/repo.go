package store

import (
	"context"
	"time"

	"github.com/docentlabs/docent/ent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates LLM usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model ID.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QuizEventData captures a generated quiz for persistence.
type QuizEventData struct {
	QuizID      string
	Requested   int
	Kept        int
	Dropped     int
	MCQCount    int
	ShortCount  int
	SourceChars int
	ItemsJSON   string
}

// QuizEventRecord is a stored quiz event.
type QuizEventRecord struct {
	ID          int
	Sequence    int64
	Timestamp   time.Time
	QuizID      string
	Requested   int
	Kept        int
	Dropped     int
	MCQCount    int
	ShortCount  int
	SourceChars int
	ItemsJSON   string
}

// AnswerEventData captures a single graded answer for persistence.
type AnswerEventData struct {
	QuizID        string
	QuestionIndex int
	QuestionType  string
	QuestionText  string
	GivenAnswer   string
	Correct       bool
	Score         float64
	RubricHit     int
	RubricTotal   int
	TimeMs        int
}

// AnswerEventRecord is a stored graded answer.
type AnswerEventRecord struct {
	ID            int
	Sequence      int64
	Timestamp     time.Time
	QuizID        string
	QuestionIndex int
	QuestionType  string
	QuestionText  string
	GivenAnswer   string
	Correct       bool
	Score         float64
	RubricHit     int
	RubricTotal   int
	TimeMs        int
}

// AnswerStats aggregates graded answers across all quizzes.
type AnswerStats struct {
	Total    int
	Correct  int
	Accuracy float64
	ByType   map[string]TypeStats
}

// TypeStats aggregates graded answers for one question type.
type TypeStats struct {
	Total    int
	Correct  int
	AvgScore float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates successful call usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates successful call usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendQuiz records a generated quiz.
	AppendQuiz(ctx context.Context, data QuizEventData) error

	// QueryQuizEvents returns quiz events, newest first.
	QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)

	// GetQuiz returns the most recent quiz event with the given quiz ID,
	// or nil if not found.
	GetQuiz(ctx context.Context, quizID string) (*QuizEventRecord, error)

	// AppendAnswer records a graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QuizAccuracy returns correct/total for one quiz attempt.
	QuizAccuracy(ctx context.Context, quizID string) (float64, error)

	// AnswerStatsAll aggregates all graded answers.
	AnswerStatsAll(ctx context.Context) (AnswerStats, error)

	// RecentMisses returns the most recent incorrect answers, newest first.
	RecentMisses(ctx context.Context, limit int) ([]AnswerEventRecord, error)
}

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
