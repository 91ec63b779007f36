package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "summary-map", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "summary-reduce", InputTokens: 80, OutputTokens: 40, LatencyMs: 150, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-gen", Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	// Newest first.
	if got[0].Purpose != "quiz-gen" {
		t.Errorf("first event purpose = %q, want quiz-gen", got[0].Purpose)
	}
	if got[2].Purpose != "summary-map" {
		t.Errorf("last event purpose = %q, want summary-map", got[2].Purpose)
	}
}

func TestQueryLLMEventsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "qa", Success: true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "feedback",
		Success:      true,
		RequestBody:  "[user]\nwhy is this wrong?",
		ResponseBody: "Because the index is off by one.",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.RequestBody == "" || e.ResponseBody == "" {
		t.Error("expected captured bodies")
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o", Purpose: "qa", InputTokens: 100, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "qa", InputTokens: 200, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "quiz-gen", InputTokens: 50, OutputTokens: 500, LatencyMs: 400, Success: true},
		// Failed calls are excluded from usage.
		{Provider: "openai", Model: "gpt-4o", Purpose: "qa", InputTokens: 999, Success: false},
	}
	for i, e := range appends {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(stats))
	}

	// Sorted by purpose name: qa, quiz-gen.
	if stats[0].Purpose != "qa" || stats[0].Calls != 2 {
		t.Errorf("qa stat = %+v", stats[0])
	}
	if stats[0].InputTokens != 300 || stats[0].OutputTokens != 60 {
		t.Errorf("qa tokens = %d/%d, want 300/60", stats[0].InputTokens, stats[0].OutputTokens)
	}
	if stats[0].AvgLatencyMs != 200 {
		t.Errorf("qa avg latency = %d, want 200", stats[0].AvgLatencyMs)
	}
	if stats[1].Purpose != "quiz-gen" || stats[1].Calls != 1 {
		t.Errorf("quiz-gen stat = %+v", stats[1])
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "qa", InputTokens: 10, OutputTokens: 5, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "qa", InputTokens: 20, OutputTokens: 10, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "summary-map", InputTokens: 30, OutputTokens: 15, Success: true},
	}
	for i, e := range appends {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 models, got %d", len(usage))
	}
	// Sorted by model name: claude first.
	if usage[0].Model != "claude-haiku-4-5-20251001" || usage[0].Calls != 1 {
		t.Errorf("claude usage = %+v", usage[0])
	}
	if usage[1].Model != "gpt-4o-mini" || usage[1].Calls != 2 || usage[1].InputTokens != 40 {
		t.Errorf("gpt usage = %+v", usage[1])
	}
}

func TestAppendAndGetQuiz(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuiz(ctx, QuizEventData{
		QuizID:      "q-123",
		Requested:   5,
		Kept:        4,
		Dropped:     1,
		MCQCount:    3,
		ShortCount:  1,
		SourceChars: 12000,
		ItemsJSON:   `{"items":[]}`,
	})
	if err != nil {
		t.Fatalf("append quiz: %v", err)
	}

	rec, err := repo.GetQuiz(ctx, "q-123")
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if rec == nil {
		t.Fatal("expected quiz record")
	}
	if rec.Kept != 4 || rec.Dropped != 1 {
		t.Errorf("kept/dropped = %d/%d, want 4/1", rec.Kept, rec.Dropped)
	}
	if rec.ItemsJSON != `{"items":[]}` {
		t.Errorf("items JSON = %q", rec.ItemsJSON)
	}

	missing, err := repo.GetQuiz(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing quiz: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing quiz")
	}
}

func TestAnswerStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{QuizID: "q-1", QuestionIndex: 0, QuestionType: "mcq", QuestionText: "Q1", GivenAnswer: "2", Correct: true, Score: 1},
		{QuizID: "q-1", QuestionIndex: 1, QuestionType: "mcq", QuestionText: "Q2", GivenAnswer: "0", Correct: false, Score: 0},
		{QuizID: "q-1", QuestionIndex: 2, QuestionType: "short", QuestionText: "Q3", GivenAnswer: "photosynthesis", Correct: true, Score: 0.67},
		{QuizID: "q-2", QuestionIndex: 0, QuestionType: "short", QuestionText: "Q1", GivenAnswer: "no idea", Correct: false, Score: 0},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.AnswerStatsAll(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 4 || stats.Correct != 2 {
		t.Errorf("total/correct = %d/%d, want 4/2", stats.Total, stats.Correct)
	}
	if stats.Accuracy != 0.5 {
		t.Errorf("accuracy = %f, want 0.5", stats.Accuracy)
	}
	mcq := stats.ByType["mcq"]
	if mcq.Total != 2 || mcq.Correct != 1 {
		t.Errorf("mcq stats = %+v", mcq)
	}

	acc, err := repo.QuizAccuracy(ctx, "q-1")
	if err != nil {
		t.Fatalf("quiz accuracy: %v", err)
	}
	if acc < 0.66 || acc > 0.67 {
		t.Errorf("quiz accuracy = %f, want ~0.667", acc)
	}

	empty, err := repo.QuizAccuracy(ctx, "missing")
	if err != nil {
		t.Fatalf("empty quiz accuracy: %v", err)
	}
	if empty != 0 {
		t.Errorf("empty quiz accuracy = %f, want 0", empty)
	}
}

func TestAnswerRubricPersisted(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnswer(ctx, AnswerEventData{
		QuizID: "q-1", QuestionIndex: 0, QuestionType: "short", QuestionText: "Q",
		GivenAnswer: "x and y", Correct: true, Score: 0.5, RubricHit: 2, RubricTotal: 4,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendAnswer(ctx, AnswerEventData{
		QuizID: "q-1", QuestionIndex: 1, QuestionType: "short", QuestionText: "miss",
		GivenAnswer: "", Correct: false, Score: 0, RubricHit: 0, RubricTotal: 3,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	misses, err := repo.RecentMisses(ctx, 10)
	if err != nil {
		t.Fatalf("recent misses: %v", err)
	}
	if len(misses) != 1 {
		t.Fatalf("len = %d, want 1", len(misses))
	}
	if misses[0].RubricHit != 0 || misses[0].RubricTotal != 3 {
		t.Errorf("rubric = %d/%d, want 0/3", misses[0].RubricHit, misses[0].RubricTotal)
	}
}

func TestRecentMisses(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{QuizID: "q-1", QuestionIndex: 0, QuestionType: "mcq", QuestionText: "first miss", GivenAnswer: "1", Correct: false, Score: 0},
		{QuizID: "q-1", QuestionIndex: 1, QuestionType: "mcq", QuestionText: "hit", GivenAnswer: "2", Correct: true, Score: 1},
		{QuizID: "q-2", QuestionIndex: 0, QuestionType: "short", QuestionText: "second miss", GivenAnswer: "", Correct: false, Score: 0.25},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	misses, err := repo.RecentMisses(ctx, 10)
	if err != nil {
		t.Fatalf("recent misses: %v", err)
	}
	if len(misses) != 2 {
		t.Fatalf("len = %d, want 2", len(misses))
	}
	if misses[0].QuestionText != "second miss" || misses[1].QuestionText != "first miss" {
		t.Errorf("order = %q, %q, want newest first", misses[0].QuestionText, misses[1].QuestionText)
	}

	one, err := repo.RecentMisses(ctx, 1)
	if err != nil {
		t.Fatalf("recent misses limit: %v", err)
	}
	if len(one) != 1 || one[0].QuestionText != "second miss" {
		t.Errorf("limited misses = %+v", one)
	}
}

func TestCrossTypeSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendQuiz(ctx, QuizEventData{QuizID: "q-9", Requested: 3, Kept: 3}); err != nil {
		t.Fatalf("append quiz: %v", err)
	}
	if err := repo.AppendAnswer(ctx, AnswerEventData{QuizID: "q-9", QuestionType: "mcq", QuestionText: "Q"}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	quiz, err := repo.GetQuiz(ctx, "q-9")
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}

	answers, err := s.Client().AnswerEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query answers: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(answers))
	}
	if answers[0].Sequence <= quiz.Sequence {
		t.Errorf("answer sequence %d should follow quiz sequence %d", answers[0].Sequence, quiz.Sequence)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "quiz_events", "answer_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
