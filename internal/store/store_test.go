package store

import (
	"context"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Purpose:      "question-gen",
			InputTokens:  100,
			OutputTokens: 20,
			LatencyMs:    150,
			Success:      true,
			RequestBody:  `{"prompt":"trivia"}`,
			ResponseBody: "Question: Q Answer: A",
		})
		if err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Provider != "openai" || events[0].Purpose != "question-gen" {
		t.Errorf("unexpected event: %+v", events[0])
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if got.ResponseBody != "Question: Q Answer: A" {
		t.Errorf("response body = %q", got.ResponseBody)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	add := func(purpose string, in, out int) {
		t.Helper()
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "openai", Model: "gpt-4o-mini", Purpose: purpose,
			InputTokens: in, OutputTokens: out, LatencyMs: 100, Success: true,
		}); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}
	add("question-gen", 100, 30)
	add("question-gen", 200, 40)
	add("other", 50, 10)

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	var gen *UsageStat
	for i := range stats {
		if stats[i].Purpose == "question-gen" {
			gen = &stats[i]
		}
	}
	if gen == nil {
		t.Fatal("no question-gen stat")
	}
	if gen.Calls != 2 || gen.InputTokens != 300 || gen.OutputTokens != 70 {
		t.Errorf("stat = %+v", *gen)
	}
}

func TestPlayerCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.PlayerRepo()

	p, err := repo.Create(ctx, "", "Ada")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DisplayName != "Ada" {
		t.Errorf("display name = %q", got.DisplayName)
	}

	if _, err := repo.Update(ctx, p.ID, "Ada Lovelace"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.DisplayName != "Ada Lovelace" {
		t.Errorf("display name after update = %q", got.DisplayName)
	}

	players, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("got %d players, want 1", len(players))
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, p.ID); err != ErrPlayerNotFound {
		t.Errorf("Get after delete: err = %v, want ErrPlayerNotFound", err)
	}
}

func TestPlayerNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.PlayerRepo().Get(ctx, "missing"); err != ErrPlayerNotFound {
		t.Errorf("err = %v, want ErrPlayerNotFound", err)
	}
	if _, err := s.PlayerRepo().Update(ctx, "missing", "x"); err != ErrPlayerNotFound {
		t.Errorf("Update err = %v, want ErrPlayerNotFound", err)
	}
	if err := s.PlayerRepo().Delete(ctx, "missing"); err != ErrPlayerNotFound {
		t.Errorf("Delete err = %v, want ErrPlayerNotFound", err)
	}
}

func TestArchiveQuestionDedup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.QuestionRepo()

	if err := repo.ArchiveQuestion(ctx, "What is the capital of Peru?", "Lima"); err != nil {
		t.Fatalf("ArchiveQuestion: %v", err)
	}
	// Same question text again: ignored, first answer kept.
	if err := repo.ArchiveQuestion(ctx, "What is the capital of Peru?", "Cusco"); err != nil {
		t.Fatalf("ArchiveQuestion dup: %v", err)
	}
	if err := repo.ArchiveQuestion(ctx, "What is the largest planet?", "Jupiter"); err != nil {
		t.Fatalf("ArchiveQuestion: %v", err)
	}

	qs, err := repo.RecentQuestions(ctx, 10)
	if err != nil {
		t.Fatalf("RecentQuestions: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d archived questions, want 2", len(qs))
	}
	if qs[0].Answer != "Lima" {
		t.Errorf("answer = %q, want original Lima", qs[0].Answer)
	}
}

func TestRecentQuestionsKeepsNewest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.QuestionRepo()

	for _, q := range []string{"q1", "q2", "q3", "q4"} {
		if err := repo.ArchiveQuestion(ctx, q, strings.ToUpper(q)); err != nil {
			t.Fatalf("ArchiveQuestion: %v", err)
		}
	}
	qs, err := repo.RecentQuestions(ctx, 2)
	if err != nil {
		t.Fatalf("RecentQuestions: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Question != "q3" || qs[1].Question != "q4" {
		t.Errorf("got %v, want q3 then q4", qs)
	}
}
