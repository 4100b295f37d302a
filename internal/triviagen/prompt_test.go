package triviagen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage_NoPriorQuestions(t *testing.T) {
	msg := buildUserMessage(nil, DefaultConfig())
	if !strings.Contains(msg, "Already asked:\nNone") {
		t.Errorf("expected None for empty asked list, got:\n%s", msg)
	}
}

func TestBuildUserMessage_ListsAskedQuestions(t *testing.T) {
	msg := buildUserMessage([]string{"q one", "q two"}, DefaultConfig())
	if !strings.Contains(msg, "1. q one") || !strings.Contains(msg, "2. q two") {
		t.Errorf("asked questions missing from prompt:\n%s", msg)
	}
}

func TestBuildAsked_RespectsMax(t *testing.T) {
	asked := []string{"a", "b", "c", "d", "e"}
	got := buildAsked(asked, 3)

	if strings.Contains(got, "a") || strings.Contains(got, "b") {
		t.Errorf("oldest questions should be dropped, got:\n%s", got)
	}
	// Numbering restarts for the kept window.
	if !strings.Contains(got, "1. c") || !strings.Contains(got, "3. e") {
		t.Errorf("expected most recent 3 questions, got:\n%s", got)
	}
}

func TestBuildAsked_ZeroMaxKeepsAll(t *testing.T) {
	got := buildAsked([]string{"a", "b"}, 0)
	if !strings.Contains(got, "1. a") || !strings.Contains(got, "2. b") {
		t.Errorf("expected all questions kept, got:\n%s", got)
	}
}
