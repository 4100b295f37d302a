package triviagen

import (
	"errors"
	"testing"
)

func TestParseQA_Strict(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		question string
		answer   string
	}{
		{
			name:     "two lines",
			raw:      "Question: What is the capital of Peru?\nAnswer: Lima",
			question: "What is the capital of Peru?",
			answer:   "Lima",
		},
		{
			name:     "single line",
			raw:      "Question: What is the capital of Peru? Answer: Lima",
			question: "What is the capital of Peru?",
			answer:   "Lima",
		},
		{
			name:     "lowercase labels",
			raw:      "question: 2 + 2? answer: 4",
			question: "2 + 2?",
			answer:   "4",
		},
		{
			name:     "surrounding whitespace",
			raw:      "  \nQuestion:   Who painted the Mona Lisa?  \n\nAnswer:   Leonardo da Vinci  \n",
			question: "Who painted the Mona Lisa?",
			answer:   "Leonardo da Vinci",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, a, err := ParseQA(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q != tt.question {
				t.Errorf("question = %q, want %q", q, tt.question)
			}
			if a != tt.answer {
				t.Errorf("answer = %q, want %q", a, tt.answer)
			}
		})
	}
}

func TestParseQA_Loose(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		question string
		answer   string
	}{
		{
			name:     "missing question label",
			raw:      "What is the capital of Peru?\nAnswer: Lima",
			question: "What is the capital of Peru?",
			answer:   "Lima",
		},
		{
			name:     "preamble before labels",
			raw:      "Sure! Here is one.\nWhat is the largest planet?\nAnswer: Jupiter",
			question: "Sure! Here is one.\nWhat is the largest planet?",
			answer:   "Jupiter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, a, err := ParseQA(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q != tt.question {
				t.Errorf("question = %q, want %q", q, tt.question)
			}
			if a != tt.answer {
				t.Errorf("answer = %q, want %q", a, tt.answer)
			}
		})
	}
}

func TestParseQA_AnswerLabelInAnswer(t *testing.T) {
	// A second "Answer:" occurrence stays inside the answer text.
	q, a, err := ParseQA("Question: Which label ends a reply? Answer: Answer: itself")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "Which label ends a reply?" {
		t.Errorf("question = %q", q)
	}
	if a != "Answer: itself" {
		t.Errorf("answer = %q", a)
	}
}

func TestParseQA_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   \n  "},
		{"no answer label", "Question: What is the capital of Peru? Lima"},
		{"empty answer", "Question: What is the capital of Peru?\nAnswer:"},
		{"empty question", "Question:\nAnswer: Lima"},
		{"label only", "Answer:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseQA(tt.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("expected *ParseError, got %T", err)
			}
		})
	}
}
