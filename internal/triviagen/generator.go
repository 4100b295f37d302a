package triviagen

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/askelan/quizd/internal/llm"
	"github.com/askelan/quizd/internal/trivia"
)

// Length caps on generated content. Replies beyond these are treated as
// parse failures so the engine falls back to its bank.
const (
	maxQuestionLen = 500
	maxAnswerLen   = 200
)

// LLMGenerator produces trivia questions using an LLM provider. It
// implements trivia.Generator.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// triviaOutput is the raw structured response before validation.
type triviaOutput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Generate produces a single question/answer pair, avoiding the texts in
// asked. The reply is parsed and validated; a malformed reply returns a
// *ParseError and the caller decides how to recover.
func (g *LLMGenerator) Generate(ctx context.Context, asked []string) (trivia.QuestionRecord, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(asked, g.config)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}
	if g.config.UseSchema {
		req.System = systemPromptJSON
		req.Schema = TriviaSchema
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return trivia.QuestionRecord{}, fmt.Errorf("LLM generation failed: %w", err)
	}

	var question, answer string
	if g.config.UseSchema {
		var raw triviaOutput
		if err := json.Unmarshal(resp.Content, &raw); err != nil {
			return trivia.QuestionRecord{}, &ParseError{Raw: string(resp.Content), Reason: err.Error()}
		}
		question, answer = raw.Question, raw.Answer
	} else {
		question, answer, err = ParseQA(string(resp.Content))
		if err != nil {
			return trivia.QuestionRecord{}, err
		}
	}

	rec := trivia.QuestionRecord{Question: question, Answer: answer}
	if err := validate(rec); err != nil {
		return trivia.QuestionRecord{}, err
	}
	return rec, nil
}

// validate enforces structural limits on a parsed pair.
func validate(rec trivia.QuestionRecord) error {
	if rec.Question == "" {
		return &ParseError{Reason: "question text is empty"}
	}
	if rec.Answer == "" {
		return &ParseError{Raw: rec.Question, Reason: "answer text is empty"}
	}
	if utf8.RuneCountInString(rec.Question) > maxQuestionLen {
		return &ParseError{Raw: rec.Question, Reason: fmt.Sprintf("question exceeds %d characters", maxQuestionLen)}
	}
	if utf8.RuneCountInString(rec.Answer) > maxAnswerLen {
		return &ParseError{Raw: rec.Answer, Reason: fmt.Sprintf("answer exceeds %d characters", maxAnswerLen)}
	}
	return nil
}
