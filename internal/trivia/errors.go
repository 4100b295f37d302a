package trivia

import "errors"

var (
	// ErrNoActiveQuestion means an answer arrived before any question was
	// requested. The caller should request a question first.
	ErrNoActiveQuestion = errors.New("no active question: request a question first")

	// ErrNoQuestionAvailable means generation failed and the fallback bank
	// is empty, so there is no question to serve anywhere.
	ErrNoQuestionAvailable = errors.New("no question available")

	// ErrEmptyAnswer means the submitted answer was missing or blank.
	ErrEmptyAnswer = errors.New("answer must not be empty")
)
