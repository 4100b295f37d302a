package trivia

import (
	"context"
	"log"
	"strings"
)

// Generator produces a fresh question/answer pair. asked carries the
// question texts already in the bank so the generator can avoid repeats.
// Implementations may fail with network or parse errors; the Engine
// recovers by falling back to its stored bank.
type Generator interface {
	Generate(ctx context.Context, asked []string) (QuestionRecord, error)
}

// Archiver persists successfully generated questions. Archiving is
// best-effort; failures are logged, never surfaced to players.
type Archiver interface {
	ArchiveQuestion(ctx context.Context, question, answer string) error
}

// Result describes the outcome of one answer submission.
type Result struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Submitted string `json:"submitted"`
	Correct   bool   `json:"correct"`
}

// Engine orchestrates one trivia game: it owns the session and the
// fallback bank, calls the generator for fresh questions, and grades
// submissions. The session and bank are never mutated by anyone else.
type Engine struct {
	session  *Session
	bank     *Store
	gen      Generator
	archiver Archiver
}

// NewEngine creates an Engine around an empty session. gen may be nil
// when no generator is configured; the engine then serves only from the
// bank. archiver may be nil to disable persistence.
func NewEngine(bank *Store, gen Generator, archiver Archiver, defaultPlayer string) *Engine {
	return &Engine{
		session:  NewSession(defaultPlayer),
		bank:     bank,
		gen:      gen,
		archiver: archiver,
	}
}

// Session exposes the engine's session for read-side consumers (the
// report page). Mutation stays inside the engine.
func (e *Engine) Session() *Session { return e.session }

// Bank exposes the fallback bank for read-side consumers.
func (e *Engine) Bank() *Store { return e.bank }

// NextQuestion arms a new question and returns its text. It asks the
// generator first; on any generator failure it falls back to a random
// record from the bank, arming both the question and answer from the
// picked record so grading stays consistent. With no generator result
// and an empty bank it fails with ErrNoQuestionAvailable, leaving the
// session unchanged.
//
// The generator call happens outside the session lock: a stalled
// generator blocks only this caller, never SubmitAnswer or Score.
func (e *Engine) NextQuestion(ctx context.Context) (string, error) {
	if e.gen != nil {
		rec, err := e.gen.Generate(ctx, e.bank.Questions())
		if err == nil {
			e.bank.Add(rec.Question, rec.Answer)
			e.session.SetCurrent(rec)
			e.archive(ctx, rec)
			return rec.Question, nil
		}
		log.Printf("question generation failed, using stored bank: %v", err)
	}

	rec, ok := e.bank.PickRandom()
	if !ok {
		return "", ErrNoQuestionAvailable
	}
	e.session.SetCurrent(rec)
	return rec.Question, nil
}

// SubmitAnswer grades the submitted answer against the active question.
// An empty submission is a caller error. With no active question it
// fails with ErrNoActiveQuestion and no counters move. Otherwise the
// player's progress counter always increments and the score counter
// increments on a correct answer. There is no answered-already lock:
// resubmitting re-grades and re-counts, and the question stays active.
func (e *Engine) SubmitAnswer(playerID, submitted string) (Result, error) {
	if strings.TrimSpace(submitted) == "" {
		return Result{}, ErrEmptyAnswer
	}

	current, ok := e.session.Current()
	if !ok {
		return Result{}, ErrNoActiveQuestion
	}

	correct := Grade(submitted, current.Answer)
	e.session.RecordAnswer(playerID, correct)

	return Result{
		Question:  current.Question,
		Answer:    current.Answer,
		Submitted: submitted,
		Correct:   correct,
	}, nil
}

// Score returns the player's correct count and answered count, (0, 0)
// for players that have never answered.
func (e *Engine) Score(playerID string) (score, answered int) {
	return e.session.Score(playerID)
}

func (e *Engine) archive(ctx context.Context, rec QuestionRecord) {
	if e.archiver == nil {
		return
	}
	if err := e.archiver.ArchiveQuestion(ctx, rec.Question, rec.Answer); err != nil {
		log.Printf("warning: failed to archive question: %v", err)
	}
}
