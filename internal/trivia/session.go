package trivia

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultPlayerID is the bucket used when a caller does not identify the
// player. All anonymous callers share this bucket.
const DefaultPlayerID = "default"

// Session holds the state of one trivia game: the single active
// question/answer pair plus per-player counters. A process can run any
// number of independent sessions; each is owned by exactly one Engine.
type Session struct {
	mu sync.Mutex

	// id is the session UUID, assigned at creation.
	id string

	// defaultPlayer is substituted for empty player ids.
	defaultPlayer string

	// current is the active question, nil when no question has been armed.
	// Question and answer are always set (and cleared) together.
	current *QuestionRecord

	// scores counts correct answers per player id.
	scores map[string]int

	// progress counts answered questions per player id, correct or not.
	progress map[string]int
}

// NewSession creates an empty session. defaultPlayer is used for callers
// that omit a player id; pass "" to use DefaultPlayerID.
func NewSession(defaultPlayer string) *Session {
	if defaultPlayer == "" {
		defaultPlayer = DefaultPlayerID
	}
	return &Session{
		id:            uuid.NewString(),
		defaultPlayer: defaultPlayer,
		scores:        make(map[string]int),
		progress:      make(map[string]int),
	}
}

// ID returns the session UUID.
func (s *Session) ID() string { return s.id }

// resolvePlayer maps an empty player id to the session default.
func (s *Session) resolvePlayer(playerID string) string {
	if playerID == "" {
		return s.defaultPlayer
	}
	return playerID
}

// SetCurrent arms rec as the active question, replacing any previous one.
// The previous question's answer eligibility is silently discarded.
func (s *Session) SetCurrent(rec QuestionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &rec
}

// Current returns the active question, or (QuestionRecord{}, false) when
// no question is armed.
func (s *Session) Current() (QuestionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return QuestionRecord{}, false
	}
	return *s.current, true
}

// RecordAnswer bumps the player's progress counter and, when correct is
// true, the score counter. Both updates happen in one critical section.
func (s *Session) RecordAnswer(playerID string, correct bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	playerID = s.resolvePlayer(playerID)
	s.progress[playerID]++
	if correct {
		s.scores[playerID]++
	}
}

// Score returns the player's correct-answer count and total answered
// count. Unseen players report (0, 0).
func (s *Session) Score(playerID string) (score, answered int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	playerID = s.resolvePlayer(playerID)
	return s.scores[playerID], s.progress[playerID]
}

// Players returns the ids of every player that has answered at least once.
func (s *Session) Players() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.progress))
	for id := range s.progress {
		out = append(out, id)
	}
	return out
}
