package trivia

import (
	"math/rand/v2"
	"sync"
)

// DefaultStoreSize is the capacity used by NewStore when no size is given.
const DefaultStoreSize = 100

// QuestionRecord is a single question/answer pair. Records are immutable
// once stored; two records are the same question when their Question text
// is byte-identical.
type QuestionRecord struct {
	Question string
	Answer   string
}

// Store is a bounded, deduplicated, insertion-ordered bank of past
// question/answer pairs. It serves as the fallback question source when
// live generation is unavailable. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	maxSize int
	records []QuestionRecord
	seen    map[string]struct{}
}

// NewStore creates a Store with the given capacity.
// A maxSize <= 0 falls back to DefaultStoreSize.
func NewStore(maxSize int) *Store {
	if maxSize <= 0 {
		maxSize = DefaultStoreSize
	}
	return &Store{
		maxSize: maxSize,
		seen:    make(map[string]struct{}),
	}
}

// Add appends a record unless a record with the same question text already
// exists, in which case it is a no-op (the first-stored answer wins, even
// if the new answer differs). When the store is full the oldest record is
// evicted to make room.
func (s *Store) Add(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.seen[question]; dup {
		return
	}

	s.records = append(s.records, QuestionRecord{Question: question, Answer: answer})
	s.seen[question] = struct{}{}

	if len(s.records) > s.maxSize {
		evicted := s.records[0]
		s.records = s.records[1:]
		delete(s.seen, evicted.Question)
	}
}

// PickRandom returns a uniformly random record from the current contents.
// The second return is false when the store is empty.
func (s *Store) PickRandom() (QuestionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return QuestionRecord{}, false
	}
	return s.records[rand.IntN(len(s.records))], true
}

// Len returns the number of records currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Questions returns the question texts in insertion order. Used to build
// the "already asked" context for generation prompts.
func (s *Store) Questions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = r.Question
	}
	return out
}
