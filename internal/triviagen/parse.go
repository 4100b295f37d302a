package triviagen

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseError indicates the model reply did not contain a recognizable
// question/answer pair. Raw carries the reply for logging.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse generated question: %s", e.Reason)
}

// strictQA matches the canonical two-label reply format. Case-insensitive,
// labels may sit on the same line or separate lines.
var strictQA = regexp.MustCompile(`(?is)question:\s*(.+?)\s*answer:\s*(.+?)\s*$`)

// ParseQA extracts a question and answer from a model reply. It tries the
// strict "Question: ... Answer: ..." form first, then falls back to
// splitting on the first "Answer:" label anywhere in the text. Models
// sometimes drop the leading "Question:" label or wrap the reply in
// pleasantries; the loose pass tolerates both.
func ParseQA(raw string) (question, answer string, err error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", "", &ParseError{Raw: raw, Reason: "empty reply"}
	}

	if m := strictQA.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), nil
	}

	q, a, ok := splitOnAnswer(text)
	if !ok {
		return "", "", &ParseError{Raw: raw, Reason: `no "Answer:" label found`}
	}
	if q == "" {
		return "", "", &ParseError{Raw: raw, Reason: "question text is empty"}
	}
	if a == "" {
		return "", "", &ParseError{Raw: raw, Reason: "answer text is empty"}
	}
	return q, a, nil
}

// splitOnAnswer cuts the text at the first case-insensitive "answer:"
// label. Everything before it (minus a leading "question:" label) is the
// question; everything after is the answer, including any further labels.
func splitOnAnswer(text string) (question, answer string, ok bool) {
	idx := strings.Index(strings.ToLower(text), "answer:")
	if idx < 0 {
		return "", "", false
	}

	question = strings.TrimSpace(text[:idx])
	answer = strings.TrimSpace(text[idx+len("answer:"):])

	if len(question) >= len("question:") && strings.EqualFold(question[:len("question:")], "question:") {
		question = strings.TrimSpace(question[len("question:"):])
	}
	return question, answer, true
}
