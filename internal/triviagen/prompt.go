package triviagen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a trivia host writing general-knowledge questions for a casual quiz game.

Rules:
- Generate a single trivia question with a short, unambiguous answer.
- The answer must be a word or short phrase, never a full sentence.
- Vary the topic: history, geography, science, sports, arts, pop culture.
- The question must be self-contained and answerable without extra context.
- Do not repeat any question from the "already asked" list.
- Reply with exactly two labeled lines and nothing else:

Question: <the question>
Answer: <the answer>`

const systemPromptJSON = `You are a trivia host writing general-knowledge questions for a casual quiz game.

Rules:
- Generate a single trivia question with a short, unambiguous answer.
- The answer must be a word or short phrase, never a full sentence.
- Vary the topic: history, geography, science, sports, arts, pop culture.
- The question must be self-contained and answerable without extra context.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from the already-asked
// list and Config limits.
func buildUserMessage(asked []string, cfg Config) string {
	var b strings.Builder
	b.WriteString("Write one new trivia question.\n")
	b.WriteString("\nAlready asked:\n")
	b.WriteString(buildAsked(asked, cfg.MaxAskedQuestions))
	return b.String()
}

// buildAsked formats already-asked questions for the prompt, respecting
// the max limit. Returns "None" if there are no prior questions.
func buildAsked(asked []string, max int) string {
	if len(asked) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(asked) > max {
		asked = asked[len(asked)-max:]
	}

	var b strings.Builder
	for i, q := range asked {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
