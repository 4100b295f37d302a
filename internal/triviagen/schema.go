package triviagen

import "github.com/askelan/quizd/internal/llm"

// TriviaSchema defines the JSON schema for structured question generation.
var TriviaSchema = &llm.Schema{
	Name:        "trivia-question",
	Description: "A single trivia question with its short answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The trivia question shown to the player, self-contained plain text",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer as a word or short phrase",
			},
		},
		"required":             []any{"question", "answer"},
		"additionalProperties": false,
	},
}
