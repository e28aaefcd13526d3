package dialogue

import "github.com/abhisek/studygroup/internal/llm"

// QuestionSchema defines the JSON shape for LLM question generation. Keeping
// it structured stops the model from wrapping the question in prose.
var QuestionSchema = &llm.Schema{
	Name:        "study-question",
	Description: "A single short coding or concept question for a study-group session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question as shown to the group. Precise and testable; names a function or an explicit task.",
			},
		},
		"required":             []any{"question_text"},
		"additionalProperties": false,
	},
}
