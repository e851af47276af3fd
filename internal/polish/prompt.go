package polish

import "fmt"

// BuildSystemPrompt generates the system prompt for transcript cleanup
func BuildSystemPrompt(cfg Config) string {
	var tasks []string

	if cfg.AddPunctuation {
		tasks = append(tasks, "Add proper punctuation")
	}
	if cfg.FixGrammar {
		tasks = append(tasks, "Fix grammar errors")
	}
	if cfg.RemoveFillerWords {
		tasks = append(tasks, "Remove filler words (um, uh, like, you know, etc.)")
	}

	// If no tasks, just clean up generally
	if len(tasks) == 0 {
		tasks = append(tasks, "Clean up the text while preserving meaning")
	}

	prompt := "You are a text cleanup assistant. Your job is to clean up speech-to-text transcriptions.\n\n"
	prompt += "Tasks:\n"
	for _, task := range tasks {
		prompt += fmt.Sprintf("- %s\n", task)
	}

	prompt += "\nRules:\n"
	prompt += "- Preserve the original meaning and intent\n"
	prompt += "- Keep the same language as the input\n"
	prompt += "- Do not add any new information\n"
	prompt += "- Output ONLY the cleaned text, nothing else\n"
	prompt += "- If the input is empty or nonsensical, return it as-is\n"

	return prompt
}
