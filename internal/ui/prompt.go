package ui

import (
	"os"

	survey "github.com/AlecAivazis/survey/v2"
)

// Confirm asks the user a yes/no question. The answer and the question are
// echoed into the log so non-interactive transcripts stay readable.
func (l *Logger) Confirm(question string, def bool) (bool, error) {
	l.Debug("PROMPT: %s", question)

	answer := def
	prompt := &survey.Confirm{
		Message: question,
		Default: def,
	}

	// Keep log lines from interleaving with the prompt.
	restore := l.MuteStdout()
	err := survey.AskOne(
		prompt,
		&answer,
		survey.WithStdio(os.Stdin, os.Stdout, os.Stderr),
	)
	restore()
	if err != nil {
		return false, err
	}

	l.Debug("ANSWER: %v", answer)
	return answer, nil
}
