package transfer

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// PromptFunc asks the operator for a secret and returns the entered value.
type PromptFunc func(prompt string) (string, error)

// TerminalPrompt reads a secret from the controlling terminal with echo
// disabled. The prompt itself goes to stderr so stdout stays a clean
// transcript.
func TerminalPrompt(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return string(secret), nil
}
