package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadSecretValue prompts the user for a secret value without echoing input.
// Returns an error if stdin is not a terminal.
func ReadSecretValue(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read secret value: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	value, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read secret value: %w", err)
	}

	return value, nil
}

// ReadMenuSelection reads a line of input and parses it as a menu selection.
// Accepts a 1-based item number, "a" for all, or "q" to quit.
// Returns (index, all, quit).
func ReadMenuSelection(prompt string) (int, bool, bool, error) {
	fmt.Fprint(os.Stderr, prompt)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, false, false, fmt.Errorf("failed to read selection: %w", err)
	}

	line = strings.TrimSpace(strings.ToLower(line))
	switch line {
	case "a", "all":
		return 0, true, false, nil
	case "q", "quit", "":
		return 0, false, true, nil
	}

	var index int
	if _, err := fmt.Sscanf(line, "%d", &index); err != nil {
		return 0, false, false, fmt.Errorf("invalid selection %q", line)
	}
	return index, false, false, nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
