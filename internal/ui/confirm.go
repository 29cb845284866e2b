package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdin io.Reader = os.Stdin

// Confirm prompts the user with a yes/no question. Returns true for yes.
func Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", StyleWarning.Render(prompt))
	return isYes(readLine())
}

// ConfirmDanger is like Confirm but styled with the error color (for destructive actions).
func ConfirmDanger(prompt string) bool {
	fmt.Printf("%s [y/N]: ", StyleError.Render("⚠ "+prompt))
	return isYes(readLine())
}

// PromptInput asks for a single line of visible input.
func PromptInput(prompt string) string {
	fmt.Printf("%s: ", StyleAccent.Render(prompt))
	return strings.TrimSpace(readLine())
}

// PromptSecret asks for input without echo when stdin is a terminal. Piped
// input is read as a plain line so scripts can feed a mnemonic.
func PromptSecret(prompt string) (string, error) {
	fmt.Printf("%s: ", StyleAccent.Render(prompt))
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return strings.TrimSpace(readLine()), nil
}

func readLine() string {
	line, _ := bufio.NewReader(stdin).ReadString('\n')
	return line
}

func isYes(line string) bool {
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}
