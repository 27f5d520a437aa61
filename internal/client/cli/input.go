package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/travelplanner/internal/client/models"
	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for the x/term calls.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// getSimpleText, getPassword and confirm are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirm       = Confirm
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

// GetPassword reads a password without echo when stdin is a terminal and
// falls back to a plain line from reader otherwise (piped input).
func GetPassword(reader *bufio.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return readLine(reader)
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// Confirm asks a yes/no question. Only "y" and "yes" confirm.
func Confirm(reader *bufio.Reader, question string, w io.Writer) (bool, error) {
	if _, err := fmt.Fprint(w, question+" [y/N] "); err != nil {
		return false, err
	}
	answer, err := readLine(reader)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// GetCountry lists models.Countries and accepts either a number from the
// list or a country name. An empty answer returns current.
func GetCountry(reader *bufio.Reader, current string, w io.Writer) (string, error) {
	fmt.Fprintln(w, "Country:")
	for i, c := range models.Countries {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, c)
	}
	prompt := "Select a country"
	if current != "" {
		prompt += fmt.Sprintf(" [%s]", current)
	}
	answer, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(models.Countries) {
		return models.Countries[n-1], nil
	}
	for _, c := range models.Countries {
		if strings.EqualFold(c, answer) {
			return c, nil
		}
	}
	return answer, nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
