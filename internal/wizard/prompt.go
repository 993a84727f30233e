package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Asker reads one-line answers from an injected reader and writes prompt
// text to an injected writer. Production code hands it os.Stdin/os.Stdout;
// tests hand it a scripted strings.Reader and a bytes.Buffer.
type Asker struct {
	in  *bufio.Reader
	out io.Writer
}

// NewAsker wraps r and w in an Asker.
func NewAsker(r io.Reader, w io.Writer) *Asker {
	return &Asker{in: bufio.NewReader(r), out: w}
}

// Ask presents prompt (with def shown inline when non-empty) and reads one
// line. An empty answer yields def, so pressing enter accepts the shown
// default.
func (a *Asker) Ask(prompt, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(a.out, "%s (%s): ", prompt, def)
	} else {
		fmt.Fprintf(a.out, "%s: ", prompt)
	}

	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// AskUntilValid asks for an answer and runs it through validate, printing
// the rejection and asking again until an answer is accepted. It never
// gives up; cancellation is external (^C). Only a console read failure
// aborts it.
func AskUntilValid[T any](a *Asker, prompt, def string, validate func(string) (T, error)) (T, error) {
	for {
		answer, err := a.Ask(prompt, def)
		if err != nil {
			var zero T
			return zero, err
		}
		v, verr := validate(answer)
		if verr != nil {
			fmt.Fprintln(a.out, verr)
			continue
		}
		return v, nil
	}
}

// Select presents a numbered list of items and reads a selection, retrying
// on out-of-range or non-numeric input. An empty answer yields def
// (zero-based). The returned index is zero-based.
func (a *Asker) Select(prompt string, items []string, def int) (int, error) {
	for {
		fmt.Fprintf(a.out, "%s:\n", prompt)
		for i, item := range items {
			fmt.Fprintf(a.out, "  %d) %s\n", i+1, item)
		}
		fmt.Fprintf(a.out, "Enter number [1-%d] (%d): ", len(items), def+1)

		line, err := a.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return 0, fmt.Errorf("reading selection: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def, nil
		}

		num, err := strconv.Atoi(line)
		if err != nil || num < 1 || num > len(items) {
			fmt.Fprintf(a.out, "invalid selection %q: choose 1-%d\n", line, len(items))
			continue
		}
		return num - 1, nil
	}
}

// Confirm asks a yes/no question, retrying on unrecognized input. An empty
// answer yields def.
func (a *Asker) Confirm(prompt string, def bool) (bool, error) {
	hint := "yes"
	if !def {
		hint = "no"
	}
	for {
		fmt.Fprintf(a.out, "%s (%s): ", prompt, hint)

		line, err := a.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(a.out, "please answer yes or no")
		}
	}
}
