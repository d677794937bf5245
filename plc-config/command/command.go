// Package command interprets the command language shared by the TUI
// command bar and batch scripts.
package command

import (
	"errors"
	"fmt"
	"strings"

	"plc-tools/plc-config/session"
)

// Outcome describes what a command did.
type Outcome struct {
	Active   session.Calculator // calculator selected after the command
	Computed bool               // a calculation ran, successfully or not
	Show     bool               // the caller should print the active form
	Quit     bool
	Message  string
	Err      error
}

// Help lists the command vocabulary.
const Help = `set <field> <value>   (s)  change a field of the active calculator
calc                  (c)  compute the active calculator
analog | digital      (a|d) switch calculator
show                       print the active form
reset                      restore the active form defaults
quit                  (q)  leave`

// Tokenize splits a command line on spaces, keeping double-quoted runs together.
func Tokenize(input string) []string {
	var parts []string
	var inQuote bool
	var currentPart []rune
	for _, r := range input {
		if r == '"' {
			inQuote = !inQuote
		} else if r == ' ' && !inQuote {
			if len(currentPart) > 0 {
				parts = append(parts, string(currentPart))
				currentPart = []rune{}
			}
		} else {
			currentPart = append(currentPart, r)
		}
	}
	if len(currentPart) > 0 {
		parts = append(parts, string(currentPart))
	}
	return parts
}

// Execute runs one command line against the session with active as the
// currently selected calculator. An empty line is a no-op.
func Execute(s *session.Session, active session.Calculator, line string) Outcome {
	out := Outcome{Active: active}
	parts := Tokenize(strings.TrimSpace(line))
	if len(parts) == 0 {
		return out
	}
	command := strings.ToLower(parts[0])
	switch command {
	case "set", "s":
		if len(parts) < 3 {
			out.Err = errors.New("'set' requires a field and a value")
			return out
		}
		value := strings.Join(parts[2:], " ")
		if err := s.Set(active, parts[1], value); err != nil {
			out.Err = err
			return out
		}
		out.Message = fmt.Sprintf("%s %s = %s", active, parts[1], value)
	case "calc", "c", "run":
		out.Computed = true
		out.Err = s.Run(active)
		if out.Err == nil {
			out.Message = fmt.Sprintf("%s computed", active)
		}
	case "analog", "a":
		out.Active = session.Analog
		out.Message = "Analog calculator selected"
	case "digital", "d":
		out.Active = session.Digital
		out.Message = "Digital calculator selected"
	case "show", "p", "print":
		out.Show = true
	case "reset":
		s.Reset(active)
		out.Message = fmt.Sprintf("%s form reset to defaults", active)
	case "help", "h", "?":
		out.Message = Help
	case "quit", "q", "exit":
		out.Quit = true
	default:
		out.Err = fmt.Errorf("unknown command '%s'", command)
	}
	return out
}
