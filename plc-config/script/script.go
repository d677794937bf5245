// Package script runs a command file against a session without the TUI.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"plc-tools/plc-config/command"
	"plc-tools/plc-config/format"
	"plc-tools/plc-config/session"
)

// Run executes one command per line from r, writing results to w. Blank lines
// and '#' comments are skipped; a failing line is reported and the script
// carries on. It returns the number of failed lines.
func Run(r io.Reader, w io.Writer, s *session.Session, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Script started")

	active := session.Analog
	failed := 0
	lineNumber := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		logger.Debug("Executing script line", zap.Int("line", lineNumber), zap.String("text", line))

		out := command.Execute(s, active, line)
		active = out.Active
		switch {
		case out.Err != nil:
			failed++
			logger.Warn("Script line failed", zap.Int("line", lineNumber), zap.Error(out.Err))
			fmt.Fprintf(w, "line %d: %s\n", lineNumber, format.Error(out.Err))
		case out.Computed:
			writeResult(w, active, s.Snapshot())
		case out.Show:
			writeParams(w, active, s.Snapshot())
		case out.Message == command.Help:
			fmt.Fprintln(w, command.Help)
		}
		if out.Quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("reading script: %w", err)
	}
	logger.Info("Script finished", zap.Int("lines", lineNumber), zap.Int("failed", failed))
	return failed, nil
}

func writeResult(w io.Writer, c session.Calculator, snap session.Snapshot) {
	var lines []format.Line
	switch c {
	case session.Analog:
		if snap.LastAnalog == nil {
			return
		}
		lines = append(format.AnalogLines(*snap.LastAnalog), format.AnalogPreview(snap.AnalogFrom, *snap.LastAnalog)...)
	case session.Digital:
		if snap.LastDigital == nil {
			return
		}
		lines = format.DigitalLines(*snap.LastDigital)
	}
	fmt.Fprintf(w, "[%s]\n", c)
	for _, l := range lines {
		fmt.Fprintf(w, "  %-26s %s\n", l.Label+":", l.Value)
	}
}

func writeParams(w io.Writer, c session.Calculator, snap session.Snapshot) {
	params := snap.AnalogParams
	if c == session.Digital {
		params = snap.DigitalParams
	}
	fmt.Fprintf(w, "[%s form]\n", c)
	for _, p := range params {
		fmt.Fprintf(w, "  %-26s %s\n", fmt.Sprintf("%s (%s):", p.Name, p.Alias), p.Value)
	}
}
