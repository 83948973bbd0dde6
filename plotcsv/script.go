package plotcsv

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

const ScriptSuffix = ".pc"

func IsScriptFile(path string) bool {
	return strings.HasSuffix(path, ScriptSuffix)
}

// RunScript dispatches each command of the script at path in quiet mode.
// Blank lines and lines starting with '#' are skipped. A failing command is
// reported to the error writer and the script carries on. The script ends at
// EOF or when a command stops the session.
func (s *Session) RunScript(ctx context.Context, path string) (State, error) {
	f, err := s.openFile(path)
	if err != nil {
		return s.state, fileNotFound(err)
	}
	defer f.Close()

	fmt.Fprintf(s.Out(), "Reading %s...\n", path)

	wasQuiet := s.quiet
	s.quiet = true
	defer func() { s.quiet = wasQuiet }()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return s.state, err
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}

		if s.history != nil {
			if err := s.history.SaveHistory(line); err != nil {
				fmt.Fprintf(s.ErrOut(), "%s:%d: history: %v\n", path, lineNo, err)
			}
		}

		state, err := s.Dispatch(ctx, line)
		if err != nil {
			fmt.Fprintf(s.ErrOut(), "%s:%d: %v\n", path, lineNo, err)
		}
		if state == Stopped {
			return state, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return s.state, fmt.Errorf("%s: %w", path, err)
	}
	return s.state, nil
}
