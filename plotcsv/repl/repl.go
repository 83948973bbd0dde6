// Package repl runs the interactive plotcsv loop on top of readline.
package repl

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lmika/plotcsv/plotcsv"
)

type Config struct {
	// Args are the positional arguments: nothing, a CSV file or a script.
	Args []string

	// Stdin, Stdout and Stderr default to the process streams. A non-nil
	// Stdin is read as a plain stream rather than a terminal.
	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer

	HistoryFile string
	PromptLabel string

	// Open starts the plotter. Run closes it.
	Open func() (plotcsv.Plotter, error)
}

// LineReader reads command lines. *readline.Instance is one.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Run starts a session and reads commands until it stops, returning the exit
// status: 0 on quit or end of input, 1 if the plotter or a startup script
// cannot be opened, 2 on bad arguments. An opened plotter is always closed.
func Run(cfg Config) int {
	stdout, stderr := cfg.Stdout, cfg.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := log.New(stderr, "plotcsv: ", 0)

	if len(cfg.Args) > 1 {
		logger.Printf("usage: plotcsv [flags] [file.csv | script%s]", plotcsv.ScriptSuffix)
		return 2
	}

	plt, err := cfg.Open()
	if err != nil {
		logger.Print(err)
		return 1
	}
	defer func() {
		if err := plt.Close(); err != nil {
			logger.Printf("closing plotter: %v", err)
		}
	}()

	rlCfg := &readline.Config{
		Prompt:      plotcsv.DefaultPrompt,
		HistoryFile: cfg.HistoryFile,
		Stdout:      stdout,
		Stderr:      stderr,
	}
	if cfg.Stdin != nil {
		rlCfg.Stdin = cfg.Stdin
		rlCfg.FuncIsTerminal = func() bool { return false }
		rlCfg.FuncMakeRaw = func() error { return nil }
		rlCfg.FuncExitRaw = func() error { return nil }
		rlCfg.FuncGetWidth = func() int { return 80 }
		rlCfg.FuncOnWidthChanged = func(func()) {}
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		logger.Print(err)
		return 1
	}
	defer rl.Close()

	opts := []plotcsv.SessionOption{
		plotcsv.WithPlotter(plt),
		plotcsv.WithHistory(rl),
		plotcsv.WithPromptLabel(cfg.PromptLabel),
		plotcsv.WithOut(stdout),
		plotcsv.WithErrOut(stderr),
	}

	var scriptFile string
	if len(cfg.Args) == 1 {
		if arg := cfg.Args[0]; plotcsv.IsScriptFile(arg) {
			scriptFile = arg
		} else {
			opts = append(opts, plotcsv.WithCSVFile(arg))
		}
	}

	session := plotcsv.New(opts...)
	ctx := context.Background()

	if scriptFile != "" {
		state, err := session.RunScript(ctx, scriptFile)
		if err != nil {
			logger.Printf("cannot run script: %v", err)
			return 1
		}
		if state == plotcsv.Stopped {
			return 0
		}
	}

	Loop(ctx, session, rl, logger)
	return 0
}

// Loop dispatches lines from lr until the session stops or input ends.
// Blank lines are skipped and command errors are logged.
func Loop(ctx context.Context, session *plotcsv.Session, lr LineReader, logger *log.Logger) plotcsv.State {
	state := session.State()
	for state == plotcsv.Running {
		lr.SetPrompt(session.Prompt())

		line, err := lr.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if err != nil { // io.EOF
			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		state, err = session.Dispatch(ctx, line)
		if err != nil {
			logger.Print(err)
		}
	}
	return state
}

func DefaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".plotcsv_history")
}
