package plotcsv

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
)

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Session holds the state of one run of the tool: the current CSV file, the
// prompt derived from it and the plotter commands are sent to.
type Session struct {
	out     io.Writer
	errOut  io.Writer
	fs      fs.FS
	plotter Plotter
	history HistoryRecorder

	csvFile     string
	promptLabel string
	prompt      string
	quiet       bool
	state       State

	commands map[string]commandHandler
}

type SessionOption func(*Session)

func WithOut(out io.Writer) SessionOption {
	return func(s *Session) {
		s.out = out
	}
}

func WithErrOut(errOut io.Writer) SessionOption {
	return func(s *Session) {
		s.errOut = errOut
	}
}

// WithFS resolves CSV and script paths against fsys instead of the OS.
func WithFS(fsys fs.FS) SessionOption {
	return func(s *Session) {
		s.fs = fsys
	}
}

func WithPlotter(p Plotter) SessionOption {
	return func(s *Session) {
		s.plotter = p
	}
}

func WithHistory(h HistoryRecorder) SessionOption {
	return func(s *Session) {
		s.history = h
	}
}

func WithCSVFile(path string) SessionOption {
	return func(s *Session) {
		s.csvFile = path
	}
}

// WithPromptLabel sets the prompt label used while no CSV file is loaded.
func WithPromptLabel(label string) SessionOption {
	return func(s *Session) {
		s.promptLabel = label
	}
}

func WithQuiet(quiet bool) SessionOption {
	return func(s *Session) {
		s.quiet = quiet
	}
}

func New(opts ...SessionOption) *Session {
	s := &Session{
		out:     os.Stdout,
		errOut:  os.Stderr,
		plotter: discardPlotter{},
	}

	s.addCmd("quit", quitCmd)
	s.addCmd("exit", quitCmd)
	s.addCmd("legend", legendCmd)
	s.addCmd("xlabel", axisLabelCmd(XAxis))
	s.addCmd("ylabel", axisLabelCmd(YAxis))
	s.addCmd("plot", plotCmd)
	s.addCmd("gp", gpCmd)
	s.addCmd("load", loadCmd)

	for _, opt := range opts {
		opt(s)
	}

	if s.csvFile != "" {
		s.prompt = PromptFor(s.csvFile)
	} else {
		s.prompt = labelPrompt(s.promptLabel)
	}
	return s
}

func (s *Session) Out() io.Writer {
	if s.out == nil {
		return os.Stdout
	}
	return s.out
}

func (s *Session) ErrOut() io.Writer {
	if s.errOut == nil {
		return os.Stderr
	}
	return s.errOut
}

func (s *Session) Prompt() string {
	return s.prompt
}

func (s *Session) CSVFile() string {
	return s.csvFile
}

func (s *Session) State() State {
	return s.state
}

// Load makes path the current CSV file and regenerates the prompt.
func (s *Session) Load(path string) {
	s.csvFile = path
	s.prompt = PromptFor(path)
}

// Dispatch runs one command line. Errors are local to the command and leave
// the session running. Once a session is stopped, Dispatch does nothing.
func (s *Session) Dispatch(ctx context.Context, line string) (State, error) {
	if s.state == Stopped {
		return Stopped, nil
	}

	toks, err := tokenize(line)
	if err != nil {
		return s.state, err
	}
	if len(toks) == 0 {
		return s.state, nil
	}

	verb := toks[0]
	cmd, ok := s.commands[verb]
	if !ok {
		return s.state, InvalidCommandError{Verb: verb}
	}

	if err := cmd(ctx, s, cmdArgs{args: toks[1:]}); err != nil {
		return s.state, fmt.Errorf("%s: %w", verb, err)
	}
	return s.state, nil
}

func (s *Session) addCmd(name string, cmd commandHandler) {
	if s.commands == nil {
		s.commands = make(map[string]commandHandler)
	}
	s.commands[name] = cmd
}

func (s *Session) confirm(format string, args ...any) {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.Out(), format+"\n", args...)
}

func (s *Session) openFile(name string) (fs.File, error) {
	if s.fs == nil {
		return os.Open(name)
	}
	return s.fs.Open(name)
}
