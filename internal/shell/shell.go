package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/term"
)

const (
	// DefaultPrompt is written before every line is read.
	DefaultPrompt = "MOS> "

	progName = "mos"
)

// exit error
var ErrExit = errors.New("exit")

// Status tells the loop whether to read another line.
type Status int

const (
	Terminate Status = iota
	Continue
)

func (st Status) String() string {
	if st == Terminate {
		return "terminate"
	}
	return "continue"
}

// type Shell
type Shell struct {
	in       *bufio.Reader
	stdin    io.Reader
	Out      io.Writer
	Err      io.Writer
	prompt   string
	builtins Builtins
	executor Executor
	parser   Parser
	exitCode int
}

type Option func(*Shell)

func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// WithBuiltins replaces the built-in table. The table is copied.
func WithBuiltins(builtins Builtins) Option {
	return func(s *Shell) {
		s.builtins = slices.Clone(builtins)
	}
}

func WithExecutor(executor Executor) Option {
	return func(s *Shell) {
		s.executor = executor
	}
}

func WithParser(parser Parser) Option {
	return func(s *Shell) {
		s.parser = parser
	}
}

// func New
func New(reader io.Reader, out, errw io.Writer, opts ...Option) *Shell {
	s := &Shell{
		in:       bufio.NewReader(reader),
		Out:      out,
		Err:      errw,
		prompt:   DefaultPrompt,
		builtins: DefaultBuiltins(),
		executor: &DefaultExecutor{},
		parser:   NewDefaultParser(),
	}

	// children inherit the input only when it is a real file
	if f, ok := reader.(*os.File); ok {
		s.stdin = f
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run reads and executes lines until a built-in ends the loop or the input
// is exhausted. Read errors other than io.EOF are returned.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.Out, s.prompt)

		line, err := s.ReadLine()

		if errors.Is(err, io.EOF) {
			s.endOfInput()
			return nil
		}

		if err != nil {
			return err
		}

		if s.Execute(context.Background(), s.parser.Parse(line)) == Terminate {
			return nil
		}
	}
}

// ReadLine returns the next line including its terminator. A final line
// without a terminator is returned with a nil error; io.EOF is only
// reported once nothing is left.
func (s *Shell) ReadLine() (string, error) {
	line, err := s.in.ReadString('\n')

	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}

	return line, err
}

// Execute dispatches one tokenized line to a built-in or an external program.
func (s *Shell) Execute(ctx context.Context, args []string) Status {
	if len(args) == 0 {
		return Continue
	}

	// check built ins
	if builtin, ok := s.builtins.Lookup(args[0]); ok {
		if err := builtin.Run(s, args); err != nil {
			if errors.Is(err, ErrExit) {
				return Terminate
			}

			s.report(err)
		}
		return Continue
	}

	ioBinding := IOBindings{
		Stdin:  s.stdin,
		Stdout: s.Out,
		Stderr: s.Err,
	}

	exitCode, err := s.executor.Execute(ctx, args[0], args[1:], ioBinding)

	if err != nil {
		s.report(err)
	}

	// recorded only; a failing command never ends the loop
	s.exitCode = exitCode
	return Continue
}

// ExitCode returns the status of the last external command.
func (s *Shell) ExitCode() int {
	return s.exitCode
}

func (s *Shell) report(err error) {
	fmt.Fprintf(s.Err, "%s: %v\n", progName, err)
}

func (s *Shell) endOfInput() {
	f, ok := s.stdin.(*os.File)
	if ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(s.Out)
	}
}
