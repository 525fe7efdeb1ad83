package shell

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingArgument is returned by a built-in called without a required argument.
var ErrMissingArgument = errors.New("expected argument")

// type Builtin
type Builtin struct {
	Name string
	Run  func(s *Shell, args []string) error
}

// Builtins is an ordered built-in table. The first entry with a matching
// name wins.
type Builtins []Builtin

func (b Builtins) Lookup(name string) (Builtin, bool) {
	for _, builtin := range b {
		if builtin.Name == name {
			return builtin, true
		}
	}

	return Builtin{}, false
}

func (b Builtins) Names() []string {
	names := make([]string, 0, len(b))
	for _, builtin := range b {
		names = append(names, builtin.Name)
	}

	return names
}

// DefaultBuiltins returns a new table holding cd, help and exit.
func DefaultBuiltins() Builtins {
	return Builtins{
		{Name: "cd", Run: builtinCd},
		{Name: "help", Run: builtinHelp},
		{Name: "exit", Run: builtinExit},
	}
}

// extra arguments are ignored
func builtinCd(s *Shell, args []string) error {

	if len(args) < 2 {
		return fmt.Errorf("%w to %q", ErrMissingArgument, args[0])
	}

	return os.Chdir(args[1])
}

func builtinHelp(s *Shell, args []string) error {
	fmt.Fprintln(s.Out, "Victor Ferreira's MOS")
	fmt.Fprintln(s.Out, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(s.Out, "The following are built in:")

	for _, name := range s.builtins.Names() {
		fmt.Fprintf(s.Out, "  %s\n", name)
	}

	fmt.Fprintln(s.Out, "Use the man command for information on other programs.")
	return nil
}

func builtinExit(s *Shell, args []string) error {
	return ErrExit
}
