package shell

import (
	"errors"
	"fmt"
	"strings"

	"myshell/internal/builtin"
)

// argMode states whether a grammar takes a path argument.
type argMode int

const (
	argNone argMode = iota
	argOptional
	argRequired
)

// grammar is one recognized command form: the command name, whether a
// single path argument follows it, and the handler to run on a match.
type grammar struct {
	name string
	mode argMode
	run  func(s *Shell, arg string) error
}

// grammars returns the dispatch table in priority order; the first
// compatible entry wins. A required-argument grammar with no argument
// present does not match, so a bare "cat" falls all the way through to
// the unrecognized-command report.
func (s *Shell) grammars() []grammar {
	return []grammar{
		{"cd", argOptional, func(s *Shell, arg string) error {
			return builtin.Cd(arg)
		}},
		{"exit", argNone, func(s *Shell, _ string) error {
			return errExit
		}},
		{"cat", argRequired, func(s *Shell, arg string) error {
			return builtin.Cat(s.out, arg)
		}},
		{"stat", argRequired, func(s *Shell, arg string) error {
			return builtin.Stat(s.out, arg)
		}},
		{"mkdir", argRequired, func(s *Shell, arg string) error {
			return builtin.Mkdir(arg)
		}},
		{"rmdir", argRequired, func(s *Shell, arg string) error {
			return builtin.Rmdir(arg)
		}},
		{"rm", argRequired, func(s *Shell, arg string) error {
			return builtin.Rm(arg)
		}},
		{"ls", argOptional, func(s *Shell, arg string) error {
			if arg == "" {
				arg = "."
			}
			return builtin.Ls(s.out, arg)
		}},
		{"pwd", argNone, func(s *Shell, _ string) error {
			return builtin.Pwd(s.out)
		}},
	}
}

// dispatch matches one normalized line against the grammar table and runs
// the winning handler. The argument is the single whitespace-delimited
// token after the command name; extra tokens are ignored. Handler
// failures are printed to stderr and absorbed, so the loop continues; the
// only error dispatch returns is errExit.
func (s *Shell) dispatch(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	for _, g := range s.table {
		if g.name != name {
			continue
		}
		if g.mode == argRequired && arg == "" {
			continue
		}
		if g.mode == argNone && arg != "" {
			continue
		}
		if err := g.run(s, arg); err != nil {
			if errors.Is(err, errExit) {
				return err
			}
			fmt.Fprintf(s.errw, "%s: %s\n", g.name, err)
		}
		return nil
	}

	// imitates the familiar shell error rather than a distinct
	// unknown-command message
	fmt.Fprintf(s.errw, "myshell: %s: No such file or directory\n", line)
	return nil
}
