// Package shell implements the interactive read-parse-dispatch loop: a
// prompt showing the working directory, a bounded line reader, and a
// priority-ordered dispatcher over the built-in file commands.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"myshell/internal/config"
)

// errExit unwinds the loop when the exit command matches.
var errExit = errors.New("exit")

// Shell owns one interactive session. The only state carried between
// iterations is the command history; the line and argument buffers are
// scoped to a single pass through the loop.
type Shell struct {
	in      *bufio.Reader
	stdinFd int // -1 when stdin is not a terminal
	out     io.Writer
	errw    io.Writer

	table    []grammar
	commands []string // names for completion, deduped from the table
	history  *History
	cfg      *config.Config
}

func New(in io.Reader, out, errw io.Writer, cfg *config.Config) *Shell {
	s := &Shell{
		in:      bufio.NewReader(in),
		stdinFd: -1,
		out:     out,
		errw:    errw,
		cfg:     cfg,
		history: NewHistory(cfg.History.File, cfg.History.Limit),
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.stdinFd = int(f.Fd())
	}
	s.table = s.grammars()
	seen := map[string]bool{}
	for _, g := range s.table {
		if !seen[g.name] {
			seen[g.name] = true
			s.commands = append(s.commands, g.name)
		}
	}
	return s
}

// LoadHistory reads the history file; a missing file is a fresh start.
func (s *Shell) LoadHistory() error { return s.history.Load() }

// SaveHistory appends lines recorded this session to the history file.
func (s *Shell) SaveHistory() error { return s.history.Save() }

// Run drives the loop until the exit command or end of input, both of
// which are normal termination. Command failures are reported on stderr
// inside dispatch and never escape.
func (s *Shell) Run() error {
	for {
		line, err := s.readLine()
		if err != nil {
			fmt.Fprintln(s.out)
			return nil
		}

		line = strings.TrimRight(line, " \t\r\n")
		if line != "" {
			s.history.Add(line)
		}

		if err := s.dispatch(line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}
