package shell

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/term"
)

// maxLineLen bounds one command line; input beyond it is truncated and
// the remainder of the physical line discarded.
const maxLineLen = 256

const (
	etx = byte(3)   // Ctrl+C
	eot = byte(4)   // Ctrl+D
	bs  = byte(8)   // Backspace
	esc = byte(27)  // start of an arrow-key sequence
	del = byte(127) // DEL
)

// readLine shows the prompt and collects one line. On a terminal, stdin
// is taken raw for the duration of the read so editing keys can be
// handled, and restored before the line is dispatched; handler output is
// therefore plain cooked-mode text.
func (s *Shell) readLine() (string, error) {
	if s.stdinFd < 0 {
		fmt.Fprint(s.out, s.prompt())
		return s.readLineBuffered()
	}

	oldState, err := term.MakeRaw(s.stdinFd)
	if err != nil {
		fmt.Fprint(s.out, s.prompt())
		return s.readLineBuffered()
	}
	defer term.Restore(s.stdinFd, oldState)

	return s.readLineRaw()
}

// readLineBuffered reads one cooked line, for piped or redirected input.
// A final line with no trailing newline is still returned.
func (s *Shell) readLineBuffered() (string, error) {
	line, err := s.in.ReadString('\n')
	if line == "" && err != nil {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if len(line) > maxLineLen {
		line = line[:maxLineLen]
	}
	return line, nil
}

// readLineRaw is the interactive editor: echo, backspace, Ctrl+C line
// cancel, Ctrl+D on an empty line as end of input, Tab completion, and
// history recall on the arrow keys.
func (s *Shell) readLineRaw() (string, error) {
	prompt := s.prompt()
	fmt.Fprint(s.out, prompt)

	var line []byte
	histPos := s.history.Len() // one past the newest entry
	prevWasTab := false

	redraw := func() {
		fmt.Fprintf(s.out, "\r\x1b[K%s%s", prompt, line)
	}

	for {
		c, err := s.in.ReadByte()
		if err != nil {
			return "", err
		}

		switch c {
		case '\r', '\n':
			fmt.Fprint(s.out, "\r\n")
			return string(line), nil

		case etx:
			// discard the line, not the shell
			fmt.Fprint(s.out, "^C\r\n")
			line = line[:0]
			histPos = s.history.Len()
			fmt.Fprint(s.out, prompt)

		case eot:
			if len(line) == 0 {
				return "", io.EOF
			}

		case bs, del:
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(s.out, "\b \b")
			}

		case '\t':
			line, prevWasTab = s.complete(line, prompt, prevWasTab)
			continue

		case esc:
			b1, err := s.in.ReadByte()
			if err != nil {
				return "", err
			}
			if b1 != '[' {
				break
			}
			b2, err := s.in.ReadByte()
			if err != nil {
				return "", err
			}
			switch b2 {
			case 'A': // up
				if histPos > 0 {
					histPos--
					line = []byte(s.history.At(histPos))
					redraw()
				}
			case 'B': // down
				if histPos < s.history.Len() {
					histPos++
					if histPos == s.history.Len() {
						line = line[:0]
					} else {
						line = []byte(s.history.At(histPos))
					}
					redraw()
				}
			}

		default:
			if c < 0x20 {
				break // other control characters ignored
			}
			if len(line) >= maxLineLen {
				fmt.Fprint(s.out, "\a")
				break
			}
			line = append(line, c)
			fmt.Fprintf(s.out, "%c", c)
		}

		prevWasTab = false
	}
}

// complete expands the line against the built-in command names. Only the
// first token is completed; path arguments are left alone. A unique match
// completes with a trailing space, an ambiguous one extends to the
// longest common prefix and lists all matches on a second Tab.
func (s *Shell) complete(line []byte, prompt string, prevWasTab bool) ([]byte, bool) {
	if len(line) == 0 || bytes.ContainsAny(line, " \t") {
		fmt.Fprint(s.out, "\a")
		return line, false
	}

	matches := make([]string, 0)
	for _, name := range s.commands {
		if strings.HasPrefix(name, string(line)) {
			matches = append(matches, name)
		}
	}
	slices.Sort(matches)

	switch len(matches) {
	case 0:
		fmt.Fprint(s.out, "\a")
		return line, false
	case 1:
		completed := matches[0] + " "
		fmt.Fprintf(s.out, "\r\x1b[K%s%s", prompt, completed)
		return []byte(completed), false
	default:
		if prevWasTab {
			fmt.Fprintf(s.out, "\r\n%s\r\n", strings.Join(matches, "  "))
			fmt.Fprintf(s.out, "%s%s", prompt, line)
			return line, false
		}
		fmt.Fprint(s.out, "\a")
		if lcp := longestCommonPrefix(matches); lcp != string(line) {
			fmt.Fprintf(s.out, "\r\x1b[K%s%s", prompt, lcp)
			return []byte(lcp), true
		}
		return line, true
	}
}

func longestCommonPrefix(strs []string) string {
	lcp := strings.Builder{}
	for i := 0; ; i++ {
		var currChar byte
		for j, str := range strs {
			if i >= len(str) {
				return lcp.String()
			}
			if j == 0 {
				currChar = str[i]
			}
			if str[i] != currChar {
				return lcp.String()
			}
		}
		lcp.WriteByte(currChar)
	}
}
