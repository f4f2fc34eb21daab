package shell

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// bright green, the classic "where am I" highlight
var cwdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

// prompt renders "<label>:<cwd>> " with the working directory highlighted.
// If the working directory cannot be resolved (deleted out from under the
// process) the prompt is simply omitted for this iteration.
func (s *Shell) prompt() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	if s.cfg.Prompt.Color {
		cwd = cwdStyle.Render(cwd)
	}
	return fmt.Sprintf("%s:%s> ", s.cfg.Prompt.Label, cwd)
}
