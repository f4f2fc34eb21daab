package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// History holds past command lines, oldest first. Load/Save persist it
// across sessions; Save appends only lines recorded since Load so the
// file is never rewritten wholesale.
type History struct {
	entries []string
	limit   int // 0 means unlimited
	saved   int // count of entries already present in the file
	path    string
}

func NewHistory(path string, limit int) *History {
	return &History{path: path, limit: limit}
}

func (h *History) Len() int { return len(h.entries) }

func (h *History) At(i int) string { return h.entries[i] }

// Add records one non-empty command line, evicting the oldest entries
// past the limit.
func (h *History) Add(line string) {
	h.entries = append(h.entries, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = h.entries[drop:]
		h.saved -= drop
		if h.saved < 0 {
			h.saved = 0
		}
	}
}

// Load reads the history file if present; a missing file is a fresh start.
func (h *History) Load() error {
	if h.path == "" {
		return nil
	}
	raw, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, line := range strings.Split(string(raw), "\n") {
		if line != "" {
			h.entries = append(h.entries, line)
		}
	}
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.saved = len(h.entries)
	return nil
}

// Save appends entries recorded since Load to the history file, creating
// its directory on first use.
func (h *History) Save() error {
	if h.path == "" || h.saved >= len(h.entries) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, line := range h.entries[h.saved:] {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	h.saved = len(h.entries)
	return nil
}
