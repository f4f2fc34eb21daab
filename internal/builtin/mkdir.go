package builtin

import "os"

// Mkdir creates a single directory with conventional 0755 permissions.
func Mkdir(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return &DirectoryError{Op: "mkdir", Err: err}
	}
	return nil
}
