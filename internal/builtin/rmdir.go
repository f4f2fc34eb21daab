package builtin

import (
	"os"

	"golang.org/x/sys/unix"
)

// Rmdir removes an empty directory. The raw rmdir syscall is used rather
// than os.Remove so that a plain file is refused the way rmdir(1) would.
func Rmdir(path string) error {
	if err := unix.Rmdir(path); err != nil {
		return &DirectoryError{Op: "rmdir", Err: &os.PathError{Op: "rmdir", Path: path, Err: err}}
	}
	return nil
}
