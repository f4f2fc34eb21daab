package builtin

import (
	"os"

	"golang.org/x/sys/unix"
)

// Rm unlinks a file. Directories are refused by the underlying unlink
// call, matching rm(1) without -r.
func Rm(path string) error {
	if err := unix.Unlink(path); err != nil {
		return &FileError{Op: "rm", Err: &os.PathError{Op: "unlink", Path: path, Err: err}}
	}
	return nil
}
