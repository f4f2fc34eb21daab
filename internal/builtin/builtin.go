// Package builtin implements the shell's built-in file commands. Every
// command performs exactly one OS-level operation; failures are returned
// as a FileError or DirectoryError carrying the bare OS description so the
// dispatcher can report them uniformly as "<command>: <description>".
package builtin

import (
	"errors"
	"os"
)

// FileError reports a failed operation on a single file (cat, stat, rm).
type FileError struct {
	Op  string
	Err error
}

func (e *FileError) Error() string { return osDescription(e.Err) }

func (e *FileError) Unwrap() error { return e.Err }

// DirectoryError reports a failed operation on a directory
// (cd, ls, mkdir, rmdir, pwd).
type DirectoryError struct {
	Op  string
	Err error
}

func (e *DirectoryError) Error() string { return osDescription(e.Err) }

func (e *DirectoryError) Unwrap() error { return e.Err }

// osDescription strips the os wrappers so reports read like strerror
// output, e.g. "cat: no such file or directory" rather than
// "cat: open foo: no such file or directory".
func osDescription(err error) string {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	var sysErr *os.SyscallError
	if errors.As(err, &sysErr) {
		return sysErr.Err.Error()
	}
	return err.Error()
}
