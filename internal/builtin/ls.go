package builtin

import (
	"fmt"
	"io"
	"os"
)

// Ls prints each entry of the directory at path, one per line, in the
// order the directory enumeration yields them. os.ReadDir sorts its
// results, so the enumeration goes through Readdirnames instead.
func Ls(w io.Writer, path string) error {
	dir, err := os.Open(path)
	if err != nil {
		return &DirectoryError{Op: "ls", Err: err}
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return &DirectoryError{Op: "ls", Err: err}
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}
