package builtin

import (
	"fmt"
	"io"
	"os"
)

// Pwd prints the working directory as resolved by the OS.
func Pwd(w io.Writer) error {
	dir, err := os.Getwd()
	if err != nil {
		return &DirectoryError{Op: "pwd", Err: err}
	}
	fmt.Fprintln(w, dir)
	return nil
}
