package builtin

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Stat prints metadata for path: the path as given, size in bytes, hard
// link count, and inode number. os.Stat hides the link count and inode,
// so the raw stat syscall is used.
func Stat(w io.Writer, path string) error {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return &FileError{Op: "stat", Err: &os.PathError{Op: "stat", Path: path, Err: err}}
	}

	fmt.Fprintf(w, "File: %s\n", path)
	fmt.Fprintf(w, "Size: %d bytes\n", st.Size)
	fmt.Fprintf(w, "Links: %d\n", st.Nlink)
	fmt.Fprintf(w, "Inode: %d\n", st.Ino)
	return nil
}
