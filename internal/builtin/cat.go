package builtin

import (
	"io"
	"os"
)

// catChunkSize bounds how much of a file is held in memory at once.
const catChunkSize = 256

// Cat streams the byte-exact contents of path to w in fixed-size chunks.
// Output already written before a mid-stream read error stands.
func Cat(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Op: "cat", Err: err}
	}
	defer f.Close()

	buf := make([]byte, catChunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return &FileError{Op: "cat", Err: werr}
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &FileError{Op: "cat", Err: err}
		}
	}
}
