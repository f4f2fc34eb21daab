package builtin

import (
	"os"
	"os/user"
)

// Cd changes the process working directory. An empty dir means the
// current user's home directory, looked up from the user database; a
// failed lookup is reported as a cd error rather than trusted.
func Cd(dir string) error {
	if dir == "" {
		u, err := user.Current()
		if err != nil {
			return &DirectoryError{Op: "cd", Err: err}
		}
		dir = u.HomeDir
	}
	if err := os.Chdir(dir); err != nil {
		return &DirectoryError{Op: "cd", Err: err}
	}
	return nil
}
