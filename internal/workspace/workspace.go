// Package workspace locates the bug database and determines the acting user
// by walking up the directory tree from the working directory.
package workspace

import (
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
)

const (
	// DBBaseName is the default file name of the bug database.
	DBBaseName = "sdr_db.yaml"

	// UserFileName is the marker file whose contents name the local user.
	UserFileName = ".sdr_usr"

	// SVNUser is reported for Subversion checkouts, which carry no user name.
	SVNUser = "svn user"

	// DefaultUser is used when no other source names a user.
	DefaultUser = "default user"
)

// GitUserName runs git to read user.name. Tests replace it.
var GitUserName = func(dir string) (string, error) {
	cmd := exec.Command("git", "config", "user.name")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// FindUpward returns the path of the first entry called name found in dir
// or one of its parents.
func FindUpward(dir, name string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// FindDBPath returns the database location for dir: the nearest existing
// base file, else base next to the nearest user marker file, else base
// relative to the working directory.
func FindDBPath(dir, base string) string {
	if path, ok := FindUpward(dir, base); ok {
		return path
	}
	if marker, ok := FindUpward(dir, UserFileName); ok {
		return filepath.Join(filepath.Dir(marker), base)
	}
	return base
}

// ReadUserFile returns the contents of the nearest user marker file.
func ReadUserFile(dir string) (string, bool, error) {
	path, ok := FindUpward(dir, UserFileName)
	if !ok {
		return "", false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading user file: %w", err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// WriteUserFile writes the user marker file in dir.
func WriteUserFile(dir, name string) (string, error) {
	path := filepath.Join(dir, UserFileName)
	if err := os.WriteFile(path, []byte(name), 0644); err != nil {
		return "", fmt.Errorf("writing user file: %w", err)
	}
	return path, nil
}

// DetectUser determines the acting user for dir. Resolution order:
//  1. the nearest .sdr_usr file
//  2. the nearest version control checkout (.svn, then .git via git config)
//  3. the system login name ($LOGNAME, $USER, then the account database)
//  4. DefaultUser
func DetectUser(dir string) string {
	if name, ok, err := ReadUserFile(dir); err == nil && ok && name != "" {
		return name
	}

	if vcs := nearestVCS(dir); vcs != "" {
		switch filepath.Base(vcs) {
		case ".svn":
			return SVNUser
		case ".git":
			if name, err := GitUserName(filepath.Dir(vcs)); err == nil && name != "" {
				return name
			}
		}
	}

	if name := SystemUser(); name != "" {
		return name
	}
	return DefaultUser
}

// nearestVCS returns the closest .svn or .git marker above dir.
func nearestVCS(dir string) string {
	dir = filepath.Clean(dir)
	for {
		for _, marker := range []string{".svn", ".git"} {
			candidate := filepath.Join(dir, marker)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// SystemUser returns the login name of the current process owner.
func SystemUser() string {
	for _, env := range []string{"LOGNAME", "USER"} {
		if name := strings.TrimSpace(os.Getenv(env)); name != "" {
			return name
		}
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
