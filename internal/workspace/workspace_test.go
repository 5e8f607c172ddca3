package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// setupTree creates root/a/b and returns root and the innermost directory.
func setupTree(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(deep, 0755); err != nil {
		t.Fatal(err)
	}
	return root, deep
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func stubGit(t *testing.T, name string, err error) {
	t.Helper()
	orig := GitUserName
	GitUserName = func(string) (string, error) { return name, err }
	t.Cleanup(func() { GitUserName = orig })
}

func TestFindDBPathExistingDatabase(t *testing.T) {
	root, deep := setupTree(t)
	db := filepath.Join(root, DBBaseName)
	writeFile(t, db, "[]\n")

	if got := FindDBPath(deep, DBBaseName); got != db {
		t.Errorf("FindDBPath() = %q, want %q", got, db)
	}
}

func TestFindDBPathNearestWins(t *testing.T) {
	root, deep := setupTree(t)
	writeFile(t, filepath.Join(root, DBBaseName), "[]\n")
	inner := filepath.Join(root, "a", DBBaseName)
	writeFile(t, inner, "[]\n")

	if got := FindDBPath(deep, DBBaseName); got != inner {
		t.Errorf("FindDBPath() = %q, want %q", got, inner)
	}
}

func TestFindDBPathFallsBackToUserFileDir(t *testing.T) {
	root, deep := setupTree(t)
	writeFile(t, filepath.Join(root, "a", UserFileName), "alice")

	want := filepath.Join(root, "a", DBBaseName)
	if got := FindDBPath(deep, DBBaseName); got != want {
		t.Errorf("FindDBPath() = %q, want %q", got, want)
	}
}

func TestFindDBPathFallsBackToBase(t *testing.T) {
	_, deep := setupTree(t)
	base := "sdr_test_db_that_does_not_exist.yaml"
	if got := FindDBPath(deep, base); got != base {
		t.Errorf("FindDBPath() = %q, want %q", got, base)
	}
}

func TestDetectUserFromUserFile(t *testing.T) {
	root, deep := setupTree(t)
	writeFile(t, filepath.Join(root, UserFileName), "alice\n")
	if err := os.Mkdir(filepath.Join(root, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	stubGit(t, "git-alice", nil)

	if got := DetectUser(deep); got != "alice" {
		t.Errorf("DetectUser() = %q, want alice", got)
	}
}

func TestDetectUserFromVCS(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		git    string
		gitErr error
		want   string
	}{
		{"svn placeholder", ".svn", "", nil, SVNUser},
		{"git config", ".git", "Grace Hopper", nil, "Grace Hopper"},
		{"git failure falls back", ".git", "", errors.New("no git"), "login-user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, deep := setupTree(t)
			if err := os.Mkdir(filepath.Join(root, tt.marker), 0755); err != nil {
				t.Fatal(err)
			}
			stubGit(t, tt.git, tt.gitErr)
			t.Setenv("LOGNAME", "login-user")

			if got := DetectUser(deep); got != tt.want {
				t.Errorf("DetectUser() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectUserFromLogin(t *testing.T) {
	_, deep := setupTree(t)
	stubGit(t, "", errors.New("no git"))
	t.Setenv("LOGNAME", "")
	t.Setenv("USER", "env-user")

	if got := DetectUser(deep); got != "env-user" {
		t.Errorf("DetectUser() = %q, want env-user", got)
	}
}

func TestWriteAndReadUserFile(t *testing.T) {
	root, deep := setupTree(t)
	path, err := WriteUserFile(root, "bob")
	if err != nil {
		t.Fatalf("WriteUserFile: %v", err)
	}
	if path != filepath.Join(root, UserFileName) {
		t.Errorf("path = %q", path)
	}

	name, ok, err := ReadUserFile(deep)
	if err != nil || !ok || name != "bob" {
		t.Errorf("ReadUserFile() = %q, %v, %v; want bob, true, nil", name, ok, err)
	}
}
