// Package gitutil shells out to the git executable to inspect the current
// working copy. Every probe degrades to a "not found" result when git is
// missing or the directory is not a repository; nothing here is fatal.
package gitutil

import (
	"os/exec"
	"strings"
)

// IsRepository reports whether dir (or the working directory when empty)
// is inside a git repository.
func IsRepository(dir string) bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = dir
	return cmd.Run() == nil
}

// RemoteURL returns the URL of the named remote.
// The boolean reports whether the remote exists.
func RemoteURL(dir, remote string) (string, bool) {
	cmd := exec.Command("git", "remote", "get-url", remote)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", false
	}
	url := strings.TrimSpace(string(out))
	if url == "" {
		return "", false
	}
	return url, true
}

// CurrentBranch returns the checked-out branch name.
// Detached HEAD or any git failure reports not found.
func CurrentBranch(dir string) (string, bool) {
	cmd := exec.Command("git", "branch", "--show-current")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", false
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" {
		return "", false
	}
	return branch, true
}
