package azdo

import (
	"fmt"
	"regexp"
	"strings"
)

// RemoteInfo identifies an Azure DevOps repository derived from a git
// remote URL.
type RemoteInfo struct {
	// Server is the normalized base URL, https://dev.azure.com for cloud.
	Server string
	// Org is the organization segment.
	Org string
	// Project is the project segment.
	Project string
	// Repo is the repository name.
	Repo string
}

var (
	// https://dev.azure.com/{org}/{project}/_git/{repo}, optionally with
	// a user@ prefix and a .git suffix. On-premises hosts keep their
	// hostname as the server.
	httpsRemotePattern = regexp.MustCompile(`^https://(?:[^@]+@)?([^/]+)/([^/]+)/([^/]+)/_git/([^/\s]+?)(?:\.git)?$`)
	// git@ssh.dev.azure.com:v3/{org}/{project}/{repo}
	sshRemotePattern = regexp.MustCompile(`^git@ssh\.dev\.azure\.com:v3/([^/]+)/([^/]+)/([^/\s]+?)(?:\.git)?$`)
)

// ParseRemoteURL extracts server, organization, project, and repository
// from a git remote URL. The second return value reports whether the URL
// is a recognizable Azure DevOps remote.
func ParseRemoteURL(remoteURL string) (*RemoteInfo, bool) {
	if m := httpsRemotePattern.FindStringSubmatch(remoteURL); m != nil {
		server := m[1]
		if strings.Contains(server, "dev.azure.com") {
			server = "https://dev.azure.com"
		} else {
			server = "https://" + server
		}
		return &RemoteInfo{Server: server, Org: m[2], Project: m[3], Repo: m[4]}, true
	}

	if m := sshRemotePattern.FindStringSubmatch(remoteURL); m != nil {
		return &RemoteInfo{Server: "https://dev.azure.com", Org: m[1], Project: m[2], Repo: m[3]}, true
	}

	return nil, false
}

// RepoURL builds the web URL for a repository, optionally pinned to a
// branch via the GB version selector.
func RepoURL(server, org, project, repo, branch string) string {
	base := fmt.Sprintf("%s/%s/%s/_git/%s", server, org, project, repo)
	if branch != "" {
		return fmt.Sprintf("%s?version=GB%s", base, branch)
	}
	return base
}

// BuildURL builds the web URL for a build results page.
func BuildURL(server, org, project string, buildID int) string {
	return fmt.Sprintf("%s/%s/%s/_build/results?buildId=%d", server, org, project, buildID)
}

// WorkItemURL builds the web URL for a work item edit page.
func WorkItemURL(server, org, project string, workItemID int) string {
	return fmt.Sprintf("%s/%s/%s/_workitems/edit/%d", server, org, project, workItemID)
}
