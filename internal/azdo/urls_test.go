package azdo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteURLHTTPS(t *testing.T) {
	info, ok := ParseRemoteURL("https://dev.azure.com/myorg/myproject/_git/myrepo")

	require.True(t, ok)
	assert.Equal(t, "https://dev.azure.com", info.Server)
	assert.Equal(t, "myorg", info.Org)
	assert.Equal(t, "myproject", info.Project)
	assert.Equal(t, "myrepo", info.Repo)
}

func TestParseRemoteURLHTTPSWithUsername(t *testing.T) {
	info, ok := ParseRemoteURL("https://myorg@dev.azure.com/myorg/myproject/_git/myrepo")

	require.True(t, ok)
	assert.Equal(t, "https://dev.azure.com", info.Server)
	assert.Equal(t, "myorg", info.Org)
}

func TestParseRemoteURLSSH(t *testing.T) {
	info, ok := ParseRemoteURL("git@ssh.dev.azure.com:v3/myorg/myproject/myrepo")

	require.True(t, ok)
	assert.Equal(t, "https://dev.azure.com", info.Server)
	assert.Equal(t, "myorg", info.Org)
	assert.Equal(t, "myproject", info.Project)
	assert.Equal(t, "myrepo", info.Repo)
}

func TestParseRemoteURLOnPremises(t *testing.T) {
	info, ok := ParseRemoteURL("https://tfs.company.com/contoso/MyProject/_git/my-repo")

	require.True(t, ok)
	assert.Equal(t, "https://tfs.company.com", info.Server)
	assert.Equal(t, "contoso", info.Org)
}

func TestParseRemoteURLStripsGitSuffix(t *testing.T) {
	info, ok := ParseRemoteURL("https://dev.azure.com/myorg/myproject/_git/myrepo.git")

	require.True(t, ok)
	assert.Equal(t, "myrepo", info.Repo)
}

func TestParseRemoteURLRepoNameWithDots(t *testing.T) {
	info, ok := ParseRemoteURL("https://dev.azure.com/myorg/myproject/_git/My.Service.Api")

	require.True(t, ok)
	assert.Equal(t, "My.Service.Api", info.Repo)
}

func TestParseRemoteURLInvalid(t *testing.T) {
	tests := []string{
		"https://github.com/owner/repo.git",
		"git@github.com:owner/repo.git",
		"not-a-url",
		"",
	}
	for _, remote := range tests {
		_, ok := ParseRemoteURL(remote)
		assert.False(t, ok, "expected %q to be rejected", remote)
	}
}

func TestRepoURL(t *testing.T) {
	url := RepoURL("https://dev.azure.com", "myorg", "myproject", "myrepo", "")
	assert.Equal(t, "https://dev.azure.com/myorg/myproject/_git/myrepo", url)
}

func TestRepoURLWithBranch(t *testing.T) {
	url := RepoURL("https://dev.azure.com", "myorg", "myproject", "myrepo", "feature/test")
	assert.Equal(t, "https://dev.azure.com/myorg/myproject/_git/myrepo?version=GBfeature/test", url)
}

func TestBuildURL(t *testing.T) {
	url := BuildURL("https://dev.azure.com", "myorg", "myproject", 123)
	assert.Equal(t, "https://dev.azure.com/myorg/myproject/_build/results?buildId=123", url)
}

func TestWorkItemURL(t *testing.T) {
	url := WorkItemURL("https://tfs.company.com", "contoso", "MyProject", 999)
	assert.Equal(t, "https://tfs.company.com/contoso/MyProject/_workitems/edit/999", url)
}
