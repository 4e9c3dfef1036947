package github

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGitHubToken_EnvironmentWins(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")

	token, err := GetGitHubToken()
	require.NoError(t, err)
	assert.Equal(t, "env-token", token)
}

func TestGetGitHubToken_FallsBackToGHConfig(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	configDir := t.TempDir()
	hosts := `github.com:
    oauth_token: gh-config-token
    user: octocat
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "hosts.yml"), []byte(hosts), 0600))
	t.Setenv("GH_CONFIG_DIR", configDir)

	token, err := GetGitHubToken()
	require.NoError(t, err)
	assert.Equal(t, "gh-config-token", token)
}

func TestGetGitHubToken_IgnoresOtherHosts(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	configDir := t.TempDir()
	hosts := `example.com:
    oauth_token: wrong-token
github.com:
    oauth_token: right-token
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "hosts.yml"), []byte(hosts), 0600))
	t.Setenv("GH_CONFIG_DIR", configDir)

	token, err := GetGitHubToken()
	require.NoError(t, err)
	assert.Equal(t, "right-token", token)
}

func TestGetGitHubToken_NoSources(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_CONFIG_DIR", t.TempDir())

	_, err := GetGitHubToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no GitHub token found")
}

func TestGetTokenWithSource(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")

	source, token, err := GetTokenWithSource()
	require.NoError(t, err)
	assert.Equal(t, "environment variable", source)
	assert.Equal(t, "env-token", token)
}

func TestGetRepoInfo_Environment(t *testing.T) {
	t.Setenv("REPO_OWNER", "acme")
	t.Setenv("REPO_NAME", "widgets")

	owner, repo, err := GetRepoInfo()
	require.NoError(t, err)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "widgets", repo)
}
