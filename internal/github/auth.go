package github

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetGitHubToken retrieves a GitHub token from available sources in
// priority order: the GITHUB_TOKEN environment variable, then the gh CLI
// configuration.
func GetGitHubToken() (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	if token, err := getGHToken(); err == nil && token != "" {
		return token, nil
	}

	return "", fmt.Errorf("no GitHub token found: set GITHUB_TOKEN or authenticate with gh")
}

// GetTokenWithSource returns both the token and where it came from.
func GetTokenWithSource() (string, string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return "environment variable", token, nil
	}

	if token, err := getGHToken(); err == nil && token != "" {
		return "gh CLI config", token, nil
	}

	return "", "", fmt.Errorf("no authentication found")
}

// getGHToken reads the oauth token from the gh CLI hosts file using
// simple line parsing.
func getGHToken() (string, error) {
	// GH_CONFIG_DIR override is honored (also used by tests)
	configDir := os.Getenv("GH_CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config", "gh")
	}

	configPath := filepath.Join(configDir, "hosts.yml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", err
	}

	lines := strings.Split(string(data), "\n")
	inGithubSection := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "github.com:" {
			inGithubSection = true
			continue
		}

		if inGithubSection && strings.HasPrefix(trimmed, "oauth_token:") {
			parts := strings.SplitN(trimmed, ":", 2)
			if len(parts) == 2 {
				return strings.TrimSpace(parts[1]), nil
			}
		}

		// Another top-level section ends the github.com block
		if inGithubSection && trimmed != "" && !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			inGithubSection = false
		}
	}

	return "", fmt.Errorf("oauth_token not found in gh config")
}
