// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into
// the binary with //go:embed. Hard defaults cover a missing or partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	ListFile    string `yaml:"list_file"`
	EnvPrefix   string `yaml:"env_prefix"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "readlater",
			DisplayName: "Open Read-Later",
			Description: "Store, query, and edit read-later lists",
			HomeDir:     ".readlater",
			ListFile:    ".read_later_list",
			EnvPrefix:   "READLATER",
			GitHubRepo:  "readlater-labs/readlater",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "readlater").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory under $HOME holding config.yaml.
func HomeDir() string { load(); return defaults.HomeDir }

// ListFile returns the default list file name under $HOME.
func ListFile() string { load(); return defaults.ListFile }

// EnvPrefix returns the environment variable prefix (e.g., "READLATER").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// IssuesURL returns the page where users report failures.
func IssuesURL() string {
	return "https://github.com/" + GitHubRepo() + "/issues/new"
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("file") → "READLATER_FILE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
