package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Token is the GitHub access token used for every API call (see --token).
	// In action mode it arrives as the required repo_token input.
	Token string

	// File is a literal path or, when FileGlob is set, a glob pattern
	// (see --file).
	File string

	// AssetName is the logical name assigned to the uploaded asset (see
	// --asset-name). In glob mode the same literal name is reused for every
	// matched file.
	AssetName string

	// ReleaseID identifies the target release (see --release-id). Declared
	// as a string input; Validate parses it into ReleaseIDNum.
	ReleaseID string

	// ReleaseIDNum is the parsed form of ReleaseID, populated by Validate.
	ReleaseIDNum int64

	// FileGlob treats File as a glob pattern (see --file-glob).
	FileGlob bool

	// Overwrite replaces an existing asset of the same name instead of
	// failing (see --overwrite).
	Overwrite bool

	// RepoName optionally redirects asset calls to another repository as
	// OWNER/REPO (see --repo). Empty means the invoking repository.
	RepoName string

	// Verbose enables per-request API tracing on stderr.
	Verbose bool
}

func New() *Config {
	return &Config{}
}

// Validate checks required inputs and parses the release id. It never
// touches the network; every failure here is a configuration error raised
// before any API call.
func (c *Config) Validate() error {
	c.File = strings.TrimSpace(c.File)
	c.AssetName = strings.TrimSpace(c.AssetName)
	c.ReleaseID = strings.TrimSpace(c.ReleaseID)
	c.RepoName = strings.TrimSpace(c.RepoName)

	if c.File == "" {
		return errors.New("--file is required")
	}
	if c.AssetName == "" {
		return errors.New("--asset-name is required")
	}
	if c.ReleaseID == "" {
		return errors.New("--release-id is required")
	}
	id, err := strconv.ParseInt(c.ReleaseID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid release id %q: must be a numeric release id", c.ReleaseID)
	}
	c.ReleaseIDNum = id
	return nil
}

// actionInput returns the value the Actions runner set for the named input.
// The runner exports input "x" as INPUT_X, upper-cased, spaces replaced
// with underscores.
func actionInput(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	return strings.TrimSpace(os.Getenv(key))
}

// InActionMode reports whether the process was launched as a GitHub Actions
// step with this tool's inputs present.
func InActionMode() bool {
	return actionInput("file") != ""
}

// FromActionEnv builds a Config from GitHub Actions INPUT_* variables.
// Required inputs that are missing produce a configuration error before the
// publisher runs. Boolean inputs are the strings "true"/"false" and default
// to false.
func FromActionEnv() (*Config, error) {
	c := New()
	c.Token = actionInput("repo_token")
	c.File = actionInput("file")
	c.AssetName = actionInput("asset_name")
	c.ReleaseID = actionInput("release_id")
	c.RepoName = actionInput("repo_name")

	// Report missing required inputs by their action input names, not the
	// CLI flag names Validate uses.
	for _, in := range []struct{ name, value string }{
		{"repo_token", c.Token},
		{"file", c.File},
		{"asset_name", c.AssetName},
		{"release_id", c.ReleaseID},
	} {
		if in.value == "" {
			return nil, fmt.Errorf("input %s is required", in.name)
		}
	}

	var err error
	if c.FileGlob, err = parseBoolInput("file_glob"); err != nil {
		return nil, err
	}
	if c.Overwrite, err = parseBoolInput("overwrite"); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseBoolInput(name string) (bool, error) {
	raw := actionInput(name)
	if raw == "" {
		return false, nil
	}
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("input %s must be \"true\" or \"false\", got %q", name, raw)
	}
}
