package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultServer is the Azure DevOps cloud endpoint, used when no
	// server key is persisted.
	DefaultServer = "https://dev.azure.com"
	// PATEnvVar is the environment variable holding the personal access
	// token. The token is never part of the persisted document.
	PATEnvVar = "ADO_PAT"
)

var (
	defaultRepoColumns = []string{"id", "name"}
	defaultRepoLabels  = []string{"repo_id", "repo_name"}

	defaultBuildColumns = []string{"id", "buildNumber", "definition.name", "status", "result", "sourceBranch", "queueTime", "finishTime"}
	defaultBuildLabels  = []string{"Build ID", "Number", "Pipeline", "Status", "Result", "Branch", "Queued", "Finished"}
)

// defaultBuildTop bounds the number of builds fetched when build.top is unset.
const defaultBuildTop = 25

// Config is an ephemeral, per-invocation read-only view over the raw
// document combined with environment-sourced secrets. It is constructed
// once per command and passed explicitly to the components that need it.
type Config struct {
	doc       Document
	lookupEnv func(string) (string, bool)
}

// New creates a Config over the given document, reading secrets from the
// process environment.
func New(doc Document) *Config {
	return &Config{doc: doc, lookupEnv: os.LookupEnv}
}

// Load reads the persisted document from the store and wraps it in a Config.
func Load(store *Store) (*Config, error) {
	doc, err := store.Read()
	if err != nil {
		return nil, err
	}
	return New(doc), nil
}

// Document returns the underlying raw document.
func (c *Config) Document() Document {
	return c.doc
}

// Server returns the server base URL, defaulting to the Azure DevOps
// cloud endpoint when absent.
func (c *Config) Server() string {
	if v, ok := c.doc["server"].(string); ok && v != "" {
		return v
	}
	return DefaultServer
}

// Org returns the configured organization name.
// There is no sensible default; absence is a configuration error.
func (c *Config) Org() (string, error) {
	v, ok := c.doc["org"].(string)
	if !ok || v == "" {
		return "", &ConfigurationError{
			Key:    "org",
			Reason: "organization is not configured",
			Hint:   "ado config set --org <organization>",
		}
	}
	return v, nil
}

// Project returns the configured project name.
// There is no sensible default; absence is a configuration error.
func (c *Config) Project() (string, error) {
	v, ok := c.doc["project"].(string)
	if !ok || v == "" {
		return "", &ConfigurationError{
			Key:    "project",
			Reason: "project is not configured",
			Hint:   "ado config set --project <project>",
		}
	}
	return v, nil
}

// PAT returns the personal access token from the process environment.
// The token is deliberately never read from the persisted document.
func (c *Config) PAT() (string, error) {
	v, ok := c.lookupEnv(PATEnvVar)
	if !ok || v == "" {
		return "", &ConfigurationError{
			Key:    PATEnvVar,
			Reason: "environment variable is not set",
			Hint:   "export ADO_PAT='<personal-access-token>'",
		}
	}
	return v, nil
}

// ListSettings holds the per-command settings group driving list output.
type ListSettings struct {
	// Columns are the dot-notation field paths to display.
	Columns []string
	// Labels are the human-readable column headers, parallel to Columns.
	Labels []string
	// Open controls whether the command prompts to open a row after listing.
	Open bool
	// Top bounds the number of records fetched (build lists only).
	Top int
}

// Repo returns the settings group for `ado repo list`.
func (c *Config) Repo() (*ListSettings, error) {
	return c.listSettings("repo", defaultRepoColumns, defaultRepoLabels, 0)
}

// Build returns the settings group for `ado build list`.
func (c *Config) Build() (*ListSettings, error) {
	return c.listSettings("build", defaultBuildColumns, defaultBuildLabels, defaultBuildTop)
}

func (c *Config) listSettings(group string, defaultColumns, defaultLabels []string, defaultTop int) (*ListSettings, error) {
	data, _ := asDocument(c.doc[group])

	columns, columnsSet, err := splitSetting(data, group, "columns")
	if err != nil {
		return nil, err
	}
	if !columnsSet {
		columns = append([]string(nil), defaultColumns...)
	}

	labels, labelsSet, err := splitSetting(data, group, "column-names")
	if err != nil {
		return nil, err
	}
	if !labelsSet {
		if columnsSet {
			// Custom columns without custom names fall back to the raw
			// field paths as headers.
			labels = append([]string(nil), columns...)
		} else {
			labels = append([]string(nil), defaultLabels...)
		}
	}
	if len(labels) != len(columns) {
		return nil, &ConfigurationError{
			Key:    group + ".column-names",
			Reason: strconv.Itoa(len(labels)) + " column names configured for " + strconv.Itoa(len(columns)) + " columns",
			Hint:   "ado config set --" + group + "-column-names <name,...>",
		}
	}

	open, err := boolSetting(data, group, "open", true)
	if err != nil {
		return nil, err
	}

	top := defaultTop
	if defaultTop > 0 {
		top, err = intSetting(data, group, "top", defaultTop)
		if err != nil {
			return nil, err
		}
	}

	return &ListSettings{Columns: columns, Labels: labels, Open: open, Top: top}, nil
}

// splitSetting reads a comma-separated string setting and splits it into
// trimmed parts. The second return value reports whether the key was set.
func splitSetting(data Document, group, key string) ([]string, bool, error) {
	raw, present := data[key]
	if !present || raw == nil {
		return nil, false, nil
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil, false, &ConfigurationError{
			Key:    group + "." + key,
			Reason: "must be a non-empty comma-separated string",
		}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true, nil
}

func boolSetting(data Document, group, key string, fallback bool) (bool, error) {
	raw, present := data[key]
	if !present || raw == nil {
		return fallback, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, &ConfigurationError{
			Key:    group + "." + key,
			Reason: "must be true or false",
		}
	}
	return b, nil
}

// intSetting reads a numeric setting. Non-numeric stored values are a
// configuration error, never silently coerced to zero.
func intSetting(data Document, group, key string, fallback int) (int, error) {
	raw, present := data[key]
	if !present || raw == nil {
		return fallback, nil
	}
	invalid := &ConfigurationError{
		Key:    group + "." + key,
		Reason: "must be a positive integer",
	}
	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, invalid
		}
		n = parsed
	default:
		return 0, invalid
	}
	if n <= 0 {
		return 0, invalid
	}
	return n, nil
}

// DefaultDocument returns the starter document written by `ado config init`.
// Organization and project are deliberately left unset; the user supplies
// them with `ado config set`.
func DefaultDocument() Document {
	return Document{
		"server": DefaultServer,
		"repo": Document{
			"columns":      strings.Join(defaultRepoColumns, ","),
			"column-names": strings.Join(defaultRepoLabels, ","),
			"open":         true,
		},
	}
}
