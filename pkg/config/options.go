package config

import (
	"regexp"
	"strings"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputDir sets the directory that contains game XML files.
func OptInputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Dir", s) {
			c.Input.Dir = s
		}
	}
}

// OptInputFileTemplate sets the template that maps a game ID to a file
// name. The template must contain exactly one %d verb and no other verbs.
func OptInputFileTemplate(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidTemplate("Input File Template", s) {
			c.Input.FileTemplate = s
		}
	}
}

// OptInputMaxGame sets the exclusive upper bound of game IDs to scan.
// Zero scans nothing and produces a header-only table.
func OptInputMaxGame(i int) Option {
	return func(c *Config) {
		if isValidInt("Input Max Game", i) {
			c.Input.MaxGame = i
		}
	}
}

// OptOutputPath sets the path of the generated table.
func OptOutputPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Path", s) {
			c.Output.Path = s
		}
	}
}

// OptOutputFormat sets the output format.
// Valid values: "csv", "sqlite".
func OptOutputFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Format", s) {
			c.Output.Format = s
		}
	}
}

// OptOutputTable sets the SQLite table name.
func OptOutputTable(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidIdent("Output Table", s) {
			c.Output.Table = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

var (
	verbRe  = regexp.MustCompile(`%[^%]|%$`)
	identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

func isValidTemplate(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	verbs := verbRe.FindAllString(strings.ReplaceAll(s, "%%", ""), -1)
	if len(verbs) == 1 && verbs[0] == "%d" {
		return true
	}
	gn.Warn(
		"<em>%s</em> must contain exactly one %%d verb, ignoring '%s'",
		name, s,
	)
	return false
}

func isValidIdent(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	if identRe.MatchString(s) {
		return true
	}
	gn.Warn("<em>%s</em> is not a valid identifier, ignoring '%s'", name, s)
	return false
}
