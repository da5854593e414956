package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptSyncOutputDir sets the directory for the generated JSON document.
func OptSyncOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sync OutputDir", s) {
			c.Sync.OutputDir = s
		}
	}
}

// OptSyncResourcesDir sets the optional second destination for the
// document. An empty value disables the second copy, so it is accepted.
func OptSyncResourcesDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Sync.ResourcesDir = s
	}
}

// OptSyncDocumentName sets the file name of the generated JSON document.
func OptSyncDocumentName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sync DocumentName", s) {
			c.Sync.DocumentName = s
		}
	}
}

// OptSyncCheckURLs toggles the image URL reachability probe.
func OptSyncCheckURLs(b bool) Option {
	return func(c *Config) {
		c.Sync.CheckURLs = b
	}
}

// OptSyncURLTimeoutSec sets the per-URL timeout of the probe in seconds.
func OptSyncURLTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("URL Timeout", i) {
			c.Sync.URLTimeoutSec = i
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
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

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory used to resolve config and log
// paths. Set once by the CLI during startup.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("HomeDir", s) {
			c.HomeDir = s
		}
	}
}
