// Package sheets provides the sheets.yaml configuration describing
// where each of the five content tables comes from: a tab of the
// shared Google spreadsheet, a local CSV file, or both (the file acts
// as a fallback when no spreadsheet id is configured).
package sheets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unlockegypt/contentsync/pkg/content"
)

// Config represents the complete sheets.yaml file.
type Config struct {
	// SpreadsheetID is the id of the shared Google spreadsheet. When
	// empty, tables are read from local CSV files under DataDir.
	SpreadsheetID string `yaml:"spreadsheet_id"`

	// ExportBase overrides the spreadsheet export endpoint. Empty
	// means the public Google Sheets endpoint.
	ExportBase string `yaml:"export_base"`

	// DataDir is the directory local CSV files are read from.
	DataDir string `yaml:"data_dir"`

	// Tables lists the five content tables.
	Tables []Table `yaml:"tables"`
}

// Table describes one content table source.
type Table struct {
	// Name is the sheet tab name, e.g. "Sites".
	Name string `yaml:"name"`

	// GID is the tab id from the spreadsheet URL (after #gid=).
	GID int `yaml:"gid"`

	// File is the CSV file name under data_dir.
	File string `yaml:"file"`
}

const defaultExportBase = "https://docs.google.com/spreadsheets"

// ExportURL returns the CSV export URL for the table's tab. The gviz
// endpoint works on published sheets without authentication.
func (c *Config) ExportURL(t Table) string {
	base := c.ExportBase
	if base == "" {
		base = defaultExportBase
	}
	return fmt.Sprintf("%s/d/%s/gviz/tq?tqx=out:csv&gid=%d",
		base, c.SpreadsheetID, t.GID)
}

// Load reads and validates a sheets.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadError(path, err)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, ParseError(path, err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every content table is configured exactly once
// and that each entry has a usable source.
func (c *Config) Validate() error {
	byName := make(map[string]Table, len(c.Tables))
	for _, t := range c.Tables {
		if _, ok := byName[t.Name]; ok {
			return IncompleteError(fmt.Sprintf("table %q is listed twice", t.Name))
		}
		byName[t.Name] = t
	}

	for _, name := range content.TableOrder() {
		t, ok := byName[name]
		if !ok {
			return IncompleteError(fmt.Sprintf("table %q is missing", name))
		}
		if c.SpreadsheetID == "" && t.File == "" {
			return IncompleteError(fmt.Sprintf(
				"table %q has no file and no spreadsheet is configured", name))
		}
	}
	return nil
}

// TableByName returns the configured source for one table.
func (c *Config) TableByName(name string) (Table, bool) {
	for _, t := range c.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Remote reports whether tables are fetched from the spreadsheet
// rather than read from local files.
func (c *Config) Remote() bool {
	return c.SpreadsheetID != ""
}
