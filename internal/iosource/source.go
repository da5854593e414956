// Package iosource implements the TableSource interface. Tables come
// either from local CSV files or from the published Google spreadsheet
// CSV export; both paths produce the same header-keyed rows.
package iosource

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	contentsync "github.com/unlockegypt/contentsync/pkg"
	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/sheets"
)

const fetchTimeout = 30 * time.Second

type source struct {
	cfg    *sheets.Config
	client *http.Client
}

// New creates a TableSource for the configured sheets.
func New(cfg *sheets.Config) contentsync.TableSource {
	return &source{
		cfg:    cfg,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Tables reads all five tables in display order.
func (s *source) Tables(ctx context.Context) (content.Raw, error) {
	res := make(content.Raw, len(content.TableOrder()))

	for _, name := range content.TableOrder() {
		tbl, ok := s.cfg.TableByName(name)
		if !ok {
			// Load() validated completeness already.
			continue
		}

		var rows []map[string]string
		var err error
		if s.cfg.Remote() {
			rows, err = s.fetchTable(ctx, tbl)
		} else {
			rows, err = s.readTable(tbl)
		}
		if err != nil {
			return nil, err
		}

		slog.Info("Table loaded", "table", name, "rows", len(rows))
		res[name] = rows
	}

	if !hasData(res[content.TableSites]) {
		return nil, EmptySourceError(content.TableSites)
	}

	return res, nil
}

func hasData(rows []map[string]string) bool {
	for _, row := range rows {
		if content.RowHasData(row) {
			return true
		}
	}
	return false
}

func (s *source) fetchTable(
	ctx context.Context,
	tbl sheets.Table,
) ([]map[string]string, error) {
	url := s.cfg.ExportURL(tbl)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, FetchError(tbl.Name, err)
	}
	// The export endpoint rejects requests without a browser-like agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, FetchError(tbl.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, FetchStatusError(tbl.Name, resp.StatusCode)
	}

	rows, err := parseCSV(resp.Body)
	if err != nil {
		return nil, CSVError(tbl.Name, err)
	}
	return rows, nil
}

func (s *source) readTable(tbl sheets.Table) ([]map[string]string, error) {
	path := filepath.Join(s.cfg.DataDir, tbl.File)

	f, err := os.Open(path)
	if err != nil {
		return nil, OpenError(tbl.Name, path, err)
	}
	defer f.Close()

	rows, err := parseCSV(f)
	if err != nil {
		return nil, CSVError(tbl.Name, err)
	}
	return rows, nil
}
