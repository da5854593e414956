package contentsync

import (
	"context"

	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/report"
	"github.com/unlockegypt/contentsync/pkg/validate"
)

// TableSource provides the raw rows of all five content tables. The
// pipeline is agnostic to where they come from; implementations read
// local CSV files or fetch the published spreadsheet export.
type TableSource interface {
	// Tables returns each table's rows as header-keyed field maps.
	// Returns an error when the primary Sites table is empty or
	// missing; dependent tables may legitimately be empty.
	Tables(ctx context.Context) (content.Raw, error)
}

// Prober checks external image URLs for reachability. A failed probe
// is a finding against the referencing row, never a fatal error.
type Prober interface {
	Probe(ctx context.Context, refs []validate.ImageRef) []report.Finding
}
