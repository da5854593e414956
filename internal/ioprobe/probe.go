// Package ioprobe implements the Prober interface: a sequential
// existence check of external image URLs. The probe is slow by nature,
// so the pipeline only runs it when every other check passed.
package ioprobe

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	contentsync "github.com/unlockegypt/contentsync/pkg"
	"github.com/unlockegypt/contentsync/pkg/report"
	"github.com/unlockegypt/contentsync/pkg/validate"
)

type prober struct {
	client *http.Client
}

// New creates a Prober with the given per-URL timeout.
func New(timeout time.Duration) contentsync.Prober {
	return &prober{
		client: &http.Client{Timeout: timeout},
	}
}

// Probe checks each URL once, sequentially. Timeouts and connection
// failures become findings against the referencing row; there are no
// retries.
func (p *prober) Probe(
	ctx context.Context,
	refs []validate.ImageRef,
) []report.Finding {
	if len(refs) == 0 {
		return nil
	}

	bar := newProgressBar(len(refs), "Checking image URLs ")
	defer bar.Finish()

	var res []report.Finding
	for _, ref := range refs {
		if reason, ok := p.check(ctx, ref.URL); !ok {
			res = append(res, report.Finding{
				Table:   ref.Table,
				Row:     ref.Row,
				Field:   ref.Field,
				Message: fmt.Sprintf("%s is unreachable: %s", ref.URL, reason),
			})
		}
		bar.Increment()
	}

	slog.Info("Image URL probe finished",
		"checked", len(refs), "unreachable", len(res))
	return res
}

// check performs one HEAD request. Anything but a 2xx or 3xx response
// counts as unreachable.
func (p *prober) check(ctx context.Context, url string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err.Error(), false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err.Error(), false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Sprintf("HTTP %d", resp.StatusCode), false
	}
	return "", true
}
