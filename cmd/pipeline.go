/*
Copyright © 2025 Unlock Egypt authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"

	"github.com/unlockegypt/contentsync/internal/ioprobe"
	"github.com/unlockegypt/contentsync/internal/iosource"
	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/errcode"
	"github.com/unlockegypt/contentsync/pkg/report"
	"github.com/unlockegypt/contentsync/pkg/rules"
	"github.com/unlockegypt/contentsync/pkg/sheets"
	"github.com/unlockegypt/contentsync/pkg/validate"
)

// runValidation reads the tables and runs every check, including the
// optional URL probe. The probe phase is gated: it only runs when
// every earlier phase came back clean, so slow network calls are never
// spent on an already-invalid dataset.
func runValidation(
	ctx context.Context,
	checkURLs bool,
) (*content.Tables, *report.Report, error) {
	sheetsCfg, err := sheets.Load(sheetsFilePath())
	if err != nil {
		return nil, nil, err
	}

	if sheetsCfg.Remote() {
		gn.Info("Fetching tables from spreadsheet <em>%s</em>",
			sheetsCfg.SpreadsheetID)
	} else {
		gn.Info("Reading tables from <em>%s</em>", sheetsCfg.DataDir)
	}

	src := iosource.New(sheetsCfg)
	raw, err := src.Tables(ctx)
	if err != nil {
		return nil, nil, err
	}

	tables, parseFindings := content.Parse(raw)

	rep := report.New(content.TableOrder())
	rep.Add(parseFindings...)
	rep.Add(validate.New(rules.New()).Validate(tables)...)

	if rep.Pass() && checkURLs {
		refs := validate.CollectRemoteImages(tables)
		if len(refs) > 0 {
			gn.Info("Probing %s remote image URLs",
				humanize.Comma(int64(len(refs))))
			prober := ioprobe.New(
				time.Duration(cfg.Sync.URLTimeoutSec) * time.Second)
			rep.Add(prober.Probe(ctx, refs)...)
		}
	}

	return tables, rep, nil
}

// validationFailedError signals a non-zero exit after the report has
// been printed.
func validationFailedError(count int) error {
	msg := "Validation failed with <em>%d</em> problems, see the report above"
	vars := []any{count}
	return &gn.Error{
		Code: errcode.ValidationFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("validation failed with %d findings", count),
	}
}
