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
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"

	"github.com/unlockegypt/contentsync/internal/iofs"
	"github.com/unlockegypt/contentsync/pkg/config"
	"github.com/unlockegypt/contentsync/pkg/convert"
	"github.com/unlockegypt/contentsync/pkg/errcode"
)

// getSyncCmd returns the sync command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSyncCmd() *cobra.Command {
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Validate the tables and write the app content document",
		Long: `Read the five content tables, validate them, and when every
check passes, assemble the nested content document the mobile app
bundles and write it to the configured output locations.

No document is written if validation finds any problem. The grouped
report is printed instead and the command exits non-zero.

Examples:
  contentsync sync
  contentsync sync --check-urls
  contentsync sync --output ./build --resources ""`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSync(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	syncCmd.Flags().BoolP(
		"check-urls", "u", false,
		"probe remote card image URLs before writing",
	)
	syncCmd.Flags().StringP(
		"output", "o", "",
		"directory for the content document",
	)
	syncCmd.Flags().StringP(
		"resources", "r", "",
		"second directory to copy the document to, empty disables",
	)
	syncCmd.Flags().StringP(
		"doc-name", "n", "",
		"file name of the content document",
	)

	return syncCmd
}

func runSync(cmd *cobra.Command) error {
	ctx := cmd.Context()
	start := time.Now()

	syncOpts(cmd)

	tables, rep, err := runValidation(ctx, cfg.Sync.CheckURLs)
	if err != nil {
		return err
	}

	fmt.Print(rep.Render())

	if !rep.Pass() {
		return validationFailedError(rep.Count())
	}

	doc := convert.Document(tables, time.Now())

	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(doc)
	if err != nil {
		return &gn.Error{
			Code: errcode.ConvertEncodeError,
			Msg:  "Cannot encode the content document",
			Err:  err,
		}
	}

	dirs := []string{cfg.Sync.OutputDir}
	if cfg.Sync.ResourcesDir != "" {
		dirs = append(dirs, cfg.Sync.ResourcesDir)
	}
	paths, err := iofs.WriteDocument(data, cfg.Sync.DocumentName, dirs...)
	if err != nil {
		return err
	}

	for _, p := range paths {
		gn.Info("Wrote <em>%s</em>", p)
	}
	gn.Info(
		"Synced <em>%s</em> sites, <em>%s</em> sub-locations, "+
			"<em>%s</em> cards in %s",
		humanize.Comma(int64(len(tables.Sites))),
		humanize.Comma(int64(len(tables.SubLocations))),
		humanize.Comma(int64(len(tables.Cards))),
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// syncOpts folds command-line flags into the configuration, flags
// winning over the config file and environment.
func syncOpts(cmd *cobra.Command) {
	var opts []config.Option

	if cmd.Flags().Changed("check-urls") {
		b, _ := cmd.Flags().GetBool("check-urls")
		opts = append(opts, config.OptSyncCheckURLs(b))
	}
	if cmd.Flags().Changed("output") {
		s, _ := cmd.Flags().GetString("output")
		opts = append(opts, config.OptSyncOutputDir(s))
	}
	if cmd.Flags().Changed("resources") {
		s, _ := cmd.Flags().GetString("resources")
		opts = append(opts, config.OptSyncResourcesDir(s))
	}
	if cmd.Flags().Changed("doc-name") {
		s, _ := cmd.Flags().GetString("doc-name")
		opts = append(opts, config.OptSyncDocumentName(s))
	}

	cfg.Update(opts)
}
