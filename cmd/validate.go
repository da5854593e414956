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

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getValidateCmd returns the validate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getValidateCmd() *cobra.Command {
	var checkURLs bool

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the content tables",
		Long: `Read the five content tables and run every check:

  - required fields, duplicate ids, enum vocabularies
  - coordinates (valid and inside Egypt)
  - Arabic script in localized fields
  - foreign keys between tables
  - length limits and placeholder-length warnings
  - quiz structure on quiz cards
  - card order uniqueness per sub-location
  - sub-locations without cards, duplicated card content

With --check-urls, remote card images are probed for reachability.
The probe only runs when everything else passed.

The grouped report is printed either way; any finding makes the
command exit non-zero.

Examples:
  contentsync validate
  contentsync validate --check-urls
  contentsync validate --sheets ./sheets.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runValidate(cmd, checkURLs)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	validateCmd.Flags().BoolVarP(
		&checkURLs, "check-urls", "u", false,
		"probe remote card image URLs",
	)

	return validateCmd
}

func runValidate(cmd *cobra.Command, checkURLs bool) error {
	ctx := cmd.Context()

	_, rep, err := runValidation(ctx, checkURLs || cfg.Sync.CheckURLs)
	if err != nil {
		return err
	}

	fmt.Print(rep.Render())

	if !rep.Pass() {
		return validationFailedError(rep.Count())
	}
	return nil
}
