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
	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/unlockegypt/contentsync/internal/iotemplate"
	"github.com/unlockegypt/contentsync/pkg/rules"
)

// getTemplateCmd returns the template command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getTemplateCmd() *cobra.Command {
	var outPath string

	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Create an empty content workbook",
		Long: `Create an Excel workbook with one sheet per content table,
styled headers, sample rows, and dropdown lists for the enum
columns. Editors fill it in, upload it to Google Sheets, and point
sheets.yaml at the result.

Examples:
  contentsync template
  contentsync template -o ./UnlockEgypt_Content.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTemplate(outPath)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	templateCmd.Flags().StringVarP(
		&outPath, "output", "o", "UnlockEgypt_Content.xlsx",
		"path of the workbook to create",
	)

	return templateCmd
}

func runTemplate(path string) error {
	err := iotemplate.Save(path, rules.New())
	if err != nil {
		return err
	}
	gn.Info("Created content workbook <em>%s</em>", path)
	return nil
}
