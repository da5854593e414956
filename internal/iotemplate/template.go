// Package iotemplate generates the content-entry Excel workbook: one
// styled sheet per content table, with sample rows and dropdown data
// validations for every enum column, so editors cannot mistype the
// closed vocabularies.
package iotemplate

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/rules"
)

// Save builds the workbook and writes it to path.
func Save(path string, r rules.Rules) error {
	f, err := build(r)
	if err != nil {
		return BuildError(err)
	}
	defer f.Close()

	if err = f.SaveAs(path); err != nil {
		return SaveError(path, err)
	}
	return nil
}

func build(r rules.Rules) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, err
	}

	// The default sheet becomes the first table.
	if err = f.SetSheetName("Sheet1", content.TableSites); err != nil {
		return nil, err
	}
	for _, name := range content.TableOrder()[1:] {
		if _, err = f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	for _, sheet := range sheetSpecs() {
		if err = fillSheet(f, sheet, headerStyle); err != nil {
			return nil, err
		}
	}

	if err = addDropdowns(f, r); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// sheetSpec describes one table sheet: header row, sample data, column
// width.
type sheetSpec struct {
	name    string
	headers []string
	samples [][]any
	width   float64
}

func fillSheet(f *excelize.File, spec sheetSpec, headerStyle int) error {
	for col, h := range spec.headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(spec.name, cell, h); err != nil {
			return err
		}
	}

	for rowIdx, row := range spec.samples {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(spec.name, cell, v); err != nil {
				return err
			}
		}
	}

	last, err := excelize.CoordinatesToCellName(len(spec.headers), 1)
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(spec.name, "A1", last, headerStyle); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(spec.headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(spec.name, "A", lastCol, spec.width)
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D4AF37"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
}

// addDropdowns attaches list validations for every enum column, using
// the same vocabularies the validator enforces.
func addDropdowns(f *excelize.File, r rules.Rules) error {
	drops := []struct {
		sheet  string
		sqref  string
		values []string
	}{
		{content.TableSites, "D2:D100", r.Eras},
		{content.TableSites, "E2:E100", r.TourismTypes},
		{content.TableSites, "F2:F100", r.PlaceTypes},
		{content.TableSites, "G2:G100", r.Cities},
		{content.TableCards, "D2:D200", r.CardTypes},
	}

	for _, d := range drops {
		dv := excelize.NewDataValidation(true)
		dv.Sqref = d.sqref
		if err := dv.SetDropList(d.values); err != nil {
			return fmt.Errorf("dropdown for %s %s: %w", d.sheet, d.sqref, err)
		}
		if err := f.AddDataValidation(d.sheet, dv); err != nil {
			return err
		}
	}
	return nil
}
