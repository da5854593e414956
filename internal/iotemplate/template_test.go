package iotemplate_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unlockegypt/contentsync/internal/iotemplate"
	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/rules"
	"github.com/xuri/excelize/v2"
)

func saveWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.xlsx")

	err := iotemplate.Save(path, rules.New())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestSaveCreatesAllSheets(t *testing.T) {
	f := saveWorkbook(t)

	assert.Equal(t, content.TableOrder(), f.GetSheetList())
}

func TestSheetHeaders(t *testing.T) {
	f := saveWorkbook(t)

	v, err := f.GetCellValue(content.TableSites, "A1")
	require.NoError(t, err)
	assert.Equal(t, "id", v)

	v, err = f.GetCellValue(content.TableSites, "D1")
	require.NoError(t, err)
	assert.Equal(t, "era", v)

	v, err = f.GetCellValue(content.TableCards, "D1")
	require.NoError(t, err)
	assert.Equal(t, "type", v)
}

func TestSampleRowsPresent(t *testing.T) {
	f := saveWorkbook(t)

	for _, sheet := range content.TableOrder() {
		v, err := f.GetCellValue(sheet, "A2")
		require.NoError(t, err)
		assert.NotEmpty(t, v, "sheet %s should carry a sample row", sheet)
	}
}

func TestDropdownsAttached(t *testing.T) {
	f := saveWorkbook(t)

	dvs, err := f.GetDataValidations(content.TableSites)
	require.NoError(t, err)
	assert.Len(t, dvs, 4)

	dvs, err = f.GetDataValidations(content.TableCards)
	require.NoError(t, err)
	require.Len(t, dvs, 1)
	assert.Equal(t, "D2:D200", dvs[0].Sqref)
}

func TestSaveBadPath(t *testing.T) {
	err := iotemplate.Save(
		filepath.Join(t.TempDir(), "no", "such", "dir", "x.xlsx"),
		rules.New())
	assert.Error(t, err)
}
