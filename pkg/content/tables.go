// Package content defines the typed rows of the five content tables,
// the raw-row parsing stage, and the nested document the app consumes.
package content

// Table names match the sheet tab names in the content spreadsheet.
const (
	TableSites         = "Sites"
	TableSubLocations  = "SubLocations"
	TableCards         = "Cards"
	TableTips          = "Tips"
	TableArabicPhrases = "ArabicPhrases"
)

// TableOrder returns the fixed display order of the tables. It is also
// the validation order: parent tables come before their dependents.
func TableOrder() []string {
	return []string{
		TableSites,
		TableSubLocations,
		TableCards,
		TableTips,
		TableArabicPhrases,
	}
}

// Raw is the untyped output of a table source: for each table a list of
// header-keyed field maps, one per data row. Sources keep every record
// in sheet order, all-empty rows included, so the slice index of a row
// stays aligned with its row number in the spreadsheet.
type Raw map[string][]map[string]string

// RowHasData reports whether any cell of a raw row is filled in. The
// sheet export keeps rows of editing leftovers as records of empty
// cells.
func RowHasData(row map[string]string) bool {
	for _, v := range row {
		if v != "" {
			return true
		}
	}
	return false
}

// Tables holds the typed rows of one content snapshot.
type Tables struct {
	Sites        []SiteRow
	SubLocations []SubLocationRow
	Cards        []CardRow
	Tips         []TipRow
	Phrases      []PhraseRow
}
