package validate

import (
	"strings"

	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/report"
)

// checkOrphanSubLocations reports sub-locations that have no cards at
// all, since the app would show an empty screen for them. Sites
// without sub-locations are deliberately not reported: map-only sites
// with just tips and phrases are fine.
func (v *Validator) checkOrphanSubLocations(
	subLocs []content.SubLocationRow,
	cards []content.CardRow,
) []report.Finding {
	withCards := make(map[string]struct{}, len(subLocs))
	for _, card := range cards {
		if card.SubLocationID != "" {
			withCards[card.SubLocationID] = struct{}{}
		}
	}

	var res []report.Finding
	for _, sl := range subLocs {
		if sl.ID == "" {
			continue
		}
		if _, ok := withCards[sl.ID]; !ok {
			c := rowChecker{table: content.TableSubLocations, row: sl.Row, findings: &res}
			c.fail("id", "sub-location %q has no cards", sl.ID)
		}
	}
	return res
}

// checkDuplicateContent reports cards whose content merely repeats an
// earlier card. Only substantial content takes part; each card is
// keyed by the lowercased head of its content.
func (v *Validator) checkDuplicateContent(cards []content.CardRow) []report.Finding {
	var res []report.Finding
	first := make(map[string]int)

	for _, card := range cards {
		runes := []rune(card.Content)
		if len(runes) <= v.rules.DuplicateContentMinLen {
			continue
		}
		head := runes
		if len(head) > v.rules.DuplicateContentKeyLen {
			head = head[:v.rules.DuplicateContentKeyLen]
		}
		key := strings.ToLower(string(head))

		if firstRow, ok := first[key]; ok {
			c := rowChecker{table: content.TableCards, row: card.Row, findings: &res}
			c.fail("content", "content duplicates row %d", firstRow)
			continue
		}
		first[key] = card.Row
	}
	return res
}
