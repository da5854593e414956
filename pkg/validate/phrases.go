package validate

import (
	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/report"
)

func (v *Validator) checkPhrases(
	rows []content.PhraseRow,
	siteIDs map[string]struct{},
) []report.Finding {
	var res []report.Finding
	seen := make(map[string]int)

	for _, row := range rows {
		c := rowChecker{table: content.TableArabicPhrases, row: row.Row, findings: &res}

		c.required("id", row.ID)
		c.required("siteId", row.SiteID)
		c.required("english", row.English)
		c.required("arabic", row.Arabic)
		c.required("pronunciation", row.Pronunciation)

		c.uniqueID("id", row.ID, seen)
		c.arabic("arabic", row.Arabic, v.rules.ArabicRanges)

		c.foreignKey("siteId", row.SiteID, siteIDs, content.TableSites)
	}

	return res
}
