package validate

import (
	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/report"
)

func (v *Validator) checkTips(
	rows []content.TipRow,
	siteIDs map[string]struct{},
) []report.Finding {
	var res []report.Finding
	seen := make(map[string]int)

	for _, row := range rows {
		c := rowChecker{table: content.TableTips, row: row.Row, findings: &res}

		c.required("id", row.ID)
		c.required("siteId", row.SiteID)
		c.required("order", row.OrderRaw)
		c.required("tip", row.Tip)

		c.uniqueID("id", row.ID, seen)
		c.foreignKey("siteId", row.SiteID, siteIDs, content.TableSites)

		c.length("tip", row.Tip, v.rules.TipMin, v.rules.TipMax)
	}

	return res
}
