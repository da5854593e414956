package validate

import (
	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/report"
)

func (v *Validator) checkSubLocations(
	rows []content.SubLocationRow,
	siteIDs map[string]struct{},
) []report.Finding {
	var res []report.Finding
	seen := make(map[string]int)

	for _, row := range rows {
		c := rowChecker{table: content.TableSubLocations, row: row.Row, findings: &res}

		c.required("id", row.ID)
		c.required("siteId", row.SiteID)
		c.required("name", row.Name)
		c.required("arabicName", row.ArabicName)
		c.required("shortDescription", row.ShortDescription)
		c.required("order", row.OrderRaw)

		c.uniqueID("id", row.ID, seen)
		c.arabic("arabicName", row.ArabicName, v.rules.ArabicRanges)

		c.foreignKey("siteId", row.SiteID, siteIDs, content.TableSites)

		c.length("shortDescription", row.ShortDescription,
			v.rules.ShortDescriptionMin, v.rules.ShortDescriptionMax)
		c.imageRef("imageUrl", row.ImageURL, v.rules.ImageExtensions)
	}

	return res
}
