package validate

import (
	"strings"

	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/report"
)

func (v *Validator) checkSites(rows []content.SiteRow) []report.Finding {
	var res []report.Finding
	seen := make(map[string]int)

	for _, row := range rows {
		c := rowChecker{table: content.TableSites, row: row.Row, findings: &res}

		c.required("id", row.ID)
		c.required("name", row.Name)
		c.required("arabicName", row.ArabicName)
		c.required("era", row.Era)
		c.required("tourismType", row.TourismType)
		c.required("placeType", row.PlaceType)
		c.required("city", row.City)
		c.required("shortDescription", row.ShortDescription)
		c.required("latitude", row.LatitudeRaw)
		c.required("longitude", row.LongitudeRaw)
		c.required("estimatedDuration", row.EstimatedDuration)
		c.required("bestTimeToVisit", row.BestTimeToVisit)

		c.uniqueID("id", row.ID, seen)

		c.enum("era", row.Era, v.eras)
		c.enum("tourismType", row.TourismType, v.tourismTypes)
		c.enum("placeType", row.PlaceType, v.placeTypes)
		c.enum("city", row.City, v.cities)

		v.checkCoordinates(c, row)

		c.arabic("arabicName", row.ArabicName, v.rules.ArabicRanges)
		c.length("shortDescription", row.ShortDescription,
			v.rules.ShortDescriptionMin, v.rules.ShortDescriptionMax)

		for _, name := range splitImageNames(row.ImageNames) {
			c.imageRef("imageNames", name, v.rules.ImageExtensions)
		}
	}

	return res
}

// checkCoordinates verifies latitude and longitude are valid WGS84
// values and also fall inside the Egypt bounding box. Cells that did
// not parse were already reported by the parse stage.
func (v *Validator) checkCoordinates(c rowChecker, row content.SiteRow) {
	if row.Latitude != nil {
		lat := *row.Latitude
		if !InRange(lat, -90, 90) {
			c.fail("latitude", "%v is not a valid latitude", lat)
		} else if !InRange(lat, v.rules.LatMin, v.rules.LatMax) {
			c.fail("latitude", "%v is outside Egypt", lat)
		}
	}
	if row.Longitude != nil {
		lon := *row.Longitude
		if !InRange(lon, -180, 180) {
			c.fail("longitude", "%v is not a valid longitude", lon)
		} else if !InRange(lon, v.rules.LonMin, v.rules.LonMax) {
			c.fail("longitude", "%v is outside Egypt", lon)
		}
	}
}

// splitImageNames splits the comma-separated image list, trimming
// whitespace and dropping empty entries.
func splitImageNames(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			res = append(res, part)
		}
	}
	return res
}
