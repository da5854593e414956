package content

import (
	"fmt"
	"strconv"

	"github.com/unlockegypt/contentsync/pkg/report"
)

// Parse converts raw header-keyed rows into typed rows. Row numbers
// are the sheet row numbers: slice index plus two, with the header on
// row one. All-empty rows are skipped without shifting the numbers of
// the rows after them. Numeric cells that fail to parse are reported
// as findings and left nil; the row itself is always kept so later
// validators can still check its other fields.
func Parse(raw Raw) (*Tables, []report.Finding) {
	var findings []report.Finding
	res := &Tables{}

	for i, row := range raw[TableSites] {
		if !RowHasData(row) {
			continue
		}
		p := rowParser{table: TableSites, row: row, num: i + 2}
		res.Sites = append(res.Sites, SiteRow{
			Row:               p.num,
			ID:                row["id"],
			Name:              row["name"],
			ArabicName:        row["arabicName"],
			Era:               row["era"],
			TourismType:       row["tourismType"],
			PlaceType:         row["placeType"],
			City:              row["city"],
			ShortDescription:  row["shortDescription"],
			Latitude:          p.float("latitude"),
			LatitudeRaw:       row["latitude"],
			Longitude:         p.float("longitude"),
			LongitudeRaw:      row["longitude"],
			ImageNames:        row["imageNames"],
			EstimatedDuration: row["estimatedDuration"],
			BestTimeToVisit:   row["bestTimeToVisit"],
		})
		findings = append(findings, p.findings...)
	}

	for i, row := range raw[TableSubLocations] {
		if !RowHasData(row) {
			continue
		}
		p := rowParser{table: TableSubLocations, row: row, num: i + 2}
		res.SubLocations = append(res.SubLocations, SubLocationRow{
			Row:              p.num,
			ID:               row["id"],
			SiteID:           row["siteId"],
			Name:             row["name"],
			ArabicName:       row["arabicName"],
			ShortDescription: row["shortDescription"],
			ImageURL:         row["imageUrl"],
			Order:            p.int("order"),
			OrderRaw:         row["order"],
		})
		findings = append(findings, p.findings...)
	}

	for i, row := range raw[TableCards] {
		if !RowHasData(row) {
			continue
		}
		p := rowParser{table: TableCards, row: row, num: i + 2}
		res.Cards = append(res.Cards, CardRow{
			Row:           p.num,
			ID:            row["id"],
			SubLocationID: row["subLocationId"],
			Order:         p.int("order"),
			OrderRaw:      row["order"],
			Type:          row["type"],
			ImageURL:      row["imageUrl"],
			Content:       row["content"],
			FunFact:       row["funFact"],
			QuizQuestion:  row["quizQuestion"],
			QuizOptions: [4]string{
				row["quizOption1"], row["quizOption2"],
				row["quizOption3"], row["quizOption4"],
			},
			QuizCorrectAnswer:    p.int("quizCorrectAnswer"),
			QuizCorrectAnswerRaw: row["quizCorrectAnswer"],
			QuizExplanation:      row["quizExplanation"],
		})
		findings = append(findings, p.findings...)
	}

	for i, row := range raw[TableTips] {
		if !RowHasData(row) {
			continue
		}
		p := rowParser{table: TableTips, row: row, num: i + 2}
		res.Tips = append(res.Tips, TipRow{
			Row:      p.num,
			ID:       row["id"],
			SiteID:   row["siteId"],
			Order:    p.int("order"),
			OrderRaw: row["order"],
			Tip:      row["tip"],
		})
		findings = append(findings, p.findings...)
	}

	for i, row := range raw[TableArabicPhrases] {
		if !RowHasData(row) {
			continue
		}
		res.Phrases = append(res.Phrases, PhraseRow{
			Row:           i + 2,
			ID:            row["id"],
			SiteID:        row["siteId"],
			English:       row["english"],
			Arabic:        row["arabic"],
			Pronunciation: row["pronunciation"],
		})
	}

	return res, findings
}

// rowParser parses numeric cells of one row, collecting findings for
// non-empty values that do not parse.
type rowParser struct {
	table    string
	row      map[string]string
	num      int
	findings []report.Finding
}

func (p *rowParser) float(field string) *float64 {
	s := p.row[field]
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.fail(field, fmt.Sprintf("%q is not a number", s))
		return nil
	}
	return &v
}

func (p *rowParser) int(field string) *int {
	s := p.row[field]
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		p.fail(field, fmt.Sprintf("%q is not a whole number", s))
		return nil
	}
	return &v
}

func (p *rowParser) fail(field, msg string) {
	p.findings = append(p.findings, report.Finding{
		Table:   p.table,
		Row:     p.num,
		Field:   field,
		Message: msg,
	})
}
