// Package convert denormalizes the five validated content tables into
// the nested site-centric document the app bundles. The transform is
// deterministic: the same tables and timestamp always produce the same
// document.
package convert

import (
	"sort"
	"strings"
	"time"

	"github.com/unlockegypt/contentsync/pkg/content"
)

// FormatVersion tags the document layout the app parses.
const FormatVersion = "1.0"

// Document assembles the nested output tree from the typed tables.
// Validation is expected to have passed already; numeric cells that
// are still nil fall back to zero instead of failing the run.
func Document(t *content.Tables, now time.Time) *content.Document {
	tipsBySite := groupTips(t.Tips)
	phrasesBySite := groupPhrases(t.Phrases)
	cardsBySubLoc := groupCards(t.Cards)
	subLocsBySite := groupSubLocations(t.SubLocations, cardsBySubLoc)

	sites := make([]content.Site, 0, len(t.Sites))
	for _, row := range t.Sites {
		sites = append(sites, content.Site{
			ID:               row.ID,
			Name:             row.Name,
			ArabicName:       row.ArabicName,
			Era:              row.Era,
			TourismType:      row.TourismType,
			PlaceType:        row.PlaceType,
			City:             row.City,
			ShortDescription: row.ShortDescription,
			Coordinates: content.Coordinates{
				Latitude:  floatOrZero(row.Latitude),
				Longitude: floatOrZero(row.Longitude),
			},
			ImageNames:   splitImageNames(row.ImageNames),
			SubLocations: orEmpty(subLocsBySite[row.ID]),
			VisitInfo: content.VisitInfo{
				EstimatedDuration: row.EstimatedDuration,
				BestTimeToVisit:   row.BestTimeToVisit,
				Tips:              orEmpty(tipsBySite[row.ID]),
				ArabicPhrases:     orEmpty(phrasesBySite[row.ID]),
			},
			IsUnlocked: true,
		})
	}

	return &content.Document{
		Version:     FormatVersion,
		LastUpdated: now.Format(time.RFC3339),
		Sites:       sites,
	}
}

// groupTips collects tip texts per site, keeping source order.
func groupTips(rows []content.TipRow) map[string][]string {
	res := make(map[string][]string)
	for _, row := range rows {
		res[row.SiteID] = append(res[row.SiteID], row.Tip)
	}
	return res
}

// groupPhrases collects phrases per site, keeping source order.
func groupPhrases(rows []content.PhraseRow) map[string][]content.ArabicPhrase {
	res := make(map[string][]content.ArabicPhrase)
	for _, row := range rows {
		res[row.SiteID] = append(res[row.SiteID], content.ArabicPhrase{
			English:       row.English,
			Arabic:        row.Arabic,
			Pronunciation: row.Pronunciation,
		})
	}
	return res
}

// groupCards collects cards per sub-location, stable-sorted ascending
// by order so cards with equal order keep their source row order.
func groupCards(rows []content.CardRow) map[string][]content.StoryCard {
	type sortable struct {
		card  content.StoryCard
		order int
	}
	grouped := make(map[string][]sortable)
	for _, row := range rows {
		grouped[row.SubLocationID] = append(grouped[row.SubLocationID], sortable{
			card:  storyCard(row),
			order: intOrZero(row.Order),
		})
	}

	res := make(map[string][]content.StoryCard, len(grouped))
	for subLocID, cards := range grouped {
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].order < cards[j].order
		})
		out := make([]content.StoryCard, len(cards))
		for i, c := range cards {
			out[i] = c.card
		}
		res[subLocID] = out
	}
	return res
}

func storyCard(row content.CardRow) content.StoryCard {
	card := content.StoryCard{
		ID:        row.ID,
		Type:      row.Type,
		ImageName: optional(row.ImageURL),
		Content:   optional(row.Content),
		FunFact:   optional(row.FunFact),
	}
	if row.HasQuiz() {
		// The sheet is 1-based, the app is 0-based. A missing answer
		// falls back to the first option; validation has already
		// flagged it.
		answer := 1
		if row.QuizCorrectAnswer != nil {
			answer = *row.QuizCorrectAnswer
		}
		card.QuizQuestion = &content.QuizQuestion{
			ID:                 "q_" + row.ID,
			Question:           row.QuizQuestion,
			Options:            row.QuizOptions[:],
			CorrectAnswerIndex: answer - 1,
			Explanation:        row.QuizExplanation,
			FunFact:            nil,
		}
	}
	return card
}

// groupSubLocations collects sub-locations per site with their sorted
// card lists attached, keeping source order within a site.
func groupSubLocations(
	rows []content.SubLocationRow,
	cardsBySubLoc map[string][]content.StoryCard,
) map[string][]content.SubLocation {
	res := make(map[string][]content.SubLocation)
	for _, row := range rows {
		res[row.SiteID] = append(res[row.SiteID], content.SubLocation{
			ID:               row.ID,
			Name:             row.Name,
			ArabicName:       row.ArabicName,
			ShortDescription: row.ShortDescription,
			ImageName:        optional(row.ImageURL),
			StoryCards:       orEmpty(cardsBySubLoc[row.ID]),
		})
	}
	return res
}

// splitImageNames splits the comma-separated image list, trimming
// whitespace and dropping empty entries. Always returns a non-nil
// slice so the document encodes an empty array, not null.
func splitImageNames(s string) []string {
	res := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			res = append(res, part)
		}
	}
	return res
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// orEmpty replaces a nil slice with an allocated empty one so the
// document encodes [] instead of null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
