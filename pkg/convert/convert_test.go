package convert_test

import (
	"testing"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/convert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func sampleTables() *content.Tables {
	return &content.Tables{
		Sites: []content.SiteRow{
			{
				Row: 2, ID: "giza", Name: "Giza Plateau",
				ArabicName: "هضبة الجيزة",
				Era:        "Old Kingdom", TourismType: "Pharaonic",
				PlaceType: "Pyramid", City: "Giza",
				ShortDescription:  "Home of the Great Pyramid.",
				Latitude:          floatPtr(29.9773),
				Longitude:         floatPtr(31.1325),
				ImageNames:        "giza_1.jpg, giza_2.jpg",
				EstimatedDuration: "3-4 hours",
				BestTimeToVisit:   "Early morning",
			},
		},
		SubLocations: []content.SubLocationRow{
			{Row: 2, ID: "giza_sphinx", SiteID: "giza", Name: "The Sphinx",
				ArabicName:       "أبو الهول",
				ShortDescription: "The guardian of the plateau.",
				ImageURL:         "sphinx.jpg", Order: intPtr(1)},
		},
		Cards: []content.CardRow{
			{Row: 2, ID: "card_b", SubLocationID: "giza_sphinx",
				Order: intPtr(2), Type: "quiz",
				Content:      "Quiz time.",
				QuizQuestion: "What is the Sphinx carved from?",
				QuizOptions: [4]string{
					"Limestone", "Granite", "Sandstone", "Basalt",
				},
				QuizCorrectAnswer: intPtr(3),
				QuizExplanation:   "It is cut from the plateau bedrock."},
			{Row: 3, ID: "card_a", SubLocationID: "giza_sphinx",
				Order: intPtr(1), Type: "intro",
				Content: "Meet the Sphinx.", FunFact: "It lost its nose."},
		},
		Tips: []content.TipRow{
			{Row: 2, ID: "tip_1", SiteID: "giza", Order: intPtr(1),
				Tip: "Bring water."},
			{Row: 3, ID: "tip_2", SiteID: "giza", Order: intPtr(2),
				Tip: "Go early."},
		},
		Phrases: []content.PhraseRow{
			{Row: 2, ID: "ph_1", SiteID: "giza", English: "Hello",
				Arabic: "مرحبا", Pronunciation: "marhaba"},
		},
	}
}

func TestDocumentShape(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := convert.Document(sampleTables(), now)

	assert.Equal(t, "1.0", doc.Version)
	assert.Equal(t, "2025-06-01T12:00:00Z", doc.LastUpdated)
	require.Len(t, doc.Sites, 1)

	site := doc.Sites[0]
	assert.Equal(t, "giza", site.ID)
	assert.True(t, site.IsUnlocked)
	assert.InDelta(t, 29.9773, site.Coordinates.Latitude, 1e-9)
	assert.Equal(t, []string{"giza_1.jpg", "giza_2.jpg"}, site.ImageNames)
	assert.Equal(t, "3-4 hours", site.VisitInfo.EstimatedDuration)
	assert.Equal(t, []string{"Bring water.", "Go early."}, site.VisitInfo.Tips)

	require.Len(t, site.VisitInfo.ArabicPhrases, 1)
	assert.Equal(t, "marhaba", site.VisitInfo.ArabicPhrases[0].Pronunciation)

	require.Len(t, site.SubLocations, 1)
	sl := site.SubLocations[0]
	assert.Equal(t, "giza_sphinx", sl.ID)
	require.NotNil(t, sl.ImageName)
	assert.Equal(t, "sphinx.jpg", *sl.ImageName)
}

func TestCardsSortedByOrder(t *testing.T) {
	doc := convert.Document(sampleTables(), time.Now())

	cards := doc.Sites[0].SubLocations[0].StoryCards
	require.Len(t, cards, 2)
	// card_a has order 1, card_b order 2, despite source row order.
	assert.Equal(t, "card_a", cards[0].ID)
	assert.Equal(t, "card_b", cards[1].ID)
}

func TestCardSortIsStable(t *testing.T) {
	tables := sampleTables()
	tables.Cards = []content.CardRow{
		{Row: 2, ID: "first", SubLocationID: "giza_sphinx",
			Order: intPtr(1), Type: "story", Content: "a"},
		{Row: 3, ID: "second", SubLocationID: "giza_sphinx",
			Order: intPtr(1), Type: "story", Content: "b"},
	}

	doc := convert.Document(tables, time.Now())

	cards := doc.Sites[0].SubLocations[0].StoryCards
	require.Len(t, cards, 2)
	assert.Equal(t, "first", cards[0].ID)
	assert.Equal(t, "second", cards[1].ID)
}

func TestQuizIndexConversion(t *testing.T) {
	doc := convert.Document(sampleTables(), time.Now())

	cards := doc.Sites[0].SubLocations[0].StoryCards
	quiz := cards[1].QuizQuestion
	require.NotNil(t, quiz)

	assert.Equal(t, "q_card_b", quiz.ID)
	// Sheet answer 3 becomes app index 2.
	assert.Equal(t, 2, quiz.CorrectAnswerIndex)
	assert.Equal(t,
		[]string{"Limestone", "Granite", "Sandstone", "Basalt"},
		quiz.Options)
	assert.Nil(t, quiz.FunFact)

	// Non-quiz card carries no quiz payload.
	assert.Nil(t, cards[0].QuizQuestion)
}

func TestOptionalFields(t *testing.T) {
	doc := convert.Document(sampleTables(), time.Now())

	cards := doc.Sites[0].SubLocations[0].StoryCards
	intro := cards[0]
	require.NotNil(t, intro.FunFact)
	assert.Equal(t, "It lost its nose.", *intro.FunFact)
	assert.Nil(t, intro.ImageName)
}

func TestEmptyCollectionsEncodeAsArrays(t *testing.T) {
	tables := sampleTables()
	tables.Tips = nil
	tables.Phrases = nil
	tables.SubLocations = nil
	tables.Cards = nil
	tables.Sites[0].ImageNames = ""

	doc := convert.Document(tables, time.Now())

	enc := gnfmt.GNjson{}
	data, err := enc.Encode(doc)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"imageNames":[]`)
	assert.Contains(t, out, `"subLocations":[]`)
	assert.Contains(t, out, `"tips":[]`)
	assert.Contains(t, out, `"arabicPhrases":[]`)
}

func TestDeterministicOutput(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	enc := gnfmt.GNjson{Pretty: true}

	a, err := enc.Encode(convert.Document(sampleTables(), now))
	require.NoError(t, err)
	b, err := enc.Encode(convert.Document(sampleTables(), now))
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}

func TestMissingNumericFallsBackToZero(t *testing.T) {
	tables := sampleTables()
	tables.Sites[0].Latitude = nil
	tables.Sites[0].Longitude = nil

	doc := convert.Document(tables, time.Now())

	assert.Zero(t, doc.Sites[0].Coordinates.Latitude)
	assert.Zero(t, doc.Sites[0].Coordinates.Longitude)
}
