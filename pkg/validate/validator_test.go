package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/report"
	"github.com/unlockegypt/contentsync/pkg/rules"
	"github.com/unlockegypt/contentsync/pkg/validate"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// validTables returns a small dataset that passes every check. Tests
// mutate a copy to trigger exactly the finding under test.
func validTables() *content.Tables {
	return &content.Tables{
		Sites: []content.SiteRow{
			{
				Row: 2, ID: "giza", Name: "Giza Plateau",
				ArabicName: "هضبة الجيزة",
				Era:        "Old Kingdom", TourismType: "Pharaonic",
				PlaceType: "Pyramid", City: "Giza",
				ShortDescription: "Home of the Great Pyramid and the Sphinx.",
				Latitude:         floatPtr(29.9773), LatitudeRaw: "29.9773",
				Longitude: floatPtr(31.1325), LongitudeRaw: "31.1325",
				ImageNames:        "giza_1.jpg, giza_2.jpg",
				EstimatedDuration: "3-4 hours",
				BestTimeToVisit:   "Early morning",
			},
			{
				Row: 3, ID: "karnak", Name: "Karnak Temple",
				ArabicName: "معبد الكرنك",
				Era:        "New Kingdom", TourismType: "Pharaonic",
				PlaceType: "Temple", City: "Luxor",
				ShortDescription: "The largest temple complex of ancient Egypt.",
				Latitude:         floatPtr(25.7188), LatitudeRaw: "25.7188",
				Longitude: floatPtr(32.6573), LongitudeRaw: "32.6573",
				EstimatedDuration: "2-3 hours",
				BestTimeToVisit:   "Sunset",
			},
		},
		SubLocations: []content.SubLocationRow{
			{
				Row: 2, ID: "giza_sphinx", SiteID: "giza",
				Name: "The Sphinx", ArabicName: "أبو الهول",
				ShortDescription: "The guardian statue of the plateau.",
				ImageURL:         "sphinx.jpg",
				Order:            intPtr(1), OrderRaw: "1",
			},
		},
		Cards: []content.CardRow{
			{
				Row: 2, ID: "card_intro", SubLocationID: "giza_sphinx",
				Order: intPtr(1), OrderRaw: "1", Type: "intro",
				Content: "Meet the Sphinx, carved around 2500 BC.",
			},
			{
				Row: 3, ID: "card_quiz", SubLocationID: "giza_sphinx",
				Order: intPtr(2), OrderRaw: "2", Type: "quiz",
				Content:      "Test what you learned about the Sphinx.",
				QuizQuestion: "What is the Sphinx carved from?",
				QuizOptions: [4]string{
					"Limestone", "Granite", "Sandstone", "Basalt",
				},
				QuizCorrectAnswer:    intPtr(1),
				QuizCorrectAnswerRaw: "1",
				QuizExplanation:      "It is cut from the plateau bedrock.",
			},
		},
		Tips: []content.TipRow{
			{Row: 2, ID: "tip_1", SiteID: "giza",
				Order: intPtr(1), OrderRaw: "1",
				Tip: "Bring water and sunscreen."},
		},
		Phrases: []content.PhraseRow{
			{Row: 2, ID: "ph_1", SiteID: "giza", English: "Hello",
				Arabic: "مرحبا", Pronunciation: "marhaba"},
		},
	}
}

func runChecks(t *content.Tables) []report.Finding {
	return validate.New(rules.New()).Validate(t)
}

// one asserts exactly one finding exists for table/field and returns it.
func one(t *testing.T, fs []report.Finding, table, field string) report.Finding {
	t.Helper()
	var hits []report.Finding
	for _, f := range fs {
		if f.Table == table && f.Field == field {
			hits = append(hits, f)
		}
	}
	require.Len(t, hits, 1, "findings for %s.%s: %v", table, field, fs)
	return hits[0]
}

func TestValidDatasetHasNoFindings(t *testing.T) {
	assert.Empty(t, runChecks(validTables()))
}

func TestRequiredFields(t *testing.T) {
	tables := validTables()
	tables.Sites[0].Name = ""
	tables.Sites[0].EstimatedDuration = "   "

	fs := runChecks(tables)

	f := one(t, fs, content.TableSites, "name")
	assert.Equal(t, 2, f.Row)
	assert.Equal(t, "required field is empty", f.Message)
	one(t, fs, content.TableSites, "estimatedDuration")
}

func TestDuplicateSiteID(t *testing.T) {
	tables := validTables()
	tables.Sites[1].ID = "giza"

	fs := runChecks(tables)

	f := one(t, fs, content.TableSites, "id")
	assert.Equal(t, 3, f.Row)
	assert.Contains(t, f.Message, `duplicate id "giza"`)
	assert.Contains(t, f.Message, "first used at row 2")
}

func TestEveryRepeatReported(t *testing.T) {
	tables := validTables()
	extra := tables.Sites[0]
	extra.Row = 4
	tables.Sites = append(tables.Sites, extra)
	tables.Sites[1].ID = "giza"

	fs := runChecks(tables)

	var dups int
	for _, f := range fs {
		if strings.Contains(f.Message, "duplicate id") {
			dups++
			assert.Contains(t, f.Message, "first used at row 2")
		}
	}
	assert.Equal(t, 2, dups)
}

func TestEnumVocabulary(t *testing.T) {
	tables := validTables()
	tables.Sites[0].Era = "Byzantine"
	tables.Cards[0].Type = "summary"

	fs := runChecks(tables)

	f := one(t, fs, content.TableSites, "era")
	assert.Equal(t, `"Byzantine" is not an allowed value`, f.Message)
	one(t, fs, content.TableCards, "type")
}

func TestCoordinatesOutsideEgypt(t *testing.T) {
	tables := validTables()
	tables.Sites[0].Latitude = floatPtr(51.5)
	tables.Sites[0].LatitudeRaw = "51.5"

	fs := runChecks(tables)

	f := one(t, fs, content.TableSites, "latitude")
	assert.Contains(t, f.Message, "outside Egypt")
}

func TestCoordinatesInvalidWGS84(t *testing.T) {
	tables := validTables()
	tables.Sites[0].Longitude = floatPtr(191.0)
	tables.Sites[0].LongitudeRaw = "191.0"

	fs := runChecks(tables)

	f := one(t, fs, content.TableSites, "longitude")
	assert.Contains(t, f.Message, "not a valid longitude")
	assert.NotContains(t, f.Message, "outside Egypt")
}

func TestArabicNameNeedsArabicScript(t *testing.T) {
	tables := validTables()
	tables.SubLocations[0].ArabicName = "The Sphinx"

	fs := runChecks(tables)

	f := one(t, fs, content.TableSubLocations, "arabicName")
	assert.Equal(t, "must contain at least one Arabic character", f.Message)
}

func TestForeignKeys(t *testing.T) {
	tables := validTables()
	tables.SubLocations[0].SiteID = "atlantis"
	tables.Phrases[0].SiteID = "atlantis"

	fs := runChecks(tables)

	f := one(t, fs, content.TableSubLocations, "siteId")
	assert.Contains(t, f.Message, `"atlantis" does not exist in the Sites table`)
	one(t, fs, content.TableArabicPhrases, "siteId")
}

func TestCardForeignKey(t *testing.T) {
	tables := validTables()
	tables.Cards[0].SubLocationID = "nowhere"

	fs := runChecks(tables)

	var msgs []string
	for _, f := range fs {
		if f.Table == content.TableCards && f.Field == "subLocationId" {
			msgs = append(msgs, f.Message)
		}
	}
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "does not exist in the SubLocations table")
}

func TestLengthLimits(t *testing.T) {
	tables := validTables()
	tables.Sites[0].ShortDescription = strings.Repeat("a", 201)
	tables.Tips[0].Tip = "ok"

	fs := runChecks(tables)

	f := one(t, fs, content.TableSites, "shortDescription")
	assert.Contains(t, f.Message, "201 characters is over the 200 character limit")

	f = one(t, fs, content.TableTips, "tip")
	assert.Contains(t, f.Message, "placeholder text")
}

func TestLengthCountsRunes(t *testing.T) {
	tables := validTables()
	// 200 Arabic letters is within the limit even though the UTF-8
	// byte count is double.
	tables.Sites[0].ShortDescription = strings.Repeat("م", 200)

	assert.Empty(t, runChecks(tables))
}

func TestImageRefChecks(t *testing.T) {
	tables := validTables()
	tables.Sites[0].ImageNames = "giza_1.jpg, giza 2"
	tables.SubLocations[0].ImageURL = "notes.txt"

	fs := runChecks(tables)

	f := one(t, fs, content.TableSites, "imageNames")
	assert.Contains(t, f.Message, `"giza 2" is neither a URL nor a known image file`)
	one(t, fs, content.TableSubLocations, "imageUrl")
}

func TestQuizStructure(t *testing.T) {
	tables := validTables()
	card := &tables.Cards[1]
	card.QuizOptions[2] = ""
	card.QuizExplanation = ""

	fs := runChecks(tables)

	one(t, fs, content.TableCards, "quizOption3")
	one(t, fs, content.TableCards, "quizExplanation")
}

func TestQuizAnswerOutOfRange(t *testing.T) {
	tables := validTables()
	card := &tables.Cards[1]
	card.QuizCorrectAnswer = intPtr(5)
	card.QuizCorrectAnswerRaw = "5"

	fs := runChecks(tables)

	f := one(t, fs, content.TableCards, "quizCorrectAnswer")
	assert.Contains(t, f.Message, "5 is out of range, must be 1-4")
}

func TestQuizAnswerPointsAtEmptyOption(t *testing.T) {
	tables := validTables()
	card := &tables.Cards[1]
	card.QuizCorrectAnswer = intPtr(4)
	card.QuizCorrectAnswerRaw = "4"
	card.QuizOptions[3] = ""

	fs := runChecks(tables)

	var hits []report.Finding
	for _, f := range fs {
		if f.Field == "quizCorrectAnswer" {
			hits = append(hits, f)
		}
	}
	require.Len(t, hits, 1)
	assert.Contains(t, hits[0].Message, "answer 4 points at an empty option")
	// The empty option itself is also reported.
	one(t, fs, content.TableCards, "quizOption4")
}

func TestQuizAnswerMissing(t *testing.T) {
	tables := validTables()
	card := &tables.Cards[1]
	card.QuizCorrectAnswer = nil
	card.QuizCorrectAnswerRaw = ""

	fs := runChecks(tables)

	f := one(t, fs, content.TableCards, "quizCorrectAnswer")
	assert.Equal(t, "required field is empty", f.Message)
}

func TestNonQuizCardSkipsQuizChecks(t *testing.T) {
	tables := validTables()
	// A story card with empty quiz columns is fine.
	tables.Cards[0].Type = "story"

	assert.Empty(t, runChecks(tables))
}

func TestCardOrderUniquePerSubLocation(t *testing.T) {
	tables := validTables()
	tables.Cards[1].Order = intPtr(1)
	tables.Cards[1].OrderRaw = "1"

	fs := runChecks(tables)

	f := one(t, fs, content.TableCards, "order")
	assert.Equal(t, 3, f.Row)
	assert.Contains(t, f.Message,
		`order 1 already used in sub-location "giza_sphinx" at row 2`)
}

func TestSameOrderDifferentSubLocationsAllowed(t *testing.T) {
	tables := validTables()
	tables.SubLocations = append(tables.SubLocations, content.SubLocationRow{
		Row: 3, ID: "giza_khufu", SiteID: "giza",
		Name: "Great Pyramid", ArabicName: "الهرم الأكبر",
		ShortDescription: "The last surviving ancient wonder.",
		Order:            intPtr(2), OrderRaw: "2",
	})
	tables.Cards = append(tables.Cards, content.CardRow{
		Row: 4, ID: "card_khufu", SubLocationID: "giza_khufu",
		Order: intPtr(1), OrderRaw: "1", Type: "fact",
		Content: "Over two million blocks form the pyramid.",
	})

	assert.Empty(t, runChecks(tables))
}

func TestOrphanSubLocation(t *testing.T) {
	tables := validTables()
	tables.SubLocations = append(tables.SubLocations, content.SubLocationRow{
		Row: 3, ID: "giza_boat", SiteID: "giza",
		Name: "Solar Boat Museum", ArabicName: "متحف مركب الشمس",
		ShortDescription: "Houses the reassembled royal barque.",
		Order:            intPtr(2), OrderRaw: "2",
	})

	fs := runChecks(tables)

	f := one(t, fs, content.TableSubLocations, "id")
	assert.Equal(t, 3, f.Row)
	assert.Contains(t, f.Message, `sub-location "giza_boat" has no cards`)
}

func TestSiteWithoutSubLocationsAllowed(t *testing.T) {
	// karnak has only map data; that is not a finding.
	assert.Empty(t, runChecks(validTables()))
}

func TestDuplicateCardContent(t *testing.T) {
	tables := validTables()
	long := strings.Repeat("The Sphinx gazes east toward the rising sun. ", 3)
	tables.Cards[0].Content = long
	tables.Cards[1].Content = strings.ToUpper(long)

	fs := runChecks(tables)

	f := one(t, fs, content.TableCards, "content")
	assert.Equal(t, 3, f.Row)
	assert.Equal(t, "content duplicates row 2", f.Message)
}

func TestShortContentNotDuplicateChecked(t *testing.T) {
	tables := validTables()
	tables.Cards[0].Content = "Meet the Sphinx of Giza today."
	tables.Cards[1].Content = "Meet the Sphinx of Giza today."

	fs := runChecks(tables)
	for _, f := range fs {
		assert.NotContains(t, f.Message, "duplicates")
	}
}

func TestCollectRemoteImages(t *testing.T) {
	tables := validTables()
	tables.Cards[0].ImageURL = "https://cdn.example.com/sphinx.jpg"
	tables.Cards[1].ImageURL = "local.jpg"

	refs := validate.CollectRemoteImages(tables)

	require.Len(t, refs, 1)
	assert.Equal(t, content.TableCards, refs[0].Table)
	assert.Equal(t, 2, refs[0].Row)
	assert.Equal(t, "imageUrl", refs[0].Field)
	assert.Equal(t, "https://cdn.example.com/sphinx.jpg", refs[0].URL)
}

// findingIndex returns the position of the first finding for
// table/field, or -1.
func findingIndex(fs []report.Finding, table, field string) int {
	for i, f := range fs {
		if f.Table == table && f.Field == field {
			return i
		}
	}
	return -1
}

func TestRowCheckOrdering(t *testing.T) {
	tables := validTables()
	tables.Cards[0].Type = "summary"
	tables.Cards[0].SubLocationID = "atlantis"
	tables.SubLocations[0].ArabicName = "Abu el-Hol"
	tables.SubLocations[0].SiteID = "atlantis"

	fs := runChecks(tables)

	// Within a row, vocabulary and script problems come before
	// cross-table reference problems.
	typeIdx := findingIndex(fs, content.TableCards, "type")
	cardFK := findingIndex(fs, content.TableCards, "subLocationId")
	require.GreaterOrEqual(t, typeIdx, 0)
	require.GreaterOrEqual(t, cardFK, 0)
	assert.Less(t, typeIdx, cardFK)

	arabicIdx := findingIndex(fs, content.TableSubLocations, "arabicName")
	subLocFK := findingIndex(fs, content.TableSubLocations, "siteId")
	require.GreaterOrEqual(t, arabicIdx, 0)
	require.GreaterOrEqual(t, subLocFK, 0)
	assert.Less(t, arabicIdx, subLocFK)
}
