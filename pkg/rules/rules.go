// Package rules defines the immutable content-quality rule set applied
// during validation. The rule set is a plain value passed into the
// validators, so validation logic stays pure and testable.
package rules

// ScriptRange is an inclusive range of Unicode code points.
type ScriptRange struct {
	Lo, Hi rune
}

// Rules holds enum vocabularies, length bounds and geographic limits
// for the content tables. Vocabularies are ordered slices so the
// workbook template renders dropdowns in a stable order; validators
// build lookup sets from them via Set.
type Rules struct {
	// Closed vocabularies for the Sites table.
	Eras         []string
	TourismTypes []string
	PlaceTypes   []string
	Cities       []string

	// Closed vocabulary for the Cards table.
	CardTypes []string

	// Geographic bounding box all site coordinates must fall into.
	LatMin, LatMax float64
	LonMin, LonMax float64

	// Maximum lengths for free-text fields.
	ShortDescriptionMax int
	CardContentMax      int
	TipMax              int

	// Quality minimums. Text shorter than these reads as a placeholder
	// rather than real content, so it is reported too.
	ShortDescriptionMin int
	CardContentMin      int
	TipMin              int

	// ArabicRanges are the Unicode ranges at least one character of an
	// arabicName or arabic phrase field must fall into.
	ArabicRanges []ScriptRange

	// ImageExtensions are file suffixes accepted for image references.
	ImageExtensions []string

	// Duplicate-content detection: cards with content longer than
	// DuplicateContentMinLen are keyed by the lowercased first
	// DuplicateContentKeyLen characters.
	DuplicateContentMinLen int
	DuplicateContentKeyLen int
}

// New returns the default rule set used for Unlock Egypt content.
func New() Rules {
	return Rules{
		Eras: []string{
			"Pre-Dynastic", "Old Kingdom", "Middle Kingdom", "New Kingdom",
			"Late Period", "Ptolemaic", "Roman", "Islamic", "Modern",
		},
		TourismTypes: []string{
			"Pharaonic", "Greco-Roman", "Coptic", "Islamic", "Modern",
		},
		PlaceTypes: []string{
			"Pyramid", "Temple", "Tomb", "Museum", "Mosque", "Church",
			"Fortress", "Market", "Monument", "Ruins",
		},
		Cities: []string{
			"Cairo", "Giza", "Luxor", "Aswan", "Alexandria", "Sinai",
			"Fayoum", "Dahab", "Hurghada", "Sharm El Sheikh",
		},
		CardTypes: []string{"intro", "story", "fact", "quiz", "image"},

		// Egypt, with a margin for Sinai and the southern border.
		LatMin: 22.0,
		LatMax: 31.7,
		LonMin: 24.7,
		LonMax: 36.9,

		ShortDescriptionMax: 200,
		CardContentMax:      600,
		TipMax:              150,

		ShortDescriptionMin: 10,
		CardContentMin:      20,
		TipMin:              5,

		ArabicRanges: []ScriptRange{
			{0x0600, 0x06FF}, // Arabic
			{0x0750, 0x077F}, // Arabic Supplement
			{0x08A0, 0x08FF}, // Arabic Extended-A
			{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
			{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
		},

		ImageExtensions: []string{".jpg", ".jpeg", ".png", ".webp", ".heic"},

		DuplicateContentMinLen: 50,
		DuplicateContentKeyLen: 100,
	}
}

// Set builds a membership set from an ordered vocabulary.
func Set(vals []string) map[string]struct{} {
	res := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		res[v] = struct{}{}
	}
	return res
}
