package iotemplate

import (
	"github.com/unlockegypt/contentsync/pkg/content"
)

// sheetSpecs returns the five table sheets with a couple of sample
// rows each, enough to show editors the expected shape of every
// column.
func sheetSpecs() []sheetSpec {
	return []sheetSpec{
		{
			name: content.TableSites,
			headers: []string{
				"id", "name", "arabicName", "era", "tourismType",
				"placeType", "city", "shortDescription", "latitude",
				"longitude", "imageNames", "estimatedDuration",
				"bestTimeToVisit",
			},
			samples: [][]any{
				{
					"giza", "Pyramids of Giza", "أهرامات الجيزة",
					"Old Kingdom", "Pharaonic", "Pyramid", "Giza",
					"The last surviving wonder of the ancient world.",
					29.9792, 31.1342, "giza_panorama.jpg",
					"3-4 hours", "Early morning (8-10 AM) or late afternoon",
				},
				{
					"luxor", "Luxor Temple", "معبد الأقصر",
					"New Kingdom", "Pharaonic", "Temple", "Luxor",
					"A stunning temple in the heart of modern Luxor.",
					25.6996, 32.639, "",
					"2-3 hours", "Evening visit recommended",
				},
			},
			width: 24,
		},
		{
			name: content.TableSubLocations,
			headers: []string{
				"id", "siteId", "name", "arabicName",
				"shortDescription", "imageUrl", "order",
			},
			samples: [][]any{
				{
					"great_pyramid", "giza", "Great Pyramid of Khufu",
					"هرم خوفو الأكبر",
					"The largest and oldest of the three pyramids", "", 1,
				},
				{
					"sphinx", "giza", "The Great Sphinx", "أبو الهول",
					"The mysterious guardian with a lion's body", "", 2,
				},
			},
			width: 28,
		},
		{
			name: content.TableCards,
			headers: []string{
				"id", "subLocationId", "order", "type", "imageUrl",
				"content", "funFact", "quizQuestion", "quizOption1",
				"quizOption2", "quizOption3", "quizOption4",
				"quizCorrectAnswer", "quizExplanation",
			},
			samples: [][]any{
				{
					"khufu_1", "great_pyramid", 1, "intro", "",
					"Standing 481 feet tall, the Great Pyramid was the " +
						"tallest structure on Earth for over 3,800 years.",
					"", "", "", "", "", "", "", "",
				},
				{
					"khufu_2", "great_pyramid", 2, "quiz", "", "", "",
					"Who was the Great Pyramid built for?",
					"Pharaoh Khufu", "Pharaoh Tutankhamun", "Cleopatra",
					"Ramesses II", 1,
					"The Great Pyramid was built as a tomb for Pharaoh " +
						"Khufu of the Fourth Dynasty.",
				},
			},
			width: 26,
		},
		{
			name:    content.TableTips,
			headers: []string{"id", "siteId", "order", "tip"},
			samples: [][]any{
				{"giza_tip_1", "giza", 1, "Bring plenty of water and sun protection"},
				{"giza_tip_2", "giza", 2, "Hire an official guide at the entrance"},
			},
			width: 30,
		},
		{
			name: content.TableArabicPhrases,
			headers: []string{
				"id", "siteId", "english", "arabic", "pronunciation",
			},
			samples: [][]any{
				{"giza_phrase_1", "giza", "Pyramid", "هرم", "haram"},
				{"giza_phrase_2", "giza", "Thank you", "شكراً", "shukran"},
			},
			width: 20,
		},
	}
}
