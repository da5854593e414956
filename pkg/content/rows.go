package content

// Each row type carries Row, the 1-based row number shown in reports.
// Data starts at row 2 because row 1 is the sheet header.

// SiteRow is one row of the Sites table. Numeric fields are nil when
// the source cell was empty or unparseable; the raw cell text is kept
// alongside so presence checks can tell the two cases apart.
type SiteRow struct {
	Row               int
	ID                string
	Name              string
	ArabicName        string
	Era               string
	TourismType       string
	PlaceType         string
	City              string
	ShortDescription  string
	Latitude          *float64
	LatitudeRaw       string
	Longitude         *float64
	LongitudeRaw      string
	ImageNames        string
	EstimatedDuration string
	BestTimeToVisit   string
}

// SubLocationRow is one row of the SubLocations table.
type SubLocationRow struct {
	Row              int
	ID               string
	SiteID           string
	Name             string
	ArabicName       string
	ShortDescription string
	ImageURL         string
	Order            *int
	OrderRaw         string
}

// CardRow is one row of the Cards table. The quiz columns are only
// meaningful when QuizQuestion is non-empty.
type CardRow struct {
	Row                  int
	ID                   string
	SubLocationID        string
	Order                *int
	OrderRaw             string
	Type                 string
	ImageURL             string
	Content              string
	FunFact              string
	QuizQuestion         string
	QuizOptions          [4]string
	QuizCorrectAnswer    *int
	QuizCorrectAnswerRaw string
	QuizExplanation      string
}

// HasQuiz reports whether the card carries quiz content.
func (c CardRow) HasQuiz() bool {
	return c.QuizQuestion != ""
}

// TipRow is one row of the Tips table.
type TipRow struct {
	Row      int
	ID       string
	SiteID   string
	Order    *int
	OrderRaw string
	Tip      string
}

// PhraseRow is one row of the ArabicPhrases table.
type PhraseRow struct {
	Row           int
	ID            string
	SiteID        string
	English       string
	Arabic        string
	Pronunciation string
}
