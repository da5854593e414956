package content

// The types below describe the nested JSON document the app bundles.
// Field order matches the document layout; optional fields are pointers
// so empty cells become JSON null, the shape the app expects.

// Document is the root of the generated JSON.
type Document struct {
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated"`
	Sites       []Site `json:"sites"`
}

// Site is one tourist site with everything the app shows for it.
type Site struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	ArabicName       string        `json:"arabicName"`
	Era              string        `json:"era"`
	TourismType      string        `json:"tourismType"`
	PlaceType        string        `json:"placeType"`
	City             string        `json:"city"`
	ShortDescription string        `json:"shortDescription"`
	Coordinates      Coordinates   `json:"coordinates"`
	ImageNames       []string      `json:"imageNames"`
	SubLocations     []SubLocation `json:"subLocations"`
	VisitInfo        VisitInfo     `json:"visitInfo"`
	IsUnlocked       bool          `json:"isUnlocked"`
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SubLocation is a point of interest within a site.
type SubLocation struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	ArabicName       string      `json:"arabicName"`
	ShortDescription string      `json:"shortDescription"`
	ImageName        *string     `json:"imageName"`
	StoryCards       []StoryCard `json:"storyCards"`
}

// StoryCard is one unit of narrative or quiz content.
type StoryCard struct {
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	ImageName    *string       `json:"imageName"`
	Content      *string       `json:"content"`
	FunFact      *string       `json:"funFact"`
	QuizQuestion *QuizQuestion `json:"quizQuestion"`
}

// QuizQuestion is the quiz payload of a quiz card.
type QuizQuestion struct {
	ID                 string   `json:"id"`
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
	FunFact            *string  `json:"funFact"`
}

// VisitInfo groups practical visiting information for a site.
type VisitInfo struct {
	EstimatedDuration string         `json:"estimatedDuration"`
	BestTimeToVisit   string         `json:"bestTimeToVisit"`
	Tips              []string       `json:"tips"`
	ArabicPhrases     []ArabicPhrase `json:"arabicPhrases"`
}

// ArabicPhrase is one useful phrase with its pronunciation guide.
type ArabicPhrase struct {
	English       string `json:"english"`
	Arabic        string `json:"arabic"`
	Pronunciation string `json:"pronunciation"`
}
