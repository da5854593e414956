package validate

import (
	"fmt"

	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/report"
)

func (v *Validator) checkCards(
	rows []content.CardRow,
	subLocIDs map[string]struct{},
) []report.Finding {
	var res []report.Finding
	seen := make(map[string]int)

	for _, row := range rows {
		c := rowChecker{table: content.TableCards, row: row.Row, findings: &res}

		c.required("id", row.ID)
		c.required("subLocationId", row.SubLocationID)
		c.required("order", row.OrderRaw)
		c.required("type", row.Type)

		c.uniqueID("id", row.ID, seen)
		c.enum("type", row.Type, v.cardTypes)

		c.foreignKey("subLocationId", row.SubLocationID, subLocIDs,
			content.TableSubLocations)

		c.length("content", row.Content,
			v.rules.CardContentMin, v.rules.CardContentMax)
		c.imageRef("imageUrl", row.ImageURL, v.rules.ImageExtensions)

		if row.HasQuiz() {
			v.checkQuiz(c, row)
		}
	}

	return res
}

// checkQuiz verifies the quiz columns of a card whose quizQuestion is
// filled in: four options, an answer index in [1,4] pointing at a
// non-empty option, and an explanation.
func (v *Validator) checkQuiz(c rowChecker, row content.CardRow) {
	for i, opt := range row.QuizOptions {
		if !NonEmpty(opt) {
			c.fail(fmt.Sprintf("quizOption%d", i+1), "quiz option is empty")
		}
	}

	c.required("quizExplanation", row.QuizExplanation)

	if !NonEmpty(row.QuizCorrectAnswerRaw) {
		c.fail("quizCorrectAnswer", "required field is empty")
		return
	}
	if row.QuizCorrectAnswer == nil {
		// Unparseable cell, already reported by the parse stage.
		return
	}

	answer := *row.QuizCorrectAnswer
	if answer < 1 || answer > 4 {
		c.fail("quizCorrectAnswer", "%d is out of range, must be 1-4", answer)
		return
	}
	if !NonEmpty(row.QuizOptions[answer-1]) {
		c.fail("quizCorrectAnswer",
			"answer %d points at an empty option", answer)
	}
}

// checkCardOrderUniqueness verifies that no two cards of the same
// sub-location share an order value. Needs the full card pass first.
func (v *Validator) checkCardOrderUniqueness(rows []content.CardRow) []report.Finding {
	var res []report.Finding
	type key struct {
		subLoc string
		order  int
	}
	first := make(map[key]int)

	for _, row := range rows {
		if row.SubLocationID == "" || row.Order == nil {
			continue
		}
		c := rowChecker{table: content.TableCards, row: row.Row, findings: &res}
		k := key{subLoc: row.SubLocationID, order: *row.Order}
		if firstRow, ok := first[k]; ok {
			c.fail("order", "order %d already used in sub-location %q at row %d",
				k.order, k.subLoc, firstRow)
			continue
		}
		first[k] = row.Row
	}

	return res
}
