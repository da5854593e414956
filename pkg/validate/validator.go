// Package validate implements the validation engine for the content
// tables: per-table row rules, foreign-key checks against parent
// tables, and dataset-wide cross-table checks. Everything here is
// pure; the network reachability probe lives in internal/ioprobe.
package validate

import (
	"fmt"

	"github.com/unlockegypt/contentsync/pkg/content"
	"github.com/unlockegypt/contentsync/pkg/report"
	"github.com/unlockegypt/contentsync/pkg/rules"
)

// Validator applies the rule set to one content snapshot.
type Validator struct {
	rules rules.Rules

	// Membership sets built once from the ordered vocabularies.
	eras         map[string]struct{}
	tourismTypes map[string]struct{}
	placeTypes   map[string]struct{}
	cities       map[string]struct{}
	cardTypes    map[string]struct{}
}

// New creates a Validator with the given rule set.
func New(r rules.Rules) *Validator {
	return &Validator{
		rules:        r,
		eras:         rules.Set(r.Eras),
		tourismTypes: rules.Set(r.TourismTypes),
		placeTypes:   rules.Set(r.PlaceTypes),
		cities:       rules.Set(r.Cities),
		cardTypes:    rules.Set(r.CardTypes),
	}
}

// Validate runs all table and cross-table checks and returns every
// finding. Tables are checked in dependency order so each foreign key
// is matched against a fully collected parent id set. Nothing
// short-circuits: every row is fully checked.
func (v *Validator) Validate(t *content.Tables) []report.Finding {
	var res []report.Finding

	siteIDs := collectIDs(len(t.Sites), func(i int) string { return t.Sites[i].ID })
	subLocIDs := collectIDs(len(t.SubLocations), func(i int) string { return t.SubLocations[i].ID })

	res = append(res, v.checkSites(t.Sites)...)
	res = append(res, v.checkSubLocations(t.SubLocations, siteIDs)...)
	res = append(res, v.checkCards(t.Cards, subLocIDs)...)
	res = append(res, v.checkTips(t.Tips, siteIDs)...)
	res = append(res, v.checkPhrases(t.Phrases, siteIDs)...)

	// These need a complete pass over the Cards table first.
	res = append(res, v.checkCardOrderUniqueness(t.Cards)...)
	res = append(res, v.checkOrphanSubLocations(t.SubLocations, t.Cards)...)
	res = append(res, v.checkDuplicateContent(t.Cards)...)

	return res
}

func collectIDs(n int, id func(int) string) map[string]struct{} {
	res := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		if v := id(i); v != "" {
			res[v] = struct{}{}
		}
	}
	return res
}

// rowChecker accumulates findings for one row.
type rowChecker struct {
	table    string
	row      int
	findings *[]report.Finding
}

func (c rowChecker) fail(field, format string, args ...any) {
	*c.findings = append(*c.findings, report.Finding{
		Table:   c.table,
		Row:     c.row,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c rowChecker) required(field, value string) {
	if !NonEmpty(value) {
		c.fail(field, "required field is empty")
	}
}

// uniqueID reports a repeated id. Every repeat is reported, not just
// the second occurrence.
func (c rowChecker) uniqueID(field, id string, seen map[string]int) {
	if id == "" {
		return
	}
	if first, ok := seen[id]; ok {
		c.fail(field, "duplicate id %q (first used at row %d)", id, first)
		return
	}
	seen[id] = c.row
}

func (c rowChecker) enum(field, value string, allowed map[string]struct{}) {
	if value == "" {
		return
	}
	if !EnumMember(value, allowed) {
		c.fail(field, "%q is not an allowed value", value)
	}
}

func (c rowChecker) foreignKey(field, value string, parents map[string]struct{}, parentTable string) {
	if value == "" {
		return
	}
	if _, ok := parents[value]; !ok {
		c.fail(field, "%q does not exist in the %s table", value, parentTable)
	}
}

func (c rowChecker) arabic(field, value string, ranges []rules.ScriptRange) {
	if value == "" {
		return
	}
	if !ContainsScript(value, ranges) {
		c.fail(field, "must contain at least one Arabic character")
	}
}

// length enforces the maximum and the quality minimum on a text field.
// Lengths count runes, matching what an editor sees in the sheet.
func (c rowChecker) length(field, value string, min, max int) {
	if value == "" {
		return
	}
	n := len([]rune(value))
	if n > max {
		c.fail(field, "%d characters is over the %d character limit", n, max)
	}
	if n < min {
		c.fail(field, "%d characters reads as placeholder text (minimum %d)", n, min)
	}
}

func (c rowChecker) imageRef(field, value string, extensions []string) {
	if !LooksLikeImageRef(value, extensions) {
		c.fail(field, "%q is neither a URL nor a known image file", value)
	}
}
