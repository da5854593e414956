package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unlockegypt/contentsync/pkg/rules"
)

func TestDefaults(t *testing.T) {
	r := rules.New()

	assert.Contains(t, r.Eras, "Old Kingdom")
	assert.Contains(t, r.Cities, "Luxor")
	assert.Equal(t, []string{"intro", "story", "fact", "quiz", "image"},
		r.CardTypes)

	// Giza and Abu Simbel both fit the bounding box.
	assert.LessOrEqual(t, r.LatMin, 22.34)
	assert.GreaterOrEqual(t, r.LatMax, 29.98)
	assert.LessOrEqual(t, r.LonMin, 31.13)
	assert.GreaterOrEqual(t, r.LonMax, 32.87)
}

func TestSet(t *testing.T) {
	s := rules.Set([]string{"a", "b"})

	assert.Len(t, s, 2)
	_, ok := s["a"]
	assert.True(t, ok)
	_, ok = s["c"]
	assert.False(t, ok)
}
