package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueValidatesWithoutPanicking(t *testing.T) {
	cats := Catalogue()
	require.NotEmpty(t, cats)

	seen := map[string]bool{}
	for _, cat := range cats {
		assert.NotEmpty(t, cat.Rules, "category %q has no rules", cat.Name)
		for _, r := range cat.Rules {
			assert.False(t, seen[r.Name], "duplicate rule name %q", r.Name)
			seen[r.Name] = true
		}
	}
}

func TestCatalogueIsStableAcrossCalls(t *testing.T) {
	a := Catalogue()
	b := Catalogue()
	assert.Equal(t, len(a), len(b))
}
