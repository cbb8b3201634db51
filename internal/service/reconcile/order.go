package reconcile

import (
	"math/rand"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/nafnapp-backend/internal/domain"
)

// sortIcelandic orders names in place using Icelandic collation, so that
// Á, Ð, Þ, Æ and Ö sort where an Icelandic speaker expects them rather
// than by code point.
func sortIcelandic(names []domain.Name) {
	c := collate.New(language.Icelandic)
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareString(names[i].Name, names[j].Name) < 0
	})
}

// shuffle reorders names in place with the given source. The source is
// injected so tests can make the order deterministic.
func shuffle(names []domain.Name, rng *rand.Rand) {
	rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
}
