package grading

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func set(words ...string) map[string]struct{} { return toSet(words...) }

func TestJaccard(t *testing.T) {
	require.InDelta(t, 1.0, Jaccard(set("a", "b"), set("a", "b")), 1e-9)
	require.InDelta(t, 0.0, Jaccard(set("a"), set("b")), 1e-9)
	// {a,b,c} vs {b,c,d}: 2 shared of 4 total
	require.InDelta(t, 0.5, Jaccard(set("a", "b", "c"), set("b", "c", "d")), 1e-9)
	require.Zero(t, Jaccard(nil, set("a")))
	require.Zero(t, Jaccard(set("a"), nil))
}

func TestOverlapShare(t *testing.T) {
	require.InDelta(t, 0.5, OverlapShare(set("a", "b"), set("b", "z")), 1e-9)
	require.InDelta(t, 1.0, OverlapShare(set("a"), set("a", "b", "c")), 1e-9)
	require.Zero(t, OverlapShare(nil, set("a")))
}

func TestKeywordsFrequencyAndOrder(t *testing.T) {
	tokens := Tokenize("galaxy galaxy nebula stars telescope telescope telescope nebula comet")
	got := Keywords(tokens, 3)
	require.Equal(t, []string{"telescope", "galaxy", "nebula"}, got)
}

func TestKeywordsFilters(t *testing.T) {
	tokens := Tokenize("the cat ran 1234 with energy and energy")
	got := Keywords(tokens, 6)
	// "the"/"with"/"and" are stop words, "cat"/"ran" too short, "1234" numeric
	require.Equal(t, []string{"energy"}, got)
}

func TestKeywordsTieBreakFirstSeen(t *testing.T) {
	tokens := Tokenize("delta alpha delta alpha bravo bravo")
	got := Keywords(tokens, 2)
	require.Equal(t, []string{"delta", "alpha"}, got)
}

func TestKeywordsDefaultCount(t *testing.T) {
	tokens := Tokenize("able baker charlie dogma easel fable gable hotly")
	require.Len(t, Keywords(tokens, 0), 6)
}
