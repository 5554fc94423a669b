package grading

import "sort"

const defaultKeywordCount = 6

// Jaccard is |A ∩ B| / |A ∪ B|; 0 when either set is empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	return float64(inter) / float64(len(a)+len(b)-inter)
}

// OverlapShare is the asymmetric |A ∩ B| / |A|: how much of A is covered by B.
func OverlapShare(a, b map[string]struct{}) float64 {
	if len(a) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	return float64(inter) / float64(len(a))
}

// Keywords returns the top-n tokens by frequency, skipping stop words, short
// tokens (length <= 3) and bare numbers. Ties keep first-seen order.
func Keywords(tokens []string, n int) []string {
	if n <= 0 {
		n = defaultKeywordCount
	}
	type entry struct {
		tok   string
		count int
	}
	index := map[string]int{}
	var entries []entry
	for _, t := range tokens {
		if len(t) <= 3 || isNumeric(t) {
			continue
		}
		if _, stop := stopWords[t]; stop {
			continue
		}
		if j, ok := index[t]; ok {
			entries[j].count++
			continue
		}
		index[t] = len(entries)
		entries = append(entries, entry{tok: t, count: 1})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.tok
	}
	return out
}
