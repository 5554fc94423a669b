package grading

import (
	"math"
	"sort"
	"strings"
)

// Tuning thresholds. Empirically chosen; changing any of them changes scoring
// behavior, so they stay put.
const (
	copySimilarityThreshold  = 0.4
	offTopicUnionOverlap     = 0.2
	offTopicIdealSimilarity  = 0.25
	softRangePartialCap      = 0.8
	offTopicScoreCap         = 20
	gibberishScore           = 5
	identifierCoverageTarget = 6
)

// signals bundles the three profiles with every cross-text measure the
// evaluators and penalty rules consume.
type signals struct {
	Input  *TextProfile
	Ideal  *TextProfile
	Answer *TextProfile

	SimToIdeal float64
	SimToInput float64

	Keywords     []string // input keywords, or code identifiers for explain-code
	KeywordHits  int
	KeywordShare float64

	Compression     float64 // answer words / input words
	UnionOverlap    float64 // share of answer tokens found in input ∪ ideal
	InventedNumbers []string
	ExtraneousExample bool
	CopiesInput       bool
	OffTopic          bool

	// explain-code extras
	seqHits       int
	controlHits   int
	outputHits    int
	codeVocabHits int
	hasExample    bool
}

func buildSignals(task TaskType, inputText, idealText, answerText string) *signals {
	sig := &signals{
		Input:  Analyze(inputText),
		Ideal:  Analyze(idealText),
		Answer: Analyze(answerText),
	}
	sig.SimToIdeal = Jaccard(sig.Answer.Unique, sig.Ideal.Unique)
	sig.SimToInput = Jaccard(sig.Answer.Unique, sig.Input.Unique)
	sig.CopiesInput = sig.SimToInput > copySimilarityThreshold

	lowerAnswer := strings.ToLower(answerText)
	if task == TaskExplainCode {
		sig.Keywords = extractIdentifiers(inputText)
	} else {
		sig.Keywords = Keywords(sig.Input.Tokens, defaultKeywordCount)
	}
	for _, k := range sig.Keywords {
		if _, ok := sig.Answer.Unique[k]; ok {
			sig.KeywordHits++
			continue
		}
		// snake_case identifiers tokenize apart; a verbatim mention in the
		// running text still counts as referencing the name. Short names like
		// "b" or "ch" substring-match almost anything, so they only count via
		// the token set above.
		if task == TaskExplainCode && len(k) > 3 && strings.Contains(lowerAnswer, k) {
			sig.KeywordHits++
		}
	}
	if len(sig.Keywords) > 0 {
		sig.KeywordShare = float64(sig.KeywordHits) / float64(len(sig.Keywords))
	}

	if sig.Input.WordCount > 0 {
		sig.Compression = float64(sig.Answer.WordCount) / float64(sig.Input.WordCount)
	}

	union := make(map[string]struct{}, len(sig.Input.Unique)+len(sig.Ideal.Unique))
	for t := range sig.Input.Unique {
		union[t] = struct{}{}
	}
	for t := range sig.Ideal.Unique {
		union[t] = struct{}{}
	}
	sig.UnionOverlap = OverlapShare(sig.Answer.Unique, union)

	for n := range sig.Answer.Numbers {
		_, inInput := sig.Input.Numbers[n]
		_, inIdeal := sig.Ideal.Numbers[n]
		if !inInput && !inIdeal {
			sig.InventedNumbers = append(sig.InventedNumbers, n)
		}
	}
	sort.Strings(sig.InventedNumbers)

	sig.hasExample = containsAny(lowerAnswer, examplePhrases)
	if sig.hasExample {
		ref := strings.ToLower(inputText) + " " + strings.ToLower(idealText)
		sig.ExtraneousExample = !containsAny(ref, examplePhrases)
	}

	for _, t := range sig.Answer.Tokens {
		if _, ok := sequenceWords[t]; ok {
			sig.seqHits++
		}
		if _, ok := controlFlowWords[t]; ok {
			sig.controlHits++
		}
		if _, ok := outputWords[t]; ok {
			sig.outputHits++
		}
		if _, ok := codeVocab[t]; ok {
			sig.codeVocabHits++
		}
	}

	if task == TaskExplainCode {
		sig.OffTopic = sig.codeVocabHits == 0 &&
			sig.KeywordHits == 0 &&
			sig.SimToIdeal < offTopicIdealSimilarity
	} else {
		sig.OffTopic = sig.UnionOverlap < offTopicUnionOverlap &&
			sig.KeywordHits == 0 &&
			sig.SimToIdeal < offTopicIdealSimilarity
	}
	return sig
}

// extractIdentifiers mines alphanumeric/underscore tokens out of a code
// snippet, dropping language keywords and plain English stop words. Order is
// first appearance; comparison downstream is case-insensitive.
func extractIdentifiers(code string) []string {
	var out []string
	seen := map[string]struct{}{}
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		tok := strings.ToLower(cur.String())
		cur.Reset()
		if tok == "" || isNumeric(tok) {
			return
		}
		if _, ok := languageKeywords[tok]; ok {
			return
		}
		if _, ok := stopWords[tok]; ok {
			return
		}
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	for _, r := range code {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			cur.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return out
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// points maps a [0,1] fraction onto an integer point value for a parameter.
func points(frac float64, max int) int {
	return int(math.Round(clamp01(frac) * float64(max)))
}

// softRange credits values inside [lo,hi] fully and values outside partially,
// proportional to how far off they are, never above softRangePartialCap.
func softRange(v, lo, hi float64) float64 {
	switch {
	case v <= 0:
		return 0
	case v < lo:
		return math.Min(softRangePartialCap, v/lo)
	case v > hi:
		return math.Min(softRangePartialCap, hi/v)
	default:
		return 1
	}
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
