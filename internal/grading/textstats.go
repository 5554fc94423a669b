package grading

import (
	"math"
	"strings"
	"unicode"
)

// TextProfile is the bag of measurements the rubric evaluators consume. It is
// computed once per text per grading call and never shared across calls.
type TextProfile struct {
	Tokens []string
	Unique map[string]struct{}

	WordCount     int
	SentenceCount int
	SentenceLens  []int // tokens per sentence
	AvgSentenceLen float64
	SentenceLenStd float64 // population formula
	MaxSentenceLen int

	ConnectorCount int
	Numbers        map[string]struct{}
	Tone           float64 // (+positives - negatives) / tokens, ~[-1,1]
	FillerCount    int
	UncertainCount int
	PronounCount   int

	CapitalRatio   float64 // sentences opening with an uppercase letter
	EndsPunctuated bool

	RepetitionRatio  float64
	LexicalDiversity float64
	LongWordRatio    float64
	CharVariety      float64
	LetterRatio      float64

	HasClosing bool
	HasRunOn   bool
}

const (
	runOnSentenceLen = 35
	longWordMinLen   = 8

	// charVarietyWindow bounds the variety denominator. Distinct characters
	// plateau around the alphabet size while text keeps growing, so dividing
	// by the full length would push any long text toward zero variety.
	charVarietyWindow = 40
)

// Analyze measures text and returns its profile. Empty input yields a
// zero-valued profile, never an error.
func Analyze(text string) *TextProfile {
	p := &TextProfile{
		Unique:  map[string]struct{}{},
		Numbers: map[string]struct{}{},
	}
	p.Tokens = Tokenize(text)
	p.WordCount = len(p.Tokens)

	freq := make(map[string]int, len(p.Tokens))
	for _, t := range p.Tokens {
		freq[t]++
		p.Unique[t] = struct{}{}

		if isNumeric(t) {
			p.Numbers[t] = struct{}{}
		}
		if _, ok := connectorWords[t]; ok {
			p.ConnectorCount++
		}
		if _, ok := positiveWords[t]; ok {
			p.Tone++
		}
		if _, ok := negativeWords[t]; ok {
			p.Tone--
		}
		if _, ok := fillerWords[t]; ok {
			p.FillerCount++
		}
		if _, ok := uncertainWords[t]; ok {
			p.UncertainCount++
		}
		if _, ok := pronounWords[t]; ok {
			p.PronounCount++
		}
		if len(t) >= longWordMinLen {
			p.LongWordRatio++
		}
	}
	if p.WordCount > 0 {
		p.Tone /= float64(p.WordCount)
		p.LongWordRatio /= float64(p.WordCount)
		p.LexicalDiversity = float64(len(p.Unique)) / float64(p.WordCount)
		repeated := 0
		for _, t := range p.Tokens {
			if freq[t] > 1 {
				repeated++
			}
		}
		p.RepetitionRatio = float64(repeated) / float64(p.WordCount)
	}

	sentences := SplitSentences(text)
	p.SentenceCount = len(sentences)
	capitalized := 0
	for _, s := range sentences {
		n := len(Tokenize(s))
		p.SentenceLens = append(p.SentenceLens, n)
		if n > p.MaxSentenceLen {
			p.MaxSentenceLen = n
		}
		if n > runOnSentenceLen {
			p.HasRunOn = true
		}
		if r := firstRune(s); unicode.IsUpper(r) {
			capitalized++
		}
	}
	if len(sentences) > 0 {
		sum := 0
		for _, n := range p.SentenceLens {
			sum += n
		}
		p.AvgSentenceLen = float64(sum) / float64(len(sentences))
		variance := 0.0
		for _, n := range p.SentenceLens {
			d := float64(n) - p.AvgSentenceLen
			variance += d * d
		}
		p.SentenceLenStd = math.Sqrt(variance / float64(len(sentences)))
		p.CapitalRatio = float64(capitalized) / float64(len(sentences))

		last := strings.ToLower(sentences[len(sentences)-1])
		for _, m := range closingMarkers {
			if strings.Contains(last, m) {
				p.HasClosing = true
				break
			}
		}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed != "" {
		p.EndsPunctuated = strings.ContainsRune(".!?", rune(trimmed[len(trimmed)-1]))
	}
	p.CharVariety, p.LetterRatio = charStats(trimmed)

	return p
}

// Tokenize lower-cases and splits on anything that is not a letter, digit or
// apostrophe, then strips wrapping apostrophes. Downstream similarity scores
// are sensitive to these exact rules.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	var out []string
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// SplitSentences splits on whitespace that follows ., ! or ?. Fragments are
// trimmed and empty ones dropped.
func SplitSentences(text string) []string {
	var out []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if strings.ContainsRune(".!?", runes[i]) && unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		out = append(out, s)
	}
	return out
}

func isNumeric(tok string) bool {
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return tok != ""
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// charStats reports character variety and letter ratio over the non-space
// characters of s. Variety is distinct characters over the character count
// capped at charVarietyWindow. Both are 0 for empty input.
func charStats(s string) (variety, letters float64) {
	seen := map[rune]struct{}{}
	total, letterCount := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		seen[unicode.ToLower(r)] = struct{}{}
		if unicode.IsLetter(r) {
			letterCount++
		}
	}
	if total == 0 {
		return 0, 0
	}
	den := total
	if den > charVarietyWindow {
		den = charVarietyWindow
	}
	return float64(len(seen)) / float64(den), float64(letterCount) / float64(total)
}
