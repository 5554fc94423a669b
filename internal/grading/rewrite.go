package grading

import "math"

func scoreRewrite(sig *signals) []Parameter {
	p := newParams(rewriteDefs)
	a := sig.Answer

	meaning := scale(sig.SimToIdeal, 0.5)
	depth := clamp01(1 - sig.SimToInput)

	p[rwMeaningPreserved].Points = points(meaning, rewriteDefs[rwMeaningPreserved].Max)
	p[rwParaphraseDepth].Points = points(depth, rewriteDefs[rwParaphraseDepth].Max)
	p[rwSemanticDistance].Points = points(0.5*meaning+0.5*depth, rewriteDefs[rwSemanticDistance].Max)
	p[rwToneMatch].Points = points(1-math.Abs(a.Tone-sig.Ideal.Tone)/2, rewriteDefs[rwToneMatch].Max)
	p[rwRestructured].Points = points(restructureFrac(a.SentenceCount, sig.Input.SentenceCount), rewriteDefs[rwRestructured].Max)
	p[rwLengthShift].Points = points(clamp01(math.Abs(a.AvgSentenceLen-sig.Input.AvgSentenceLen)/5), rewriteDefs[rwLengthShift].Max)
	p[rwLexicalVariety].Points = points(softRange(a.LexicalDiversity, 0.45, 0.95), rewriteDefs[rwLexicalVariety].Max)
	p[rwFreshVocabulary].Points = points(1-OverlapShare(a.Unique, sig.Input.Unique), rewriteDefs[rwFreshVocabulary].Max)
	p[rwLengthFidelity].Points = points(softRange(sig.Compression, 0.7, 1.4), rewriteDefs[rwLengthFidelity].Max)
	p[rwCapitalization].Points = points(a.CapitalRatio, rewriteDefs[rwCapitalization].Max)
	p[rwPunctuation].Points = points(boolFrac(a.EndsPunctuated), rewriteDefs[rwPunctuation].Max)
	p[rwNoRunOns].Points = points(boolFrac(!a.HasRunOn), rewriteDefs[rwNoRunOns].Max)
	p[rwClarity].Points = points(1-clamp01(density(a.FillerCount, a.WordCount)*10), rewriteDefs[rwClarity].Max)
	p[rwConfidence].Points = points(1-clamp01(density(a.UncertainCount, a.WordCount)*12), rewriteDefs[rwConfidence].Max)
	p[rwLowRepetition].Points = points(1-a.RepetitionRatio, rewriteDefs[rwLowRepetition].Max)
	p[rwFactualAccuracy].Points = points(boolFrac(len(sig.InventedNumbers) == 0), rewriteDefs[rwFactualAccuracy].Max)
	p[rwCompleteness].Points = points(sig.KeywordShare, rewriteDefs[rwCompleteness].Max)

	return p
}

// restructureFrac rewards moving away from the source's sentence layout: a
// rewrite that keeps the exact sentence count gets only token credit.
func restructureFrac(answerSentences, inputSentences int) float64 {
	d := answerSentences - inputSentences
	if d < 0 {
		d = -d
	}
	switch d {
	case 0:
		return 0.2
	case 1:
		return 0.6
	default:
		return 1
	}
}
