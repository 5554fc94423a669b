package grading

func scoreSummarize(sig *signals) []Parameter {
	p := newParams(summarizeDefs)
	a := sig.Answer

	p[sumMainIdea].Points = points(scale(sig.SimToIdeal, 0.6), summarizeDefs[sumMainIdea].Max)
	p[sumKeyDetails].Points = points(sig.KeywordShare, summarizeDefs[sumKeyDetails].Max)
	p[sumRelevance].Points = points(sig.UnionOverlap, summarizeDefs[sumRelevance].Max)
	p[sumConciseness].Points = points(softRange(sig.Compression, 0.15, 0.5), summarizeDefs[sumConciseness].Max)
	p[sumCoverage].Points = points(softRange(ratio(a.WordCount, sig.Ideal.WordCount), 0.6, 1.4), summarizeDefs[sumCoverage].Max)
	p[sumSentenceLength].Points = points(softRange(a.AvgSentenceLen, 8, 22), summarizeDefs[sumSentenceLength].Max)
	p[sumCoherence].Points = points(softRange(density(a.ConnectorCount, a.WordCount), 0.02, 0.12), summarizeDefs[sumCoherence].Max)
	p[sumFlowVariation].Points = points(softRange(a.SentenceLenStd, 1.5, 9), summarizeDefs[sumFlowVariation].Max)
	p[sumAvoidsCopy].Points = points(1-sig.SimToInput, summarizeDefs[sumAvoidsCopy].Max)
	p[sumFactualAccuracy].Points = points(boolFrac(len(sig.InventedNumbers) == 0), summarizeDefs[sumFactualAccuracy].Max)
	p[sumFaithfulness].Points = points(boolFrac(!sig.ExtraneousExample), summarizeDefs[sumFaithfulness].Max)
	p[sumLowRepetition].Points = points(1-a.RepetitionRatio, summarizeDefs[sumLowRepetition].Max)
	p[sumClosingSentence].Points = points(boolFrac(a.HasClosing), summarizeDefs[sumClosingSentence].Max)
	p[sumLexicalVariety].Points = points(softRange(a.LexicalDiversity, 0.4, 0.95), summarizeDefs[sumLexicalVariety].Max)
	p[sumClarity].Points = points(1-clamp01(density(a.FillerCount, a.WordCount)*10), summarizeDefs[sumClarity].Max)
	p[sumCapitalization].Points = points(a.CapitalRatio, summarizeDefs[sumCapitalization].Max)
	p[sumPunctuation].Points = points(boolFrac(a.EndsPunctuated), summarizeDefs[sumPunctuation].Max)
	p[sumNoRunOns].Points = points(boolFrac(!a.HasRunOn), summarizeDefs[sumNoRunOns].Max)

	return p
}

// scale gives full credit once v reaches target, proportional credit below.
func scale(v, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return clamp01(v / target)
}

func density(count, words int) float64 {
	if words == 0 {
		return 0
	}
	return float64(count) / float64(words)
}

func boolFrac(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
