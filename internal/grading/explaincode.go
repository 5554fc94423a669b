package grading

func scoreExplainCode(sig *signals) []Parameter {
	p := newParams(explainCodeDefs)
	a := sig.Answer

	idTarget := len(sig.Keywords)
	if idTarget > identifierCoverageTarget {
		idTarget = identifierCoverageTarget
	}
	idFrac := 1.0
	if idTarget > 0 {
		idFrac = clamp01(float64(sig.KeywordHits) / float64(idTarget))
	}

	p[exIdentifierCoverage].Points = points(idFrac, explainCodeDefs[exIdentifierCoverage].Max)
	p[exMatchesIdeal].Points = points(scale(sig.SimToIdeal, 0.5), explainCodeDefs[exMatchesIdeal].Max)
	p[exStepSequence].Points = points(clamp01(float64(sig.seqHits)/3), explainCodeDefs[exStepSequence].Max)
	p[exControlFlow].Points = points(clamp01(float64(sig.controlHits)/2), explainCodeDefs[exControlFlow].Max)
	p[exOutputDescribed].Points = points(clamp01(float64(sig.outputHits)/2), explainCodeDefs[exOutputDescribed].Max)
	p[exExampleGiven].Points = points(boolFrac(sig.hasExample), explainCodeDefs[exExampleGiven].Max)
	p[exBeginnerFriendly].Points = points(1-clamp01(a.LongWordRatio*2+density(a.UncertainCount, a.WordCount)*8), explainCodeDefs[exBeginnerFriendly].Max)
	p[exConfidentTone].Points = points(1-clamp01(density(a.UncertainCount, a.WordCount)*12), explainCodeDefs[exConfidentTone].Max)
	p[exCompleteness].Points = points(softRange(ratio(a.WordCount, sig.Ideal.WordCount), 0.5, 1.6), explainCodeDefs[exCompleteness].Max)
	p[exClarity].Points = points(1-clamp01(density(a.FillerCount, a.WordCount)*10), explainCodeDefs[exClarity].Max)
	p[exSentenceLength].Points = points(softRange(a.AvgSentenceLen, 8, 20), explainCodeDefs[exSentenceLength].Max)
	p[exCoherence].Points = points(softRange(density(a.ConnectorCount, a.WordCount), 0.02, 0.12), explainCodeDefs[exCoherence].Max)
	p[exStructure].Points = points(clamp01(float64(a.SentenceCount)/3), explainCodeDefs[exStructure].Max)
	p[exAvoidsCodeDump].Points = points(1-sig.SimToInput, explainCodeDefs[exAvoidsCodeDump].Max)
	p[exLowRepetition].Points = points(1-a.RepetitionRatio, explainCodeDefs[exLowRepetition].Max)
	p[exGrammar].Points = points((a.CapitalRatio+boolFrac(a.EndsPunctuated))/2, explainCodeDefs[exGrammar].Max)
	p[exClosingTakeaway].Points = points(boolFrac(a.HasClosing), explainCodeDefs[exClosingTakeaway].Max)

	return p
}
