package grading

import "math"

func scoreProofread(sig *signals) []Parameter {
	p := newParams(proofreadDefs)
	a := sig.Answer

	// Input tokens missing from the corrected reference are the likely
	// mistakes; keeping them in the answer means they were not fixed.
	suspects, retained := 0, 0
	for t := range sig.Input.Unique {
		if _, ok := sig.Ideal.Unique[t]; ok {
			continue
		}
		suspects++
		if _, ok := a.Unique[t]; ok {
			retained++
		}
	}
	fixFrac := 1.0
	if suspects > 0 {
		fixFrac = 1 - float64(retained)/float64(suspects)
	}

	p[prErrorsFixed].Points = points(fixFrac, proofreadDefs[prErrorsFixed].Max)
	p[prMatchesCorrection].Points = points(scale(sig.SimToIdeal, 0.8), proofreadDefs[prMatchesCorrection].Max)
	p[prPreservesContent].Points = points(OverlapShare(sig.Ideal.Unique, a.Unique), proofreadDefs[prPreservesContent].Max)
	p[prStaysClose].Points = points(softRange(sig.SimToInput, 0.45, 0.95), proofreadDefs[prStaysClose].Max)
	p[prLengthDiscipline].Points = points(softRange(sig.Compression, 0.85, 1.2), proofreadDefs[prLengthDiscipline].Max)
	p[prVerbAgreement].Points = points(freqDeltaFrac(a, sig.Ideal, agreementVerbs, 4), proofreadDefs[prVerbAgreement].Max)
	p[prArticles].Points = points(freqDeltaFrac(a, sig.Ideal, articleWords, 3), proofreadDefs[prArticles].Max)
	p[prPrepositions].Points = points(freqDeltaFrac(a, sig.Ideal, prepositionWords, 4), proofreadDefs[prPrepositions].Max)
	p[prCapitalization].Points = points(a.CapitalRatio, proofreadDefs[prCapitalization].Max)
	p[prPunctuation].Points = points(boolFrac(a.EndsPunctuated), proofreadDefs[prPunctuation].Max)
	p[prNoRunOns].Points = points(boolFrac(!a.HasRunOn), proofreadDefs[prNoRunOns].Max)
	p[prLowRepetition].Points = points(1-a.RepetitionRatio, proofreadDefs[prLowRepetition].Max)
	p[prClarity].Points = points(1-clamp01(density(a.FillerCount, a.WordCount)*10), proofreadDefs[prClarity].Max)
	p[prSentenceStructure].Points = points(1-clamp01(math.Abs(float64(a.SentenceCount-sig.Ideal.SentenceCount))/3), proofreadDefs[prSentenceStructure].Max)
	p[prTonePreserved].Points = points(1-math.Abs(a.Tone-sig.Input.Tone)/2, proofreadDefs[prTonePreserved].Max)
	p[prCompleteness].Points = points(sig.KeywordShare, proofreadDefs[prCompleteness].Max)

	return p
}

// freqDeltaFrac compares how often the probe words occur in the answer versus
// the reference; large total drift forfeits the credit.
func freqDeltaFrac(a, ref *TextProfile, probes []string, tolerance float64) float64 {
	counts := func(p *TextProfile, w string) int {
		n := 0
		for _, t := range p.Tokens {
			if t == w {
				n++
			}
		}
		return n
	}
	drift := 0.0
	for _, w := range probes {
		drift += math.Abs(float64(counts(a, w) - counts(ref, w)))
	}
	return 1 - clamp01(drift/tolerance)
}
