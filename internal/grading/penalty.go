package grading

import "math"

// applyPenalties runs the conditional adjustment rules in a fixed order.
// Later rules may further reduce points set by earlier ones, never increase
// them. Parameters are addressed by rubric index, not name.
func applyPenalties(task TaskType, p []Parameter, sig *signals) {
	if sig.CopiesInput {
		switch task {
		case TaskSummarize:
			p[sumAvoidsCopy].Points = 0
		case TaskRewrite:
			scaleDown(&p[rwParaphraseDepth], 0.3)
			scaleDown(&p[rwLexicalVariety], 0.3)
			scaleDown(&p[rwFreshVocabulary], 0.3)
		}
	}

	if len(sig.InventedNumbers) > 0 {
		switch task {
		case TaskSummarize:
			p[sumFactualAccuracy].Points = 0
			scaleDown(&p[sumFaithfulness], 0.5)
		case TaskRewrite:
			p[rwFactualAccuracy].Points = 0
			scaleDown(&p[rwCompleteness], 0.5)
		}
	}

	if sig.OffTopic {
		for _, i := range topicParams(task) {
			p[i].Points = 0
		}
		total := 0
		for _, param := range p {
			total += param.Points
		}
		if total > offTopicScoreCap {
			f := float64(offTopicScoreCap) / float64(total)
			for i := range p {
				scaleDown(&p[i], f)
			}
		}
	}
}

// topicParams lists the parameters that have no meaning once the answer is
// judged to not address the given input at all.
func topicParams(task TaskType) []int {
	switch task {
	case TaskRewrite:
		return []int{rwMeaningPreserved, rwSemanticDistance, rwCompleteness}
	case TaskProofread:
		return []int{prErrorsFixed, prMatchesCorrection, prPreservesContent}
	case TaskExplainCode:
		return []int{exIdentifierCoverage, exMatchesIdeal, exControlFlow, exOutputDescribed}
	default:
		return []int{sumMainIdea, sumKeyDetails, sumRelevance}
	}
}

// scaleDown floors rather than rounds so a scaled parameter can never land
// above its contractual share of the max.
func scaleDown(p *Parameter, f float64) {
	p.Points = int(math.Floor(float64(p.Points) * f))
}
