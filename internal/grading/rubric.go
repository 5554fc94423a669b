package grading

import "strings"

// TaskType is the closed set of challenge kinds the engine understands.
type TaskType string

const (
	TaskSummarize   TaskType = "summarize"
	TaskRewrite     TaskType = "rewrite"
	TaskProofread   TaskType = "proofread"
	TaskExplainCode TaskType = "explain code"
)

// ParseTaskType normalizes case/whitespace; unrecognized values fall back to
// summarize so a malformed challenge still grades.
func ParseTaskType(s string) TaskType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TaskRewrite):
		return TaskRewrite
	case string(TaskProofread):
		return TaskProofread
	case string(TaskExplainCode), "explain-code", "explain_code":
		return TaskExplainCode
	default:
		return TaskSummarize
	}
}

// GradeBand is the qualitative band for a score.
type GradeBand string

const (
	GradeExcellent GradeBand = "Excellent"
	GradeStrong    GradeBand = "Strong"
	GradeFair      GradeBand = "Fair"
	GradeWeak      GradeBand = "Weak"
	GradePoor      GradeBand = "Poor"

	// GradeInvalid bypasses band mapping: the anomaly gates fired.
	GradeInvalid GradeBand = "invalid_response"
)

func bandFor(score int) GradeBand {
	switch {
	case score >= 90:
		return GradeExcellent
	case score >= 75:
		return GradeStrong
	case score >= 60:
		return GradeFair
	case score >= 40:
		return GradeWeak
	default:
		return GradePoor
	}
}

// ParamDef declares one rubric line item. Hint is a gerund phrase used when
// synthesizing notes ("capturing the main idea").
type ParamDef struct {
	Name string
	Max  int
	Hint string
}

// Parameter is a scored line item; 0 <= Points <= Max always holds.
type Parameter struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Max    int    `json:"max"`
}

func newParams(defs []ParamDef) []Parameter {
	out := make([]Parameter, len(defs))
	for i, d := range defs {
		out[i] = Parameter{Name: d.Name, Max: d.Max}
	}
	return out
}

// Rubric indices. Penalty rules address parameters through these constants so
// a renamed line item can never silently turn a rule into a no-op.

const (
	sumMainIdea = iota
	sumKeyDetails
	sumRelevance
	sumConciseness
	sumCoverage
	sumSentenceLength
	sumCoherence
	sumFlowVariation
	sumAvoidsCopy
	sumFactualAccuracy
	sumFaithfulness
	sumLowRepetition
	sumClosingSentence
	sumLexicalVariety
	sumClarity
	sumCapitalization
	sumPunctuation
	sumNoRunOns
)

var summarizeDefs = []ParamDef{
	{"main_idea", 12, "capturing the main idea"},
	{"key_details", 10, "including the key details"},
	{"relevance", 8, "staying on the source material"},
	{"conciseness", 7, "keeping the summary concise"},
	{"coverage", 6, "matching the expected summary length"},
	{"sentence_length", 5, "keeping sentences a readable length"},
	{"coherence", 6, "connecting ideas with transitions"},
	{"flow_variation", 3, "varying sentence rhythm"},
	{"avoids_copy", 8, "summarizing in your own words"},
	{"factual_accuracy", 7, "sticking to the facts given"},
	{"faithfulness", 3, "avoiding invented examples"},
	{"low_repetition", 4, "avoiding repeated wording"},
	{"closing_sentence", 4, "ending with a summative sentence"},
	{"lexical_variety", 5, "using varied vocabulary"},
	{"clarity", 4, "cutting filler words"},
	{"capitalization", 3, "capitalizing sentence openings"},
	{"punctuation", 2, "finishing with terminal punctuation"},
	{"no_run_ons", 3, "avoiding run-on sentences"},
}

const (
	rwMeaningPreserved = iota
	rwParaphraseDepth
	rwSemanticDistance
	rwToneMatch
	rwRestructured
	rwLengthShift
	rwLexicalVariety
	rwFreshVocabulary
	rwLengthFidelity
	rwCapitalization
	rwPunctuation
	rwNoRunOns
	rwClarity
	rwConfidence
	rwLowRepetition
	rwFactualAccuracy
	rwCompleteness
)

var rewriteDefs = []ParamDef{
	{"meaning_preserved", 12, "preserving the original meaning"},
	{"paraphrase_depth", 10, "rephrasing instead of echoing the original"},
	{"semantic_distance", 8, "balancing fidelity with fresh phrasing"},
	{"tone_match", 7, "hitting the requested tone"},
	{"restructured_sentences", 6, "reorganizing the sentence structure"},
	{"sentence_length_shift", 5, "reshaping sentence lengths"},
	{"lexical_variety", 7, "using varied vocabulary"},
	{"fresh_vocabulary", 6, "choosing new words for old ideas"},
	{"length_fidelity", 6, "keeping a comparable length"},
	{"capitalization", 4, "capitalizing sentence openings"},
	{"punctuation", 3, "finishing with terminal punctuation"},
	{"no_run_ons", 4, "avoiding run-on sentences"},
	{"clarity", 6, "cutting filler words"},
	{"confidence", 4, "writing without hedging"},
	{"low_repetition", 4, "avoiding repeated wording"},
	{"factual_accuracy", 5, "sticking to the facts given"},
	{"completeness", 3, "carrying over the key details"},
}

const (
	prErrorsFixed = iota
	prMatchesCorrection
	prPreservesContent
	prStaysClose
	prLengthDiscipline
	prVerbAgreement
	prArticles
	prPrepositions
	prCapitalization
	prPunctuation
	prNoRunOns
	prLowRepetition
	prClarity
	prSentenceStructure
	prTonePreserved
	prCompleteness
)

var proofreadDefs = []ParamDef{
	{"errors_fixed", 16, "fixing the mistakes in the passage"},
	{"matches_correction", 12, "matching the corrected version"},
	{"preserves_content", 8, "keeping the original content intact"},
	{"stays_close", 8, "editing lightly instead of rewriting"},
	{"length_discipline", 8, "keeping the length close to the original"},
	{"verb_agreement", 6, "getting verb agreement right"},
	{"articles", 5, "using articles correctly"},
	{"prepositions", 5, "using prepositions correctly"},
	{"capitalization", 4, "capitalizing sentence openings"},
	{"punctuation", 4, "finishing with terminal punctuation"},
	{"no_run_ons", 4, "avoiding run-on sentences"},
	{"low_repetition", 4, "avoiding repeated wording"},
	{"clarity", 4, "cutting filler words"},
	{"sentence_structure", 5, "keeping the sentence layout intact"},
	{"tone_preserved", 4, "preserving the original tone"},
	{"completeness", 3, "carrying over the key details"},
}

const (
	exIdentifierCoverage = iota
	exMatchesIdeal
	exStepSequence
	exControlFlow
	exOutputDescribed
	exExampleGiven
	exBeginnerFriendly
	exConfidentTone
	exCompleteness
	exClarity
	exSentenceLength
	exCoherence
	exStructure
	exAvoidsCodeDump
	exLowRepetition
	exGrammar
	exClosingTakeaway
)

var explainCodeDefs = []ParamDef{
	{"identifier_coverage", 14, "referring to the names used in the code"},
	{"matches_ideal", 10, "covering what the code actually does"},
	{"step_sequence", 8, "walking through the code step by step"},
	{"control_flow", 7, "describing the control flow"},
	{"output_described", 7, "describing what the code outputs"},
	{"example_given", 6, "offering an example or analogy"},
	{"beginner_friendly", 7, "keeping the language beginner friendly"},
	{"confident_tone", 5, "explaining without hedging"},
	{"completeness", 6, "matching the expected level of detail"},
	{"clarity", 4, "cutting filler words"},
	{"sentence_length", 5, "keeping sentences a readable length"},
	{"coherence", 5, "connecting ideas with transitions"},
	{"structure", 4, "using enough sentences to explain"},
	{"avoids_code_dump", 4, "explaining rather than restating the code"},
	{"low_repetition", 4, "avoiding repeated wording"},
	{"grammar", 2, "writing complete, punctuated sentences"},
	{"closing_takeaway", 2, "ending with a takeaway"},
}

// rubricFor returns the ordered parameter definitions for a task. Each list's
// maxima sum to exactly 100; rubric_test.go enforces it.
func rubricFor(t TaskType) []ParamDef {
	switch t {
	case TaskRewrite:
		return rewriteDefs
	case TaskProofread:
		return proofreadDefs
	case TaskExplainCode:
		return explainCodeDefs
	default:
		return summarizeDefs
	}
}
