package grading

// Fixed vocabulary sets used by the analyzer and the rubric evaluators.
// These are tuning surfaces: adding a word changes scores, so keep edits
// deliberate and covered by the law tests in engine_test.go.

func toSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var stopWords = toSet(
	"the", "a", "an", "and", "or", "but", "if", "then", "else", "when",
	"at", "by", "for", "with", "about", "into", "through", "during",
	"before", "after", "above", "below", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further", "once",
	"here", "there", "all", "any", "both", "each", "few", "more", "most",
	"other", "some", "such", "only", "own", "same", "than", "too", "very",
	"can", "will", "just", "should", "now", "this", "that", "these",
	"those", "is", "are", "was", "were", "been", "being", "have", "has",
	"had", "does", "did", "doing", "would", "could", "what", "which",
	"who", "whom", "your", "yours", "their", "they", "them", "its", "it's",
	"not", "also",
)

var connectorWords = toSet(
	"however", "therefore", "moreover", "furthermore", "because",
	"although", "meanwhile", "consequently", "additionally", "thus",
	"hence", "instead", "besides", "nevertheless", "while", "since",
	"overall", "finally", "first", "second", "third", "next", "then",
	"also", "so",
)

var positiveWords = toSet(
	"good", "great", "excellent", "helpful", "clear", "useful",
	"effective", "benefit", "improve", "improved", "better", "best",
	"strong", "success", "successful", "easy", "simple", "important",
	"valuable", "powerful", "efficient", "reliable", "positive",
)

var negativeWords = toSet(
	"bad", "poor", "wrong", "difficult", "hard", "problem", "problems",
	"fail", "failed", "failure", "worse", "worst", "weak", "confusing",
	"unclear", "slow", "broken", "error", "errors", "negative", "risk",
	"danger", "harmful",
)

var fillerWords = toSet(
	"basically", "actually", "literally", "really", "very", "just",
	"quite", "stuff", "things", "kind", "sort", "like", "maybe", "etc",
	"somewhat", "pretty",
)

var uncertainWords = toSet(
	"maybe", "perhaps", "possibly", "probably", "might", "guess",
	"unsure", "think", "believe", "seems", "apparently", "presumably",
	"somehow",
)

var pronounWords = toSet(
	"i", "me", "my", "mine", "we", "us", "our", "ours", "you", "your",
	"he", "him", "his", "she", "her", "hers", "they", "them", "their",
)

// closingMarkers signal a summative final sentence.
var closingMarkers = []string{
	"in conclusion", "in summary", "to summarize", "to sum up", "overall",
	"in short", "ultimately", "all in all", "finally", "therefore",
}

// sequenceWords mark step-by-step explanations (explain-code rubric).
var sequenceWords = toSet(
	"first", "firstly", "second", "secondly", "third", "then", "next",
	"after", "afterwards", "finally", "lastly", "step",
)

var controlFlowWords = toSet(
	"loop", "loops", "iterate", "iterates", "iteration", "condition",
	"conditions", "conditional", "if", "else", "while", "repeat",
	"repeats", "recursion", "recursive", "branch", "branches", "check",
	"checks", "until",
)

var outputWords = toSet(
	"return", "returns", "returned", "print", "prints", "printed",
	"output", "outputs", "result", "results", "produce", "produces",
	"display", "displays", "value", "values",
)

// codeVocab is the broader programming vocabulary used by the explain-code
// off-topic check: an answer that touches none of it never talks about code.
var codeVocab = toSet(
	"code", "function", "functions", "variable", "variables", "loop",
	"loops", "array", "arrays", "list", "lists", "string", "strings",
	"number", "numbers", "value", "values", "return", "returns", "call",
	"calls", "parameter", "parameters", "argument", "arguments", "print",
	"prints", "output", "program", "method", "methods", "object",
	"objects", "index", "iterate", "condition", "boolean", "integer",
)

// examplePhrases are matched against the raw lower-cased text, not tokens.
var examplePhrases = []string{
	"for example", "for instance", "e.g.", "as an example", "imagine",
	"think of it", "it's like", "it is like", "analogy",
}

// languageKeywords are excluded when mining identifiers out of a code
// snippet; they say nothing about what this particular snippet does.
var languageKeywords = toSet(
	"if", "else", "elif", "for", "while", "do", "switch", "case",
	"default", "break", "continue", "return", "function", "func", "def",
	"var", "let", "const", "class", "struct", "interface", "type",
	"import", "from", "package", "public", "private", "static", "void",
	"int", "float", "double", "bool", "boolean", "string", "true",
	"false", "null", "nil", "none", "new", "this", "self", "print",
	"println", "printf", "range", "in", "not", "and", "or", "try",
	"catch", "except", "finally", "throw", "raise", "lambda", "map",
	"len", "append",
)

// verb/article/preposition probes for the proofread rubric: frequency deltas
// against the corrected reference approximate agreement errors.
var agreementVerbs = []string{"is", "are", "was", "were", "has", "have", "does", "do"}
var articleWords = []string{"a", "an", "the"}
var prepositionWords = []string{"in", "on", "at", "to", "for", "of", "with", "by", "from"}
