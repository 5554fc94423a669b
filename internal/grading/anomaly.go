package grading

import (
	"strings"
	"unicode"
)

// Gibberish gate thresholds.
const (
	gibberishMinTokens     = 3
	gibberishLetterRatio   = 0.4
	gibberishCharVariety   = 0.2
	gibberishMaxCharRepeat = 5
)

// isGibberish reports whether a non-empty answer is not meaningful language.
// The checks are cheap and order-independent; any one of them trips the gate
// so the rubric heuristics never produce a specific-looking score for noise.
func isGibberish(raw string, p *TextProfile) bool {
	if p.WordCount < gibberishMinTokens {
		return true
	}
	if p.LetterRatio < gibberishLetterRatio {
		return true
	}
	if p.CharVariety < gibberishCharVariety {
		return true
	}
	if p.WordCount > gibberishMinTokens && len(p.Unique) <= 1 {
		return true
	}
	return hasCharRun(raw, gibberishMaxCharRepeat)
}

// hasCharRun reports a run of the same character repeated at least n times,
// ignoring whitespace.
func hasCharRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

var emptyAnswerNotes = []string{
	"No answer was received for this challenge.",
	"Write your response in the answer box and submit again.",
}

var gibberishNotes = []string{
	"The answer does not look like meaningful language.",
	"Respond with a few complete sentences that address the task.",
}

// invalidResult is the canned short-circuit for the anomaly gates: the full
// parameter list at zero points and a fixed score outside band mapping.
func invalidResult(task Task, taskType TaskType, score int, notes []string) Result {
	defs := rubricFor(taskType)
	return Result{
		ID:         task.ID,
		TaskType:   taskType,
		Difficulty: task.Difficulty,
		Score:      score,
		Grade:      GradeInvalid,
		Breakdown: Breakdown{
			Parameters: newParams(defs),
			Notes:      append([]string(nil), notes...),
		},
		Feedback: notes[0] + " " + strings.TrimSpace(notes[1]),
	}
}
