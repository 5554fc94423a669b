package grading

import "strings"

// Task is a minimal view of a challenge needed for grading.
// Keep this in sync with whatever fields your catalog uses.
type Task struct {
	ID          string
	Title       string
	Difficulty  string
	TaskType    string
	InputText   string
	IdealAnswer string
}

// Breakdown carries the per-criterion point list plus short notes on the
// strongest and weakest criteria.
type Breakdown struct {
	Parameters []Parameter `json:"parameters"`
	Notes      []string    `json:"notes"`
}

// Result is the outcome of grading a single answer. It is always fully
// populated; Score is in [0,100].
type Result struct {
	ID         string    `json:"id"`
	TaskType   TaskType  `json:"taskType"`
	Difficulty string    `json:"difficulty"`
	Score      int       `json:"score"`
	Grade      GradeBand `json:"grade"`
	Breakdown  Breakdown `json:"breakdown"`
	Feedback   string    `json:"feedback"`
}

type evaluator func(*signals) []Parameter

var evaluators = map[TaskType]evaluator{
	TaskSummarize:   scoreSummarize,
	TaskRewrite:     scoreRewrite,
	TaskProofread:   scoreProofread,
	TaskExplainCode: scoreExplainCode,
}

// Grade scores a raw answer against a challenge. It is pure and
// deterministic: no I/O, no clock, no randomness. Every input class maps to a
// valid Result, so it never returns an error and is safe to call concurrently.
func Grade(task Task, answer string) Result {
	taskType := ParseTaskType(task.TaskType)

	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return invalidResult(task, taskType, 0, emptyAnswerNotes)
	}
	answerProfile := Analyze(answer)
	if isGibberish(trimmed, answerProfile) {
		return invalidResult(task, taskType, gibberishScore, gibberishNotes)
	}

	sig := buildSignals(taskType, task.InputText, task.IdealAnswer, answer)
	params := evaluators[taskType](sig)
	applyPenalties(taskType, params, sig)
	return finalize(task, taskType, params)
}
