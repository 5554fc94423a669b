package challenge

import "github.com/writelab/writelab-api/internal/grading"

// Challenge is one catalog entry. Loaded from static content before grading;
// the engine never mutates it.
type Challenge struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Difficulty  string `json:"difficulty" validate:"required"`
	TaskType    string `json:"task_type" validate:"required"`
	InputText   string `json:"input_text" validate:"required"`
	IdealAnswer string `json:"ideal_answer" validate:"required"`
}

// Task converts to the minimal view the grading engine consumes.
func (c Challenge) Task() grading.Task {
	return grading.Task{
		ID:          c.ID,
		Title:       c.Title,
		Difficulty:  c.Difficulty,
		TaskType:    c.TaskType,
		InputText:   c.InputText,
		IdealAnswer: c.IdealAnswer,
	}
}

// Attempt is one graded submission.
type Attempt struct {
	ID          string         `json:"id"`
	ChallengeID string         `json:"challenge_id"`
	UserID      string         `json:"user_id"`
	TaskType    string         `json:"task_type"`
	Difficulty  string         `json:"difficulty"`
	Score       int            `json:"score"`
	Grade       string         `json:"grade"`
	Result      grading.Result `json:"result"`
	CreatedAt   int64          `json:"created_at"`
}
