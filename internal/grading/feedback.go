package grading

import "fmt"

// finalize sums the parameter list into the final score, maps the band, and
// synthesizes notes plus the one-line feedback.
func finalize(task Task, taskType TaskType, p []Parameter) Result {
	defs := rubricFor(taskType)

	score := 0
	for _, param := range p {
		score += param.Points
	}

	strongest, weakest := extremes(p)
	var notes []string
	if p[strongest].Points > 0 {
		notes = append(notes, fmt.Sprintf("Strength: %s (%d/%d).",
			defs[strongest].Hint, p[strongest].Points, p[strongest].Max))
	}
	if p[weakest].Points < p[weakest].Max {
		notes = append(notes, fmt.Sprintf("Improve: %s (%d/%d).",
			defs[weakest].Hint, p[weakest].Points, p[weakest].Max))
	}

	var feedback string
	switch {
	case p[strongest].Points > 0 && p[weakest].Points < p[weakest].Max:
		feedback = fmt.Sprintf("You did well on %s; focus next on %s.",
			defs[strongest].Hint, defs[weakest].Hint)
	case p[strongest].Points > 0:
		feedback = fmt.Sprintf("You did well on %s across the board.", defs[strongest].Hint)
	default:
		feedback = fmt.Sprintf("Start by working on %s.", defs[weakest].Hint)
	}

	return Result{
		ID:         task.ID,
		TaskType:   taskType,
		Difficulty: task.Difficulty,
		Score:      score,
		Grade:      bandFor(score),
		Breakdown:  Breakdown{Parameters: p, Notes: notes},
		Feedback:   feedback,
	}
}

// extremes picks the highest and lowest points/max ratios; ties keep the
// earliest parameter in rubric order.
func extremes(p []Parameter) (strongest, weakest int) {
	bestRatio, worstRatio := -1.0, 2.0
	for i, param := range p {
		if param.Max == 0 {
			continue
		}
		r := float64(param.Points) / float64(param.Max)
		if r > bestRatio {
			bestRatio, strongest = r, i
		}
		if r < worstRatio {
			worstRatio, weakest = r, i
		}
	}
	return strongest, weakest
}
