package challenge

import "context"

type AttemptListOpts struct {
	ChallengeID string // filter by challenge
	UserID      string // filter by learner
	Limit       int
	Offset      int
}

// Store persists graded attempts.
type Store interface {
	SaveAttempt(ctx context.Context, a Attempt) error
	GetAttempt(ctx context.Context, id string) (Attempt, error)
	ListAttempts(ctx context.Context, opts AttemptListOpts) ([]Attempt, error)
}
