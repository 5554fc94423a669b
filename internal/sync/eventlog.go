package syncx

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

const EventAttemptGraded = "AttemptGraded"

type Event struct {
	Offset    int64
	SiteID    string
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

// AttemptGraded builds the event appended after every successful grading.
func AttemptGraded(attemptID, challengeID, userID string, score int, grade string) Event {
	data, _ := json.Marshal(map[string]interface{}{
		"challenge_id": challengeID,
		"user_id":      userID,
		"score":        score,
		"grade":        grade,
	})
	return Event{SiteID: "local", Type: EventAttemptGraded, Key: attemptID, DataJSON: string(data)}
}

type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.SiteID, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}
