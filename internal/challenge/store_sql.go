package challenge

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
)

var ErrAttemptNotFound = errors.New("attempt not found")

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) SaveAttempt(ctx context.Context, a Attempt) error {
	rj, err := json.Marshal(a.Result)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO attempts (id,challenge_id,user_id,task_type,difficulty,score,grade,result_json,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.ChallengeID, a.UserID, a.TaskType, a.Difficulty, a.Score, a.Grade, string(rj), a.CreatedAt)
	return err
}

func (s *SQLStore) GetAttempt(ctx context.Context, id string) (Attempt, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,challenge_id,user_id,task_type,difficulty,score,grade,result_json,created_at
		 FROM attempts WHERE id=$1`, id)
	return scanAttempt(row)
}

func (s *SQLStore) ListAttempts(ctx context.Context, opts AttemptListOpts) ([]Attempt, error) {
	q := `SELECT id,challenge_id,user_id,task_type,difficulty,score,grade,result_json,created_at
	      FROM attempts WHERE 1=1`
	args := []interface{}{}
	n := 0
	add := func(clause string, v interface{}) {
		n++
		q += clause + placeholder(n)
		args = append(args, v)
	}
	if opts.ChallengeID != "" {
		add(` AND challenge_id=`, opts.ChallengeID)
	}
	if opts.UserID != "" {
		add(` AND user_id=`, opts.UserID)
	}
	q += ` ORDER BY created_at DESC`
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	} else if limit > 200 {
		limit = 200
	}
	add(` LIMIT `, limit)
	if opts.Offset > 0 {
		add(` OFFSET `, opts.Offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAttempt(row scanner) (Attempt, error) {
	var a Attempt
	var rj string
	err := row.Scan(&a.ID, &a.ChallengeID, &a.UserID, &a.TaskType, &a.Difficulty,
		&a.Score, &a.Grade, &rj, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, ErrAttemptNotFound
	}
	if err != nil {
		return Attempt{}, err
	}
	if err := json.Unmarshal([]byte(rj), &a.Result); err != nil {
		return Attempt{}, err
	}
	return a, nil
}

func placeholder(n int) string {
	// pgx and modernc sqlite both accept $n.
	return "$" + strconv.Itoa(n)
}
