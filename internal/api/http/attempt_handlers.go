package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	authmw "github.com/writelab/writelab-api/internal/auth/middleware"
	"github.com/writelab/writelab-api/internal/challenge"
	"github.com/writelab/writelab-api/internal/grading"
	"github.com/writelab/writelab-api/internal/rbac"
	syncx "github.com/writelab/writelab-api/internal/sync"
)

type submitAnswerReq struct {
	Answer string `json:"answer"`
}

// eventAppender is the slice of the event log this package needs.
type eventAppender interface {
	Append(ctx context.Context, e syncx.Event) error
}

// POST /challenges/{challengeID}/attempts
// Grades the answer, persists the attempt, appends an event, returns the
// attempt with its full result.
func SubmitAnswerHandler(cat *challenge.Catalog, store challenge.Store, events eventAppender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "challengeID"))
		ch, ok := cat.Get(id)
		if !ok {
			http.Error(w, "challenge not found", http.StatusNotFound)
			return
		}
		var req submitAnswerReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}

		result := grading.Grade(ch.Task(), req.Answer)

		a := challenge.Attempt{
			ID:          uuid.NewString(),
			ChallengeID: ch.ID,
			UserID:      authmw.SubjectFromContext(r.Context()),
			TaskType:    string(result.TaskType),
			Difficulty:  ch.Difficulty,
			Score:       result.Score,
			Grade:       string(result.Grade),
			Result:      result,
			CreatedAt:   time.Now().Unix(),
		}
		if err := store.SaveAttempt(r.Context(), a); err != nil {
			http.Error(w, "save attempt: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if err := events.Append(r.Context(), syncx.AttemptGraded(a.ID, a.ChallengeID, a.UserID, a.Score, a.Grade)); err != nil {
			// Event log is advisory; the attempt is already durable.
			log.Warn().Err(err).Str("attempt_id", a.ID).Msg("event append failed")
		}
		writeJSON(w, a)
	}
}

// GET /attempts?challenge_id=&limit=&offset=
// Students see their own attempts; attempt:view-all widens the listing.
func ListAttemptsHandler(store challenge.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		opts := challenge.AttemptListOpts{
			ChallengeID: strings.TrimSpace(q.Get("challenge_id")),
			Limit:       atoiOr(q.Get("limit"), 50),
			Offset:      atoiOr(q.Get("offset"), 0),
		}
		role := rbac.RoleFromContext(r.Context())
		if rbac.Can(role, "attempt:view-all") {
			opts.UserID = strings.TrimSpace(q.Get("user_id"))
		} else {
			opts.UserID = authmw.SubjectFromContext(r.Context())
		}
		items, err := store.ListAttempts(r.Context(), opts)
		if err != nil {
			http.Error(w, "list attempts: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if items == nil {
			items = []challenge.Attempt{}
		}
		writeJSON(w, items)
	}
}

// GET /attempts/{attemptID}
func GetAttemptHandler(store challenge.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "attemptID"))
		if id == "" {
			http.Error(w, "attemptID required", http.StatusBadRequest)
			return
		}
		a, err := store.GetAttempt(r.Context(), id)
		if errors.Is(err, challenge.ErrAttemptNotFound) {
			http.Error(w, "attempt not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "get attempt: "+err.Error(), http.StatusInternalServerError)
			return
		}
		role := rbac.RoleFromContext(r.Context())
		if a.UserID != authmw.SubjectFromContext(r.Context()) && !rbac.Can(role, "attempt:view-all") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		writeJSON(w, a)
	}
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
