package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/writelab/writelab-api/internal/challenge"
	"github.com/writelab/writelab-api/internal/rbac"
)

// challengeView is the student-safe projection: the ideal answer stays on
// the server unless the caller may see it.
type challengeView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Difficulty  string `json:"difficulty"`
	TaskType    string `json:"task_type"`
	InputText   string `json:"input_text"`
	IdealAnswer string `json:"ideal_answer,omitempty"`
}

func viewOf(ch challenge.Challenge, withIdeal bool) challengeView {
	v := challengeView{
		ID:         ch.ID,
		Title:      ch.Title,
		Difficulty: ch.Difficulty,
		TaskType:   ch.TaskType,
		InputText:  ch.InputText,
	}
	if withIdeal {
		v.IdealAnswer = ch.IdealAnswer
	}
	return v
}

// GET /challenges?task_type=...
func ListChallengesHandler(cat *challenge.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withIdeal := rbac.Can(rbac.RoleFromContext(r.Context()), "challenge:view-ideal")
		items := cat.List(strings.TrimSpace(r.URL.Query().Get("task_type")))
		out := make([]challengeView, 0, len(items))
		for _, ch := range items {
			out = append(out, viewOf(ch, withIdeal))
		}
		writeJSON(w, out)
	}
}

// GET /challenges/{challengeID}
func GetChallengeHandler(cat *challenge.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "challengeID"))
		ch, ok := cat.Get(id)
		if !ok {
			http.Error(w, "challenge not found", http.StatusNotFound)
			return
		}
		withIdeal := rbac.Can(rbac.RoleFromContext(r.Context()), "challenge:view-ideal")
		writeJSON(w, viewOf(ch, withIdeal))
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
