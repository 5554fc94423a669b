package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	authmw "github.com/writelab/writelab-api/internal/auth/middleware"
	"github.com/writelab/writelab-api/internal/challenge"
	"github.com/writelab/writelab-api/internal/rbac"
	syncx "github.com/writelab/writelab-api/internal/sync"
)

type fakeStore struct {
	saved    []challenge.Attempt
	byID     map[string]challenge.Attempt
	lastOpts challenge.AttemptListOpts
	saveErr  error
	listErr  error
}

func (f *fakeStore) SaveAttempt(_ context.Context, a challenge.Attempt) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, a)
	return nil
}

func (f *fakeStore) GetAttempt(_ context.Context, id string) (challenge.Attempt, error) {
	a, ok := f.byID[id]
	if !ok {
		return challenge.Attempt{}, challenge.ErrAttemptNotFound
	}
	return a, nil
}

func (f *fakeStore) ListAttempts(_ context.Context, opts challenge.AttemptListOpts) ([]challenge.Attempt, error) {
	f.lastOpts = opts
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.saved, nil
}

type fakeEvents struct {
	appended []syncx.Event
	err      error
}

func (f *fakeEvents) Append(_ context.Context, e syncx.Event) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, e)
	return nil
}

func testCatalog(t *testing.T) *challenge.Catalog {
	t.Helper()
	cat, err := challenge.NewCatalog([]challenge.Challenge{{
		ID:          "sum-1",
		Title:       "Summarize the notice",
		Difficulty:  "easy",
		TaskType:    "summarize",
		InputText:   "The library closes early on Fridays during summer because staff hours are reduced.",
		IdealAnswer: "The library has shorter Friday hours in summer because staffing is reduced.",
	}})
	require.NoError(t, err)
	return cat
}

func asUser(r *http.Request, sub, role string) *http.Request {
	ctx := rbac.WithRole(authmw.WithSubject(r.Context(), sub), role)
	return r.WithContext(ctx)
}

func TestSubmitAnswerGradesAndPersists(t *testing.T) {
	store := &fakeStore{}
	events := &fakeEvents{}
	router := chi.NewRouter()
	router.Post("/challenges/{challengeID}/attempts", SubmitAnswerHandler(testCatalog(t), store, events))

	body := `{"answer":"The library has shorter hours on summer Fridays because staffing is reduced."}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/challenges/sum-1/attempts", strings.NewReader(body)), "alice", "student")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got challenge.Attempt
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.NotEmpty(t, got.ID)
	require.Equal(t, "sum-1", got.ChallengeID)
	require.Equal(t, "alice", got.UserID)
	require.Equal(t, "summarize", got.TaskType)
	require.GreaterOrEqual(t, got.Score, 0)
	require.LessOrEqual(t, got.Score, 100)
	require.Equal(t, got.Score, got.Result.Score)

	require.Len(t, store.saved, 1)
	require.Equal(t, got.ID, store.saved[0].ID)
	require.Len(t, events.appended, 1)
	require.Equal(t, syncx.EventAttemptGraded, events.appended[0].Type)
	require.Equal(t, got.ID, events.appended[0].Key)
}

func TestSubmitAnswerUnknownChallenge(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/challenges/{challengeID}/attempts", SubmitAnswerHandler(testCatalog(t), &fakeStore{}, &fakeEvents{}))

	req := asUser(httptest.NewRequest(http.MethodPost, "/challenges/nope/attempts", strings.NewReader(`{"answer":"x"}`)), "alice", "student")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitAnswerBadJSON(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/challenges/{challengeID}/attempts", SubmitAnswerHandler(testCatalog(t), &fakeStore{}, &fakeEvents{}))

	req := asUser(httptest.NewRequest(http.MethodPost, "/challenges/sum-1/attempts", strings.NewReader("{broken")), "alice", "student")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAnswerStoreFailure(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	router := chi.NewRouter()
	router.Post("/challenges/{challengeID}/attempts", SubmitAnswerHandler(testCatalog(t), store, &fakeEvents{}))

	req := asUser(httptest.NewRequest(http.MethodPost, "/challenges/sum-1/attempts", strings.NewReader(`{"answer":"fine answer here"}`)), "alice", "student")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSubmitAnswerSurvivesEventLogFailure(t *testing.T) {
	store := &fakeStore{}
	router := chi.NewRouter()
	router.Post("/challenges/{challengeID}/attempts", SubmitAnswerHandler(testCatalog(t), store, &fakeEvents{err: errors.New("log closed")}))

	req := asUser(httptest.NewRequest(http.MethodPost, "/challenges/sum-1/attempts", strings.NewReader(`{"answer":"fine answer here"}`)), "alice", "student")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.saved, 1)
}

func TestListAttemptsStudentScopedToSelf(t *testing.T) {
	store := &fakeStore{}
	h := ListAttemptsHandler(store)

	req := asUser(httptest.NewRequest(http.MethodGet, "/attempts?user_id=alice&challenge_id=sum-1", nil), "bob", "student")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "bob", store.lastOpts.UserID)
	require.Equal(t, "sum-1", store.lastOpts.ChallengeID)
}

func TestListAttemptsTeacherFiltersByUser(t *testing.T) {
	store := &fakeStore{}
	h := ListAttemptsHandler(store)

	req := asUser(httptest.NewRequest(http.MethodGet, "/attempts?user_id=alice", nil), "carol", "teacher")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", store.lastOpts.UserID)
}

func TestListAttemptsEmptyIsJSONArray(t *testing.T) {
	h := ListAttemptsHandler(&fakeStore{})
	req := asUser(httptest.NewRequest(http.MethodGet, "/attempts", nil), "bob", "student")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetAttemptOwnership(t *testing.T) {
	store := &fakeStore{byID: map[string]challenge.Attempt{
		"a1": {ID: "a1", ChallengeID: "sum-1", UserID: "alice", Score: 80},
	}}
	router := chi.NewRouter()
	router.Get("/attempts/{attemptID}", GetAttemptHandler(store))

	get := func(sub, role, id string) *httptest.ResponseRecorder {
		req := asUser(httptest.NewRequest(http.MethodGet, "/attempts/"+id, nil), sub, role)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, get("alice", "student", "a1").Code)
	require.Equal(t, http.StatusForbidden, get("bob", "student", "a1").Code)
	require.Equal(t, http.StatusOK, get("carol", "teacher", "a1").Code)
	require.Equal(t, http.StatusNotFound, get("alice", "student", "missing").Code)
}

func TestChallengeListHidesIdealFromStudents(t *testing.T) {
	h := ListChallengesHandler(testCatalog(t))

	req := asUser(httptest.NewRequest(http.MethodGet, "/challenges", nil), "bob", "student")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "ideal_answer")

	req = asUser(httptest.NewRequest(http.MethodGet, "/challenges", nil), "carol", "teacher")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ideal_answer")
}

func TestGetChallenge(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/challenges/{challengeID}", GetChallengeHandler(testCatalog(t)))

	req := asUser(httptest.NewRequest(http.MethodGet, "/challenges/sum-1", nil), "bob", "student")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var v map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	require.Equal(t, "sum-1", v["id"])
	require.NotContains(t, v, "ideal_answer")

	req = asUser(httptest.NewRequest(http.MethodGet, "/challenges/absent", nil), "bob", "student")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
