package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRolePermissions(t *testing.T) {
	require.True(t, Can("student", "challenge:view"))
	require.True(t, Can("student", "attempt:create"))
	require.True(t, Can("student", "attempt:view-own"))
	require.False(t, Can("student", "challenge:view-ideal"))
	require.False(t, Can("student", "attempt:view-all"))

	require.True(t, Can("teacher", "challenge:view-ideal"))
	require.True(t, Can("teacher", "attempt:view-all"))
	require.False(t, Can("teacher", "attempt:create"))

	// admin holds the wildcard
	require.True(t, Can("admin", "attempt:view-all"))
	require.True(t, Can("admin", "anything:at-all"))

	require.False(t, Can("", "challenge:view"))
	require.False(t, Can("visitor", "challenge:view"))
}

func TestCheckerPrefixPatterns(t *testing.T) {
	c := NewChecker(map[string][]string{"grader": {"attempt:*"}})
	require.True(t, c.Has("grader", "attempt:view-all"))
	require.True(t, c.Has("grader", "attempt:create"))
	require.False(t, c.Has("grader", "challenge:view"))
	require.True(t, c.Any("grader", "challenge:view", "attempt:create"))
	require.False(t, c.Any("grader", "challenge:view", "challenge:view-ideal"))
}

func TestRequireMiddleware(t *testing.T) {
	ok := false
	h := Require("challenge:view")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRole(req.Context(), "student"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)

	ok = false
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, ok)
}
