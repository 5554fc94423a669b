package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/writelab/writelab-api/internal/rbac"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	a := NewAuthService("test-secret")
	tok, err := a.IssueJWT("alice", "teacher")
	require.NoError(t, err)

	claims, err := a.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Sub)
	require.Equal(t, "teacher", claims.Role)
	require.Equal(t, "writelab-offline", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := NewAuthService("secret-a").IssueJWT("alice", "student")
	require.NoError(t, err)

	_, err = NewAuthService("secret-b").Parse(tok)
	require.Error(t, err)
}

func TestJWTMiddlewareAttachesIdentity(t *testing.T) {
	a := NewAuthService("test-secret")
	tok, err := a.IssueJWT("bob", "student")
	require.NoError(t, err)

	var gotSub, gotRole string
	h := JWTMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "bob", gotSub)
	require.Equal(t, "student", gotRole)
}

func TestJWTMiddlewareRejectsBadTokens(t *testing.T) {
	a := NewAuthService("test-secret")
	h := JWTMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
