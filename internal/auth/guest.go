package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	authmw "github.com/writelab/writelab-api/internal/auth/middleware"
	"github.com/writelab/writelab-api/internal/config"
)

// GuestLoginHandler mints anonymous student identities so learners can try
// challenges without an account. The guest id rides a cookie so a returning
// browser keeps its attempt history.
func GuestLoginHandler(a *authmw.AuthService, cfg config.Config) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.EnableGuestAuth {
			http.Error(w, "guest auth disabled", http.StatusForbidden)
			return
		}

		// Reuse existing guest from cookie
		if c, err := r.Cookie("wl_guest_id"); err == nil && strings.HasPrefix(c.Value, "guest|") {
			tok, err := a.IssueJWT(c.Value, "student")
			if err == nil {
				refreshGuestCookie(w, c.Value)
				_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: guestName(c.Value)})
				return
			}
		}

		// New guest
		userID := "guest|" + uuid.NewString()
		tok, err := a.IssueJWT(userID, "student")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		refreshGuestCookie(w, userID)
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: guestName(userID)})
	}
}

func refreshGuestCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "wl_guest_id",
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}

func guestName(id string) string {
	s := strings.TrimPrefix(id, "guest|")
	if len(s) > 6 {
		s = s[:6]
	}
	return "guest-" + s
}
