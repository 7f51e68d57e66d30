package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shahin-hossain-dev/job-hive-server/internal/config"
	"github.com/shahin-hossain-dev/job-hive-server/internal/server"
	"github.com/shahin-hossain-dev/job-hive-server/internal/token"
)

type authRq struct {
	Email string `json:"email"`
}

// IssueTokenHandler signs a session token for the posted email and hands
// it back in the token cookie. The 1-hour expiry lives in the token
// payload, not in the cookie's own max-age.
func IssueTokenHandler(svr server.Server, tokens *token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq authRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			badRequest(svr, w, "malformed request body")
			return
		}
		if rq.Email == "" {
			badRequest(svr, w, "email is required")
			return
		}
		signed, err := tokens.Issue(rq.Email)
		if err != nil {
			internalError(svr, w, err, "unable to issue session token")
			return
		}
		http.SetCookie(w, sessionCookie(svr.GetConfig(), signed))
		svr.JSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// LogoutHandler instructs the client to discard the token cookie, tokens
// are never persisted server-side so there is nothing else to revoke.
func LogoutHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := sessionCookie(svr.GetConfig(), "")
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0)
		http.SetCookie(w, c)
		svr.JSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func sessionCookie(cfg config.Config, value string) *http.Cookie {
	c := &http.Cookie{
		Name:     "token",
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if cfg.Env == "prod" {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}
