package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-psychotest/internal/rbac"
)

const (
	applicantCookie    = "me_applicant_id"
	applicantPrefix    = "applicant|"
	applicantCookieTTL = 30 * 24 * time.Hour
)

// applicantFromCookie returns the applicant id carried by a cookie this
// service signed, or "" for missing, forged or expired cookies.
func (a *AuthService) applicantFromCookie(r *http.Request) string {
	c, err := r.Cookie(applicantCookie)
	if err != nil || c.Value == "" {
		return ""
	}
	claims, err := a.Parse(c.Value)
	if err != nil || claims.Role != rbac.RoleApplicant || !strings.HasPrefix(claims.Sub, applicantPrefix) {
		return ""
	}
	return claims.Sub
}

// ApplicantLoginHandler issues an applicant token without credentials. The
// generated applicant id is kept in a signed cookie so a returning browser
// resumes under the same id.
func ApplicantLoginHandler(a *AuthService, enabled bool) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		ApplicantID string `json:"applicant_id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !enabled {
			http.Error(w, "applicant auth disabled", http.StatusForbidden)
			return
		}

		id := a.applicantFromCookie(r)
		if id == "" {
			id = applicantPrefix + uuid.NewString()
		}

		tok, err := a.IssueJWT(id, rbac.RoleApplicant)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		cookie, err := a.issue(id, rbac.RoleApplicant, applicantCookieTTL)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     applicantCookie,
			Value:    cookie,
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
			Expires:  a.now().Add(applicantCookieTTL),
		})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, ApplicantID: id})
	}
}
