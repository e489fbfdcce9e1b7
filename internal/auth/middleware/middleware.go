package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mind-engage/mindengage-psychotest/internal/rbac"
)

const tokenTTL = 8 * time.Hour

type AuthService struct {
	hmac []byte
	now  func() time.Time
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{hmac: []byte(secret), now: time.Now}
}

type Claims struct {
	Sub  string `json:"sub"`
	Role string `json:"role"` // applicant, hr or admin
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

func (a *AuthService) IssueJWT(sub, role string) (string, error) {
	return a.issue(sub, role, tokenTTL)
}

func (a *AuthService) issue(sub, role string, ttl time.Duration) (string, error) {
	now := a.now()
	claims := &Claims{
		Sub:  sub,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "mindengage-psychotest",
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.hmac)
}

func (a *AuthService) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.hmac, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now))
	if err != nil {
		return nil, err
	}
	c, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || c.Sub == "" || c.Role == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}

// Credentials are the staff accounts accepted by LoginHandler. Password
// hashes are bcrypt.
type Credentials struct {
	AdminUser     string
	AdminPassHash string
	HRUser        string
	HRPassHash    string
	// Offline kiosks let applicants sign in with username == password.
	AllowApplicantLogin bool
}

func (c Credentials) check(username, password, role string) bool {
	var user, hash string
	switch role {
	case rbac.RoleAdmin:
		user, hash = c.AdminUser, c.AdminPassHash
	case rbac.RoleHR:
		user, hash = c.HRUser, c.HRPassHash
	case rbac.RoleApplicant:
		return c.AllowApplicantLogin && username != "" && username == password
	default:
		return false
	}
	if user == "" || hash == "" || username != user {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// POST /auth/login  { "username": "...", "password": "...", "role": "admin|hr|applicant" }
func LoginHandler(a *AuthService, creds Credentials, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if !creds.check(req.Username, req.Password, req.Role) {
			log.Info("login rejected", zap.String("username", req.Username), zap.String("role", req.Role))
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		tok, err := a.IssueJWT(req.Username, req.Role)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok, "role": req.Role})
	}
}

// JWTMiddleware rejects requests without a valid bearer token and stores
// the token's subject and role on the request context.
func JWTMiddleware(a *AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "missing bearer", http.StatusUnauthorized)
				return
			}
			c, err := a.Parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				http.Error(w, "bad token", http.StatusUnauthorized)
				return
			}
			ctx := rbac.WithSubject(rbac.WithRole(r.Context(), c.Role), c.Sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
