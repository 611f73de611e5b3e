// Package auth guards the premium routes and rate limits the API.
package auth

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"Windsign/internal/respond"
)

type contextKey string

const subjectKey contextKey = "subject"

const (
	CookieName   = "session_token"
	APIKeyHeader = "X-API-Key"
)

var (
	ErrNoCredentials = errors.New("unauthorized")
	ErrNoKey         = errors.New("token signing key is not configured")
)

type Authenv struct {
	JWTkey     []byte
	APIKeyHash []byte // bcrypt
	Log        zerolog.Logger
}

// Enabled reports whether any credential can be accepted at all.
func (env *Authenv) Enabled() bool {
	return len(env.JWTkey) > 0 || len(env.APIKeyHash) > 0
}

type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = limiter
	}
	return limiter
}

// LimitMiddleware keys limiters by client host, so every connection from one
// address shares a bucket.
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.getLimiter(clientIP(r)).Allow() {
			http.Error(w, "Too Many Requests. Try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func HashKey(key string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(b), err
}

// IssueToken signs an HS256 token for subject valid for ttl.
func (env *Authenv) IssueToken(subject string, now time.Time, ttl time.Duration) (string, error) {
	if len(env.JWTkey) == 0 {
		return "", ErrNoKey
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString(env.JWTkey)
}

func (env *Authenv) parseToken(tokenString string) (string, error) {
	if len(env.JWTkey) == 0 {
		return "", ErrNoKey
	}
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return env.JWTkey, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrNoCredentials
	}
	return claims.Subject, nil
}

func (env *Authenv) checkAPIKey(key string) bool {
	if len(env.APIKeyHash) == 0 || key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(env.APIKeyHash, []byte(key)) == nil
}

// authenticate accepts, in order, an API key header, a bearer token and the
// session cookie.
func (env *Authenv) authenticate(r *http.Request) (string, error) {
	if !env.Enabled() {
		return "", ErrNoCredentials
	}
	if key := r.Header.Get(APIKeyHeader); key != "" {
		if env.checkAPIKey(key) {
			return "api-key", nil
		}
		return "", ErrNoCredentials
	}
	if h := r.Header.Get("Authorization"); h != "" {
		tok, ok := strings.CutPrefix(h, "Bearer ")
		if !ok {
			return "", ErrNoCredentials
		}
		return env.parseToken(strings.TrimSpace(tok))
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		return env.parseToken(cookie.Value)
	}
	return "", ErrNoCredentials
}

func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := env.authenticate(r)
		if err != nil {
			env.Log.Debug().Err(err).Str("path", r.URL.Path).Msg("premium request rejected")
			respond.Error(w, http.StatusUnauthorized, ErrNoCredentials)
			return
		}
		ctx := context.WithValue(r.Context(), subjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Subject returns the authenticated caller stored by AuthMiddleware.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}
