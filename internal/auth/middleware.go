package auth

import (
	"errors"
	"net/http"
	"strings"

	httptransport "example.com/workout/internal/transport/http"
)

// Middleware authenticates bearer tokens and stores the resulting Claims in
// the request context.
type Middleware struct {
	cfg    Config
	public map[string]struct{}
}

// NewMiddleware constructs Middleware. Requests for publicPaths pass through
// without a token.
func NewMiddleware(cfg Config, publicPaths ...string) Middleware {
	public := make(map[string]struct{}, len(publicPaths))
	for _, path := range publicPaths {
		public[path] = struct{}{}
	}
	return Middleware{cfg: cfg, public: public}
}

// Wrap attaches authentication handling to an http.Handler.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.public[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.authenticate(r.Header.Get("Authorization"))
		if err != nil {
			code := "invalid_token"
			if errors.Is(err, ErrMissingToken) {
				code = "unauthorized"
			}
			w.Header().Set("WWW-Authenticate", "Bearer")
			httptransport.WriteError(w, http.StatusUnauthorized, code, err.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func (m Middleware) authenticate(header string) (*Claims, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return nil, ErrInvalidToken
	}
	return Parse(strings.TrimSpace(token), m.cfg)
}
