package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testConfig = Config{Secret: "test-secret", Issuer: "test-issuer"}

func issue(t *testing.T, claims Claims, cfg Config) string {
	t.Helper()
	token, err := Issue(claims, cfg)
	require.NoError(t, err)
	return token
}

func TestParseRoundTrip(t *testing.T) {
	token := issue(t, Claims{
		Subject:   "athlete-1",
		TenantID:  "tenant-1",
		Scopes:    map[string]struct{}{ScopeWorkoutsRead: {}},
		ExpiresAt: time.Now().Add(time.Hour),
	}, testConfig)

	claims, err := Parse(token, testConfig)
	require.NoError(t, err)
	require.Equal(t, "athlete-1", claims.Subject)
	require.Equal(t, "tenant-1", claims.TenantID)
	require.True(t, claims.HasScope(ScopeWorkoutsRead))
	require.False(t, claims.HasScope(ScopeWorkoutsWrite))
	require.True(t, claims.HasAnyScope(ScopeWorkoutsWrite, ScopeWorkoutsRead))
}

func TestParseRejects(t *testing.T) {
	valid := Claims{Subject: "athlete-1", TenantID: "tenant-1", ExpiresAt: time.Now().Add(time.Hour)}

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt",
		"wrong secret": issue(t, valid, Config{Secret: "other", Issuer: testConfig.Issuer}),
		"wrong issuer": issue(t, valid, Config{Secret: testConfig.Secret, Issuer: "other"}),
		"expired": issue(t, Claims{
			Subject: "athlete-1", TenantID: "tenant-1", ExpiresAt: time.Now().Add(-time.Minute),
		}, testConfig),
		"missing tenant": issue(t, Claims{
			Subject: "athlete-1", ExpiresAt: time.Now().Add(time.Hour),
		}, testConfig),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(token, testConfig)
			require.Error(t, err)
		})
	}
}

func TestScopeSetAcceptsStringAndList(t *testing.T) {
	require.Len(t, scopeSet("workouts:read  workouts:write"), 2)
	require.Len(t, scopeSet([]any{"workouts:read", 42, ""}), 1)
	require.Empty(t, scopeSet(nil))
}

func TestNilClaimsHaveNoScopes(t *testing.T) {
	var claims *Claims
	require.False(t, claims.HasAnyScope(ScopeWorkoutsRead))
}

func TestMiddleware(t *testing.T) {
	var seen *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := NewMiddleware(testConfig, "/healthz", "/metrics").Wrap(next)
	token := issue(t, Claims{Subject: "athlete-1", TenantID: "tenant-1", ExpiresAt: time.Now().Add(time.Hour)}, testConfig)

	cases := []struct {
		name     string
		path     string
		header   string
		want     int
		wantType string
	}{
		{name: "public path", path: "/healthz", want: http.StatusNoContent},
		{name: "missing header", path: "/v1/workouts/types", want: http.StatusUnauthorized, wantType: "unauthorized"},
		{name: "basic scheme", path: "/v1/workouts/types", header: "Basic abc", want: http.StatusUnauthorized, wantType: "invalid_token"},
		{name: "bad token", path: "/v1/workouts/types", header: "Bearer nope", want: http.StatusUnauthorized, wantType: "invalid_token"},
		{name: "bearer", path: "/v1/workouts/types", header: "Bearer " + token, want: http.StatusNoContent},
		{name: "extra whitespace", path: "/v1/workouts/types", header: "  bearer   " + token + " ", want: http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			require.Equal(t, tc.want, rr.Code)

			if tc.wantType == "" {
				if tc.header != "" {
					require.NotNil(t, seen)
					require.Equal(t, "tenant-1", seen.TenantID)
				}
				return
			}
			require.Nil(t, seen)
			require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			require.Equal(t, tc.wantType, body["type"])
			require.NotEmpty(t, body["detail"])
		})
	}
}
