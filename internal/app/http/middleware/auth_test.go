package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-api/internal/domain/access"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func newAuthRouter(a *Auth) *gin.Engine {
	r := gin.New()
	r.GET("/me", a.RequireAuth(), func(c *gin.Context) {
		claims, _ := CurrentClaims(c)
		c.JSON(http.StatusOK, claims)
	})
	r.GET("/admin", a.RequireAuth(), a.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthWithoutConfiguration(t *testing.T) {
	r := newAuthRouter(NewAuth(AuthConfig{}))

	rec := doGet(r, "/me", "anything")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "Auth is not configured on the server") || !strings.Contains(body, "AUTH0_DOMAIN") {
		t.Errorf("body = %s", body)
	}
}

func TestRequireAuth(t *testing.T) {
	a := NewAuth(AuthConfig{Secret: testSecret})
	r := newAuthRouter(a)

	valid := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "auth0|alice",
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	expired := signToken(t, testSecret, jwt.MapClaims{
		"sub": "auth0|alice",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other", jwt.MapClaims{"sub": "auth0|alice"})
	noSubject := signToken(t, testSecret, jwt.MapClaims{"email": "x@example.com"})

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage", "not-a-jwt", http.StatusUnauthorized},
		{"expired", expired, http.StatusUnauthorized},
		{"wrong key", wrongKey, http.StatusUnauthorized},
		{"no subject", noSubject, http.StatusUnauthorized},
		{"valid", valid, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(r, "/me", tt.token)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestRequireAuthRejectsNonBearerScheme(t *testing.T) {
	r := newAuthRouter(NewAuth(AuthConfig{Secret: testSecret}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	a := NewAuth(AuthConfig{
		Secret:             testSecret,
		ClaimNames:         access.ClaimNames{Roles: "https://site/roles"},
		AllowedAdminEmails: "owner@example.com",
	})
	r := newAuthRouter(a)

	byRole := signToken(t, testSecret, jwt.MapClaims{"sub": "1", "https://site/roles": []string{"admin"}})
	byEmail := signToken(t, testSecret, jwt.MapClaims{"sub": "2", "email": "Owner@example.com"})
	visitor := signToken(t, testSecret, jwt.MapClaims{"sub": "3", "email": "guest@example.com"})

	if rec := doGet(r, "/admin", byRole); rec.Code != http.StatusNoContent {
		t.Errorf("role admin: status = %d", rec.Code)
	}
	if rec := doGet(r, "/admin", byEmail); rec.Code != http.StatusNoContent {
		t.Errorf("email admin: status = %d", rec.Code)
	}
	if rec := doGet(r, "/admin", visitor); rec.Code != http.StatusForbidden {
		t.Errorf("visitor: status = %d, want 403", rec.Code)
	}
	if rec := doGet(r, "/admin", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: status = %d, want 401", rec.Code)
	}
}

func TestHMACVerifierChecksAudience(t *testing.T) {
	v := NewHMACVerifier(testSecret, "", "portfolio")
	tok := signToken(t, testSecret, jwt.MapClaims{"sub": "1", "aud": "someone-else"})
	if _, err := v.Verify(context.Background(), tok); err == nil {
		t.Error("expected audience mismatch to fail")
	}
	tok = signToken(t, testSecret, jwt.MapClaims{"sub": "1", "aud": "portfolio"})
	if _, err := v.Verify(context.Background(), tok); err != nil {
		t.Errorf("verify: %v", err)
	}
}
