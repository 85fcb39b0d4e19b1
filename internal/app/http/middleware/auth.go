package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"portfolio-api/internal/domain/access"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const claimsKey = "claims"

// TokenVerifier checks a raw bearer token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (map[string]any, error)
}

// OIDCVerifier validates RS256 access tokens against the issuer's JWKS, the
// way Auth0 issues them for an API audience.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

func NewOIDCVerifier(issuer, audience string) *OIDCVerifier {
	// Keys are fetched lazily on first use and refreshed on unknown kid.
	keySet := oidc.NewRemoteKeySet(context.Background(), issuer+".well-known/jwks.json")
	return &OIDCVerifier{
		verifier: oidc.NewVerifier(issuer, keySet, &oidc.Config{
			ClientID:             audience,
			SupportedSigningAlgs: []string{oidc.RS256},
		}),
	}
}

func (v *OIDCVerifier) Verify(ctx context.Context, raw string) (map[string]any, error) {
	tok, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, err
	}
	claims := map[string]any{}
	if err := tok.Claims(&claims); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	return claims, nil
}

// HMACVerifier validates HS256 tokens signed with a shared secret.
type HMACVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

func NewHMACVerifier(secret, issuer, audience string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret), issuer: issuer, audience: audience}
}

func (v *HMACVerifier) Verify(_ context.Context, raw string) (map[string]any, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return map[string]any(claims), nil
}

type AuthConfig struct {
	Issuer   string // https://<tenant>/
	Audience string
	Secret   string // HS256 fallback when no issuer is set

	ClaimNames         access.ClaimNames
	AllowedAdminEmails string
}

// Auth is the authorization gate. It only verifies tokens and checks
// claims; it never touches content.
type Auth struct {
	verifier TokenVerifier
	missing  []string
	names    access.ClaimNames
	policy   access.AdminPolicy
}

func NewAuth(cfg AuthConfig) *Auth {
	a := &Auth{
		names:  cfg.ClaimNames,
		policy: access.NewAdminPolicy(cfg.AllowedAdminEmails),
	}
	switch {
	case cfg.Issuer != "" && cfg.Audience != "":
		a.verifier = NewOIDCVerifier(cfg.Issuer, cfg.Audience)
	case cfg.Secret != "":
		a.verifier = NewHMACVerifier(cfg.Secret, cfg.Issuer, cfg.Audience)
	default:
		a.missing = []string{"AUTH0_DOMAIN", "AUTH0_AUDIENCE"}
	}
	return a
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified claims on the context.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.verifier == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "Auth is not configured on the server",
				"missing": a.missing,
			})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			return
		}

		raw, err := a.verifier.Verify(c.Request.Context(), strings.TrimSpace(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		claims := access.ClaimsFromMap(raw, a.names)
		if claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (a *Auth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !a.policy.IsAdmin(claims) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentClaims returns the claims stored by RequireAuth.
func CurrentClaims(c *gin.Context) (access.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return access.Claims{}, false
	}
	claims, ok := v.(access.Claims)
	return claims, ok
}
