package access

import (
	"slices"
	"strings"
)

const AdminRole = "admin"

// Claims is the verified identity taken from a bearer token.
type Claims struct {
	Subject string   `json:"sub"`
	Email   string   `json:"email,omitempty"`
	Roles   []string `json:"roles,omitempty"`
}

// ClaimNames tells which token claims carry the email and roles. Auth0 puts
// custom claims under namespaced keys.
type ClaimNames struct {
	Roles string
	Email string
}

// NamespacedEmailClaim is the custom email claim an Auth0 login action adds
// to access tokens, which carry no plain "email".
const NamespacedEmailClaim = "https://your.app/email"

// ClaimsFromMap extracts a Claims record from raw token claims. The
// configured names are tried first, then the plain "roles" / "email", and
// for email the namespaced claim last.
func ClaimsFromMap(raw map[string]any, names ClaimNames) Claims {
	c := Claims{}
	if sub, ok := raw["sub"].(string); ok {
		c.Subject = sub
	}
	c.Email = firstString(raw, names.Email, "email", NamespacedEmailClaim)
	c.Roles = firstStrings(raw, names.Roles, "roles")
	return c
}

func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if k == "" {
			continue
		}
		if v, ok := raw[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func firstStrings(raw map[string]any, keys ...string) []string {
	for _, k := range keys {
		if k == "" {
			continue
		}
		switch v := raw[k].(type) {
		case []string:
			return v
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return nil
}

// AdminPolicy decides who may edit content: anyone holding the admin role,
// or an allow-listed email.
type AdminPolicy struct {
	AllowedEmails []string
}

// NewAdminPolicy parses a comma-separated email allow-list.
func NewAdminPolicy(allowList string) AdminPolicy {
	var emails []string
	for _, e := range strings.Split(allowList, ",") {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			emails = append(emails, e)
		}
	}
	return AdminPolicy{AllowedEmails: emails}
}

func (p AdminPolicy) IsAdmin(c Claims) bool {
	if slices.Contains(c.Roles, AdminRole) {
		return true
	}
	if c.Email == "" {
		return false
	}
	return slices.Contains(p.AllowedEmails, strings.ToLower(c.Email))
}
