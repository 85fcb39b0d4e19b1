package content

import "regexp"

// Languages served by the frontend, in dictionary order.
const (
	LangEN = "en"
	LangFR = "fr"
)

var Languages = []string{LangEN, LangFR}

// keyPattern restricts project ids and skill category names: they end up in
// URLs and in dotted i18n keys.
var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,39}$`)

// ValidKey reports whether s can be used as a project id or skill category.
func ValidKey(s string) bool {
	return keyPattern.MatchString(s)
}
