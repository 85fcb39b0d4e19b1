// Package validation checks request bodies against the JSON schemas in
// schemas/ before they are decoded.
package validation

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Schema names, one per file in schemas/.
const (
	Home            = "home"
	Work            = "work"
	School          = "school"
	Project         = "project"
	ProjectCreate   = "project-create"
	Contact         = "contact"
	ContactItem     = "contact-item"
	Message         = "message"
	SkillItem       = "skill-item"
	SkillItemRename = "skill-item-rename"
	SkillType       = "skill-type"
	Testimonial     = "testimonial"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	compileOnce sync.Once
	compiled    map[string]*gojsonschema.Schema
	compileErr  error
)

func compile() {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		compileErr = err
		return
	}
	compiled = make(map[string]*gojsonschema.Schema, len(entries))
	for _, e := range entries {
		raw, err := schemaFS.ReadFile("schemas/" + e.Name())
		if err != nil {
			compileErr = err
			return
		}
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			compileErr = fmt.Errorf("schema %s: %w", e.Name(), err)
			return
		}
		compiled[strings.TrimSuffix(e.Name(), ".json")] = s
	}
}

// FieldError describes one schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// Error is returned for bodies that are not valid JSON or do not match the
// schema.
type Error struct {
	Errors []FieldError
}

func (e *Error) Error() string {
	if len(e.Errors) == 0 {
		return "invalid request body"
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "invalid request body: " + strings.Join(msgs, "; ")
}

// Validate checks body against the named schema.
func Validate(schema string, body []byte) error {
	compileOnce.Do(compile)
	if compileErr != nil {
		return compileErr
	}
	s, ok := compiled[schema]
	if !ok {
		return fmt.Errorf("unknown schema %q", schema)
	}

	res, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &Error{Errors: []FieldError{{Field: "(root)", Message: "Malformed JSON"}}}
	}
	if res.Valid() {
		return nil
	}

	out := &Error{}
	for _, re := range res.Errors() {
		out.Errors = append(out.Errors, FieldError{Field: re.Field(), Message: re.Description()})
	}
	return out
}
