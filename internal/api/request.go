package api

import (
	"bytes"
	"encoding/json"

	"portfolio-api/internal/app/http/middleware"
	"portfolio-api/internal/domain/access"
	"portfolio-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// Bind reads the request body, validates it against schema and decodes it
// into dst. An empty body counts as an empty object. On failure the error is
// attached to c and false is returned.
func Bind(c *gin.Context, schema string, dst any) bool {
	body, err := c.GetRawData()
	if err != nil {
		_ = c.Error(malformed())
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	if err := validation.Validate(schema, body); err != nil {
		_ = c.Error(err)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		_ = c.Error(malformed())
		return false
	}
	return true
}

// Claims returns the caller's verified claims, or the zero value on public
// routes.
func Claims(c *gin.Context) access.Claims {
	claims, _ := middleware.CurrentClaims(c)
	return claims
}

func malformed() error {
	return &validation.Error{Errors: []validation.FieldError{{Field: "(root)", Message: "Malformed JSON"}}}
}
