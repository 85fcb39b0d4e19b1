package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-api/internal/store"
	"portfolio-api/internal/validation"

	"github.com/gin-gonic/gin"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &validation.Error{Errors: []validation.FieldError{{Field: "id", Message: "required"}}}, http.StatusBadRequest, "Invalid request body"},
		{"not found", &store.Error{Kind: store.ErrNotFound, Message: "Project not found"}, http.StatusNotFound, "Project not found"},
		{"conflict", &store.Error{Kind: store.ErrConflict, Message: "dup"}, http.StatusConflict, "dup"},
		{"rate limited", &store.Error{Kind: store.ErrRateLimited, Message: "slow down"}, http.StatusTooManyRequests, "slow down"},
		{"unauthenticated", &store.Error{Kind: store.ErrUnauthenticated, Message: "Unauthorized"}, http.StatusUnauthorized, "Unauthorized"},
		{"storage failure", errors.New("open /data/home.json: permission denied"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/x", func(c *gin.Context) { _ = c.Error(tt.err) })

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("body: %v", err)
			}
			if body["error"] != tt.message {
				t.Errorf("error = %v, want %q", body["error"], tt.message)
			}
		})
	}
}
