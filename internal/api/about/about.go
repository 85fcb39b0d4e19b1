package about

import (
	"net/http"

	"portfolio-api/internal/api"
	"portfolio-api/internal/domain/content"
	"portfolio-api/internal/store"
	"portfolio-api/internal/validation"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// GET /about/work
func (h *Handler) GetWork(c *gin.Context) {
	work, err := h.store.Work(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, work)
}

// PUT /about/work
func (h *Handler) UpdateWork(c *gin.Context) {
	var patch content.WorkPatch
	if !api.Bind(c, validation.Work, &patch) {
		return
	}
	work, err := h.store.UpdateWork(c.Request.Context(), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, work)
}

// GET /about/school
func (h *Handler) GetSchool(c *gin.Context) {
	school, err := h.store.School(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, school)
}

// PUT /about/school
func (h *Handler) UpdateSchool(c *gin.Context) {
	var patch content.SchoolPatch
	if !api.Bind(c, validation.School, &patch) {
		return
	}
	school, err := h.store.UpdateSchool(c.Request.Context(), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, school)
}
