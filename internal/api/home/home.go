package home

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

// GET /home
func (h *Handler) Get(c *gin.Context) {
	home, err := h.store.Home(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, home)
}

// PUT /home
func (h *Handler) Update(c *gin.Context) {
	var patch content.HomePatch
	if !api.Bind(c, validation.Home, &patch) {
		return
	}
	home, err := h.store.UpdateHome(c.Request.Context(), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, home)
}
