package projects

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

type createRequest struct {
	ID string `json:"id"`
	content.ProjectPatch
}

// GET /projects
func (h *Handler) List(c *gin.Context) {
	projects, err := h.store.Projects(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GET /projects/:id
func (h *Handler) Get(c *gin.Context) {
	p, err := h.store.Project(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /projects
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if !api.Bind(c, validation.ProjectCreate, &req) {
		return
	}
	p, err := h.store.CreateProject(c.Request.Context(), req.ID, req.ProjectPatch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": req.ID, "project": p})
}

// PUT /projects/:id
func (h *Handler) Update(c *gin.Context) {
	var patch content.ProjectPatch
	if !api.Bind(c, validation.Project, &patch) {
		return
	}
	p, err := h.store.UpdateProject(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /projects/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
