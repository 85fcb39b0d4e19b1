package skills

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

type renameItemRequest struct {
	Category string `json:"category"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

type typeRequest struct {
	Name string `json:"name"`
	content.LabelPatch
}

// GET /skills
func (h *Handler) List(c *gin.Context) {
	skills, err := h.store.Skills(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// POST /skills/items
func (h *Handler) AddItem(c *gin.Context) {
	var req store.SkillItem
	if !api.Bind(c, validation.SkillItem, &req) {
		return
	}
	item, err := h.store.AddSkillItem(c.Request.Context(), req.Category, req.Value)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /skills/items
func (h *Handler) UpdateItem(c *gin.Context) {
	var req renameItemRequest
	if !api.Bind(c, validation.SkillItemRename, &req) {
		return
	}
	item, err := h.store.UpdateSkillItem(c.Request.Context(), req.Category, req.OldValue, req.NewValue)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /skills/items
func (h *Handler) DeleteItem(c *gin.Context) {
	var req store.SkillItem
	if !api.Bind(c, validation.SkillItem, &req) {
		return
	}
	if err := h.store.DeleteSkillItem(c.Request.Context(), req.Category, req.Value); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /skills/types
func (h *Handler) ListTypes(c *gin.Context) {
	types, err := h.store.SkillTypes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// POST /skills/types
func (h *Handler) CreateType(c *gin.Context) {
	var req typeRequest
	if !api.Bind(c, validation.SkillType, &req) {
		return
	}
	t, err := h.store.CreateSkillType(c.Request.Context(), req.Name, req.LabelPatch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// PUT /skills/types/:name
func (h *Handler) UpdateType(c *gin.Context) {
	var req typeRequest
	if !api.Bind(c, validation.SkillType, &req) {
		return
	}
	t, err := h.store.UpdateSkillType(c.Request.Context(), c.Param("name"), req.Name, req.LabelPatch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /skills/types/:name
func (h *Handler) DeleteType(c *gin.Context) {
	if err := h.store.DeleteSkillType(c.Request.Context(), c.Param("name")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
