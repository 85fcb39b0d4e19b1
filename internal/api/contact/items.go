package contact

import (
	"net/http"

	"portfolio-api/internal/api"
	"portfolio-api/internal/domain/content"
	"portfolio-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// GET /contact/items
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.store.ContactItems(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /contact/items
func (h *Handler) AddItem(c *gin.Context) {
	var patch content.ContactItemPatch
	if !api.Bind(c, validation.ContactItem, &patch) {
		return
	}
	item, err := h.store.AddContactItem(c.Request.Context(), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /contact/items/:id
func (h *Handler) UpdateItem(c *gin.Context) {
	var patch content.ContactItemPatch
	if !api.Bind(c, validation.ContactItem, &patch) {
		return
	}
	item, err := h.store.UpdateContactItem(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /contact/items/:id
func (h *Handler) DeleteItem(c *gin.Context) {
	removed, err := h.store.DeleteContactItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, removed)
}
