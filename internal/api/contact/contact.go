package contact

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

// GET /contact
func (h *Handler) Get(c *gin.Context) {
	info, err := h.store.Contact(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// PUT /contact
func (h *Handler) Update(c *gin.Context) {
	var patch content.ContactPatch
	if !api.Bind(c, validation.Contact, &patch) {
		return
	}
	info, err := h.store.UpdateContact(c.Request.Context(), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// POST /contact/message
func (h *Handler) SendMessage(c *gin.Context) {
	var in store.MessageInput
	if !api.Bind(c, validation.Message, &in) {
		return
	}
	msg, err := h.store.SubmitMessage(c.Request.Context(), api.Claims(c), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": msg.ID})
}

// GET /contact/messages
func (h *Handler) ListMessages(c *gin.Context) {
	msgs, err := h.store.Messages(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}
