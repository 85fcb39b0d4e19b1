package testimonials

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

// GET /testimonials
func (h *Handler) List(c *gin.Context) {
	list, err := h.store.Testimonials(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /testimonials/admin
func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.store.AllTestimonials(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /testimonials/can-submit
func (h *Handler) CanSubmit(c *gin.Context) {
	allowed, reason, err := h.store.CanSubmitTestimonial(c.Request.Context(), api.Claims(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !allowed {
		c.JSON(http.StatusOK, gin.H{"allowed": false, "reason": reason})
		return
	}
	c.JSON(http.StatusOK, gin.H{"allowed": true})
}

// POST /testimonials
func (h *Handler) Submit(c *gin.Context) {
	var in content.TestimonialInput
	if !api.Bind(c, validation.Testimonial, &in) {
		return
	}
	t, err := h.store.SubmitTestimonial(c.Request.Context(), api.Claims(c), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// PUT /testimonials/:id
func (h *Handler) Update(c *gin.Context) {
	var in content.TestimonialInput
	if !api.Bind(c, validation.Testimonial, &in) {
		return
	}
	t, err := h.store.UpdateTestimonial(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// POST /testimonials/:id/approve
func (h *Handler) Approve(c *gin.Context) {
	t, err := h.store.ApproveTestimonial(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /testimonials/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
