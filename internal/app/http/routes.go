package routes

import (
	"net/http"

	aboutapi "portfolio-api/internal/api/about"
	contactapi "portfolio-api/internal/api/contact"
	homeapi "portfolio-api/internal/api/home"
	projectsapi "portfolio-api/internal/api/projects"
	skillsapi "portfolio-api/internal/api/skills"
	testimonialsapi "portfolio-api/internal/api/testimonials"
	"portfolio-api/internal/app/http/middleware"
	"portfolio-api/internal/store"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Store   *store.Store
	Auth    *middleware.Auth
	Limiter *middleware.RateLimiter // optional
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	home := homeapi.NewHandler(d.Store)
	about := aboutapi.NewHandler(d.Store)
	skills := skillsapi.NewHandler(d.Store)
	projects := projectsapi.NewHandler(d.Store)
	contact := contactapi.NewHandler(d.Store)
	testimonials := testimonialsapi.NewHandler(d.Store)

	r.Use(middleware.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public reads
	r.GET("/home", home.Get)
	r.GET("/about/work", about.GetWork)
	r.GET("/about/school", about.GetSchool)
	r.GET("/skills", skills.List)
	r.GET("/skills/types", skills.ListTypes)
	r.GET("/projects", projects.List)
	r.GET("/projects/:id", projects.Get)
	r.GET("/contact", contact.Get)
	r.GET("/contact/items", contact.ListItems)
	r.GET("/testimonials", testimonials.List)

	// Signed-in visitors. Bodies here come from the public, so they are
	// stripped of markup and rate limited per IP.
	visitor := r.Group("/")
	visitor.Use(d.Auth.RequireAuth())
	if d.Limiter != nil {
		visitor.Use(d.Limiter.Middleware())
	}
	visitor.Use(middleware.SanitizeAndCleanInputMiddleware())
	visitor.POST("/contact/message", contact.SendMessage)
	visitor.GET("/testimonials/can-submit", testimonials.CanSubmit)
	visitor.POST("/testimonials", testimonials.Submit)

	// Admin
	admin := r.Group("/")
	admin.Use(d.Auth.RequireAuth(), d.Auth.RequireAdmin())

	admin.PUT("/home", home.Update)
	admin.PUT("/about/work", about.UpdateWork)
	admin.PUT("/about/school", about.UpdateSchool)

	admin.POST("/skills/items", skills.AddItem)
	admin.PUT("/skills/items", skills.UpdateItem)
	admin.DELETE("/skills/items", skills.DeleteItem)
	admin.POST("/skills/types", skills.CreateType)
	admin.PUT("/skills/types/:name", skills.UpdateType)
	admin.DELETE("/skills/types/:name", skills.DeleteType)

	admin.POST("/projects", projects.Create)
	admin.PUT("/projects/:id", projects.Update)
	admin.DELETE("/projects/:id", projects.Delete)

	admin.PUT("/contact", contact.Update)
	admin.GET("/contact/messages", contact.ListMessages)
	admin.POST("/contact/items", contact.AddItem)
	admin.PUT("/contact/items/:id", contact.UpdateItem)
	admin.DELETE("/contact/items/:id", contact.DeleteItem)

	admin.GET("/testimonials/admin", testimonials.ListAll)
	admin.PUT("/testimonials/:id", testimonials.Update)
	admin.DELETE("/testimonials/:id", testimonials.Delete)
	admin.POST("/testimonials/:id/approve", testimonials.Approve)
}
