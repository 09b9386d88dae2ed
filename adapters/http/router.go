package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"portfolio/internal/config"
	"portfolio/pkg/logger"
)

type Handlers struct {
	Profile    *ProfileHandler
	Project    *ProjectHandler
	Experience *ExperienceHandler
	Blog       *BlogHandler
	Contact    *ContactHandler
	Upload     *UploadHandler
	Seed       *SeedHandler
}

// NewRouter wires the full HTTP surface: the /api routes plus the static
// mounts for uploaded images and the CV.
func NewRouter(cfg config.Config, log logger.Logger, h Handlers) *gin.Engine {
	if !cfg.App.Env.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(ErrorMiddleware(log))

	r.Static("/uploads", filepath.Join(cfg.Storage.PublicDir, "uploads"))
	r.Static("/cv", filepath.Join(cfg.Storage.PublicDir, "cv"))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/profile", h.Profile.Get)
		api.PUT("/profile", h.Profile.Update)

		api.GET("/projects", h.Project.List)
		api.POST("/projects", h.Project.Create)
		api.PUT("/projects/:id", h.Project.Update)
		api.DELETE("/projects/:id", h.Project.Delete)

		api.GET("/experience", h.Experience.List)
		api.POST("/experience", h.Experience.Create)
		api.PUT("/experience/:id", h.Experience.Update)
		api.DELETE("/experience/:id", h.Experience.Delete)

		api.GET("/blogs", h.Blog.List)
		api.POST("/blogs", h.Blog.Create)
		api.GET("/blogs/slug/:slug", h.Blog.GetBySlug)
		api.GET("/blog/:id", h.Blog.Get)
		api.PUT("/blog/:id", h.Blog.Update)
		api.DELETE("/blog/:id", h.Blog.Delete)

		api.POST("/contact", h.Contact.Submit)
		api.GET("/contact", h.Contact.List)

		api.POST("/upload-cv", h.Upload.UploadCV)
		api.POST("/seed", h.Seed.Seed)
	}

	return r
}
