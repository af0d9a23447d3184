package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"revive_physio_go/config"
	"revive_physio_go/handlers"
	"revive_physio_go/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	h := handlers.New(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	// Static files
	e.Static("/static", "static")

	// Content pages
	e.GET("/", h.HomeHandler)
	e.GET("/about", h.AboutHandler)
	e.GET("/services", h.ServicesHandler)
	e.GET("/conditions", h.ConditionsHandler)
	e.GET("/conditions/:slug", h.ConditionDetailHandler)
	e.GET("/courses", h.CoursesHandler)
	e.GET("/podcasts", h.PodcastsHandler)
	e.GET("/team", h.TeamHandler)
	e.GET("/success-stories", h.SuccessStoriesHandler)

	// SEO plumbing
	e.GET("/sitemap.xml", h.SitemapHandler)
	e.GET("/robots.txt", h.RobotsHandler)

	// Form submission endpoints (rate limited per IP)
	forms := e.Group("/api")
	forms.Use(middleware.PublicFormRateLimiter.Middleware())
	{
		forms.POST("/book", h.BookHandler)
		forms.POST("/send-email", h.SendEmailHandler)
		forms.POST("/book-course", h.BookCourseHandler)
	}

	// Content API
	api := e.Group("/api")
	api.Use(middleware.APIRateLimiter.Middleware())
	{
		api.GET("/page-content", h.PageContentHandler)
		api.GET("/content/*", h.ContentFileHandler)
	}

	// Indexing trigger (bearer token)
	e.POST("/api/reindex", h.ReindexHandler)

	// Dynamic slug pages, validated against the registry
	e.GET("/:slug", h.SlugHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
