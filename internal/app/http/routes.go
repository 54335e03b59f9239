package routes

import (
	artistsapi "booking-directory/internal/api/artists"
	showsapi "booking-directory/internal/api/shows"
	venuesapi "booking-directory/internal/api/venues"
	"booking-directory/internal/app/http/middleware"
	"booking-directory/internal/repository"
	"booking-directory/internal/web"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, repo *repository.Repository) {
	venues := venuesapi.NewHandler(repo)
	artists := artistsapi.NewHandler(repo)
	shows := showsapi.NewHandler(repo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.HTML(200, "home.html", gin.H{"Flash": web.Flash(c)})
	})

	r.NoRoute(func(c *gin.Context) {
		c.HTML(404, "404.html", gin.H{})
	})

	// Form submissions pass through the input sanitizer.
	public := r.Group("/")
	public.Use(middleware.SanitizeFormMiddleware())

	public.GET("/venues", venues.List)
	public.POST("/venues/search", venues.Search)
	public.GET("/venues/create", venues.CreateForm)
	public.POST("/venues/create", venues.Create)
	public.GET("/venues/:id", venues.Get)
	public.DELETE("/venues/:id", venues.Delete)
	public.GET("/venues/:id/edit", venues.EditForm)
	public.POST("/venues/:id/edit", venues.Update)

	public.GET("/artists", artists.List)
	public.POST("/artists/search", artists.Search)
	public.GET("/artists/create", artists.CreateForm)
	public.POST("/artists/create", artists.Create)
	public.GET("/artists/:id", artists.Get)
	public.DELETE("/artists/:id", artists.Delete)
	public.GET("/artists/:id/edit", artists.EditForm)
	public.POST("/artists/:id/edit", artists.Update)

	public.GET("/shows", shows.List)
	public.GET("/shows/create", shows.CreateForm)
	public.POST("/shows/create", shows.Create)
}
