package routes

import (
	moviesapi "movies-api/internal/api/movies"
	"movies-api/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, movies *moviesapi.Handler) {
	r.Use(middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/movies", movies.GetAll)
	r.GET("/movies/:idOrSlug", movies.Get)

	// Write routes get input sanitization
	writes := r.Group("/")
	writes.Use(middleware.SanitizeAndCleanInputMiddleware())

	writes.POST("/movies", movies.Create)
	writes.PUT("/movies/:id", movies.Update)
	writes.DELETE("/movies/:id", movies.Delete)
}
