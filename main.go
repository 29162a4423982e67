package main

import (
	"time"

	"movies-api/config"
	"movies-api/database"
	moviesapi "movies-api/internal/api/movies"
	routes "movies-api/internal/app/http"
	movies "movies-api/internal/domain/movies"
	"movies-api/internal/infra/moviestore"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB(config.DB_URL)

	repo := moviestore.New(database.DB)
	service := movies.NewService(repo, movies.NewValidator(repo))
	handler := moviesapi.NewHandler(service)

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, handler)

	r.Run(":" + config.PORT)
}
