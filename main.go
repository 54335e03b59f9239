package main

import (
	"net/http"
	"time"

	"booking-directory/config"
	"booking-directory/database"
	routes "booking-directory/internal/app/http"
	"booking-directory/internal/app/http/middleware"
	"booking-directory/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	logrus.SetFormatter(new(logrus.JSONFormatter))
	config.LoadEnv()

	db, err := database.Connect(config.DB_URL)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %s", err)
	}
	repo := repository.New(db)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob("templates/*.html")
	routes.RegisterRoutes(r, repo)

	addr := ":" + config.PORT
	logrus.Infof("Listening on %s", addr)

	// The wrapper turns POST + _method=DELETE into DELETE before routing.
	if err := http.ListenAndServe(addr, middleware.MethodOverride(r)); err != nil {
		logrus.Fatalf("Server stopped: %s", err)
	}
}
