package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"github.com/programadorfullstackmern/carbarpart-api/internal/controllers"
	"github.com/programadorfullstackmern/carbarpart-api/internal/middleware"
)

// Deps carries everything the router needs wired in.
type Deps struct {
	Autos     *controllers.AutoController
	Piezas    *controllers.PiezaController
	UploadDir string
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.UploadDir != "" {
		r.Static("/uploads", deps.UploadDir)
	}

	api := r.Group("/api")
	AutoRoutes(api, deps.Autos)
	PiezaRoutes(api, deps.Piezas)

	return r
}
