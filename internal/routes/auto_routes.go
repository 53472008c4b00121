package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/programadorfullstackmern/carbarpart-api/internal/controllers"
	"github.com/programadorfullstackmern/carbarpart-api/internal/middleware"
	"github.com/programadorfullstackmern/carbarpart-api/internal/validators"
)

func AutoRoutes(api *gin.RouterGroup, ac *controllers.AutoController) {
	autos := api.Group("/autos")
	{
		autos.POST("/", ac.Crear)
		autos.GET("/", middleware.ValidarQuery(validators.ListAutos), ac.Listar)
		autos.GET("/buscar", middleware.ValidarQuery(validators.SearchAutos), ac.Buscar)
		autos.GET("/:id", middleware.ValidarID(), ac.Obtener)
		autos.PUT("/:id", middleware.ValidarID(), ac.Actualizar)
		autos.DELETE("/:id", middleware.ValidarID(), ac.Eliminar)
		autos.POST("/:id/imagen", middleware.ValidarID(), ac.SubirImagen)

		autos.GET("/:id/piezas", middleware.ValidarID(), ac.ListarPiezas)
		autos.POST("/:id/piezas", middleware.ValidarID(), ac.AgregarPieza)
		autos.DELETE("/:id/piezas", middleware.ValidarID(), ac.QuitarPieza)
	}
}
