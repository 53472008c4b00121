package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/programadorfullstackmern/carbarpart-api/internal/controllers"
	"github.com/programadorfullstackmern/carbarpart-api/internal/middleware"
	"github.com/programadorfullstackmern/carbarpart-api/internal/validators"
)

func PiezaRoutes(api *gin.RouterGroup, pc *controllers.PiezaController) {
	piezas := api.Group("/piezas")
	{
		piezas.POST("/", pc.Crear)
		piezas.GET("/", middleware.ValidarQuery(validators.ListPiezas), pc.Listar)
		piezas.GET("/buscar", middleware.ValidarQuery(validators.SearchPiezas), pc.Buscar)
		piezas.GET("/:id", middleware.ValidarID(), pc.Obtener)
		piezas.PUT("/:id", middleware.ValidarID(), pc.Actualizar)
		piezas.DELETE("/:id", middleware.ValidarID(), pc.Eliminar)
		piezas.POST("/:id/imagen", middleware.ValidarID(), pc.SubirImagen)

		piezas.GET("/:id/autos-compatibles", middleware.ValidarID(), pc.ListarAutosCompatibles)
		piezas.POST("/:id/autos-compatibles", middleware.ValidarID(), pc.AgregarAuto)
		piezas.DELETE("/:id/autos-compatibles", middleware.ValidarID(), pc.QuitarAuto)
	}
}
