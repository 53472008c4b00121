package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/programadorfullstackmern/carbarpart-api/internal/models"
	"github.com/programadorfullstackmern/carbarpart-api/internal/repository"
	"github.com/programadorfullstackmern/carbarpart-api/internal/storage"
)

func piezaRouter(piezas *fakePiezaStore, autos *fakeAutoStore, imgs *storage.ImageStore) *gin.Engine {
	pc := NewPiezaController(piezas, autos, imgs)
	r := gin.New()
	r.POST("/piezas", pc.Crear)
	r.GET("/piezas", pc.Listar)
	r.GET("/piezas/buscar", pc.Buscar)
	r.GET("/piezas/:id", pc.Obtener)
	r.PUT("/piezas/:id", pc.Actualizar)
	r.DELETE("/piezas/:id", pc.Eliminar)
	r.GET("/piezas/:id/autos", pc.ListarAutosCompatibles)
	r.POST("/piezas/:id/autos", pc.AgregarAuto)
	return r
}

func TestCrearPieza(t *testing.T) {
	piezas := &fakePiezaStore{}
	r := piezaRouter(piezas, &fakeAutoStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodPost, "/piezas", gin.H{
		"nombre":      "Filtro de aceite",
		"descripcion": "Para motores 1.8L",
		"categoria":   "motor",
		"precio":      250.0,
		"stock":       12,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, resp["success"])
	require.NotNil(t, piezas.pieza)
	assert.Equal(t, "Filtro de aceite", piezas.pieza.Nombre)
	assert.Equal(t, 12, piezas.pieza.Stock)
}

func TestCrearPiezaRequeridos(t *testing.T) {
	r := piezaRouter(&fakePiezaStore{}, &fakeAutoStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodPost, "/piezas", gin.H{"nombre": "Filtro"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := resp["errors"].(map[string]any)
	assert.Equal(t, "La descripción es requerida", errs["descripcion"])
	assert.Equal(t, "La categoría es requerida", errs["categoria"])
	assert.Equal(t, "El precio es requerido", errs["precio"])
}

func TestCrearPiezaNombreDuplicado(t *testing.T) {
	piezas := &fakePiezaStore{err: repository.ErrDuplicado}
	r := piezaRouter(piezas, &fakeAutoStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodPost, "/piezas", gin.H{
		"nombre":      "Filtro de aceite",
		"descripcion": "Para motores 1.8L",
		"categoria":   "motor",
		"precio":      250.0,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Valor duplicado en la base de datos", resp["error"])
}

func TestCrearPiezaAutoInexistente(t *testing.T) {
	autoID := primitive.NewObjectID().Hex()
	r := piezaRouter(&fakePiezaStore{}, &fakeAutoStore{auto: nil}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodPost, "/piezas", gin.H{
		"nombre":           "Filtro de aceite",
		"descripcion":      "Para motores 1.8L",
		"categoria":        "motor",
		"precio":           250.0,
		"autosCompatibles": []string{autoID},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := resp["errors"].(map[string]any)
	assert.Equal(t, "Auto con ID "+autoID+" no existe", errs["autosCompatibles"])
}

func TestObtenerPiezaNoEncontrada(t *testing.T) {
	piezas := &fakePiezaStore{err: repository.ErrNoEncontrado}
	r := piezaRouter(piezas, &fakeAutoStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodGet, "/piezas/"+primitive.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Pieza no encontrada", resp["error"])
}

func TestEliminarPieza(t *testing.T) {
	piezas := &fakePiezaStore{pieza: &models.Pieza{ID: primitive.NewObjectID()}}
	r := piezaRouter(piezas, &fakeAutoStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodDelete, "/piezas/"+piezas.pieza.ID.Hex(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
}

func TestBuscarPiezas(t *testing.T) {
	piezas := &fakePiezaStore{piezas: []models.Pieza{{Nombre: "Filtro"}}}
	r := piezaRouter(piezas, &fakeAutoStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodGet, "/piezas/buscar?categorias=motor&disponible=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp["count"])
}

func TestAgregarAutoCompatible(t *testing.T) {
	pieza := &models.Pieza{
		ID:               primitive.NewObjectID(),
		AutosCompatibles: []models.AutoResumen{{ID: primitive.NewObjectID(), Marca: "Toyota"}},
	}
	piezas := &fakePiezaStore{pieza: pieza}
	r := piezaRouter(piezas, &fakeAutoStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodPost, "/piezas/"+pieza.ID.Hex()+"/autos",
		gin.H{"autoId": primitive.NewObjectID().Hex()})

	assert.Equal(t, http.StatusOK, w.Code)
	datos := resp["data"].([]any)
	require.Len(t, datos, 1)
	assert.Equal(t, "Toyota", datos[0].(map[string]any)["marca"])
}

func TestListarAutosCompatibles(t *testing.T) {
	piezas := &fakePiezaStore{autos: []models.AutoResumen{{Marca: "Toyota"}, {Marca: "Honda"}}}
	r := piezaRouter(piezas, &fakeAutoStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodGet, "/piezas/"+primitive.NewObjectID().Hex()+"/autos", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), resp["count"])
}
