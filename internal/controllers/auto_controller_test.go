package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/programadorfullstackmern/carbarpart-api/internal/models"
	"github.com/programadorfullstackmern/carbarpart-api/internal/repository"
	"github.com/programadorfullstackmern/carbarpart-api/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAutoStore records calls and answers with canned results.
type fakeAutoStore struct {
	auto    *models.Auto
	autos   []models.Auto
	piezas  []models.PiezaResumen
	err     error
	cambios bson.M
	filtro  bson.M
	orden   bson.D
	limite  int64
}

func (f *fakeAutoStore) Create(_ context.Context, auto *models.Auto) error {
	if f.err != nil {
		return f.err
	}
	auto.ID = primitive.NewObjectID()
	f.auto = auto
	return nil
}

func (f *fakeAutoStore) FindByID(_ context.Context, _ primitive.ObjectID) (*models.Auto, error) {
	return f.auto, f.err
}

func (f *fakeAutoStore) List(_ context.Context, filtro bson.M) ([]models.Auto, error) {
	f.filtro = filtro
	return f.autos, f.err
}

func (f *fakeAutoStore) Search(_ context.Context, filtro bson.M, orden bson.D, limite int64) ([]models.Auto, error) {
	f.filtro, f.orden, f.limite = filtro, orden, limite
	return f.autos, f.err
}

func (f *fakeAutoStore) Update(_ context.Context, _ primitive.ObjectID, cambios bson.M) (*models.Auto, error) {
	f.cambios = cambios
	return f.auto, f.err
}

func (f *fakeAutoStore) Delete(_ context.Context, _ primitive.ObjectID) (*models.Auto, error) {
	return f.auto, f.err
}

func (f *fakeAutoStore) PiezasDe(_ context.Context, _ primitive.ObjectID) ([]models.PiezaResumen, error) {
	return f.piezas, f.err
}

func (f *fakeAutoStore) AgregarPieza(_ context.Context, _, _ primitive.ObjectID) (*models.Auto, error) {
	return f.auto, f.err
}

func (f *fakeAutoStore) QuitarPieza(_ context.Context, _, _ primitive.ObjectID) (*models.Auto, error) {
	return f.auto, f.err
}

func (f *fakeAutoStore) Exists(_ context.Context, _ primitive.ObjectID) (bool, error) {
	return f.auto != nil, nil
}

// fakePiezaStore only needs Exists for the auto handlers.
type fakePiezaStore struct {
	pieza  *models.Pieza
	piezas []models.Pieza
	autos  []models.AutoResumen
	err    error
	existe bool
}

func (f *fakePiezaStore) Create(_ context.Context, pieza *models.Pieza) error {
	if f.err != nil {
		return f.err
	}
	pieza.ID = primitive.NewObjectID()
	f.pieza = pieza
	return nil
}

func (f *fakePiezaStore) FindByID(_ context.Context, _ primitive.ObjectID) (*models.Pieza, error) {
	return f.pieza, f.err
}

func (f *fakePiezaStore) List(_ context.Context, _ bson.M) ([]models.Pieza, error) {
	return f.piezas, f.err
}

func (f *fakePiezaStore) Search(_ context.Context, _ bson.M, _ bson.D, _ int64) ([]models.Pieza, error) {
	return f.piezas, f.err
}

func (f *fakePiezaStore) Update(_ context.Context, _ primitive.ObjectID, _ bson.M) (*models.Pieza, error) {
	return f.pieza, f.err
}

func (f *fakePiezaStore) Delete(_ context.Context, _ primitive.ObjectID) (*models.Pieza, error) {
	return f.pieza, f.err
}

func (f *fakePiezaStore) AutosCompatiblesDe(_ context.Context, _ primitive.ObjectID) ([]models.AutoResumen, error) {
	return f.autos, f.err
}

func (f *fakePiezaStore) AgregarAuto(_ context.Context, _, _ primitive.ObjectID) (*models.Pieza, error) {
	return f.pieza, f.err
}

func (f *fakePiezaStore) QuitarAuto(_ context.Context, _, _ primitive.ObjectID) (*models.Pieza, error) {
	return f.pieza, f.err
}

func (f *fakePiezaStore) Exists(_ context.Context, _ primitive.ObjectID) (bool, error) {
	return f.existe, f.err
}

func imagenesDePrueba(t *testing.T) *storage.ImageStore {
	t.Helper()
	imgs, err := storage.NewImageStore(t.TempDir(), "auto", 1<<20, []string{"image/jpeg"})
	require.NoError(t, err)
	return imgs
}

func autoRouter(autos *fakeAutoStore, piezas *fakePiezaStore, imgs *storage.ImageStore) *gin.Engine {
	ac := NewAutoController(autos, piezas, imgs)
	r := gin.New()
	r.POST("/autos", ac.Crear)
	r.GET("/autos", ac.Listar)
	r.GET("/autos/buscar", ac.Buscar)
	r.GET("/autos/:id", ac.Obtener)
	r.PUT("/autos/:id", ac.Actualizar)
	r.DELETE("/autos/:id", ac.Eliminar)
	r.POST("/autos/:id/imagen", ac.SubirImagen)
	r.GET("/autos/:id/piezas", ac.ListarPiezas)
	r.POST("/autos/:id/piezas", ac.AgregarPieza)
	return r
}

func pedirJSON(t *testing.T, r *gin.Engine, metodo, ruta string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(metodo, ruta, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var respuesta map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respuesta))
	}
	return w, respuesta
}

func TestCrearAuto(t *testing.T) {
	autos := &fakeAutoStore{}
	r := autoRouter(autos, &fakePiezaStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodPost, "/autos", gin.H{
		"marca":  "Toyota",
		"modelo": "Corolla",
		"anio":   2020,
		"precio": 15000.0,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, resp["success"])
	require.NotNil(t, autos.auto)
	assert.Equal(t, "Toyota", autos.auto.Marca)
	assert.Equal(t, 2020, autos.auto.Anio)
}

func TestCrearAutoCamposRequeridos(t *testing.T) {
	r := autoRouter(&fakeAutoStore{}, &fakePiezaStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodPost, "/autos", gin.H{"marca": "Toyota"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := resp["errors"].(map[string]any)
	assert.Equal(t, "El modelo es requerido", errs["modelo"])
	assert.Equal(t, "El año es requerido", errs["anio"])
	assert.Equal(t, "El precio es requerido", errs["precio"])
}

func TestCrearAutoPiezaInexistente(t *testing.T) {
	piezaID := primitive.NewObjectID().Hex()
	r := autoRouter(&fakeAutoStore{}, &fakePiezaStore{existe: false}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodPost, "/autos", gin.H{
		"marca":  "Toyota",
		"modelo": "Corolla",
		"anio":   2020,
		"precio": 15000.0,
		"piezas": []string{piezaID},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := resp["errors"].(map[string]any)
	assert.Equal(t, "Pieza con ID "+piezaID+" no existe", errs["piezas"])
}

func TestCrearAutoMultipart(t *testing.T) {
	autos := &fakeAutoStore{}
	r := autoRouter(autos, &fakePiezaStore{}, imagenesDePrueba(t))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	campos := map[string]string{
		"marca":                      "Honda",
		"modelo":                     "Civic",
		"anio":                       "2019",
		"precio":                     "18000",
		"ubicacion[ciudad]":          "Monterrey",
		"ubicacion[estado]":          "Nuevo León",
		"opcionales[0]":              "techo",
		"opcionales[1]":              "gps",
		"caracteristicas[0][nombre]": "potencia",
		"caracteristicas[0][valor]":  "158hp",
	}
	for k, v := range campos {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/autos", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, autos.auto)
	assert.Equal(t, "Honda", autos.auto.Marca)
	assert.Equal(t, "Monterrey", autos.auto.Ubicacion.Ciudad)
	assert.Equal(t, []string{"techo", "gps"}, autos.auto.Opcionales)
	require.Len(t, autos.auto.Caracteristicas, 1)
	assert.Equal(t, "potencia", autos.auto.Caracteristicas[0].Nombre)
}

func TestObtenerAutoNoEncontrado(t *testing.T) {
	autos := &fakeAutoStore{err: repository.ErrNoEncontrado}
	r := autoRouter(autos, &fakePiezaStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodGet, "/autos/"+primitive.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Auto no encontrado", resp["error"])
}

func TestObtenerAutoIDInvalido(t *testing.T) {
	r := autoRouter(&fakeAutoStore{}, &fakePiezaStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodGet, "/autos/no-hex", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ID inválido", resp["error"])
}

func TestActualizarAutoParcial(t *testing.T) {
	autos := &fakeAutoStore{auto: &models.Auto{ID: primitive.NewObjectID(), Marca: "Toyota"}}
	r := autoRouter(autos, &fakePiezaStore{}, imagenesDePrueba(t))

	w, _ := pedirJSON(t, r, http.MethodPut, "/autos/"+autos.auto.ID.Hex(), gin.H{"precio": 13500.0})

	assert.Equal(t, http.StatusOK, w.Code)
	// Only the submitted field reaches the store.
	assert.Equal(t, bson.M{"precio": 13500.0}, autos.cambios)
}

func TestEliminarAuto(t *testing.T) {
	autos := &fakeAutoStore{auto: &models.Auto{ID: primitive.NewObjectID(), Imagen: models.ImagenDefault}}
	r := autoRouter(autos, &fakePiezaStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodDelete, "/autos/"+autos.auto.ID.Hex(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, map[string]any{}, resp["data"])
}

func TestBuscarAutos(t *testing.T) {
	autos := &fakeAutoStore{autos: []models.Auto{{Marca: "Toyota"}, {Marca: "Honda"}}}
	r := autoRouter(autos, &fakePiezaStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodGet, "/autos/buscar?marcas=Toyota,Honda&minYear=2015&sortBy=-precio&limit=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), resp["count"])

	assert.Equal(t, bson.M{"$in": []string{"Toyota", "Honda"}}, autos.filtro["marca"])
	assert.Equal(t, bson.M{"$gte": 2015}, autos.filtro["anio"])
	require.Len(t, autos.orden, 1)
	assert.Equal(t, "precio", autos.orden[0].Key)
	assert.Equal(t, -1, autos.orden[0].Value)
	assert.Equal(t, int64(10), autos.limite)
}

func TestAgregarPieza(t *testing.T) {
	auto := &models.Auto{
		ID:     primitive.NewObjectID(),
		Piezas: []models.PiezaResumen{{ID: primitive.NewObjectID(), Nombre: "Filtro"}},
	}
	autos := &fakeAutoStore{auto: auto}
	r := autoRouter(autos, &fakePiezaStore{}, imagenesDePrueba(t))

	w, resp := pedirJSON(t, r, http.MethodPost, "/autos/"+auto.ID.Hex()+"/piezas",
		gin.H{"piezaId": primitive.NewObjectID().Hex()})

	assert.Equal(t, http.StatusOK, w.Code)
	datos := resp["data"].([]any)
	require.Len(t, datos, 1)
	assert.Equal(t, "Filtro", datos[0].(map[string]any)["nombre"])
}

func TestAgregarPiezaBodyInvalido(t *testing.T) {
	r := autoRouter(&fakeAutoStore{}, &fakePiezaStore{}, imagenesDePrueba(t))
	id := primitive.NewObjectID().Hex()

	w, _ := pedirJSON(t, r, http.MethodPost, "/autos/"+id+"/piezas", gin.H{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, resp := pedirJSON(t, r, http.MethodPost, "/autos/"+id+"/piezas", gin.H{"piezaId": "zzz"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ID de pieza no válido", resp["error"])
}

func TestSubirImagenSinArchivo(t *testing.T) {
	r := autoRouter(&fakeAutoStore{}, &fakePiezaStore{}, imagenesDePrueba(t))

	req := httptest.NewRequest(http.MethodPost, "/autos/"+primitive.NewObjectID().Hex()+"/imagen",
		strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No se envió ninguna imagen")
}
