package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/programadorfullstackmern/carbarpart-api/internal/models"
	"github.com/programadorfullstackmern/carbarpart-api/internal/search"
	"github.com/programadorfullstackmern/carbarpart-api/internal/storage"
	"github.com/programadorfullstackmern/carbarpart-api/internal/validators"
)

// AutoController serves the /api/autos endpoints.
type AutoController struct {
	autos  AutoStore
	piezas PiezaStore
	imgs   *storage.ImageStore
	log    *logrus.Logger
}

func NewAutoController(autos AutoStore, piezas PiezaStore, imgs *storage.ImageStore) *AutoController {
	return &AutoController{autos: autos, piezas: piezas, imgs: imgs, log: logrus.StandardLogger()}
}

// Crear registers a new auto, with an optional image upload.
func (ac *AutoController) Crear(c *gin.Context) {
	in, subida, ok := ac.bind(c)
	if !ok {
		return
	}
	if errs := validators.ValidarAutoCreate(in); errs != nil {
		ac.descartar(subida)
		responderValidacion(c, errs)
		return
	}
	if !ac.piezasExisten(c, in.Piezas, subida) {
		return
	}

	auto := construirAuto(in)
	if err := ac.autos.Create(c.Request.Context(), auto); err != nil {
		ac.descartar(subida)
		responderError(c, err, "Auto no encontrado")
		return
	}

	ac.log.WithFields(logrus.Fields{"id": auto.ID.Hex(), "marca": auto.Marca, "modelo": auto.Modelo}).Info("Auto creado")
	responderDato(c, http.StatusCreated, auto)
}

// Listar returns autos matching the basic query filters.
func (ac *AutoController) Listar(c *gin.Context) {
	var p search.AutoListParams
	_ = c.ShouldBindQuery(&p)

	autos, err := ac.autos.List(c.Request.Context(), search.BuildAutoListFilter(p))
	if err != nil {
		responderError(c, err, "Auto no encontrado")
		return
	}
	ac.log.WithField("total", len(autos)).Debug("Autos listados")
	responderLista(c, len(autos), autos)
}

// Obtener returns one auto by id with its piezas populated.
func (ac *AutoController) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	auto, err := ac.autos.FindByID(c.Request.Context(), id)
	if err != nil {
		responderError(c, err, "Auto no encontrado")
		return
	}
	responderDato(c, http.StatusOK, auto)
}

// Actualizar applies a partial update, replacing the stored image when a
// new one arrives.
func (ac *AutoController) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, subida, ok := ac.bind(c)
	if !ok {
		return
	}
	if errs := validators.ValidarAutoUpdate(in); errs != nil {
		ac.descartar(subida)
		responderValidacion(c, errs)
		return
	}
	if !ac.piezasExisten(c, in.Piezas, subida) {
		return
	}

	var imagenAnterior string
	if subida != "" {
		if previo, err := ac.autos.FindByID(c.Request.Context(), id); err == nil {
			imagenAnterior = previo.Imagen
		}
	}

	auto, err := ac.autos.Update(c.Request.Context(), id, cambiosAuto(in))
	if err != nil {
		ac.descartar(subida)
		responderError(c, err, "Auto no encontrado")
		return
	}
	ac.descartar(imagenAnterior)

	ac.log.WithField("id", auto.ID.Hex()).Info("Auto actualizado")
	responderDato(c, http.StatusOK, auto)
}

// Eliminar removes the auto, its image, and its references inside piezas.
func (ac *AutoController) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	auto, err := ac.autos.Delete(c.Request.Context(), id)
	if err != nil {
		responderError(c, err, "Auto no encontrado")
		return
	}
	ac.descartar(auto.Imagen)

	ac.log.WithField("id", auto.ID.Hex()).Info("Auto eliminado")
	responderDato(c, http.StatusOK, gin.H{})
}

// Buscar runs the advanced search: parameters become a predicate plus
// sort/limit, executed by the store.
func (ac *AutoController) Buscar(c *gin.Context) {
	var p search.AutoParams
	_ = c.ShouldBindQuery(&p)

	filtro := search.BuildAutoFilter(p)
	orden := search.ParseSort(p.SortBy)
	limite := search.ParseLimit(p.Limit)

	autos, err := ac.autos.Search(c.Request.Context(), filtro, orden, limite)
	if err != nil {
		responderError(c, err, "Auto no encontrado")
		return
	}
	ac.log.WithFields(logrus.Fields{"filtros": filtro, "resultados": len(autos)}).Debug("Búsqueda de autos")
	responderLista(c, len(autos), autos)
}

// ListarPiezas returns the piezas associated to one auto.
func (ac *AutoController) ListarPiezas(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	piezas, err := ac.autos.PiezasDe(c.Request.Context(), id)
	if err != nil {
		responderError(c, err, "Auto no encontrado")
		return
	}
	responderLista(c, len(piezas), piezas)
}

// AgregarPieza links a pieza to the auto.
func (ac *AutoController) AgregarPieza(c *gin.Context) {
	ac.relacionarPieza(c, ac.autos.AgregarPieza)
}

// QuitarPieza unlinks a pieza from the auto.
func (ac *AutoController) QuitarPieza(c *gin.Context) {
	ac.relacionarPieza(c, ac.autos.QuitarPieza)
}

// SubirImagen replaces the auto's image through the dedicated endpoint.
func (ac *AutoController) SubirImagen(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No se envió ninguna imagen"})
		return
	}
	nombre, err := ac.imgs.Save(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var imagenAnterior string
	if previo, err := ac.autos.FindByID(c.Request.Context(), id); err == nil {
		imagenAnterior = previo.Imagen
	}

	auto, err := ac.autos.Update(c.Request.Context(), id, bson.M{"imagen": nombre})
	if err != nil {
		ac.descartar(nombre)
		responderError(c, err, "Auto no encontrado")
		return
	}
	ac.descartar(imagenAnterior)
	responderDato(c, http.StatusOK, auto)
}

func (ac *AutoController) relacionarPieza(c *gin.Context, op func(ctx context.Context, id, piezaID primitive.ObjectID) (*models.Auto, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body struct {
		PiezaID string `json:"piezaId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		responderValidacion(c, validators.FromBinding(err))
		return
	}
	piezaID, err := primitive.ObjectIDFromHex(body.PiezaID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de pieza no válido"})
		return
	}

	auto, err := op(c.Request.Context(), id, piezaID)
	if err != nil {
		responderError(c, err, "Auto no encontrado")
		return
	}
	ac.log.WithFields(logrus.Fields{"auto": id.Hex(), "pieza": piezaID.Hex()}).Info("Relación auto-pieza actualizada")
	responderDato(c, http.StatusOK, auto.Piezas)
}

// bind reads the write payload from JSON or multipart form. For multipart
// requests the uploaded image is stored immediately; the returned name lets
// the caller roll it back if the rest of the operation fails.
func (ac *AutoController) bind(c *gin.Context) (*models.AutoInput, string, bool) {
	if esMultipart(c) {
		in, errs := decodeAutoForm(c)
		if errs != nil {
			responderValidacion(c, errs)
			return nil, "", false
		}
		var subida string
		if fh, err := c.FormFile("imagen"); err == nil {
			nombre, err := ac.imgs.Save(fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return nil, "", false
			}
			subida = nombre
			in.Imagen = &nombre
		}
		return in, subida, true
	}

	var in models.AutoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		responderValidacion(c, validators.FromBinding(err))
		return nil, "", false
	}
	return &in, "", true
}

// piezasExisten verifies every referenced pieza id; on failure it discards
// the fresh upload and answers the request.
func (ac *AutoController) piezasExisten(c *gin.Context, ids []string, subida string) bool {
	for _, hex := range ids {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			continue // already rejected by validation
		}
		existe, err := ac.piezas.Exists(c.Request.Context(), id)
		if err != nil {
			ac.descartar(subida)
			responderError(c, err, "Auto no encontrado")
			return false
		}
		if !existe {
			ac.descartar(subida)
			responderValidacion(c, validators.Errores{"piezas": "Pieza con ID " + hex + " no existe"})
			return false
		}
	}
	return true
}

func (ac *AutoController) descartar(nombre string) {
	if nombre == "" {
		return
	}
	if err := ac.imgs.Remove(nombre); err != nil {
		ac.log.WithField("imagen", nombre).WithError(err).Warn("No se pudo eliminar la imagen")
	}
}

func construirAuto(in *models.AutoInput) *models.Auto {
	auto := &models.Auto{
		Marca:           derefTexto(in.Marca),
		Modelo:          derefTexto(in.Modelo),
		Precio:          derefDecimal(in.Precio),
		Imagen:          derefTexto(in.Imagen),
		Kilometraje:     in.Kilometraje,
		Color:           derefTexto(in.Color),
		Transmision:     derefTexto(in.Transmision),
		Combustible:     derefTexto(in.Combustible),
		Caracteristicas: in.Caracteristicas,
		Opcionales:      in.Opcionales,
		PiezaIDs:        aObjectIDs(in.Piezas),
	}
	if in.Anio != nil {
		auto.Anio = *in.Anio
	}
	if in.Disponible != nil {
		auto.Disponible = *in.Disponible
	}
	if in.Ubicacion != nil {
		auto.Ubicacion = *in.Ubicacion
	}
	return auto
}

func cambiosAuto(in *models.AutoInput) bson.M {
	cambios := bson.M{}
	if in.Marca != nil {
		cambios["marca"] = *in.Marca
	}
	if in.Modelo != nil {
		cambios["modelo"] = *in.Modelo
	}
	if in.Anio != nil {
		cambios["anio"] = *in.Anio
	}
	if in.Precio != nil {
		cambios["precio"] = *in.Precio
	}
	if in.Imagen != nil {
		cambios["imagen"] = *in.Imagen
	}
	if in.Kilometraje != nil {
		cambios["kilometraje"] = *in.Kilometraje
	}
	if in.Color != nil {
		cambios["color"] = *in.Color
	}
	if in.Transmision != nil {
		cambios["transmision"] = *in.Transmision
	}
	if in.Combustible != nil {
		cambios["combustible"] = *in.Combustible
	}
	if in.Disponible != nil {
		cambios["disponible"] = *in.Disponible
	}
	if in.Ubicacion != nil {
		cambios["ubicacion"] = *in.Ubicacion
	}
	if in.Caracteristicas != nil {
		cambios["caracteristicas"] = in.Caracteristicas
	}
	if in.Opcionales != nil {
		cambios["opcionales"] = in.Opcionales
	}
	if in.Piezas != nil {
		cambios["piezas"] = aObjectIDs(in.Piezas)
	}
	return cambios
}

func derefTexto(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefDecimal(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
