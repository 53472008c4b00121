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

// PiezaController serves the /api/piezas endpoints.
type PiezaController struct {
	piezas PiezaStore
	autos  AutoStore
	imgs   *storage.ImageStore
	log    *logrus.Logger
}

func NewPiezaController(piezas PiezaStore, autos AutoStore, imgs *storage.ImageStore) *PiezaController {
	return &PiezaController{piezas: piezas, autos: autos, imgs: imgs, log: logrus.StandardLogger()}
}

// Crear registers a new pieza. Nombre is unique; a duplicate write fails
// against the index and returns a client error.
func (pc *PiezaController) Crear(c *gin.Context) {
	in, subida, ok := pc.bind(c)
	if !ok {
		return
	}
	if errs := validators.ValidarPiezaCreate(in); errs != nil {
		pc.descartar(subida)
		responderValidacion(c, errs)
		return
	}
	if !pc.autosExisten(c, in.AutosCompatibles, subida) {
		return
	}

	pieza := construirPieza(in)
	if err := pc.piezas.Create(c.Request.Context(), pieza); err != nil {
		pc.descartar(subida)
		responderError(c, err, "Pieza no encontrada")
		return
	}

	pc.log.WithFields(logrus.Fields{"id": pieza.ID.Hex(), "nombre": pieza.Nombre}).Info("Pieza creada")
	responderDato(c, http.StatusCreated, pieza)
}

// Listar returns piezas matching the basic query filters.
func (pc *PiezaController) Listar(c *gin.Context) {
	var p search.PiezaListParams
	_ = c.ShouldBindQuery(&p)

	piezas, err := pc.piezas.List(c.Request.Context(), search.BuildPiezaListFilter(p))
	if err != nil {
		responderError(c, err, "Pieza no encontrada")
		return
	}
	pc.log.WithField("total", len(piezas)).Debug("Piezas listadas")
	responderLista(c, len(piezas), piezas)
}

// Obtener returns one pieza by id with its autos populated.
func (pc *PiezaController) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pieza, err := pc.piezas.FindByID(c.Request.Context(), id)
	if err != nil {
		responderError(c, err, "Pieza no encontrada")
		return
	}
	responderDato(c, http.StatusOK, pieza)
}

// Actualizar applies a partial update, replacing the stored image when a
// new one arrives.
func (pc *PiezaController) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, subida, ok := pc.bind(c)
	if !ok {
		return
	}
	if errs := validators.ValidarPiezaUpdate(in); errs != nil {
		pc.descartar(subida)
		responderValidacion(c, errs)
		return
	}
	if !pc.autosExisten(c, in.AutosCompatibles, subida) {
		return
	}

	var imagenAnterior string
	if subida != "" {
		if previa, err := pc.piezas.FindByID(c.Request.Context(), id); err == nil {
			imagenAnterior = previa.Imagen
		}
	}

	pieza, err := pc.piezas.Update(c.Request.Context(), id, cambiosPieza(in))
	if err != nil {
		pc.descartar(subida)
		responderError(c, err, "Pieza no encontrada")
		return
	}
	pc.descartar(imagenAnterior)

	pc.log.WithField("id", pieza.ID.Hex()).Info("Pieza actualizada")
	responderDato(c, http.StatusOK, pieza)
}

// Eliminar removes the pieza after retracting it from every auto that
// referenced it, then deletes its image.
func (pc *PiezaController) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pieza, err := pc.piezas.Delete(c.Request.Context(), id)
	if err != nil {
		responderError(c, err, "Pieza no encontrada")
		return
	}
	pc.descartar(pieza.Imagen)

	pc.log.WithField("id", pieza.ID.Hex()).Info("Pieza eliminada")
	responderDato(c, http.StatusOK, gin.H{})
}

// Buscar runs the advanced pieza search.
func (pc *PiezaController) Buscar(c *gin.Context) {
	var p search.PiezaParams
	_ = c.ShouldBindQuery(&p)

	filtro := search.BuildPiezaFilter(p)
	orden := search.ParseSort(p.SortBy)
	limite := search.ParseLimit(p.Limit)

	piezas, err := pc.piezas.Search(c.Request.Context(), filtro, orden, limite)
	if err != nil {
		responderError(c, err, "Pieza no encontrada")
		return
	}
	pc.log.WithFields(logrus.Fields{"filtros": filtro, "resultados": len(piezas)}).Debug("Búsqueda de piezas")
	responderLista(c, len(piezas), piezas)
}

// ListarAutosCompatibles returns the autos compatible with one pieza.
func (pc *PiezaController) ListarAutosCompatibles(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	autos, err := pc.piezas.AutosCompatiblesDe(c.Request.Context(), id)
	if err != nil {
		responderError(c, err, "Pieza no encontrada")
		return
	}
	responderLista(c, len(autos), autos)
}

// AgregarAuto links a compatible auto to the pieza.
func (pc *PiezaController) AgregarAuto(c *gin.Context) {
	pc.relacionarAuto(c, pc.piezas.AgregarAuto)
}

// QuitarAuto unlinks a compatible auto from the pieza.
func (pc *PiezaController) QuitarAuto(c *gin.Context) {
	pc.relacionarAuto(c, pc.piezas.QuitarAuto)
}

// SubirImagen replaces the pieza's image through the dedicated endpoint.
func (pc *PiezaController) SubirImagen(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No se envió ninguna imagen"})
		return
	}
	nombre, err := pc.imgs.Save(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var imagenAnterior string
	if previa, err := pc.piezas.FindByID(c.Request.Context(), id); err == nil {
		imagenAnterior = previa.Imagen
	}

	pieza, err := pc.piezas.Update(c.Request.Context(), id, bson.M{"imagen": nombre})
	if err != nil {
		pc.descartar(nombre)
		responderError(c, err, "Pieza no encontrada")
		return
	}
	pc.descartar(imagenAnterior)
	responderDato(c, http.StatusOK, pieza)
}

func (pc *PiezaController) relacionarAuto(c *gin.Context, op func(ctx context.Context, id, autoID primitive.ObjectID) (*models.Pieza, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body struct {
		AutoID string `json:"autoId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		responderValidacion(c, validators.FromBinding(err))
		return
	}
	autoID, err := primitive.ObjectIDFromHex(body.AutoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID de auto no válido"})
		return
	}

	pieza, err := op(c.Request.Context(), id, autoID)
	if err != nil {
		responderError(c, err, "Pieza no encontrada")
		return
	}
	pc.log.WithFields(logrus.Fields{"pieza": id.Hex(), "auto": autoID.Hex()}).Info("Relación pieza-auto actualizada")
	responderDato(c, http.StatusOK, pieza.AutosCompatibles)
}

func (pc *PiezaController) bind(c *gin.Context) (*models.PiezaInput, string, bool) {
	if esMultipart(c) {
		in, errs := decodePiezaForm(c)
		if errs != nil {
			responderValidacion(c, errs)
			return nil, "", false
		}
		var subida string
		if fh, err := c.FormFile("imagen"); err == nil {
			nombre, err := pc.imgs.Save(fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return nil, "", false
			}
			subida = nombre
			in.Imagen = &nombre
		}
		return in, subida, true
	}

	var in models.PiezaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		responderValidacion(c, validators.FromBinding(err))
		return nil, "", false
	}
	return &in, "", true
}

func (pc *PiezaController) autosExisten(c *gin.Context, ids []string, subida string) bool {
	for _, hex := range ids {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			continue // already rejected by validation
		}
		existe, err := pc.autos.Exists(c.Request.Context(), id)
		if err != nil {
			pc.descartar(subida)
			responderError(c, err, "Pieza no encontrada")
			return false
		}
		if !existe {
			pc.descartar(subida)
			responderValidacion(c, validators.Errores{"autosCompatibles": "Auto con ID " + hex + " no existe"})
			return false
		}
	}
	return true
}

func (pc *PiezaController) descartar(nombre string) {
	if nombre == "" {
		return
	}
	if err := pc.imgs.Remove(nombre); err != nil {
		pc.log.WithField("imagen", nombre).WithError(err).Warn("No se pudo eliminar la imagen")
	}
}

func construirPieza(in *models.PiezaInput) *models.Pieza {
	pieza := &models.Pieza{
		Nombre:               derefTexto(in.Nombre),
		Descripcion:          derefTexto(in.Descripcion),
		Categoria:            derefTexto(in.Categoria),
		Precio:               derefDecimal(in.Precio),
		Imagen:               derefTexto(in.Imagen),
		AnioMin:              in.AnioMin,
		AnioMax:              in.AnioMax,
		MarcaCompatibilidad:  in.MarcaCompatibilidad,
		ModeloCompatibilidad: in.ModeloCompatibilidad,
		Caracteristicas:      in.Caracteristicas,
		AutoIDs:              aObjectIDs(in.AutosCompatibles),
	}
	if in.Stock != nil {
		pieza.Stock = *in.Stock
	}
	return pieza
}

func cambiosPieza(in *models.PiezaInput) bson.M {
	cambios := bson.M{}
	if in.Nombre != nil {
		cambios["nombre"] = *in.Nombre
	}
	if in.Descripcion != nil {
		cambios["descripcion"] = *in.Descripcion
	}
	if in.Categoria != nil {
		cambios["categoria"] = *in.Categoria
	}
	if in.Precio != nil {
		cambios["precio"] = *in.Precio
	}
	if in.Imagen != nil {
		cambios["imagen"] = *in.Imagen
	}
	if in.Stock != nil {
		cambios["stock"] = *in.Stock
	}
	if in.AnioMin != nil {
		cambios["anioMin"] = *in.AnioMin
	}
	if in.AnioMax != nil {
		cambios["anioMax"] = *in.AnioMax
	}
	if in.MarcaCompatibilidad != nil {
		cambios["marcaCompatibilidad"] = in.MarcaCompatibilidad
	}
	if in.ModeloCompatibilidad != nil {
		cambios["modeloCompatibilidad"] = in.ModeloCompatibilidad
	}
	if in.Caracteristicas != nil {
		cambios["caracteristicas"] = in.Caracteristicas
	}
	if in.AutosCompatibles != nil {
		cambios["autosCompatibles"] = aObjectIDs(in.AutosCompatibles)
	}
	return cambios
}
