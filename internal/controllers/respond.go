package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/programadorfullstackmern/carbarpart-api/internal/repository"
	"github.com/programadorfullstackmern/carbarpart-api/internal/validators"
)

func responderDato(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func responderLista(c *gin.Context, count int, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

func responderValidacion(c *gin.Context, errs validators.Errores) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "errors": errs})
}

// responderError maps store failures onto the API's error taxonomy:
// missing document, unique-index violation, anything else a server error.
func responderError(c *gin.Context, err error, noEncontrado string) {
	switch {
	case errors.Is(err, repository.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": noEncontrado})
	case errors.Is(err, repository.ErrDuplicado):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Valor duplicado en la base de datos"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}

// parseID reads the :id path parameter. The route middleware has already
// validated it; a failure here still answers 400 rather than panic.
func parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID inválido"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func aObjectIDs(hex []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(hex))
	for _, h := range hex {
		if id, err := primitive.ObjectIDFromHex(h); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
