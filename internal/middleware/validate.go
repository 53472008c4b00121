package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/programadorfullstackmern/carbarpart-api/internal/validators"
)

// ValidarQuery runs a validation chain over the request's query parameters
// and rejects the request with a per-field error map before the handler
// ever sees it.
func ValidarQuery(chain validators.Chain) gin.HandlerFunc {
	return func(c *gin.Context) {
		if errs := chain.Validar(c.Query); errs != nil {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"errors":  errs,
			})
			return
		}
		c.Next()
	}
}

// ValidarID rejects requests whose :id path parameter is not a document id.
func ValidarID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := primitive.ObjectIDFromHex(c.Param("id")); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "ID inválido",
			})
			return
		}
		c.Next()
	}
}
