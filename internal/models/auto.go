package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transmisiones y combustibles admitidos por el catálogo.
var (
	Transmisiones = []string{"manual", "automatica", "semi-automatica"}
	Combustibles  = []string{"gasolina", "diesel", "electrico", "hibrido"}
)

// ImagenDefault is the placeholder filename used when no image was uploaded.
const ImagenDefault = "no-image.jpg"

// Caracteristica is a free-form name/value pair attached to autos and piezas.
type Caracteristica struct {
	Nombre string `json:"nombre" bson:"nombre"`
	Valor  string `json:"valor" bson:"valor"`
}

// Ubicacion is the city/state pair where an auto is located.
type Ubicacion struct {
	Ciudad string `json:"ciudad,omitempty" bson:"ciudad,omitempty"`
	Estado string `json:"estado,omitempty" bson:"estado,omitempty"`
}

// Auto is a vehicle document in the autos collection.
type Auto struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Marca           string               `json:"marca" bson:"marca"`
	Modelo          string               `json:"modelo" bson:"modelo"`
	Anio            int                  `json:"anio" bson:"anio"`
	Precio          float64              `json:"precio" bson:"precio"`
	Imagen          string               `json:"imagen" bson:"imagen"`
	Kilometraje     *int                 `json:"kilometraje,omitempty" bson:"kilometraje,omitempty"`
	Color           string               `json:"color,omitempty" bson:"color,omitempty"`
	Transmision     string               `json:"transmision,omitempty" bson:"transmision,omitempty"`
	Combustible     string               `json:"combustible,omitempty" bson:"combustible,omitempty"`
	Disponible      bool                 `json:"disponible" bson:"disponible"`
	Ubicacion       Ubicacion            `json:"ubicacion" bson:"ubicacion"`
	Caracteristicas []Caracteristica     `json:"caracteristicas" bson:"caracteristicas"`
	Opcionales      []string             `json:"opcionales" bson:"opcionales"`
	PiezaIDs        []primitive.ObjectID `json:"-" bson:"piezas"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt"`

	// Piezas holds the populated summaries of PiezaIDs; filled by the
	// repository, never stored.
	Piezas []PiezaResumen `json:"piezas" bson:"-"`

	// Score is the text-index relevance of the document for the current
	// search, projected via $meta. Zero outside of free-text searches.
	Score float64 `json:"-" bson:"score,omitempty"`
}

// AutoResumen is the reduced projection of an auto embedded in pieza
// responses (marca, modelo, anio, precio).
type AutoResumen struct {
	ID     primitive.ObjectID `json:"id" bson:"_id"`
	Marca  string             `json:"marca" bson:"marca"`
	Modelo string             `json:"modelo" bson:"modelo"`
	Anio   int                `json:"anio" bson:"anio"`
	Precio float64            `json:"precio" bson:"precio"`
}

// TransmisionValida reports whether t is one of the admitted transmissions.
func TransmisionValida(t string) bool {
	return contiene(Transmisiones, t)
}

// CombustibleValido reports whether c is one of the admitted fuel types.
func CombustibleValido(c string) bool {
	return contiene(Combustibles, c)
}

func contiene(valores []string, v string) bool {
	for _, s := range valores {
		if s == v {
			return true
		}
	}
	return false
}
