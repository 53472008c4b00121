package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categorias are the part categories admitted by the catalog.
var Categorias = []string{"motor", "suspension", "frenos", "electrico", "carroceria", "interior", "exterior", "otros"}

// Pieza is a part document in the piezas collection. Nombre carries a
// unique index; writes with a duplicate name fail.
type Pieza struct {
	ID                   primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Nombre               string               `json:"nombre" bson:"nombre"`
	Descripcion          string               `json:"descripcion" bson:"descripcion"`
	Categoria            string               `json:"categoria" bson:"categoria"`
	Precio               float64              `json:"precio" bson:"precio"`
	Imagen               string               `json:"imagen" bson:"imagen"`
	Stock                int                  `json:"stock" bson:"stock"`
	AnioMin              *int                 `json:"anioMin,omitempty" bson:"anioMin,omitempty"`
	AnioMax              *int                 `json:"anioMax,omitempty" bson:"anioMax,omitempty"`
	MarcaCompatibilidad  []string             `json:"marcaCompatibilidad" bson:"marcaCompatibilidad"`
	ModeloCompatibilidad []string             `json:"modeloCompatibilidad" bson:"modeloCompatibilidad"`
	Caracteristicas      []Caracteristica     `json:"caracteristicas" bson:"caracteristicas"`
	AutoIDs              []primitive.ObjectID `json:"-" bson:"autosCompatibles"`
	CreatedAt            time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt" bson:"updatedAt"`

	// AutosCompatibles holds the populated summaries of AutoIDs; filled by
	// the repository, never stored.
	AutosCompatibles []AutoResumen `json:"autosCompatibles" bson:"-"`

	Score float64 `json:"-" bson:"score,omitempty"`
}

// PiezaResumen is the reduced projection of a pieza embedded in auto
// responses (nombre, descripcion, categoria, precio).
type PiezaResumen struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Nombre      string             `json:"nombre" bson:"nombre"`
	Descripcion string             `json:"descripcion" bson:"descripcion"`
	Categoria   string             `json:"categoria" bson:"categoria"`
	Precio      float64            `json:"precio" bson:"precio"`
}

// CategoriaValida reports whether c is one of the admitted categories.
func CategoriaValida(c string) bool {
	return contiene(Categorias, c)
}
