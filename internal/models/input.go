package models

// AutoInput is the write payload of an auto. Pointer fields distinguish
// "absent" from zero so the same shape serves create and partial update.
type AutoInput struct {
	Marca           *string          `json:"marca"`
	Modelo          *string          `json:"modelo"`
	Anio            *int             `json:"anio"`
	Precio          *float64         `json:"precio"`
	Imagen          *string          `json:"imagen"`
	Kilometraje     *int             `json:"kilometraje"`
	Color           *string          `json:"color"`
	Transmision     *string          `json:"transmision"`
	Combustible     *string          `json:"combustible"`
	Disponible      *bool            `json:"disponible"`
	Ubicacion       *Ubicacion       `json:"ubicacion"`
	Caracteristicas []Caracteristica `json:"caracteristicas"`
	Opcionales      []string         `json:"opcionales"`
	Piezas          []string         `json:"piezas"`
}

// PiezaInput is the write payload of a pieza.
type PiezaInput struct {
	Nombre               *string          `json:"nombre"`
	Descripcion          *string          `json:"descripcion"`
	Categoria            *string          `json:"categoria"`
	Precio               *float64         `json:"precio"`
	Imagen               *string          `json:"imagen"`
	Stock                *int             `json:"stock"`
	AnioMin              *int             `json:"anioMin"`
	AnioMax              *int             `json:"anioMax"`
	MarcaCompatibilidad  []string         `json:"marcaCompatibilidad"`
	ModeloCompatibilidad []string         `json:"modeloCompatibilidad"`
	Caracteristicas      []Caracteristica `json:"caracteristicas"`
	AutosCompatibles     []string         `json:"autosCompatibles"`
}
