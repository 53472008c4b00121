package search

// AutoParams are the flat, all-optional query parameters accepted by the
// advanced auto search. List-valued parameters arrive as comma-separated
// strings; every field is already validated upstream.
type AutoParams struct {
	Texto         string `form:"texto"`
	FraseExacta   string `form:"fraseExacta"`
	Marcas        string `form:"marcas"`
	Modelos       string `form:"modelos"`
	MinYear       string `form:"minYear"`
	MaxYear       string `form:"maxYear"`
	MinPrecio     string `form:"minPrecio"`
	MaxPrecio     string `form:"maxPrecio"`
	MinKm         string `form:"minKm"`
	MaxKm         string `form:"maxKm"`
	Colores       string `form:"colores"`
	Transmisiones string `form:"transmisiones"`
	Combustibles  string `form:"combustibles"`
	Opcionales    string `form:"opcionales"`
	Disponible    string `form:"disponible"`
	Pieza         string `form:"pieza"`
	Ciudad        string `form:"ciudad"`
	Estado        string `form:"estado"`
	DesdeFecha    string `form:"desdeFecha"`
	HastaFecha    string `form:"hastaFecha"`
	SortBy        string `form:"sortBy"`
	Limit         string `form:"limit"`
}

// PiezaParams are the flat query parameters accepted by the advanced pieza
// search.
type PiezaParams struct {
	Texto                string `form:"texto"`
	FraseExacta          string `form:"fraseExacta"`
	Nombre               string `form:"nombre"`
	Descripcion          string `form:"descripcion"`
	Categorias           string `form:"categorias"`
	MarcasCompatibilidad string `form:"marcasCompatibilidad"`
	ModelosCompatibilidad string `form:"modelosCompatibilidad"`
	MinPrecio            string `form:"minPrecio"`
	MaxPrecio            string `form:"maxPrecio"`
	MinStock             string `form:"minStock"`
	MaxStock             string `form:"maxStock"`
	MinAnio              string `form:"minAnio"`
	MaxAnio              string `form:"maxAnio"`
	Caracteristicas      string `form:"caracteristicas"`
	Disponible           string `form:"disponible"`
	Auto                 string `form:"auto"`
	SortBy               string `form:"sortBy"`
	Limit                string `form:"limit"`
}

// AutoListParams are the basic filters of the plain auto listing.
type AutoListParams struct {
	Marca      string `form:"marca"`
	Modelo     string `form:"modelo"`
	MinYear    string `form:"minYear"`
	MaxYear    string `form:"maxYear"`
	Disponible string `form:"disponible"`
}

// PiezaListParams are the basic filters of the plain pieza listing.
type PiezaListParams struct {
	Nombre    string `form:"nombre"`
	Categoria string `form:"categoria"`
	MinPrecio string `form:"minPrecio"`
	MaxPrecio string `form:"maxPrecio"`
	EnStock   string `form:"enStock"`
}
