package validators

import (
	"github.com/programadorfullstackmern/carbarpart-api/internal/models"
)

// ListPiezas gates the plain pieza listing.
var ListPiezas = Chain{
	Campos: []Campo{
		{Nombre: "nombre", Checks: []Check{MaxCaracteres(100, "El nombre no puede exceder los 100 caracteres")}},
		{Nombre: "categoria", Checks: []Check{EnValores(models.Categorias, "Categoría no válida")}},
		{Nombre: "minPrecio", Checks: []Check{FlotanteMin(0, "El precio mínimo no puede ser negativo")}},
		{Nombre: "maxPrecio", Checks: []Check{FlotanteMin(0, "El precio máximo no puede ser negativo")}},
		{Nombre: "enStock", Checks: []Check{Booleano(`enStock debe ser "true" o "false"`)}},
	},
}

// SearchPiezas gates the advanced pieza search.
var SearchPiezas = Chain{
	Campos: []Campo{
		{Nombre: "texto", Checks: []Check{MaxCaracteres(100, "El texto de búsqueda no puede exceder los 100 caracteres")}},
		{Nombre: "fraseExacta", Checks: []Check{MaxCaracteres(100, "La frase exacta no puede exceder los 100 caracteres")}},
		{Nombre: "nombre", Checks: []Check{MaxCaracteres(100, "El nombre no puede exceder los 100 caracteres")}},
		{Nombre: "descripcion", Checks: []Check{MaxCaracteres(500, "La descripción no puede exceder los 500 caracteres")}},
		{Nombre: "categorias", Checks: []Check{ListaEnValores(models.Categorias, "Categoría no válida")}},
		{Nombre: "marcasCompatibilidad", Checks: []Check{ListaDeTextos(50, "Cada marca debe ser texto válido (max 50 chars)")}},
		{Nombre: "modelosCompatibilidad", Checks: []Check{ListaDeTextos(50, "Cada modelo debe ser texto válido (max 50 chars)")}},
		{Nombre: "minPrecio", Checks: []Check{FlotanteMin(0, "El precio mínimo no puede ser negativo")}},
		{Nombre: "maxPrecio", Checks: []Check{FlotanteMin(0, "El precio máximo no puede ser negativo")}},
		{Nombre: "minStock", Checks: []Check{EnteroMin(0, "El stock mínimo no puede ser negativo")}},
		{Nombre: "maxStock", Checks: []Check{EnteroMin(0, "El stock máximo no puede ser negativo")}},
		{Nombre: "minAnio", Checks: []Check{EnteroMin(1900, "El año mínimo debe ser mayor a 1900")}},
		{Nombre: "maxAnio", Checks: []Check{EnteroMin(1900, "El año máximo debe ser mayor a 1900")}},
		{Nombre: "caracteristicas", Checks: []Check{FormatoCaracteristicas(`Las características deben ser en formato "nombre:valor;nombre2:valor2"`)}},
		{Nombre: "disponible", Checks: []Check{Booleano(`Disponible debe ser "true" o "false"`)}},
		{Nombre: "auto", Checks: []Check{ObjectID("ID de auto no válido")}},
		{Nombre: "sortBy", Checks: []Check{FormatoSortBy("Formato de ordenamiento no válido (ej: campo,-campo2)")}},
		{Nombre: "limit", Checks: []Check{EnteroEntre(1, 100, "El límite debe ser un número entre 1 y 100")}},
	},
	Cruzados: []Cruzado{
		MinMaxFlotantes("minPrecio", "maxPrecio", "El precio mínimo no puede ser mayor al precio máximo"),
		MinMaxEnteros("minStock", "maxStock", "El stock mínimo no puede ser mayor al stock máximo"),
		MinMaxEnteros("minAnio", "maxAnio", "El año mínimo no puede ser mayor al año máximo"),
	},
}
