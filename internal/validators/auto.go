package validators

import (
	"time"

	"github.com/programadorfullstackmern/carbarpart-api/internal/models"
)

var anioTope = time.Now().Year() + 1

// ListAutos gates the plain auto listing.
var ListAutos = Chain{
	Campos: []Campo{
		{Nombre: "marca", Checks: []Check{MaxCaracteres(50, "La marca no puede exceder los 50 caracteres")}},
		{Nombre: "modelo", Checks: []Check{MaxCaracteres(50, "El modelo no puede exceder los 50 caracteres")}},
		{Nombre: "minYear", Checks: []Check{EnteroMin(1900, "El año mínimo debe ser mayor a 1900")}},
		{Nombre: "maxYear", Checks: []Check{EnteroEntre(1900, anioTope, "Año máximo no válido")}},
		{Nombre: "minPrecio", Checks: []Check{FlotanteMin(0, "El precio mínimo no puede ser negativo")}},
		{Nombre: "maxPrecio", Checks: []Check{FlotanteMin(0, "El precio máximo no puede ser negativo")}},
		{Nombre: "transmision", Checks: []Check{EnValores(models.Transmisiones, "Transmisión no válida")}},
		{Nombre: "combustible", Checks: []Check{EnValores(models.Combustibles, "Combustible no válido")}},
		{Nombre: "disponible", Checks: []Check{Booleano(`Disponible debe ser "true" o "false"`)}},
	},
}

// SearchAutos gates the advanced auto search.
var SearchAutos = Chain{
	Campos: []Campo{
		{Nombre: "texto", Checks: []Check{MaxCaracteres(100, "El texto de búsqueda no puede exceder los 100 caracteres")}},
		{Nombre: "fraseExacta", Checks: []Check{MaxCaracteres(100, "La frase exacta no puede exceder los 100 caracteres")}},
		{Nombre: "marcas", Checks: []Check{ListaDeTextos(50, "Cada marca debe ser texto válido (max 50 chars)")}},
		{Nombre: "modelos", Checks: []Check{ListaDeTextos(50, "Cada modelo debe ser texto válido (max 50 chars)")}},
		{Nombre: "minYear", Checks: []Check{EnteroMin(1900, "El año mínimo debe ser mayor a 1900")}},
		{Nombre: "maxYear", Checks: []Check{EnteroEntre(1900, anioTope, "Año máximo no válido")}},
		{Nombre: "minPrecio", Checks: []Check{FlotanteMin(0, "El precio mínimo no puede ser negativo")}},
		{Nombre: "maxPrecio", Checks: []Check{FlotanteMin(0, "El precio máximo no puede ser negativo")}},
		{Nombre: "minKm", Checks: []Check{EnteroMin(0, "El kilometraje mínimo no puede ser negativo")}},
		{Nombre: "maxKm", Checks: []Check{EnteroMin(0, "El kilometraje máximo no puede ser negativo")}},
		{Nombre: "colores", Checks: []Check{ListaDeTextos(50, "Cada color debe ser texto válido")}},
		{Nombre: "transmisiones", Checks: []Check{ListaEnValores(models.Transmisiones, "Transmisión no válida (valores permitidos: manual, automatica, semi-automatica)")}},
		{Nombre: "combustibles", Checks: []Check{ListaEnValores(models.Combustibles, "Combustible no válido (valores permitidos: gasolina, diesel, electrico, hibrido)")}},
		{Nombre: "opcionales", Checks: []Check{ListaDeTextos(100, "Cada opcional debe ser texto válido")}},
		{Nombre: "disponible", Checks: []Check{Booleano(`Disponible debe ser "true" o "false"`)}},
		{Nombre: "pieza", Checks: []Check{ObjectID("ID de pieza no válido")}},
		{Nombre: "desdeFecha", Checks: []Check{FechaISO("Fecha desde debe ser una fecha válida (ISO8601)")}},
		{Nombre: "hastaFecha", Checks: []Check{FechaISO("Fecha hasta debe ser una fecha válida (ISO8601)")}},
		{Nombre: "sortBy", Checks: []Check{FormatoSortBy("Formato de ordenamiento no válido (ej: campo,-campo2)")}},
		{Nombre: "limit", Checks: []Check{EnteroEntre(1, 100, "El límite debe ser un número entre 1 y 100")}},
	},
	Cruzados: []Cruzado{
		MinMaxEnteros("minYear", "maxYear", "El año mínimo no puede ser mayor al año máximo"),
		MinMaxFlotantes("minPrecio", "maxPrecio", "El precio mínimo no puede ser mayor al precio máximo"),
		MinMaxEnteros("minKm", "maxKm", "El kilometraje mínimo no puede ser mayor al kilometraje máximo"),
		MinMaxFechas("desdeFecha", "hastaFecha", "La fecha desde no puede ser mayor a la fecha hasta"),
	},
}
