package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/programadorfullstackmern/carbarpart-api/internal/models"
)

func texto(s string) *string    { return &s }
func entero(n int) *int         { return &n }
func decimal(f float64) *float64 { return &f }

func TestValidarAutoCreateRequeridos(t *testing.T) {
	errs := ValidarAutoCreate(&models.AutoInput{})
	assert.Equal(t, "La marca es requerida", errs["marca"])
	assert.Equal(t, "El modelo es requerido", errs["modelo"])
	assert.Equal(t, "El año es requerido", errs["anio"])
	assert.Equal(t, "El precio es requerido", errs["precio"])
}

func TestValidarAutoCreateValido(t *testing.T) {
	errs := ValidarAutoCreate(&models.AutoInput{
		Marca:  texto("Toyota"),
		Modelo: texto("Corolla"),
		Anio:   entero(2020),
		Precio: decimal(15000),
	})
	assert.Nil(t, errs)
}

func TestValidarAutoCreateCampos(t *testing.T) {
	errs := ValidarAutoCreate(&models.AutoInput{
		Marca:       texto("Toyota"),
		Modelo:      texto("Corolla"),
		Anio:        entero(1850),
		Precio:      decimal(-1),
		Transmision: texto("triptronica"),
	})
	assert.Equal(t, "El año debe estar entre 1900 y el próximo año", errs["anio"])
	assert.Equal(t, "El precio no puede ser negativo", errs["precio"])
	assert.Equal(t, "Transmisión no válida", errs["transmision"])
}

func TestValidarAutoUpdateParcial(t *testing.T) {
	// An update may omit everything.
	assert.Nil(t, ValidarAutoUpdate(&models.AutoInput{}))

	errs := ValidarAutoUpdate(&models.AutoInput{Kilometraje: entero(-10)})
	assert.Equal(t, "El kilometraje no puede ser negativo", errs["kilometraje"])
}

func TestValidarAutoPiezasIDs(t *testing.T) {
	errs := ValidarAutoUpdate(&models.AutoInput{Piezas: []string{"no-hex"}})
	assert.Equal(t, "ID de pieza no válido", errs["piezas"])

	assert.Nil(t, ValidarAutoUpdate(&models.AutoInput{Piezas: []string{"64a1f0c2b3d4e5f60718293a"}}))
}

func TestValidarPiezaCreateRequeridos(t *testing.T) {
	errs := ValidarPiezaCreate(&models.PiezaInput{})
	assert.Equal(t, "El nombre es requerido", errs["nombre"])
	assert.Equal(t, "La descripción es requerida", errs["descripcion"])
	assert.Equal(t, "La categoría es requerida", errs["categoria"])
	assert.Equal(t, "El precio es requerido", errs["precio"])
}

func TestValidarPiezaCreateValida(t *testing.T) {
	errs := ValidarPiezaCreate(&models.PiezaInput{
		Nombre:      texto("Filtro de aceite"),
		Descripcion: texto("Filtro compatible con motores 1.8L"),
		Categoria:   texto("motor"),
		Precio:      decimal(250),
	})
	assert.Nil(t, errs)
}

func TestValidarPiezaAnios(t *testing.T) {
	errs := ValidarPiezaUpdate(&models.PiezaInput{
		AnioMin: entero(2015),
		AnioMax: entero(2010),
	})
	assert.Equal(t, "El año máximo no puede ser menor al año mínimo", errs["anioMax"])
}

func TestValidarPiezaCategoria(t *testing.T) {
	errs := ValidarPiezaUpdate(&models.PiezaInput{Categoria: texto("llantas")})
	assert.Equal(t, "Categoría no válida", errs["categoria"])
}
