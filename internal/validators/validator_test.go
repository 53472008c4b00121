package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func getterDe(valores map[string]string) Getter {
	return func(campo string) string { return valores[campo] }
}

func TestChainValidarSinErrores(t *testing.T) {
	errs := SearchAutos.Validar(getterDe(map[string]string{
		"texto":   "toyota corolla",
		"minYear": "2015",
		"maxYear": "2020",
		"sortBy":  "-precio,anio",
		"limit":   "20",
	}))
	assert.Nil(t, errs)
}

func TestChainValidarParametrosVaciosPasan(t *testing.T) {
	assert.Nil(t, SearchAutos.Validar(getterDe(nil)))
	assert.Nil(t, SearchPiezas.Validar(getterDe(nil)))
	assert.Nil(t, ListAutos.Validar(getterDe(nil)))
	assert.Nil(t, ListPiezas.Validar(getterDe(nil)))
}

func TestChainValidarPrimerFalloPorCampo(t *testing.T) {
	errs := SearchAutos.Validar(getterDe(map[string]string{
		"minYear": "1800",
		"limit":   "500",
	}))
	assert.Equal(t, Errores{
		"minYear": "El año mínimo debe ser mayor a 1900",
		"limit":   "El límite debe ser un número entre 1 y 100",
	}, errs)
}

func TestChainValidarCruzados(t *testing.T) {
	errs := SearchAutos.Validar(getterDe(map[string]string{
		"minYear": "2020",
		"maxYear": "2015",
	}))
	assert.Equal(t, "El año mínimo no puede ser mayor al año máximo", errs["minYear"])
}

func TestChainValidarCruzadoNoPisaErrorDeCampo(t *testing.T) {
	// minPrecio already failed its own check; the cross check must not
	// replace that message.
	errs := SearchAutos.Validar(getterDe(map[string]string{
		"minPrecio": "-5",
		"maxPrecio": "-10",
	}))
	assert.Equal(t, "El precio mínimo no puede ser negativo", errs["minPrecio"])
}

func TestSearchPiezasCaracteristicas(t *testing.T) {
	assert.Nil(t, SearchPiezas.Validar(getterDe(map[string]string{
		"caracteristicas": "color:rojo;potencia:200hp",
	})))

	errs := SearchPiezas.Validar(getterDe(map[string]string{
		"caracteristicas": "color=rojo",
	}))
	assert.Equal(t, `Las características deben ser en formato "nombre:valor;nombre2:valor2"`, errs["caracteristicas"])
}

func TestSearchPiezasEnums(t *testing.T) {
	errs := SearchPiezas.Validar(getterDe(map[string]string{
		"categorias": "motor,llantas",
	}))
	assert.Equal(t, "Categoría no válida", errs["categorias"])
}

func TestSortByFormato(t *testing.T) {
	assert.Nil(t, SearchPiezas.Validar(getterDe(map[string]string{"sortBy": "precio,-stock"})))

	errs := SearchPiezas.Validar(getterDe(map[string]string{"sortBy": "precio;stock"}))
	assert.Equal(t, "Formato de ordenamiento no válido (ej: campo,-campo2)", errs["sortBy"])
}

func TestObjectIDCheck(t *testing.T) {
	errs := SearchPiezas.Validar(getterDe(map[string]string{"auto": "zzz"}))
	assert.Equal(t, "ID de auto no válido", errs["auto"])

	assert.Nil(t, SearchPiezas.Validar(getterDe(map[string]string{"auto": "64a1f0c2b3d4e5f60718293a"})))
}

func TestBooleano(t *testing.T) {
	errs := SearchAutos.Validar(getterDe(map[string]string{"disponible": "si"}))
	assert.Equal(t, `Disponible debe ser "true" o "false"`, errs["disponible"])
}

func TestFechas(t *testing.T) {
	assert.Nil(t, SearchAutos.Validar(getterDe(map[string]string{
		"desdeFecha": "2024-01-01",
		"hastaFecha": "2024-12-31T23:59:59Z",
	})))

	errs := SearchAutos.Validar(getterDe(map[string]string{
		"desdeFecha": "2024-12-31",
		"hastaFecha": "2024-01-01",
	}))
	assert.Equal(t, "La fecha desde no puede ser mayor a la fecha hasta", errs["desdeFecha"])

	errs = SearchAutos.Validar(getterDe(map[string]string{"desdeFecha": "ayer"}))
	assert.Equal(t, "Fecha desde debe ser una fecha válida (ISO8601)", errs["desdeFecha"])
}
