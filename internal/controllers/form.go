package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/programadorfullstackmern/carbarpart-api/internal/models"
	"github.com/programadorfullstackmern/carbarpart-api/internal/validators"
)

// The catalog UI submits writes as multipart/form-data with bracketed
// field names (ubicacion[ciudad], caracteristicas[0][nombre], ...). This
// decoder turns that encoding into the same input payloads the JSON
// binding produces.

func esMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

type form struct {
	valores map[string][]string
	errs    validators.Errores
}

func leerForm(c *gin.Context) (*form, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	return &form{valores: mf.Value, errs: validators.Errores{}}, nil
}

func (f *form) has(campo string) bool {
	v, ok := f.valores[campo]
	return ok && len(v) > 0
}

func (f *form) get(campo string) string {
	if v, ok := f.valores[campo]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

// texto returns the field value, or nil when absent or empty.
func (f *form) texto(campo string) *string {
	if v := f.get(campo); v != "" {
		return &v
	}
	return nil
}

func (f *form) entero(campo, mensaje string) *int {
	v := f.get(campo)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		f.errs[campo] = mensaje
		return nil
	}
	return &n
}

func (f *form) decimal(campo, mensaje string) *float64 {
	v := f.get(campo)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		f.errs[campo] = mensaje
		return nil
	}
	return &n
}

func (f *form) booleano(campo, mensaje string) *bool {
	switch f.get(campo) {
	case "":
		return nil
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		f.errs[campo] = mensaje
		return nil
	}
}

// indexados collects campo[0], campo[1], ... in index order.
func (f *form) indexados(campo string) []string {
	var lista []string
	for i := 0; ; i++ {
		clave := fmt.Sprintf("%s[%d]", campo, i)
		if !f.has(clave) {
			break
		}
		lista = append(lista, f.get(clave))
	}
	return lista
}

// pares collects campo[i][nombre] / campo[i][valor] pairs.
func (f *form) pares(campo string) []models.Caracteristica {
	var pares []models.Caracteristica
	for i := 0; ; i++ {
		nombre := fmt.Sprintf("%s[%d][nombre]", campo, i)
		valor := fmt.Sprintf("%s[%d][valor]", campo, i)
		if !f.has(nombre) && !f.has(valor) {
			break
		}
		pares = append(pares, models.Caracteristica{Nombre: f.get(nombre), Valor: f.get(valor)})
	}
	return pares
}

func decodeAutoForm(c *gin.Context) (*models.AutoInput, validators.Errores) {
	f, err := leerForm(c)
	if err != nil {
		return nil, validators.Errores{"body": err.Error()}
	}
	in := &models.AutoInput{
		Marca:           f.texto("marca"),
		Modelo:          f.texto("modelo"),
		Anio:            f.entero("anio", "El año debe ser un número"),
		Precio:          f.decimal("precio", "El precio debe ser un número"),
		Imagen:          f.texto("imagen"),
		Kilometraje:     f.entero("kilometraje", "El kilometraje debe ser un número"),
		Color:           f.texto("color"),
		Transmision:     f.texto("transmision"),
		Combustible:     f.texto("combustible"),
		Disponible:      f.booleano("disponible", `Disponible debe ser "true" o "false"`),
		Caracteristicas: f.pares("caracteristicas"),
		Opcionales:      f.indexados("opcionales"),
		Piezas:          f.indexados("piezas"),
	}
	if ciudad, estado := f.texto("ubicacion[ciudad]"), f.texto("ubicacion[estado]"); ciudad != nil || estado != nil {
		u := models.Ubicacion{}
		if ciudad != nil {
			u.Ciudad = *ciudad
		}
		if estado != nil {
			u.Estado = *estado
		}
		in.Ubicacion = &u
	}
	if len(f.errs) > 0 {
		return nil, f.errs
	}
	return in, nil
}

func decodePiezaForm(c *gin.Context) (*models.PiezaInput, validators.Errores) {
	f, err := leerForm(c)
	if err != nil {
		return nil, validators.Errores{"body": err.Error()}
	}
	in := &models.PiezaInput{
		Nombre:               f.texto("nombre"),
		Descripcion:          f.texto("descripcion"),
		Categoria:            f.texto("categoria"),
		Precio:               f.decimal("precio", "El precio debe ser un número"),
		Imagen:               f.texto("imagen"),
		Stock:                f.entero("stock", "El stock debe ser un número"),
		AnioMin:              f.entero("anioMin", "El año mínimo debe ser un número"),
		AnioMax:              f.entero("anioMax", "El año máximo debe ser un número"),
		MarcaCompatibilidad:  f.indexados("marcaCompatibilidad"),
		ModeloCompatibilidad: f.indexados("modeloCompatibilidad"),
		Caracteristicas:      f.pares("caracteristicas"),
		AutosCompatibles:     f.indexados("autosCompatibles"),
	}
	if len(f.errs) > 0 {
		return nil, f.errs
	}
	return in, nil
}
