package validators

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/programadorfullstackmern/carbarpart-api/internal/models"
)

// ValidarAutoCreate checks a create payload: required core fields plus the
// shared field rules.
func ValidarAutoCreate(in *models.AutoInput) Errores {
	errs := Errores{}
	if in.Marca == nil || *in.Marca == "" {
		errs["marca"] = "La marca es requerida"
	}
	if in.Modelo == nil || *in.Modelo == "" {
		errs["modelo"] = "El modelo es requerido"
	}
	if in.Anio == nil {
		errs["anio"] = "El año es requerido"
	}
	if in.Precio == nil {
		errs["precio"] = "El precio es requerido"
	}
	camposAuto(in, errs)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidarAutoUpdate checks a partial-update payload: every field optional.
func ValidarAutoUpdate(in *models.AutoInput) Errores {
	errs := Errores{}
	camposAuto(in, errs)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func camposAuto(in *models.AutoInput, errs Errores) {
	if in.Marca != nil && len([]rune(*in.Marca)) > 50 {
		errs["marca"] = "La marca no puede exceder los 50 caracteres"
	}
	if in.Modelo != nil && len([]rune(*in.Modelo)) > 50 {
		errs["modelo"] = "El modelo no puede exceder los 50 caracteres"
	}
	if in.Anio != nil && (*in.Anio < 1900 || *in.Anio > anioTope) {
		errs["anio"] = "El año debe estar entre 1900 y el próximo año"
	}
	if in.Precio != nil && *in.Precio < 0 {
		errs["precio"] = "El precio no puede ser negativo"
	}
	if in.Kilometraje != nil && *in.Kilometraje < 0 {
		errs["kilometraje"] = "El kilometraje no puede ser negativo"
	}
	if in.Transmision != nil && *in.Transmision != "" && !models.TransmisionValida(*in.Transmision) {
		errs["transmision"] = "Transmisión no válida"
	}
	if in.Combustible != nil && *in.Combustible != "" && !models.CombustibleValido(*in.Combustible) {
		errs["combustible"] = "Combustible no válido"
	}
	validarIDs(in.Piezas, "piezas", "ID de pieza no válido", errs)
}

// ValidarPiezaCreate checks a create payload for piezas.
func ValidarPiezaCreate(in *models.PiezaInput) Errores {
	errs := Errores{}
	if in.Nombre == nil || *in.Nombre == "" {
		errs["nombre"] = "El nombre es requerido"
	}
	if in.Descripcion == nil || *in.Descripcion == "" {
		errs["descripcion"] = "La descripción es requerida"
	}
	if in.Categoria == nil || *in.Categoria == "" {
		errs["categoria"] = "La categoría es requerida"
	}
	if in.Precio == nil {
		errs["precio"] = "El precio es requerido"
	}
	camposPieza(in, errs)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidarPiezaUpdate checks a partial-update payload for piezas.
func ValidarPiezaUpdate(in *models.PiezaInput) Errores {
	errs := Errores{}
	camposPieza(in, errs)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func camposPieza(in *models.PiezaInput, errs Errores) {
	if in.Nombre != nil && len([]rune(*in.Nombre)) > 100 {
		errs["nombre"] = "El nombre no puede exceder los 100 caracteres"
	}
	if in.Descripcion != nil && len([]rune(*in.Descripcion)) > 500 {
		errs["descripcion"] = "La descripción no puede exceder los 500 caracteres"
	}
	if in.Categoria != nil && *in.Categoria != "" && !models.CategoriaValida(*in.Categoria) {
		errs["categoria"] = "Categoría no válida"
	}
	if in.Precio != nil && *in.Precio < 0 {
		errs["precio"] = "El precio no puede ser negativo"
	}
	if in.Stock != nil && *in.Stock < 0 {
		errs["stock"] = "El stock no puede ser negativo"
	}
	if in.AnioMin != nil && *in.AnioMin < 1900 {
		errs["anioMin"] = "El año mínimo debe ser mayor a 1900"
	}
	if in.AnioMax != nil && *in.AnioMax < 1900 {
		errs["anioMax"] = "El año máximo debe ser mayor a 1900"
	}
	if in.AnioMin != nil && in.AnioMax != nil && *in.AnioMax < *in.AnioMin {
		errs["anioMax"] = "El año máximo no puede ser menor al año mínimo"
	}
	validarIDs(in.AutosCompatibles, "autosCompatibles", "ID de auto no válido", errs)
}

func validarIDs(ids []string, campo, mensaje string, errs Errores) {
	for _, id := range ids {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			errs[campo] = mensaje
			return
		}
	}
}
