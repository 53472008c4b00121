// Package validators holds the fixed validation pipelines that gate every
// request before it reaches the filter builder or the repositories. Each
// chain is an ordered list of per-parameter checks plus cross-field checks,
// composed once at package init. Body payloads are validated declaratively
// through gin's binding tags; FromBinding translates those failures into
// the same per-field error map.
package validators

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errores maps a parameter name to its first failure message.
type Errores map[string]string

// Getter looks up a raw request parameter by name.
type Getter func(campo string) string

// Check validates a single parameter value. It returns the failure message
// or "" when the value passes. Every check treats "" as absent and passes.
type Check func(valor string) string

// Cruzado validates a relation between parameters. It returns the field to
// blame and the failure message, or "" when the relation holds.
type Cruzado func(get Getter) (campo, mensaje string)

// Campo is one named parameter and its ordered checks.
type Campo struct {
	Nombre string
	Checks []Check
}

// Chain is the validation pipeline of one operation.
type Chain struct {
	Campos   []Campo
	Cruzados []Cruzado
}

// Validar runs the pipeline. Only the first failing check per field is
// reported, mirroring how the API has always grouped its errors.
func (c Chain) Validar(get Getter) Errores {
	errs := Errores{}
	for _, campo := range c.Campos {
		valor := get(campo.Nombre)
		for _, check := range campo.Checks {
			if msg := check(valor); msg != "" {
				errs[campo.Nombre] = msg
				break
			}
		}
	}
	for _, cruzado := range c.Cruzados {
		if campo, msg := cruzado(get); msg != "" {
			if _, visto := errs[campo]; !visto {
				errs[campo] = msg
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// FromBinding converts a gin binding failure into the per-field error map.
// Non-validator errors (malformed JSON and friends) land under "body".
func FromBinding(err error) Errores {
	errs := Errores{}
	var fallos validator.ValidationErrors
	if !errors.As(err, &fallos) {
		errs["body"] = err.Error()
		return errs
	}
	for _, f := range fallos {
		campo := strings.ToLower(f.Field()[:1]) + f.Field()[1:]
		if _, visto := errs[campo]; !visto {
			errs[campo] = mensajeBinding(f)
		}
	}
	return errs
}

func mensajeBinding(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return "El campo es requerido"
	case "max":
		return "Excede la longitud máxima de " + f.Param()
	case "min", "gte":
		return "Debe ser mayor o igual a " + f.Param()
	case "lte":
		return "Debe ser menor o igual a " + f.Param()
	case "oneof":
		return "Valor no válido (permitidos: " + f.Param() + ")"
	case "gtefield":
		return "No puede ser menor al campo " + f.Param()
	default:
		return "Valor no válido"
	}
}
