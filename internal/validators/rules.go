package validators

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	reSortBy          = regexp.MustCompile(`^-?[a-zA-Z]+(,-?[a-zA-Z]+)*$`)
	reCaracteristicas = regexp.MustCompile(`^[^:;]+:[^:;]*(;[^:;]+:[^:;]*)*$`)
)

// MaxCaracteres rejects values longer than n runes.
func MaxCaracteres(n int, mensaje string) Check {
	return func(valor string) string {
		if valor != "" && len([]rune(valor)) > n {
			return mensaje
		}
		return ""
	}
}

// EnteroMin rejects values that are not integers ≥ min.
func EnteroMin(min int, mensaje string) Check {
	return func(valor string) string {
		if valor == "" {
			return ""
		}
		n, err := strconv.Atoi(valor)
		if err != nil || n < min {
			return mensaje
		}
		return ""
	}
}

// EnteroEntre rejects integers outside [min, max].
func EnteroEntre(min, max int, mensaje string) Check {
	return func(valor string) string {
		if valor == "" {
			return ""
		}
		n, err := strconv.Atoi(valor)
		if err != nil || n < min || n > max {
			return mensaje
		}
		return ""
	}
}

// FlotanteMin rejects values that are not decimals ≥ min.
func FlotanteMin(min float64, mensaje string) Check {
	return func(valor string) string {
		if valor == "" {
			return ""
		}
		f, err := strconv.ParseFloat(valor, 64)
		if err != nil || f < min {
			return mensaje
		}
		return ""
	}
}

// Booleano accepts only the literals "true" and "false".
func Booleano(mensaje string) Check {
	return func(valor string) string {
		if valor != "" && valor != "true" && valor != "false" {
			return mensaje
		}
		return ""
	}
}

// EnValores accepts only members of the closed enum.
func EnValores(valores []string, mensaje string) Check {
	return func(valor string) string {
		if valor == "" {
			return ""
		}
		for _, v := range valores {
			if v == valor {
				return ""
			}
		}
		return mensaje
	}
}

// ListaEnValores accepts a comma-separated list whose every trimmed token
// belongs to the closed enum.
func ListaEnValores(valores []string, mensaje string) Check {
	unitario := EnValores(valores, mensaje)
	return func(valor string) string {
		if valor == "" {
			return ""
		}
		for _, t := range strings.Split(valor, ",") {
			if msg := unitario(strings.TrimSpace(t)); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// ListaDeTextos accepts a comma-separated list of non-empty tokens of at
// most maxLen runes each.
func ListaDeTextos(maxLen int, mensaje string) Check {
	return func(valor string) string {
		if valor == "" {
			return ""
		}
		for _, t := range strings.Split(valor, ",") {
			t = strings.TrimSpace(t)
			if t == "" || len([]rune(t)) > maxLen {
				return mensaje
			}
		}
		return ""
	}
}

// FechaISO accepts RFC 3339 timestamps or plain yyyy-mm-dd dates.
func FechaISO(mensaje string) Check {
	return func(valor string) string {
		if valor == "" {
			return ""
		}
		for _, capa := range []string{time.RFC3339, "2006-01-02"} {
			if _, err := time.Parse(capa, valor); err == nil {
				return ""
			}
		}
		return mensaje
	}
}

// FormatoSortBy accepts "campo,-otroCampo" directives.
func FormatoSortBy(mensaje string) Check {
	return func(valor string) string {
		if valor != "" && !reSortBy.MatchString(valor) {
			return mensaje
		}
		return ""
	}
}

// FormatoCaracteristicas accepts "nombre:valor;nombre2:valor2" pair lists.
func FormatoCaracteristicas(mensaje string) Check {
	return func(valor string) string {
		if valor != "" && !reCaracteristicas.MatchString(valor) {
			return mensaje
		}
		return ""
	}
}

// ObjectID accepts 24-char hex document ids.
func ObjectID(mensaje string) Check {
	return func(valor string) string {
		if valor == "" {
			return ""
		}
		if _, err := primitive.ObjectIDFromHex(valor); err != nil {
			return mensaje
		}
		return ""
	}
}

// MinMaxEnteros blames minCampo when both bounds are present and inverted.
func MinMaxEnteros(minCampo, maxCampo, mensaje string) Cruzado {
	return func(get Getter) (string, string) {
		min, errMin := strconv.Atoi(get(minCampo))
		max, errMax := strconv.Atoi(get(maxCampo))
		if errMin == nil && errMax == nil && min > max {
			return minCampo, mensaje
		}
		return "", ""
	}
}

// MinMaxFlotantes is MinMaxEnteros for decimal bounds.
func MinMaxFlotantes(minCampo, maxCampo, mensaje string) Cruzado {
	return func(get Getter) (string, string) {
		min, errMin := strconv.ParseFloat(get(minCampo), 64)
		max, errMax := strconv.ParseFloat(get(maxCampo), 64)
		if errMin == nil && errMax == nil && min > max {
			return minCampo, mensaje
		}
		return "", ""
	}
}

// MinMaxFechas blames desdeCampo when both dates are present and inverted.
func MinMaxFechas(desdeCampo, hastaCampo, mensaje string) Cruzado {
	return func(get Getter) (string, string) {
		desde, okDesde := parseFecha(get(desdeCampo))
		hasta, okHasta := parseFecha(get(hastaCampo))
		if okDesde && okHasta && desde.After(hasta) {
			return desdeCampo, mensaje
		}
		return "", ""
	}
}

func parseFecha(valor string) (time.Time, bool) {
	if valor == "" {
		return time.Time{}, false
	}
	for _, capa := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(capa, valor); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
