package search

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Par is a nombre:valor pair parsed out of a caracteristicas parameter.
type Par struct {
	Nombre string
	Valor  string
}

// SplitComas splits a comma-separated parameter into trimmed tokens,
// dropping empty ones. Returns nil when nothing remains.
func SplitComas(valor string) []string {
	if valor == "" {
		return nil
	}
	var lista []string
	for _, t := range strings.Split(valor, ",") {
		if t = strings.TrimSpace(t); t != "" {
			lista = append(lista, t)
		}
	}
	return lista
}

// ParseCaracteristicas parses "nombre:valor;nombre2:valor2" into pairs.
// A segment without ":" yields a pair with an empty Valor.
func ParseCaracteristicas(valor string) []Par {
	if valor == "" {
		return nil
	}
	var pares []Par
	for _, seg := range strings.Split(valor, ";") {
		if seg == "" {
			continue
		}
		nombre, v, _ := strings.Cut(seg, ":")
		pares = append(pares, Par{Nombre: nombre, Valor: v})
	}
	return pares
}

// EscapeRegex defuses regex metacharacters so a phrase matches literally.
func EscapeRegex(frase string) string {
	return regexp.QuoteMeta(frase)
}

// ParseEntero parses an optional integer parameter.
func ParseEntero(valor string) (int, bool) {
	if valor == "" {
		return 0, false
	}
	n, err := strconv.Atoi(valor)
	if err != nil {
		return 0, false
	}
	return n, true
}

// RangoInt builds a $gte/$lte interval from independently optional integer
// bounds. Bounds are emitted verbatim; an inverted interval is the caller's
// mistake, not ours to fix. Returns nil when neither bound is present.
func RangoInt(min, max string) bson.M {
	rango := bson.M{}
	if n, ok := ParseEntero(min); ok {
		rango["$gte"] = n
	}
	if n, ok := ParseEntero(max); ok {
		rango["$lte"] = n
	}
	if len(rango) == 0 {
		return nil
	}
	return rango
}

// RangoFloat is RangoInt for decimal bounds.
func RangoFloat(min, max string) bson.M {
	rango := bson.M{}
	if min != "" {
		if f, err := strconv.ParseFloat(min, 64); err == nil {
			rango["$gte"] = f
		}
	}
	if max != "" {
		if f, err := strconv.ParseFloat(max, 64); err == nil {
			rango["$lte"] = f
		}
	}
	if len(rango) == 0 {
		return nil
	}
	return rango
}

// RangoFechas builds a createdAt interval from ISO-8601 bounds.
func RangoFechas(desde, hasta string) bson.M {
	rango := bson.M{}
	if t, ok := parseFecha(desde); ok {
		rango["$gte"] = t
	}
	if t, ok := parseFecha(hasta); ok {
		rango["$lte"] = t
	}
	if len(rango) == 0 {
		return nil
	}
	return rango
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
