// Package search translates the flat search parameters of the catalog API
// into MongoDB predicates, plus the sort/limit directives that accompany
// them. Building a filter is pure and side-effect free: parameters are
// validated upstream, absent or empty values simply contribute no clause.
package search

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildAutoFilter assembles the predicate for an advanced auto search.
// All clauses are ANDed at the top level; texto activates the text index
// and wins over fraseExacta when both are present.
func BuildAutoFilter(p AutoParams) bson.M {
	filtro := bson.M{}

	if p.Texto != "" {
		filtro["$text"] = bson.M{"$search": p.Texto}
	} else if p.FraseExacta != "" {
		re := primitive.Regex{Pattern: EscapeRegex(p.FraseExacta), Options: "i"}
		filtro["$or"] = bson.A{
			bson.M{"marca": re},
			bson.M{"modelo": re},
			bson.M{"color": re},
			bson.M{"ubicacion.ciudad": re},
			bson.M{"ubicacion.estado": re},
		}
	}

	if lista := SplitComas(p.Marcas); lista != nil {
		filtro["marca"] = bson.M{"$in": lista}
	}
	if lista := SplitComas(p.Modelos); lista != nil {
		filtro["modelo"] = bson.M{"$in": lista}
	}
	if lista := SplitComas(p.Colores); lista != nil {
		filtro["color"] = bson.M{"$in": lista}
	}
	if lista := SplitComas(p.Transmisiones); lista != nil {
		filtro["transmision"] = bson.M{"$in": lista}
	}
	if lista := SplitComas(p.Combustibles); lista != nil {
		filtro["combustible"] = bson.M{"$in": lista}
	}

	// Opcionales is an all-of filter: the array must contain every value.
	if lista := SplitComas(p.Opcionales); lista != nil {
		filtro["opcionales"] = bson.M{"$all": lista}
	}

	if rango := RangoInt(p.MinYear, p.MaxYear); rango != nil {
		filtro["anio"] = rango
	}
	if rango := RangoFloat(p.MinPrecio, p.MaxPrecio); rango != nil {
		filtro["precio"] = rango
	}
	if rango := RangoInt(p.MinKm, p.MaxKm); rango != nil {
		filtro["kilometraje"] = rango
	}

	if p.Ciudad != "" {
		filtro["ubicacion.ciudad"] = p.Ciudad
	}
	if p.Estado != "" {
		filtro["ubicacion.estado"] = p.Estado
	}

	if p.Disponible != "" {
		filtro["disponible"] = p.Disponible == "true"
	}

	if p.Pieza != "" {
		if id, err := primitive.ObjectIDFromHex(p.Pieza); err == nil {
			filtro["piezas"] = id
		}
	}

	if rango := RangoFechas(p.DesdeFecha, p.HastaFecha); rango != nil {
		filtro["createdAt"] = rango
	}

	return filtro
}

// BuildPiezaFilter assembles the predicate for an advanced pieza search.
func BuildPiezaFilter(p PiezaParams) bson.M {
	filtro := bson.M{}
	var and bson.A

	if p.Texto != "" {
		filtro["$text"] = bson.M{"$search": p.Texto}
	} else if p.FraseExacta != "" {
		re := primitive.Regex{Pattern: EscapeRegex(p.FraseExacta), Options: "i"}
		filtro["$or"] = bson.A{
			bson.M{"nombre": re},
			bson.M{"descripcion": re},
			bson.M{"caracteristicas.nombre": re},
			bson.M{"caracteristicas.valor": re},
		}
	}

	if p.Nombre != "" {
		filtro["nombre"] = primitive.Regex{Pattern: p.Nombre, Options: "i"}
	}
	if p.Descripcion != "" {
		filtro["descripcion"] = primitive.Regex{Pattern: p.Descripcion, Options: "i"}
	}

	if lista := SplitComas(p.Categorias); lista != nil {
		filtro["categoria"] = bson.M{"$in": lista}
	}
	if lista := SplitComas(p.MarcasCompatibilidad); lista != nil {
		filtro["marcaCompatibilidad"] = bson.M{"$in": lista}
	}
	if lista := SplitComas(p.ModelosCompatibilidad); lista != nil {
		filtro["modeloCompatibilidad"] = bson.M{"$in": lista}
	}

	if rango := RangoFloat(p.MinPrecio, p.MaxPrecio); rango != nil {
		filtro["precio"] = rango
	}
	if rango := RangoInt(p.MinStock, p.MaxStock); rango != nil {
		filtro["stock"] = rango
	}

	// Compatible-year bounds tolerate piezas that declare no bound at all.
	if n, ok := ParseEntero(p.MinAnio); ok {
		and = append(and, bson.M{"$or": bson.A{
			bson.M{"anioMin": bson.M{"$gte": n}},
			bson.M{"anioMin": nil},
		}})
	}
	if n, ok := ParseEntero(p.MaxAnio); ok {
		and = append(and, bson.M{"$or": bson.A{
			bson.M{"anioMax": bson.M{"$lte": n}},
			bson.M{"anioMax": nil},
		}})
	}

	// Derived availability filter. Overwrites any stock range set above;
	// kept as-is for compatibility with the original API behavior.
	if p.Disponible == "true" {
		filtro["stock"] = bson.M{"$gt": 0}
	} else if p.Disponible == "false" {
		filtro["stock"] = 0
	}

	if p.Auto != "" {
		if id, err := primitive.ObjectIDFromHex(p.Auto); err == nil {
			filtro["autosCompatibles"] = id
		}
	}

	// Each nombre:valor pair is an independent $elemMatch; two pairs may be
	// satisfied by two different caracteristicas entries.
	for _, c := range ParseCaracteristicas(p.Caracteristicas) {
		and = append(and, bson.M{
			"caracteristicas": bson.M{"$elemMatch": bson.M{
				"nombre": primitive.Regex{Pattern: c.Nombre, Options: "i"},
				"valor":  primitive.Regex{Pattern: c.Valor, Options: "i"},
			}},
		})
	}

	if len(and) > 0 {
		filtro["$and"] = and
	}

	return filtro
}

// BuildAutoListFilter assembles the basic predicate of the plain auto
// listing endpoint.
func BuildAutoListFilter(p AutoListParams) bson.M {
	filtro := bson.M{}
	if p.Marca != "" {
		filtro["marca"] = p.Marca
	}
	if p.Modelo != "" {
		filtro["modelo"] = p.Modelo
	}
	if rango := RangoInt(p.MinYear, p.MaxYear); rango != nil {
		filtro["anio"] = rango
	}
	if p.Disponible != "" {
		filtro["disponible"] = p.Disponible == "true"
	}
	return filtro
}

// BuildPiezaListFilter assembles the basic predicate of the plain pieza
// listing endpoint.
func BuildPiezaListFilter(p PiezaListParams) bson.M {
	filtro := bson.M{}
	if p.Nombre != "" {
		filtro["nombre"] = primitive.Regex{Pattern: p.Nombre, Options: "i"}
	}
	if p.Categoria != "" {
		filtro["categoria"] = p.Categoria
	}
	if rango := RangoFloat(p.MinPrecio, p.MaxPrecio); rango != nil {
		filtro["precio"] = rango
	}
	if p.EnStock == "true" {
		filtro["stock"] = bson.M{"$gt": 0}
	}
	return filtro
}
