package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSplitComas(t *testing.T) {
	assert.Nil(t, SplitComas(""))
	assert.Nil(t, SplitComas(" , ,"))
	assert.Equal(t, []string{"a", "b"}, SplitComas(" a , b "))
}

func TestParseCaracteristicas(t *testing.T) {
	assert.Nil(t, ParseCaracteristicas(""))

	pares := ParseCaracteristicas("color:rojo;material:acero")
	assert.Equal(t, []Par{{"color", "rojo"}, {"material", "acero"}}, pares)

	// A segment without ":" keeps the whole text as nombre.
	pares = ParseCaracteristicas("suelto")
	assert.Equal(t, []Par{{"suelto", ""}}, pares)
}

func TestEscapeRegex(t *testing.T) {
	assert.Equal(t, `a\.b\*c`, EscapeRegex("a.b*c"))
	assert.Equal(t, "sin cambios", EscapeRegex("sin cambios"))
}

func TestRangoInt(t *testing.T) {
	assert.Nil(t, RangoInt("", ""))
	assert.Nil(t, RangoInt("abc", ""))
	assert.Equal(t, bson.M{"$gte": 3}, RangoInt("3", ""))
	assert.Equal(t, bson.M{"$gte": 3, "$lte": 9}, RangoInt("3", "9"))
}
