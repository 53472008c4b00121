package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSort(t *testing.T) {
	orden := ParseSort("-precio,stock")
	assert.Len(t, orden, 2)
	assert.Equal(t, "precio", orden[0].Key)
	assert.Equal(t, -1, orden[0].Value)
	assert.Equal(t, "stock", orden[1].Key)
	assert.Equal(t, 1, orden[1].Value)
}

func TestParseSortVacio(t *testing.T) {
	assert.Nil(t, ParseSort(""))
	assert.Nil(t, ParseSort(" , "))
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, int64(0), ParseLimit(""))
	assert.Equal(t, int64(0), ParseLimit("abc"))
	assert.Equal(t, int64(0), ParseLimit("-3"))
	assert.Equal(t, int64(25), ParseLimit("25"))
	assert.Equal(t, int64(LimiteMaximo), ParseLimit("5000"))
}

func TestOrdenarPorRelevancia(t *testing.T) {
	type doc struct {
		nombre string
		score  float64
	}
	docs := []doc{{"bajo", 0.5}, {"alto", 2.1}, {"medio", 1.3}}

	OrdenarPorRelevancia(docs, func(d doc) float64 { return d.score })

	assert.Equal(t, "alto", docs[0].nombre)
	assert.Equal(t, "medio", docs[1].nombre)
	assert.Equal(t, "bajo", docs[2].nombre)
}

func TestOrdenarPorRelevanciaEstable(t *testing.T) {
	type doc struct {
		nombre string
		score  float64
	}
	docs := []doc{{"primero", 1}, {"segundo", 1}}

	OrdenarPorRelevancia(docs, func(d doc) float64 { return d.score })

	assert.Equal(t, "primero", docs[0].nombre)
	assert.Equal(t, "segundo", docs[1].nombre)
}
