// Package repository implements the MongoDB persistence of the catalog.
// Repositories receive already-built predicates from the search package and
// never inspect request parameters themselves.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoEncontrado is returned when the requested document does not exist.
var ErrNoEncontrado = errors.New("documento no encontrado")

// ErrDuplicado is returned when a write violates a unique index.
var ErrDuplicado = errors.New("valor duplicado en la base de datos")

func traducir(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNoEncontrado
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicado
	default:
		return err
	}
}
