package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes both collections rely on: the text
// indexes behind free-text search, the unique pieza name, and the compound
// indexes the common listings hit.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("autos").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "marca", Value: "text"},
			{Key: "modelo", Value: "text"},
			{Key: "color", Value: "text"},
			{Key: "ubicacion.ciudad", Value: "text"},
			{Key: "ubicacion.estado", Value: "text"},
		}},
		{Keys: bson.D{{Key: "marca", Value: 1}, {Key: "modelo", Value: 1}}},
		{Keys: bson.D{{Key: "anio", Value: 1}}},
		{Keys: bson.D{{Key: "precio", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("piezas").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "nombre", Value: "text"},
			{Key: "descripcion", Value: "text"},
		}},
		{Keys: bson.D{{Key: "nombre", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "categoria", Value: 1}, {Key: "precio", Value: 1}}},
	})
	return err
}
