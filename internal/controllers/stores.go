package controllers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/programadorfullstackmern/carbarpart-api/internal/models"
)

// AutoStore is what the auto handlers need from persistence. The mongo
// repository satisfies it; tests plug in fakes.
type AutoStore interface {
	Create(ctx context.Context, auto *models.Auto) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Auto, error)
	List(ctx context.Context, filtro bson.M) ([]models.Auto, error)
	Search(ctx context.Context, filtro bson.M, orden bson.D, limite int64) ([]models.Auto, error)
	Update(ctx context.Context, id primitive.ObjectID, cambios bson.M) (*models.Auto, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Auto, error)
	PiezasDe(ctx context.Context, id primitive.ObjectID) ([]models.PiezaResumen, error)
	AgregarPieza(ctx context.Context, id, piezaID primitive.ObjectID) (*models.Auto, error)
	QuitarPieza(ctx context.Context, id, piezaID primitive.ObjectID) (*models.Auto, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// PiezaStore is what the pieza handlers need from persistence.
type PiezaStore interface {
	Create(ctx context.Context, pieza *models.Pieza) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Pieza, error)
	List(ctx context.Context, filtro bson.M) ([]models.Pieza, error)
	Search(ctx context.Context, filtro bson.M, orden bson.D, limite int64) ([]models.Pieza, error)
	Update(ctx context.Context, id primitive.ObjectID, cambios bson.M) (*models.Pieza, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Pieza, error)
	AutosCompatiblesDe(ctx context.Context, id primitive.ObjectID) ([]models.AutoResumen, error)
	AgregarAuto(ctx context.Context, id, autoID primitive.ObjectID) (*models.Pieza, error)
	QuitarAuto(ctx context.Context, id, autoID primitive.ObjectID) (*models.Pieza, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}
