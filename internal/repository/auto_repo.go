package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/programadorfullstackmern/carbarpart-api/internal/models"
	"github.com/programadorfullstackmern/carbarpart-api/internal/search"
)

var proyeccionPieza = bson.M{"nombre": 1, "descripcion": 1, "categoria": 1, "precio": 1}

// AutoRepository persists autos and resolves their pieza references.
type AutoRepository struct {
	col    *mongo.Collection
	piezas *mongo.Collection
}

func NewAutoRepository(db *mongo.Database) *AutoRepository {
	return &AutoRepository{
		col:    db.Collection("autos"),
		piezas: db.Collection("piezas"),
	}
}

func (r *AutoRepository) Create(ctx context.Context, auto *models.Auto) error {
	ahora := time.Now().UTC()
	auto.ID = primitive.NewObjectID()
	auto.CreatedAt, auto.UpdatedAt = ahora, ahora
	if auto.Imagen == "" {
		auto.Imagen = models.ImagenDefault
	}
	if auto.PiezaIDs == nil {
		auto.PiezaIDs = []primitive.ObjectID{}
	}
	if auto.Caracteristicas == nil {
		auto.Caracteristicas = []models.Caracteristica{}
	}
	if auto.Opcionales == nil {
		auto.Opcionales = []string{}
	}
	if _, err := r.col.InsertOne(ctx, auto); err != nil {
		return traducir(err)
	}
	return r.populate(ctx, auto)
}

func (r *AutoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Auto, error) {
	var auto models.Auto
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&auto); err != nil {
		return nil, traducir(err)
	}
	if err := r.populate(ctx, &auto); err != nil {
		return nil, err
	}
	return &auto, nil
}

// List runs a basic listing against a pre-built predicate.
func (r *AutoRepository) List(ctx context.Context, filtro bson.M) ([]models.Auto, error) {
	return r.find(ctx, filtro, options.Find())
}

// Search executes an advanced-search predicate with its sort and limit.
// When the text index was activated, results are re-sorted in memory by
// descending relevance after the store returns.
func (r *AutoRepository) Search(ctx context.Context, filtro bson.M, orden bson.D, limite int64) ([]models.Auto, error) {
	opts := options.Find()
	_, conTexto := filtro["$text"]
	if conTexto {
		opts.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
	}
	if orden != nil {
		opts.SetSort(orden)
	}
	if limite > 0 {
		opts.SetLimit(limite)
	}
	autos, err := r.find(ctx, filtro, opts)
	if err != nil {
		return nil, err
	}
	if conTexto {
		search.OrdenarPorRelevancia(autos, func(a models.Auto) float64 { return a.Score })
	}
	return autos, nil
}

func (r *AutoRepository) Update(ctx context.Context, id primitive.ObjectID, cambios bson.M) (*models.Auto, error) {
	cambios["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var auto models.Auto
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": cambios}, opts).Decode(&auto)
	if err != nil {
		return nil, traducir(err)
	}
	if err := r.populate(ctx, &auto); err != nil {
		return nil, err
	}
	return &auto, nil
}

// Delete removes the auto and retracts its id from every pieza that listed
// it as compatible.
func (r *AutoRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Auto, error) {
	var auto models.Auto
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&auto); err != nil {
		return nil, traducir(err)
	}
	_, err := r.piezas.UpdateMany(ctx,
		bson.M{"autosCompatibles": id},
		bson.M{"$pull": bson.M{"autosCompatibles": id}},
	)
	if err != nil {
		return nil, err
	}
	return &auto, nil
}

// PiezasDe returns the populated pieza summaries of one auto.
func (r *AutoRepository) PiezasDe(ctx context.Context, id primitive.ObjectID) ([]models.PiezaResumen, error) {
	auto, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return auto.Piezas, nil
}

func (r *AutoRepository) AgregarPieza(ctx context.Context, id, piezaID primitive.ObjectID) (*models.Auto, error) {
	return r.actualizarPiezas(ctx, id, bson.M{"$addToSet": bson.M{"piezas": piezaID}})
}

func (r *AutoRepository) QuitarPieza(ctx context.Context, id, piezaID primitive.ObjectID) (*models.Auto, error) {
	return r.actualizarPiezas(ctx, id, bson.M{"$pull": bson.M{"piezas": piezaID}})
}

func (r *AutoRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *AutoRepository) actualizarPiezas(ctx context.Context, id primitive.ObjectID, cambio bson.M) (*models.Auto, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var auto models.Auto
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, cambio, opts).Decode(&auto); err != nil {
		return nil, traducir(err)
	}
	if err := r.populate(ctx, &auto); err != nil {
		return nil, err
	}
	return &auto, nil
}

func (r *AutoRepository) find(ctx context.Context, filtro bson.M, opts *options.FindOptions) ([]models.Auto, error) {
	cursor, err := r.col.Find(ctx, filtro, opts)
	if err != nil {
		return nil, err
	}
	autos := []models.Auto{}
	if err := cursor.All(ctx, &autos); err != nil {
		return nil, err
	}
	if err := r.populateMany(ctx, autos); err != nil {
		return nil, err
	}
	return autos, nil
}

// populate resolves PiezaIDs into PiezaResumen values, the stand-in for a
// document-store join.
func (r *AutoRepository) populate(ctx context.Context, auto *models.Auto) error {
	autos := []models.Auto{*auto}
	if err := r.populateMany(ctx, autos); err != nil {
		return err
	}
	auto.Piezas = autos[0].Piezas
	return nil
}

func (r *AutoRepository) populateMany(ctx context.Context, autos []models.Auto) error {
	var ids []primitive.ObjectID
	for _, a := range autos {
		ids = append(ids, a.PiezaIDs...)
	}
	resumenes := map[primitive.ObjectID]models.PiezaResumen{}
	if len(ids) > 0 {
		opts := options.Find().SetProjection(proyeccionPieza)
		cursor, err := r.piezas.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
		if err != nil {
			return err
		}
		var piezas []models.PiezaResumen
		if err := cursor.All(ctx, &piezas); err != nil {
			return err
		}
		for _, p := range piezas {
			resumenes[p.ID] = p
		}
	}
	for i := range autos {
		autos[i].Piezas = []models.PiezaResumen{}
		for _, id := range autos[i].PiezaIDs {
			if p, ok := resumenes[id]; ok {
				autos[i].Piezas = append(autos[i].Piezas, p)
			}
		}
	}
	return nil
}
