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

var proyeccionAuto = bson.M{"marca": 1, "modelo": 1, "anio": 1, "precio": 1}

// PiezaRepository persists piezas and resolves their auto references.
type PiezaRepository struct {
	col   *mongo.Collection
	autos *mongo.Collection
}

func NewPiezaRepository(db *mongo.Database) *PiezaRepository {
	return &PiezaRepository{
		col:   db.Collection("piezas"),
		autos: db.Collection("autos"),
	}
}

func (r *PiezaRepository) Create(ctx context.Context, pieza *models.Pieza) error {
	ahora := time.Now().UTC()
	pieza.ID = primitive.NewObjectID()
	pieza.CreatedAt, pieza.UpdatedAt = ahora, ahora
	if pieza.Imagen == "" {
		pieza.Imagen = models.ImagenDefault
	}
	if pieza.AutoIDs == nil {
		pieza.AutoIDs = []primitive.ObjectID{}
	}
	if pieza.Caracteristicas == nil {
		pieza.Caracteristicas = []models.Caracteristica{}
	}
	if pieza.MarcaCompatibilidad == nil {
		pieza.MarcaCompatibilidad = []string{}
	}
	if pieza.ModeloCompatibilidad == nil {
		pieza.ModeloCompatibilidad = []string{}
	}
	if _, err := r.col.InsertOne(ctx, pieza); err != nil {
		return traducir(err)
	}
	return r.populate(ctx, pieza)
}

func (r *PiezaRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Pieza, error) {
	var pieza models.Pieza
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&pieza); err != nil {
		return nil, traducir(err)
	}
	if err := r.populate(ctx, &pieza); err != nil {
		return nil, err
	}
	return &pieza, nil
}

func (r *PiezaRepository) List(ctx context.Context, filtro bson.M) ([]models.Pieza, error) {
	return r.find(ctx, filtro, options.Find())
}

// Search executes an advanced-search predicate with its sort and limit,
// re-sorting by relevance in memory when the text index was activated.
func (r *PiezaRepository) Search(ctx context.Context, filtro bson.M, orden bson.D, limite int64) ([]models.Pieza, error) {
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
	piezas, err := r.find(ctx, filtro, opts)
	if err != nil {
		return nil, err
	}
	if conTexto {
		search.OrdenarPorRelevancia(piezas, func(p models.Pieza) float64 { return p.Score })
	}
	return piezas, nil
}

func (r *PiezaRepository) Update(ctx context.Context, id primitive.ObjectID, cambios bson.M) (*models.Pieza, error) {
	cambios["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var pieza models.Pieza
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": cambios}, opts).Decode(&pieza)
	if err != nil {
		return nil, traducir(err)
	}
	if err := r.populate(ctx, &pieza); err != nil {
		return nil, err
	}
	return &pieza, nil
}

// Delete first retracts the pieza from every auto that references it, then
// removes the document.
func (r *PiezaRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Pieza, error) {
	_, err := r.autos.UpdateMany(ctx,
		bson.M{"piezas": id},
		bson.M{"$pull": bson.M{"piezas": id}},
	)
	if err != nil {
		return nil, err
	}
	var pieza models.Pieza
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&pieza); err != nil {
		return nil, traducir(err)
	}
	return &pieza, nil
}

// AutosCompatiblesDe returns the populated auto summaries of one pieza.
func (r *PiezaRepository) AutosCompatiblesDe(ctx context.Context, id primitive.ObjectID) ([]models.AutoResumen, error) {
	pieza, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return pieza.AutosCompatibles, nil
}

func (r *PiezaRepository) AgregarAuto(ctx context.Context, id, autoID primitive.ObjectID) (*models.Pieza, error) {
	return r.actualizarAutos(ctx, id, bson.M{"$addToSet": bson.M{"autosCompatibles": autoID}})
}

func (r *PiezaRepository) QuitarAuto(ctx context.Context, id, autoID primitive.ObjectID) (*models.Pieza, error) {
	return r.actualizarAutos(ctx, id, bson.M{"$pull": bson.M{"autosCompatibles": autoID}})
}

func (r *PiezaRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *PiezaRepository) actualizarAutos(ctx context.Context, id primitive.ObjectID, cambio bson.M) (*models.Pieza, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var pieza models.Pieza
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, cambio, opts).Decode(&pieza); err != nil {
		return nil, traducir(err)
	}
	if err := r.populate(ctx, &pieza); err != nil {
		return nil, err
	}
	return &pieza, nil
}

func (r *PiezaRepository) find(ctx context.Context, filtro bson.M, opts *options.FindOptions) ([]models.Pieza, error) {
	cursor, err := r.col.Find(ctx, filtro, opts)
	if err != nil {
		return nil, err
	}
	piezas := []models.Pieza{}
	if err := cursor.All(ctx, &piezas); err != nil {
		return nil, err
	}
	if err := r.populateMany(ctx, piezas); err != nil {
		return nil, err
	}
	return piezas, nil
}

func (r *PiezaRepository) populate(ctx context.Context, pieza *models.Pieza) error {
	piezas := []models.Pieza{*pieza}
	if err := r.populateMany(ctx, piezas); err != nil {
		return err
	}
	pieza.AutosCompatibles = piezas[0].AutosCompatibles
	return nil
}

func (r *PiezaRepository) populateMany(ctx context.Context, piezas []models.Pieza) error {
	var ids []primitive.ObjectID
	for _, p := range piezas {
		ids = append(ids, p.AutoIDs...)
	}
	resumenes := map[primitive.ObjectID]models.AutoResumen{}
	if len(ids) > 0 {
		opts := options.Find().SetProjection(proyeccionAuto)
		cursor, err := r.autos.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
		if err != nil {
			return err
		}
		var autos []models.AutoResumen
		if err := cursor.All(ctx, &autos); err != nil {
			return err
		}
		for _, a := range autos {
			resumenes[a.ID] = a
		}
	}
	for i := range piezas {
		piezas[i].AutosCompatibles = []models.AutoResumen{}
		for _, id := range piezas[i].AutoIDs {
			if a, ok := resumenes[id]; ok {
				piezas[i].AutosCompatibles = append(piezas[i].AutosCompatibles, a)
			}
		}
	}
	return nil
}
