package repository

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Werneck0live/empresas-api/internal/models"
)

const (
	empresasCollection = "empresas"
	countersCollection = "counters"
)

// EmpresaRepository persiste empresas no MongoDB. O _id é numérico e
// vem de um contador atômico na coleção "counters".
type EmpresaRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewEmpresaRepository(db *mongo.Database) *EmpresaRepository {
	return &EmpresaRepository{
		coll:     db.Collection(empresasCollection),
		counters: db.Collection(countersCollection),
	}
}

func (r *EmpresaRepository) nextID(ctx context.Context) (int64, error) {
	var out struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": empresasCollection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&out)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "next empresa id")
	}
	return out.Seq, nil
}

func (r *EmpresaRepository) Create(ctx context.Context, e *models.Empresa) (*models.Empresa, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}
	e.ID = id
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return nil, pkgerrors.Wrap(err, "insert empresa")
	}
	return e, nil
}

func (r *EmpresaRepository) FindAll(ctx context.Context) ([]models.Empresa, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find empresas")
	}
	defer cur.Close(ctx)

	list := []models.Empresa{}
	for cur.Next(ctx) {
		var e models.Empresa
		if err := cur.Decode(&e); err != nil {
			return nil, pkgerrors.Wrap(err, "decode empresa")
		}
		list = append(list, e)
	}
	return list, cur.Err()
}

func (r *EmpresaRepository) Find(ctx context.Context, id int64) (*models.Empresa, error) {
	var e models.Empresa
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "find empresa %d", id)
	}
	return &e, nil
}

// Update substitui o documento inteiro; se o id não existir, ele é inserido.
func (r *EmpresaRepository) Update(ctx context.Context, e *models.Empresa) (*models.Empresa, error) {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": e.ID}, e, opts); err != nil {
		return nil, pkgerrors.Wrapf(err, "replace empresa %d", e.ID)
	}
	return e, nil
}

func (r *EmpresaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return pkgerrors.Wrapf(err, "delete empresa %d", id)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
