package implementation

import (
	"context"

	"emogo-be/internal/entity"
	"emogo-be/internal/mapper"
	"emogo-be/internal/model"
	"emogo-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VlogRepositoryImpl struct {
	coll   *mongo.Collection
	mapper *mapper.VlogMapper
}

func NewVlogRepository(db *mongo.Database) contract.VlogRepository {
	return &VlogRepositoryImpl{
		coll:   db.Collection(model.Vlog{}.CollectionName()),
		mapper: mapper.NewVlogMapper(),
	}
}

func (r *VlogRepositoryImpl) Create(ctx context.Context, vlog *entity.Vlog) error {
	m := r.mapper.ToModel(vlog)
	res, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	*vlog = *r.mapper.ToEntity(m)
	return nil
}

func (r *VlogRepositoryImpl) FindAll(ctx context.Context, limit int) ([]*entity.Vlog, error) {
	// Payload is projected out: bulk reads are for joining and export, and
	// must not haul the video bytes across the wire.
	opts := options.Find().
		SetLimit(int64(limit)).
		SetProjection(bson.M{"payload": 0})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []*model.Vlog
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *VlogRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Vlog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var m model.Vlog
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VlogRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
