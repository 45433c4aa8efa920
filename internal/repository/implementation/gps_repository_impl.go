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

type GpsRepositoryImpl struct {
	coll   *mongo.Collection
	mapper *mapper.GpsMapper
}

func NewGpsRepository(db *mongo.Database) contract.GpsRepository {
	return &GpsRepositoryImpl{
		coll:   db.Collection(model.GpsPoint{}.CollectionName()),
		mapper: mapper.NewGpsMapper(),
	}
}

func (r *GpsRepositoryImpl) Create(ctx context.Context, point *entity.GpsPoint) error {
	m := r.mapper.ToModel(point)
	res, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	*point = *r.mapper.ToEntity(m)
	return nil
}

func (r *GpsRepositoryImpl) FindAll(ctx context.Context, limit int) ([]*entity.GpsPoint, error) {
	opts := options.Find().SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []*model.GpsPoint
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GpsRepositoryImpl) FindById(ctx context.Context, id string) (*entity.GpsPoint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var m model.GpsPoint
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GpsRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
