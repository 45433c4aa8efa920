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

type SentimentRepositoryImpl struct {
	coll   *mongo.Collection
	mapper *mapper.SentimentMapper
}

func NewSentimentRepository(db *mongo.Database) contract.SentimentRepository {
	return &SentimentRepositoryImpl{
		coll:   db.Collection(model.Sentiment{}.CollectionName()),
		mapper: mapper.NewSentimentMapper(),
	}
}

func (r *SentimentRepositoryImpl) Create(ctx context.Context, sentiment *entity.Sentiment) error {
	m := r.mapper.ToModel(sentiment)
	res, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	*sentiment = *r.mapper.ToEntity(m)
	return nil
}

func (r *SentimentRepositoryImpl) FindAll(ctx context.Context, limit int) ([]*entity.Sentiment, error) {
	// Sorting on the raw timestamp string keeps the lexicographic ordering
	// the clients rely on.
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []*model.Sentiment
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SentimentRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Sentiment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed identifier can never name a stored record.
		return nil, nil
	}

	var m model.Sentiment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SentimentRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
