package repository

import (
	"aeron/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingsRepo interface {
	List(ctx context.Context) ([]model.Setting, error)
	ListByCategory(ctx context.Context, category string) ([]model.Setting, error)
	Upsert(ctx context.Context, setting *model.Setting) error
}

type settingsRepo struct {
	collection *mongo.Collection
}

func NewSettingsRepo(db *mongo.Database) SettingsRepo {
	return &settingsRepo{
		collection: db.Collection("settings"),
	}
}

func (r *settingsRepo) List(ctx context.Context) ([]model.Setting, error) {
	return r.find(ctx, bson.M{})
}

func (r *settingsRepo) ListByCategory(ctx context.Context, category string) ([]model.Setting, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *settingsRepo) find(ctx context.Context, filter bson.M) ([]model.Setting, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "category", Value: 1},
		{Key: "key", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var settings []model.Setting
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingsRepo) Upsert(ctx context.Context, setting *model.Setting) error {
	setting.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"category": setting.Category, "key": setting.Key},
		setting, opts)
	return err
}
