package repository

import (
	"aeron/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepo interface {
	GetByCode(ctx context.Context, code model.CategoryCode) (*model.DisruptionCategory, error)
	List(ctx context.Context) ([]model.DisruptionCategory, error)
	Upsert(ctx context.Context, category *model.DisruptionCategory) error
}

type categoryRepo struct {
	collection *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) CategoryRepo {
	return &categoryRepo{
		collection: db.Collection("disruption_categories"),
	}
}

func (r *categoryRepo) GetByCode(ctx context.Context, code model.CategoryCode) (*model.DisruptionCategory, error) {
	var category model.DisruptionCategory
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Category not found
		}
		return nil, err
	}

	return &category, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]model.DisruptionCategory, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []model.DisruptionCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) Upsert(ctx context.Context, category *model.DisruptionCategory) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"code": category.Code}, category, opts)
	return err
}
