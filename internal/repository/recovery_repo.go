package repository

import (
	"aeron/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecoveryRepo persists generated recovery options and their implementation
// steps, keyed to a disruption id.
type RecoveryRepo interface {
	InsertOption(ctx context.Context, option *model.RecoveryOption) error
	InsertStep(ctx context.Context, step *model.RecoveryStep) error
	OptionsByDisruption(ctx context.Context, disruptionID string) ([]model.RecoveryOption, error)
	StepsByDisruption(ctx context.Context, disruptionID string) ([]model.RecoveryStep, error)
	CountOptions(ctx context.Context, disruptionID string) (int64, error)
	DeleteByDisruption(ctx context.Context, disruptionID string) error
}

type recoveryRepo struct {
	options *mongo.Collection
	steps   *mongo.Collection
}

func NewRecoveryRepo(db *mongo.Database) RecoveryRepo {
	return &recoveryRepo{
		options: db.Collection("recovery_options"),
		steps:   db.Collection("recovery_steps"),
	}
}

func (r *recoveryRepo) InsertOption(ctx context.Context, option *model.RecoveryOption) error {
	_, err := r.options.InsertOne(ctx, option)
	return err
}

func (r *recoveryRepo) InsertStep(ctx context.Context, step *model.RecoveryStep) error {
	_, err := r.steps.InsertOne(ctx, step)
	return err
}

// OptionsByDisruption returns persisted options best-first: highest confidence,
// then lowest priority number.
func (r *recoveryRepo) OptionsByDisruption(ctx context.Context, disruptionID string) ([]model.RecoveryOption, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "confidence", Value: -1},
		{Key: "priority", Value: 1},
	})
	cursor, err := r.options.Find(ctx, bson.M{"disruptionId": disruptionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []model.RecoveryOption
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *recoveryRepo) StepsByDisruption(ctx context.Context, disruptionID string) ([]model.RecoveryStep, error) {
	opts := options.Find().SetSort(bson.D{{Key: "stepNumber", Value: 1}})
	cursor, err := r.steps.Find(ctx, bson.M{"disruptionId": disruptionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []model.RecoveryStep
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *recoveryRepo) CountOptions(ctx context.Context, disruptionID string) (int64, error) {
	return r.options.CountDocuments(ctx, bson.M{"disruptionId": disruptionID})
}

// DeleteByDisruption clears both options and steps before a forced regeneration.
func (r *recoveryRepo) DeleteByDisruption(ctx context.Context, disruptionID string) error {
	if _, err := r.steps.DeleteMany(ctx, bson.M{"disruptionId": disruptionID}); err != nil {
		return err
	}
	_, err := r.options.DeleteMany(ctx, bson.M{"disruptionId": disruptionID})
	return err
}
