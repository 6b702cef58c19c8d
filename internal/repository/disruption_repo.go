package repository

import (
	"aeron/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DisruptionRepo interface {
	Create(ctx context.Context, disruption *model.FlightDisruption) error
	GetByIdentifier(ctx context.Context, identifier string) (*model.FlightDisruption, error)
	List(ctx context.Context, status, severity string) ([]model.FlightDisruption, error)
	UpdateRecoveryStatus(ctx context.Context, id, recoveryStatus string) error
}

type disruptionRepo struct {
	collection *mongo.Collection
}

func NewDisruptionRepo(db *mongo.Database) DisruptionRepo {
	return &disruptionRepo{
		collection: db.Collection("flight_disruptions"),
	}
}

func (r *disruptionRepo) Create(ctx context.Context, disruption *model.FlightDisruption) error {
	_, err := r.collection.InsertOne(ctx, disruption)
	return err
}

// GetByIdentifier looks a disruption up by record id or flight number.
func (r *disruptionRepo) GetByIdentifier(ctx context.Context, identifier string) (*model.FlightDisruption, error) {
	filter := bson.M{"$or": []bson.M{
		{"_id": identifier},
		{"flightNumber": identifier},
	}}

	var disruption model.FlightDisruption
	err := r.collection.FindOne(ctx, filter).Decode(&disruption)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Disruption not found
		}
		return nil, err
	}

	return &disruption, nil
}

func (r *disruptionRepo) List(ctx context.Context, status, severity string) ([]model.FlightDisruption, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if severity != "" {
		filter["severity"] = severity
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var disruptions []model.FlightDisruption
	if err := cursor.All(ctx, &disruptions); err != nil {
		return nil, err
	}
	return disruptions, nil
}

func (r *disruptionRepo) UpdateRecoveryStatus(ctx context.Context, id, recoveryStatus string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"recoveryStatus": recoveryStatus}},
	)
	return err
}
