package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smartparking/internal/migrations/mongo/validators"
	"smartparking/pkg/logger"
)

const BookingsCollection = "Bookings"

// BookingsIndexes back the hot queries: the sweep's overdue scan
// (status + endTime) and the dashboard listing sorted by start time.
var BookingsIndexes = []mongo.IndexModel{
	{Keys: bson.D{
		{Key: "status", Value: 1},
		{Key: "endTime", Value: 1},
	}},
	{Keys: bson.D{{Key: "startTime", Value: 1}}},
	{Keys: bson.D{{Key: "user", Value: 1}}},
}

// Migrate ensures the Bookings collection exists with its schema validator
// and indexes. Safe to run repeatedly.
func Migrate(ctx context.Context, client *mongo.Client, dbName string, log *logger.Logger) error {
	db := client.Database(dbName)

	exists, err := collectionExists(ctx, db, BookingsCollection)
	if err != nil {
		return err
	}

	if exists {
		// collMod updates the validator on an existing collection.
		err = db.RunCommand(ctx, bson.D{
			{Key: "collMod", Value: BookingsCollection},
			{Key: "validator", Value: validators.BookingValidator},
			{Key: "validationLevel", Value: "moderate"},
		}).Err()
		if err != nil {
			return fmt.Errorf("failed to update %s validator: %w", BookingsCollection, err)
		}
		log.Info("Collection validator updated", "collection", BookingsCollection)
	} else {
		opts := options.CreateCollection().
			SetValidator(validators.BookingValidator).
			SetValidationLevel("moderate")
		if err := db.CreateCollection(ctx, BookingsCollection, opts); err != nil {
			return fmt.Errorf("failed to create %s collection: %w", BookingsCollection, err)
		}
		log.Info("Collection created", "collection", BookingsCollection)
	}

	names, err := db.Collection(BookingsCollection).Indexes().CreateMany(ctx, BookingsIndexes)
	if err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", BookingsCollection, err)
	}
	log.Info("Indexes ensured", "collection", BookingsCollection, "indexes", names)

	return nil
}

func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, fmt.Errorf("failed to list collections: %w", err)
	}
	return len(names) > 0, nil
}
