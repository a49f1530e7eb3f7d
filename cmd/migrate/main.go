package main

import (
	"context"

	mongomigrate "smartparking/internal/migrations/mongo"
	"smartparking/pkg/config"
)

const ServiceName = "migrate"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	if err := mongomigrate.Migrate(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.Log); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	cfg.GracefulShutdown()
	cfg.Log.Info("Migrations applied successfully")
}
