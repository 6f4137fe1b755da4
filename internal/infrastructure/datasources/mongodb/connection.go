package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"growline.backend/internal/config"
)

var (
	mongoConnect = func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error) {
		return mongo.Connect(ctx, opts...)
	}
	mongoPing = func(ctx context.Context, c *mongo.Client) error {
		return c.Ping(ctx, readpref.Primary())
	}
)

// NewConnection establishes a MongoDB client. The driver dials lazily, so
// reachability problems surface on Ping or on the first operation rather
// than here.
func NewConnection(cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetMaxPoolSize(uint64(cfg.MaxPoolSize))

	client, err := mongoConnect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	return client, nil
}

// Ping verifies the deployment is reachable
func Ping(ctx context.Context, client *mongo.Client) error {
	if err := mongoPing(ctx, client); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return nil
}
