package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func clientOptions(uri string) *options.ClientOptions {
	opts := options.Client().ApplyURI(uri)

	// SetMaxPoolSize limits the number of pooled connections to the server.
	opts.SetMaxPoolSize(100)

	// SetMinPoolSize keeps a warm floor of connections for bursty traffic.
	opts.SetMinPoolSize(10)

	// SetMaxConnIdleTime recycles connections that sat idle too long.
	opts.SetMaxConnIdleTime(time.Hour)

	return opts
}

// NewMongoDatabase connects to MongoDB, verifies the connection with a ping,
// and returns a handle scoped to dbName. The caller owns the client lifecycle
// and should Disconnect it on shutdown.
func NewMongoDatabase(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client.Database(dbName), nil
}
