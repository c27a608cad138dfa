package db

import (
	"context"
	"fmt"

	"github.com/inovaantary/inventory-api/pkg/config"
	"github.com/inovaantary/inventory-api/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps the shared Mongo connection and database handle.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
}

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New boots a Mongo client using the provided configuration and verifies the
// deployment is reachable before returning.
func New(ctx context.Context, cfg config.MongoConfig, logg *logger.Logger) (*Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo URI is required")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout)

	conn, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := conn.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = conn.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "mongo connection established")
	}

	return &Client{
		client:   conn,
		database: conn.Database(cfg.Database),
	}, nil
}

// Database returns the configured database handle.
func (c *Client) Database() *mongo.Database {
	return c.database
}

// Collection returns a handle to the named collection.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}

// Ping verifies the datasource is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close shuts down the pooled connections.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
