// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package mongo provides a managed MongoDB client for the document-store
// backend of the content resources.
//
// # Architecture
//
// This package is part of the Infrastructure layer. It owns the driver
// connection pool and exposes the selected database to the content stores.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Opinionated pool settings for the StudyHub workload.
const (
	maxPoolSize            = 25
	minPoolSize            = 2
	maxConnIdleTime        = 10 * time.Minute
	connectTimeout         = 5 * time.Second
	serverSelectionTimeout = 5 * time.Second
	pingTimeout            = 2 * time.Second
)

// Client bundles the driver client with the application database.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewClient connects to MongoDB and verifies the connection with a ping.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - uri: A mongodb:// or mongodb+srv:// connection string.
//   - database: The database holding the content collections.
//   - logger: Structured logger for connection events.
func NewClient(ctx context.Context, uri, database string, logger *slog.Logger) (*Client, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize).
		SetMaxConnIdleTime(maxConnIdleTime).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to connect: %w", err)
	}

	wrapped := &Client{client: client, database: client.Database(database)}
	if err := wrapped.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("mongo client connected",
		slog.String("database", database),
		slog.Int("max_pool_size", maxPoolSize),
	)

	return wrapped, nil
}

// Database returns the application database.
func (c *Client) Database() *mongo.Database {
	return c.database
}

// Ping verifies that the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := c.client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo: ping failed: %w", err)
	}
	return nil
}

// Close disconnects the client, waiting for in-flight operations up to ctx.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
