package storage

import (
	"context"
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"jobportal-api/internal/config"
)

// Collection names owned by this service. Each store owns exactly one.
const (
	jobsCollection         = "jobs"
	applicationsCollection = "applications"
	subscribersCollection  = "subscribers"
	resumesCollection      = "resumes"
	savedJobsCollection    = "savedJobs"
)

// Client owns the long-lived MongoDB connection. It is constructed once at
// startup and handed to each store, replacing any ambient global handle.
type Client struct {
	cfg    *config.Config
	client *mongo.Client
	db     *mongo.Database
}

// NewClient creates an unconnected client from configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{cfg: cfg}
}

// uri builds the connection string. Cluster credentials select an
// Atlas-style SRV URI; otherwise the configured URI is used verbatim.
func (c *Client) uri() string {
	db := c.cfg.Database
	if db.User != "" && db.Password != "" && db.ClusterHost != "" {
		return fmt.Sprintf(
			"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=%s",
			url.QueryEscape(db.User), url.QueryEscape(db.Password),
			db.ClusterHost, db.AppName,
		)
	}
	return db.URI
}

// Connect dials the store and verifies the connection with a ping
func (c *Client) Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Database.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri()).SetAppName(c.cfg.Database.AppName))
	if err != nil {
		return fmt.Errorf("connecting to store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("pinging store: %w", err)
	}

	c.client = client
	c.db = client.Database(c.cfg.Database.Name)
	return nil
}

// EnsureIndexes creates the indexes the stores rely on. The unique
// subscriber-email index closes the check-then-insert race window: a
// concurrent duplicate that slips past the read check fails at the store.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(subscribersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensuring subscriber email index: %w", err)
	}
	return nil
}

// Ping reports whether the store is reachable
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Database exposes the selected database for store construction
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Close disconnects from the store
func (c *Client) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
