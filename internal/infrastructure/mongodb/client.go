package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/twiddles/voice-assistant/internal/domain/repository"
)

// Client owns the single process-wide connection to the document store.
// It is created once at startup, shared by every request and released on
// shutdown. All public operations report expected failures (not connected,
// read/write errors) as returned errors and log the outcome.
type Client struct {
	uri      string
	database string
	logger   *slog.Logger

	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
}

// NewClient builds a client from the three store secrets. No connection
// is made until Connect is called.
func NewClient(username, password, host, database string, logger *slog.Logger) *Client {
	return &Client{
		uri:      fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", username, password, host),
		database: database,
		logger:   logger,
	}
}

// Connect establishes the connection and verifies it with a ping.
// Calling Connect on an already connected client re-establishes the
// connection.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		_ = c.client.Disconnect(ctx)
		c.client = nil
		c.db = nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri))
	if err != nil {
		c.logger.Error("failed to connect to mongodb", "error", err)
		return fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		c.logger.Error("mongodb ping failed", "error", err)
		return fmt.Errorf("ping: %w", err)
	}

	c.client = client
	c.db = client.Database(c.database)
	c.logger.Info("connected to mongodb", "database", c.database)
	return nil
}

// Disconnect releases the connection. Safe to call when already
// disconnected.
func (c *Client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	c.db = nil
	if err != nil {
		c.logger.Error("error closing mongodb connection", "error", err)
		return err
	}
	c.logger.Info("mongodb connection closed")
	return nil
}

func (c *Client) collection(name string) (*mongo.Collection, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil {
		return nil, repository.ErrNotConnected
	}
	return c.db.Collection(name), nil
}

// InsertMany inserts documents into a collection and returns the
// generated ids, hex-encoded, in insertion order.
func (c *Client) InsertMany(ctx context.Context, collection string, documents []any) ([]string, error) {
	coll, err := c.collection(collection)
	if err != nil {
		c.logger.Error("insert on disconnected store", "collection", collection)
		return nil, err
	}

	res, err := coll.InsertMany(ctx, documents)
	if err != nil {
		c.logger.Error("failed to insert documents", "collection", collection, "count", len(documents), "error", err)
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}

	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		ids = append(ids, objectIDHex(id))
	}
	c.logger.Info("inserted documents", "collection", collection, "count", len(ids))
	return ids, nil
}

// Find materializes every document matching the filter into out, which
// must be a pointer to a slice.
func (c *Client) Find(ctx context.Context, collection string, filter any, out any) error {
	coll, err := c.collection(collection)
	if err != nil {
		c.logger.Error("find on disconnected store", "collection", collection)
		return err
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		c.logger.Error("failed to query collection", "collection", collection, "error", err)
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		c.logger.Error("failed to decode query result", "collection", collection, "error", err)
		return fmt.Errorf("decode %s result: %w", collection, err)
	}
	return nil
}

// FindOne decodes the first document matching the filter into out.
// Returns repository.ErrNotFound when nothing matches.
func (c *Client) FindOne(ctx context.Context, collection string, filter any, out any) error {
	coll, err := c.collection(collection)
	if err != nil {
		c.logger.Error("find on disconnected store", "collection", collection)
		return err
	}

	err = coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	if err != nil {
		c.logger.Error("failed to query document", "collection", collection, "error", err)
		return fmt.Errorf("find one in %s: %w", collection, err)
	}
	return nil
}

// UpdateOne applies an update to the first document matching the filter
// and reports how many documents were modified.
func (c *Client) UpdateOne(ctx context.Context, collection string, filter, update any) (int64, error) {
	coll, err := c.collection(collection)
	if err != nil {
		c.logger.Error("update on disconnected store", "collection", collection)
		return 0, err
	}

	res, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		c.logger.Error("failed to update document", "collection", collection, "error", err)
		return 0, fmt.Errorf("update in %s: %w", collection, err)
	}
	return res.ModifiedCount, nil
}

func objectIDHex(id any) string {
	type hexer interface{ Hex() string }
	if h, ok := id.(hexer); ok {
		return h.Hex()
	}
	return fmt.Sprintf("%v", id)
}
