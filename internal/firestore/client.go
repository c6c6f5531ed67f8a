package firestore

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"daysoflight/internal/model"
	"daysoflight/internal/repo"
)

const batchSize = 250 // Stay well under Firestore's 500 operation limit

var _ repo.Repository = (*Client)(nil)

// Client wraps the Firestore client for house operations.
type Client struct {
	client     *firestore.Client
	collection string
}

// New creates a new Firestore client.
func New(ctx context.Context, projectID, collection string) (*Client, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}
	return &Client{
		client:     client,
		collection: collection,
	}, nil
}

// Close closes the Firestore client.
func (c *Client) Close() error {
	return c.client.Close()
}

// ReplaceHouses replaces the whole collection: existing documents are
// deleted, then the new ones are written in batches.
func (c *Client) ReplaceHouses(ctx context.Context, houses []model.House, batchID string) error {
	if err := repo.Validate(houses); err != nil {
		return err
	}

	coll := c.client.Collection(c.collection)

	if err := c.deleteAll(ctx); err != nil {
		return fmt.Errorf("deleting existing houses: %w", err)
	}

	for i := 0; i < len(houses); i += batchSize {
		end := min(i+batchSize, len(houses))
		batch := c.client.Batch()

		for _, h := range houses[i:end] {
			batch.Set(coll.Doc(docID(h.ID)), houseToMap(h, batchID))
		}

		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("committing batch: %w", err)
		}
	}

	return nil
}

func (c *Client) deleteAll(ctx context.Context) error {
	coll := c.client.Collection(c.collection)

	for {
		iter := coll.Limit(batchSize).Documents(ctx)
		batch := c.client.Batch()
		numDeleted := 0

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				return fmt.Errorf("iterating documents: %w", err)
			}
			batch.Delete(doc.Ref)
			numDeleted++
		}
		iter.Stop()

		if numDeleted == 0 {
			return nil
		}

		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("committing delete batch: %w", err)
		}

		if numDeleted < batchSize {
			return nil
		}
	}
}

// ListHouses retrieves all houses, active or not, in listing order.
func (c *Client) ListHouses(ctx context.Context) ([]model.House, error) {
	var houses []model.House

	iter := c.client.Collection(c.collection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating documents: %w", err)
		}

		houses = append(houses, mapToHouse(doc.Data()))
	}

	sort.SliceStable(houses, func(i, j int) bool { return model.Less(houses[i], houses[j]) })
	return houses, nil
}

// GetHouse retrieves a single house by id.
func (c *Client) GetHouse(ctx context.Context, id int64) (model.House, error) {
	doc, err := c.client.Collection(c.collection).Doc(docID(id)).Get(ctx)
	if err != nil {
		return model.House{}, lookupError(id, err)
	}
	return mapToHouse(doc.Data()), nil
}

func lookupError(id int64, err error) error {
	if status.Code(err) == codes.NotFound {
		return repo.ErrNotFound
	}
	return fmt.Errorf("getting house %d: %w", id, err)
}

func docID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// houseToMap converts a House to a Firestore document map.
func houseToMap(h model.House, batchID string) map[string]interface{} {
	m := map[string]interface{}{
		"id":        h.ID,
		"name":      h.Name,
		"day":       h.Day,
		"time":      h.Time,
		"location":  h.Location,
		"is_active": h.IsActive,
		"order":     int64(h.Order),
		"batch_id":  batchID,
	}
	if h.Description != "" {
		m["description"] = h.Description
	}
	return m
}

// mapToHouse converts a Firestore document map to a House.
func mapToHouse(m map[string]interface{}) model.House {
	h := model.House{}

	if v, ok := m["id"].(int64); ok {
		h.ID = v
	}
	if v, ok := m["name"].(string); ok {
		h.Name = v
	}
	if v, ok := m["day"].(string); ok {
		h.Day = v
	}
	if v, ok := m["time"].(string); ok {
		h.Time = v
	}
	if v, ok := m["location"].(string); ok {
		h.Location = v
	}
	if v, ok := m["description"].(string); ok {
		h.Description = v
	}
	if v, ok := m["is_active"].(bool); ok {
		h.IsActive = v
	}
	if v, ok := m["order"].(int64); ok {
		h.Order = int(v)
	}

	return h
}
