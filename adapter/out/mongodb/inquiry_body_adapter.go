// Package mongodb implements MongoDB adapters for the application.
package mongodb

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"time"

	"inquiry_server/pkg/apperr"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// =============================================================================
// Inquiry Body Adapter
// =============================================================================

const (
	collectionInquiryBodies = "inquiry_bodies"

	// Only compress bodies larger than this.
	compressionThreshold = 1024 // 1KB

	// Bodies age out; the FAQ report only looks back 90 days.
	bodyTTL = 180 * 24 * time.Hour
)

// BodyAdapter implements out.InquiryBodyRepository using MongoDB. Postgres
// keeps a snippet; the raw body lives here, gzipped when large.
type BodyAdapter struct {
	collection *mongo.Collection
}

// NewBodyAdapter creates a new MongoDB inquiry body adapter.
func NewBodyAdapter(db *mongo.Database) *BodyAdapter {
	return &BodyAdapter{collection: db.Collection(collectionInquiryBodies)}
}

// EnsureIndexes creates necessary indexes for the collection.
func (a *BodyAdapter) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "inquiry_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0), // TTL index
		},
	}

	_, err := a.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// inquiryBodyDocument represents the MongoDB document structure.
type inquiryBodyDocument struct {
	InquiryID    string    `bson:"inquiry_id"`
	Body         []byte    `bson:"body"`
	IsCompressed bool      `bson:"is_compressed"`
	OriginalSize int64     `bson:"original_size"`
	StoredAt     time.Time `bson:"stored_at"`
	ExpiresAt    time.Time `bson:"expires_at"`
}

// Save stores one inquiry body, replacing any previous document.
func (a *BodyAdapter) Save(ctx context.Context, inquiryID uuid.UUID, body string) error {
	raw := []byte(body)
	originalSize := int64(len(raw))

	isCompressed := false
	if originalSize > compressionThreshold {
		compressed, err := compress(raw)
		if err != nil {
			return fmt.Errorf("failed to compress inquiry body: %w", err)
		}
		raw = compressed
		isCompressed = true
	}

	now := time.Now()
	doc := &inquiryBodyDocument{
		InquiryID:    inquiryID.String(),
		Body:         raw,
		IsCompressed: isCompressed,
		OriginalSize: originalSize,
		StoredAt:     now,
		ExpiresAt:    now.Add(bodyTTL),
	}

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"inquiry_id": inquiryID.String()}

	if _, err := a.collection.ReplaceOne(ctx, filter, doc, opts); err != nil {
		return fmt.Errorf("failed to save inquiry body: %w", err)
	}
	return nil
}

// Get retrieves one inquiry body.
func (a *BodyAdapter) Get(ctx context.Context, inquiryID uuid.UUID) (string, error) {
	var doc inquiryBodyDocument
	filter := bson.M{"inquiry_id": inquiryID.String()}

	if err := a.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", apperr.NotFound("inquiry body")
		}
		return "", fmt.Errorf("failed to get inquiry body: %w", err)
	}

	return docBody(&doc)
}

// GetMany retrieves bodies for the given inquiries. Missing documents are
// simply absent from the result map.
func (a *BodyAdapter) GetMany(ctx context.Context, inquiryIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	result := make(map[uuid.UUID]string, len(inquiryIDs))
	if len(inquiryIDs) == 0 {
		return result, nil
	}

	raw := make([]string, len(inquiryIDs))
	for i, id := range inquiryIDs {
		raw[i] = id.String()
	}
	filter := bson.M{"inquiry_id": bson.M{"$in": raw}}

	cursor, err := a.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry bodies: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc inquiryBodyDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode inquiry body: %w", err)
		}
		id, err := uuid.Parse(doc.InquiryID)
		if err != nil {
			return nil, fmt.Errorf("invalid inquiry id %q in body store: %w", doc.InquiryID, err)
		}
		body, err := docBody(&doc)
		if err != nil {
			return nil, err
		}
		result[id] = body
	}
	return result, cursor.Err()
}

// Delete removes one inquiry body.
func (a *BodyAdapter) Delete(ctx context.Context, inquiryID uuid.UUID) error {
	filter := bson.M{"inquiry_id": inquiryID.String()}

	if _, err := a.collection.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete inquiry body: %w", err)
	}
	return nil
}

func docBody(doc *inquiryBodyDocument) (string, error) {
	raw := doc.Body
	if doc.IsCompressed {
		var err error
		raw, err = decompress(doc.Body)
		if err != nil {
			return "", fmt.Errorf("failed to decompress inquiry body: %w", err)
		}
	}
	return string(raw), nil
}

func compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}

	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)

	if _, err := writer.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}

	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}
