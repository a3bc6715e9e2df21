package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"aris-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type RequestRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{
		collection: db.Collection("SkillRequest"),
		mu:         &sync.Mutex{},
	}
}

func (r *RequestRepository) New(ctx context.Context, req *models.SkillRequest) (*models.SkillRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID.IsZero() {
		req.ID = bson.NewObjectID()
	}

	currentTime := int(time.Now().Unix())
	if req.Metadata.CreatedAt == 0 {
		req.Metadata.CreatedAt = currentTime
	}
	req.Metadata.UpdatedAt = currentTime

	_, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to insert skill request: %w", err)
	}
	return req, nil
}

func (r *RequestRepository) FindByRequestID(ctx context.Context, requestID string) (*models.SkillRequest, error) {
	var req models.SkillRequest
	err := r.collection.FindOne(ctx, bson.M{"requestId": requestID}).Decode(&req)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) Search(ctx context.Context, query *models.RequestSearchQuery) ([]*models.SkillRequest, int64, error) {
	filter := bson.M{}

	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.Client != "" {
		filter["clientName"] = bson.M{"$regex": query.Client, "$options": "i"}
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count skill requests: %w", err)
	}

	opts := options.Find()
	opts.SetSort(bson.M{"metadata.createdAt": -1})
	opts.SetSkip(int64((query.Page - 1) * query.PageSize))
	opts.SetLimit(int64(query.PageSize))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search skill requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*models.SkillRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, 0, fmt.Errorf("failed to decode skill requests: %w", err)
	}

	return requests, totalCount, nil
}

func (r *RequestRepository) Update(ctx context.Context, id bson.ObjectID, req *models.SkillRequest) (*models.SkillRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.Metadata.UpdatedAt = int(time.Now().Unix())

	filter := bson.M{"_id": id}
	update := bson.M{"$set": req}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.SkillRequest
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update skill request: %w", err)
	}

	return &updated, nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, requestID string, status models.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filter := bson.M{"requestId": requestID}
	update := bson.M{
		"$set": bson.M{
			"status":             status,
			"metadata.updatedAt": int(time.Now().Unix()),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}

	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

// SaveSnapshot stores the latest analysis outcome on the request document.
func (r *RequestRepository) SaveSnapshot(ctx context.Context, requestID string, snapshot *models.AnalysisResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filter := bson.M{"requestId": requestID}
	update := bson.M{
		"$set": bson.M{
			"analysisSnapshot":   snapshot,
			"metadata.updatedAt": int(time.Now().Unix()),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to save analysis snapshot: %w", err)
	}

	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete skill request: %w", err)
	}

	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

func (r *RequestRepository) CountByStatus(ctx context.Context, status models.RequestStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count skill requests: %w", err)
	}
	return count, nil
}

func (r *RequestRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "requestId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "clientName", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "metadata.createdAt", Value: -1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create request indexes: %w", err)
	}

	return nil
}
