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

// EmployeeRepository reads and writes the three roster collections the
// classifier joins at analysis time: employee master data, per-employee
// skill rows and allocation rows.
type EmployeeRepository struct {
	master      *mongo.Collection
	skills      *mongo.Collection
	allocations *mongo.Collection
	mu          *sync.Mutex
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{
		master:      db.Collection("EmployeeMaster"),
		skills:      db.Collection("SkillsMaster"),
		allocations: db.Collection("EmployeeAllocation"),
		mu:          &sync.Mutex{},
	}
}

func (r *EmployeeRepository) New(ctx context.Context, emp *models.Employee) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if emp.ID.IsZero() {
		emp.ID = bson.NewObjectID()
	}

	currentTime := int(time.Now().Unix())
	if emp.Metadata.CreatedAt == 0 {
		emp.Metadata.CreatedAt = currentTime
	}
	emp.Metadata.UpdatedAt = currentTime

	_, err := r.master.InsertOne(ctx, emp)
	if err != nil {
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}
	return emp, nil
}

func (r *EmployeeRepository) FindByEmployeeNumber(ctx context.Context, employeeNumber string) (*models.Employee, error) {
	var emp models.Employee
	err := r.master.FindOne(ctx, bson.M{"employeeNumber": employeeNumber}).Decode(&emp)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Employee, error) {
	opts := options.Find()
	opts.SetSort(bson.M{"name": 1})
	if limit > 0 {
		opts.SetSkip(int64((page - 1) * limit))
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.master.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []*models.Employee
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id bson.ObjectID, emp *models.Employee) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp.Metadata.UpdatedAt = int(time.Now().Unix())

	filter := bson.M{"_id": id}
	update := bson.M{"$set": emp}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Employee
	err := r.master.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return &updated, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := r.master.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

// BulkUpsert replaces employees by employee number, used by the roster
// import endpoint.
func (r *EmployeeRepository) BulkUpsert(ctx context.Context, employees []*models.Employee) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	currentTime := int(time.Now().Unix())
	upserted := 0
	for _, emp := range employees {
		if emp.Metadata.CreatedAt == 0 {
			emp.Metadata.CreatedAt = currentTime
		}
		emp.Metadata.UpdatedAt = currentTime

		filter := bson.M{"employeeNumber": emp.EmployeeNumber}
		update := bson.M{"$set": bson.M{
			"employeeNumber": emp.EmployeeNumber,
			"name":           emp.Name,
			"email":          emp.Email,
			"department":     emp.Department,
			"role":           emp.Role,
			"availability":   emp.AvailabilityLabel,
			"skills":         emp.Skills,
			"allocations":    emp.Allocations,
			"metadata":       emp.Metadata,
		}}

		opts := options.UpdateOne().SetUpsert(true)
		if _, err := r.master.UpdateOne(ctx, filter, update, opts); err != nil {
			return upserted, fmt.Errorf("failed to upsert employee %s: %w", emp.EmployeeNumber, err)
		}
		upserted++
	}
	return upserted, nil
}

func (r *EmployeeRepository) FindAllSkills(ctx context.Context) ([]*models.SkillRecord, error) {
	cursor, err := r.skills.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find skill records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*models.SkillRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode skill records: %w", err)
	}

	return records, nil
}

func (r *EmployeeRepository) FindAllAllocations(ctx context.Context) ([]*models.AllocationRecord, error) {
	cursor, err := r.allocations.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find allocation records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*models.AllocationRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode allocation records: %w", err)
	}

	return records, nil
}

func (r *EmployeeRepository) CountEmployees(ctx context.Context) (int64, error) {
	count, err := r.master.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

func (r *EmployeeRepository) CreateIndexes(ctx context.Context) error {
	masterIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employeeNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
	}
	if _, err := r.master.Indexes().CreateMany(ctx, masterIndexes); err != nil {
		return fmt.Errorf("failed to create employee indexes: %w", err)
	}

	ownerIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "employeeNumber", Value: 1}},
		},
	}
	if _, err := r.skills.Indexes().CreateMany(ctx, ownerIndex); err != nil {
		return fmt.Errorf("failed to create skill indexes: %w", err)
	}
	if _, err := r.allocations.Indexes().CreateMany(ctx, ownerIndex); err != nil {
		return fmt.Errorf("failed to create allocation indexes: %w", err)
	}

	return nil
}
