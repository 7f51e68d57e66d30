package job

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shahin-hossain-dev/job-hive-server/internal/database"
)

const collection = "demoJobs"

type Repository struct {
	store *database.Store
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{store: database.NewStore(db, collection)}
}

func (r *Repository) All(ctx context.Context) ([]Job, error) {
	all := make([]Job, 0)
	if err := r.store.Find(ctx, bson.M{}, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// ByID returns nil when no job matches, absence is not an error.
func (r *Repository) ByID(ctx context.Context, id primitive.ObjectID) (*Job, error) {
	var j Job
	found, err := r.store.FindByID(ctx, id, &j)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &j, nil
}

func (r *Repository) ByCategory(ctx context.Context, category string) ([]Job, error) {
	all := make([]Job, 0)
	if err := r.store.Find(ctx, bson.M{"job_category": category}, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *Repository) ByPosterEmail(ctx context.Context, email string) ([]Job, error) {
	all := make([]Job, 0)
	if err := r.store.Find(ctx, bson.M{"user_email": email}, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *Repository) Create(ctx context.Context, fields bson.M) (*mongo.InsertOneResult, error) {
	return r.store.InsertOne(ctx, fields)
}

// UpdateByID replaces the mapped field set, creating the document when the
// id has no match.
func (r *Repository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	return r.store.UpdateByID(ctx, id, fields, true)
}

// IncrementApplicants bumps the applicant count by exactly one using the
// store's atomic increment, concurrent calls never lose updates.
func (r *Repository) IncrementApplicants(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return r.store.IncByID(ctx, id, "job_applicants", 1)
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.store.DeleteByID(ctx, id)
}
