package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shahin-hossain-dev/job-hive-server/internal/database"
)

const collection = "appliedJobs"

type Repository struct {
	store *database.Store
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{store: database.NewStore(db, collection)}
}

func (r *Repository) ByApplicantEmail(ctx context.Context, email string) ([]AppliedJob, error) {
	all := make([]AppliedJob, 0)
	if err := r.store.Find(ctx, bson.M{"applicant_email": email}, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *Repository) Create(ctx context.Context, fields bson.M) (*mongo.InsertOneResult, error) {
	return r.store.InsertOne(ctx, fields)
}
