package blog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shahin-hossain-dev/job-hive-server/internal/database"
)

const collection = "blogs"

type Repository struct {
	store *database.Store
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{store: database.NewStore(db, collection)}
}

func (r *Repository) All(ctx context.Context) ([]BlogPost, error) {
	all := make([]BlogPost, 0)
	if err := r.store.Find(ctx, bson.M{}, &all); err != nil {
		return nil, err
	}
	return all, nil
}
