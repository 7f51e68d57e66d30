package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// GetDbConn tries to establish a connection to mongo and returns the database handle.
// The returned handle is safe for concurrent use, the driver maintains its own pool.
func GetDbConn(databaseURL, databaseName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(databaseURL))
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to mongo")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "unable to ping mongo")
	}
	return client.Database(databaseName), nil
}

// CloseDbConn closes db conn
func CloseDbConn(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	db.Client().Disconnect(ctx)
}

// ParseID validates a client-supplied document id. Ids are always
// store-assigned, handlers only ever echo them back.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(err, "malformed document id %q", id)
	}
	return oid, nil
}

// Store is a thin pass-through over a mongo collection. Each method maps
// 1:1 to a store primitive and propagates driver failures wrapped, never
// swallowed.
type Store struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database, collection string) *Store {
	return &Store{coll: db.Collection(collection)}
}

func (s *Store) Find(ctx context.Context, filter bson.M, out interface{}) error {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return errors.Wrapf(err, "find on %s", s.coll.Name())
	}
	if err := cur.All(ctx, out); err != nil {
		return errors.Wrapf(err, "decode find results on %s", s.coll.Name())
	}
	return nil
}

// FindByID decodes the matching document into out. A missing document is
// not an error: found reports false and out is left untouched.
func (s *Store) FindByID(ctx context.Context, id primitive.ObjectID, out interface{}) (bool, error) {
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "find one on %s", s.coll.Name())
	}
	return true, nil
}

func (s *Store) InsertOne(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, errors.Wrapf(err, "insert one on %s", s.coll.Name())
	}
	return res, nil
}

// UpdateByID applies a $set of fields to the document matched by id,
// creating it when upsert is requested and no document matches.
func (s *Store) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M, upsert bool) (*mongo.UpdateResult, error) {
	res, err := s.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.Update().SetUpsert(upsert),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "update one on %s", s.coll.Name())
	}
	return res, nil
}

// IncByID atomically increments a numeric field on the document matched by
// id. Concurrent callers must never read-modify-write the field, the store
// is the sole arbiter of write ordering.
func (s *Store) IncByID(ctx context.Context, id primitive.ObjectID, field string, by int) (*mongo.UpdateResult, error) {
	res, err := s.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{field: by}},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "increment on %s", s.coll.Name())
	}
	return res, nil
}

// DeleteByID is idempotent: deleting an absent id yields DeletedCount 0,
// not an error.
func (s *Store) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, errors.Wrapf(err, "delete one on %s", s.coll.Name())
	}
	return res, nil
}
