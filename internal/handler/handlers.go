package handler

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shahin-hossain-dev/job-hive-server/internal/application"
	"github.com/shahin-hossain-dev/job-hive-server/internal/blog"
	"github.com/shahin-hossain-dev/job-hive-server/internal/job"
	"github.com/shahin-hossain-dev/job-hive-server/internal/server"
)

type jobFinder interface {
	All(ctx context.Context) ([]job.Job, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*job.Job, error)
	ByCategory(ctx context.Context, category string) ([]job.Job, error)
	ByPosterEmail(ctx context.Context, email string) ([]job.Job, error)
}

type jobWriter interface {
	Create(ctx context.Context, fields bson.M) (*mongo.InsertOneResult, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	IncrementApplicants(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type blogFinder interface {
	All(ctx context.Context) ([]blog.BlogPost, error)
}

type applicationFinder interface {
	ByApplicantEmail(ctx context.Context, email string) ([]application.AppliedJob, error)
}

type applicationSaver interface {
	Create(ctx context.Context, fields bson.M) (*mongo.InsertOneResult, error)
}

func IndexHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.TEXT(w, http.StatusOK, "Jobhive Server is Running")
	}
}

func badRequest(svr server.Server, w http.ResponseWriter, msg string) {
	svr.JSON(w, http.StatusBadRequest, map[string]string{"message": msg})
}

func forbidden(svr server.Server, w http.ResponseWriter) {
	svr.JSON(w, http.StatusForbidden, map[string]string{"message": "forbidden access"})
}

func internalError(svr server.Server, w http.ResponseWriter, err error, msg string) {
	svr.Log(err, msg)
	svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Oops! An internal error has occurred"})
}
