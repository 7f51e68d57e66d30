package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shahin-hossain-dev/job-hive-server/internal/database"
	"github.com/shahin-hossain-dev/job-hive-server/internal/job"
	"github.com/shahin-hossain-dev/job-hive-server/internal/middleware"
	"github.com/shahin-hossain-dev/job-hive-server/internal/server"
)

func ListJobsHandler(svr server.Server, jobRepo jobFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := jobRepo.All(r.Context())
		if err != nil {
			internalError(svr, w, err, "unable to list jobs")
			return
		}
		svr.JSON(w, http.StatusOK, jobs)
	}
}

// JobByIDHandler responds with a null body when no job matches, absence is
// not an error on this route.
func JobByIDHandler(svr server.Server, jobRepo jobFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := database.ParseID(mux.Vars(r)["id"])
		if err != nil {
			badRequest(svr, w, "malformed job id")
			return
		}
		j, err := jobRepo.ByID(r.Context(), id)
		if err != nil {
			internalError(svr, w, err, "unable to get job by id")
			return
		}
		if j == nil {
			svr.NullJSON(w, http.StatusOK)
			return
		}
		svr.JSON(w, http.StatusOK, j)
	}
}

// JobsByCategoryHandler matches the type query parameter exactly against
// the stored category field.
func JobsByCategoryHandler(svr server.Server, jobRepo jobFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("type")
		jobs, err := jobRepo.ByCategory(r.Context(), category)
		if err != nil {
			internalError(svr, w, err, "unable to filter jobs by category")
			return
		}
		svr.JSON(w, http.StatusOK, jobs)
	}
}

// MyJobsHandler lists the postings owned by the authenticated identity.
// The email query parameter must match the identity attached by the auth
// gate.
func MyJobsHandler(svr server.Server, jobRepo jobFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := middleware.EmailFromContext(r.Context())
		if !ok || r.URL.Query().Get("email") != email {
			forbidden(svr, w)
			return
		}
		jobs, err := jobRepo.ByPosterEmail(r.Context(), email)
		if err != nil {
			internalError(svr, w, err, "unable to list jobs by poster email")
			return
		}
		svr.JSON(w, http.StatusOK, jobs)
	}
}

// CreateJobHandler inserts the mapped document and echoes the store's
// insert acknowledgement, including the assigned id.
func CreateJobHandler(svr server.Server, jobRepo jobWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq job.JobRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			badRequest(svr, w, "malformed request body")
			return
		}
		res, err := jobRepo.Create(r.Context(), rq.Fields())
		if err != nil {
			internalError(svr, w, err, "unable to create job")
			return
		}
		svr.JSON(w, http.StatusOK, res)
	}
}

// UpdateJobHandler replaces the mapped field set on the matched posting,
// creating one when the id has no match (upsert).
func UpdateJobHandler(svr server.Server, jobRepo jobWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := database.ParseID(mux.Vars(r)["id"])
		if err != nil {
			badRequest(svr, w, "malformed job id")
			return
		}
		var rq job.JobRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			badRequest(svr, w, "malformed request body")
			return
		}
		res, err := jobRepo.UpdateByID(r.Context(), id, rq.Fields())
		if err != nil {
			internalError(svr, w, err, "unable to update job")
			return
		}
		svr.JSON(w, http.StatusOK, res)
	}
}

// IncrementJobApplicantsHandler bumps the applicant count by exactly one
// via the store's atomic increment. A missing id is a no-op response.
func IncrementJobApplicantsHandler(svr server.Server, jobRepo jobWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := database.ParseID(mux.Vars(r)["id"])
		if err != nil {
			badRequest(svr, w, "malformed job id")
			return
		}
		res, err := jobRepo.IncrementApplicants(r.Context(), id)
		if err != nil {
			internalError(svr, w, err, "unable to increment job applicants")
			return
		}
		svr.JSON(w, http.StatusOK, res)
	}
}

// DeleteJobHandler is idempotent, deleting an absent id reports a zero
// deleted count rather than an error.
func DeleteJobHandler(svr server.Server, jobRepo jobWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := database.ParseID(mux.Vars(r)["id"])
		if err != nil {
			badRequest(svr, w, "malformed job id")
			return
		}
		res, err := jobRepo.Delete(r.Context(), id)
		if err != nil {
			internalError(svr, w, err, "unable to delete job")
			return
		}
		svr.JSON(w, http.StatusOK, res)
	}
}
