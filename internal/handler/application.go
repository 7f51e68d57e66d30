package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shahin-hossain-dev/job-hive-server/internal/application"
	"github.com/shahin-hossain-dev/job-hive-server/internal/middleware"
	"github.com/shahin-hossain-dev/job-hive-server/internal/server"
)

// AppliedJobsHandler lists the applications submitted by the authenticated
// identity, the email query parameter must match it.
func AppliedJobsHandler(svr server.Server, appRepo applicationFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := middleware.EmailFromContext(r.Context())
		if !ok || r.URL.Query().Get("email") != email {
			forbidden(svr, w)
			return
		}
		applied, err := appRepo.ByApplicantEmail(r.Context(), email)
		if err != nil {
			internalError(svr, w, err, "unable to list applied jobs")
			return
		}
		svr.JSON(w, http.StatusOK, applied)
	}
}

// CreateAppliedJobHandler records a submission as-is. The referenced job
// is not checked for existence and duplicate applications are accepted.
func CreateAppliedJobHandler(svr server.Server, appRepo applicationSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq application.AppliedJobRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			badRequest(svr, w, "malformed request body")
			return
		}
		res, err := appRepo.Create(r.Context(), rq.Fields())
		if err != nil {
			internalError(svr, w, err, "unable to create applied job")
			return
		}
		svr.JSON(w, http.StatusOK, res)
	}
}
