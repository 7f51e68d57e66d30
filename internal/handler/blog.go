package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shahin-hossain-dev/job-hive-server/internal/server"
)

// ListBlogsHandler serves the read-only blog list. The serialized list is
// cached, blogs only change out of band so a stale entry ages out by TTL.
func ListBlogsHandler(svr server.Server, blogRepo blogFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, ok := svr.CacheGet(server.CacheKeyAllBlogs); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		blogs, err := blogRepo.All(r.Context())
		if err != nil {
			internalError(svr, w, err, "unable to list blogs")
			return
		}
		body, err := json.Marshal(blogs)
		if err != nil {
			internalError(svr, w, err, "unable to marshal blog list")
			return
		}
		if err := svr.CacheSet(server.CacheKeyAllBlogs, body); err != nil {
			svr.Log(err, "unable to cache blog list")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}
