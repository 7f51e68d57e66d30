package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/getsentry/raven-go"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shahin-hossain-dev/job-hive-server/internal/config"
	"github.com/shahin-hossain-dev/job-hive-server/internal/middleware"
)

const CacheKeyAllBlogs = "allBlogs"

type Server struct {
	cfg      config.Config
	Conn     *mongo.Database
	router   *mux.Router
	bigCache *bigcache.BigCache
}

func NewServer(cfg config.Config, conn *mongo.Database, r *mux.Router) Server {
	raven.SetDSN(cfg.SentryDSN)

	bigCache, err := bigcache.NewBigCache(bigcache.DefaultConfig(12 * time.Hour))
	svr := Server{
		cfg:      cfg,
		Conn:     conn,
		router:   r,
		bigCache: bigCache,
	}
	if err != nil {
		svr.Log(err, "unable to initialise big cache")
	}

	return svr
}

func (s Server) RegisterRoute(path string, handler func(w http.ResponseWriter, r *http.Request), methods []string) {
	s.router.HandleFunc(path, handler).Methods(methods...)
}

func (s Server) GetConfig() config.Config {
	return s.cfg
}

func (s Server) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// NullJSON writes a literal null body, the not-found shape for by-id reads.
func (s Server) NullJSON(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte("null"))
}

func (s Server) TEXT(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

func (s Server) Log(err error, msg string) {
	raven.CaptureErrorAndWait(err, map[string]string{"ctx": msg})
	log.Printf("%s: %+v", msg, err)
}

func (s Server) CacheGet(key string) ([]byte, bool) {
	if s.bigCache == nil {
		return []byte{}, false
	}
	out, err := s.bigCache.Get(key)
	if err != nil {
		return []byte{}, false
	}
	return out, true
}

func (s Server) CacheSet(key string, val []byte) error {
	if s.bigCache == nil {
		return nil
	}
	return s.bigCache.Set(key, val)
}

func (s Server) CacheDelete(key string) error {
	if s.bigCache == nil {
		return nil
	}
	return s.bigCache.Delete(key)
}

func (s Server) Run() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	if s.cfg.Env == "dev" {
		log.Printf("local env http://localhost:%s", s.cfg.Port)
		addr = fmt.Sprintf("localhost:%s", s.cfg.Port)
	}
	return http.ListenAndServe(
		addr,
		middleware.CORSMiddleware(
			middleware.LoggingMiddleware(middleware.HeadersMiddleware(s.router, s.cfg.Env)),
			s.cfg.AllowedOrigins,
		),
	)
}
