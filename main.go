package main

import (
	"log"

	"github.com/gorilla/mux"

	"github.com/shahin-hossain-dev/job-hive-server/internal/application"
	"github.com/shahin-hossain-dev/job-hive-server/internal/blog"
	"github.com/shahin-hossain-dev/job-hive-server/internal/config"
	"github.com/shahin-hossain-dev/job-hive-server/internal/database"
	"github.com/shahin-hossain-dev/job-hive-server/internal/handler"
	"github.com/shahin-hossain-dev/job-hive-server/internal/job"
	"github.com/shahin-hossain-dev/job-hive-server/internal/middleware"
	"github.com/shahin-hossain-dev/job-hive-server/internal/server"
	"github.com/shahin-hossain-dev/job-hive-server/internal/token"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load config: %+v", err)
	}
	conn, err := database.GetDbConn(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Fatalf("unable to connect to mongo: %v", err)
	}
	defer database.CloseDbConn(conn)

	tokens := token.NewService(cfg.JwtSigningKey)
	jobRepo := job.NewRepository(conn)
	blogRepo := blog.NewRepository(conn)
	appRepo := application.NewRepository(conn)

	svr := server.NewServer(cfg, conn, mux.NewRouter())

	svr.RegisterRoute("/", handler.IndexHandler(svr), []string{"GET"})

	// session cookie issue/clear
	svr.RegisterRoute("/jwt", handler.IssueTokenHandler(svr, tokens), []string{"POST"})
	svr.RegisterRoute("/logout", handler.LogoutHandler(svr), []string{"POST"})

	// jobs
	svr.RegisterRoute("/jobs", handler.ListJobsHandler(svr, jobRepo), []string{"GET"})
	svr.RegisterRoute("/jobs", handler.CreateJobHandler(svr, jobRepo), []string{"POST"})
	svr.RegisterRoute("/job", handler.JobsByCategoryHandler(svr, jobRepo), []string{"GET"})
	svr.RegisterRoute("/job/{id}", handler.JobByIDHandler(svr, jobRepo), []string{"GET"})
	svr.RegisterRoute("/job/{id}", handler.UpdateJobHandler(svr, jobRepo), []string{"PUT"})
	svr.RegisterRoute("/job/{id}", handler.IncrementJobApplicantsHandler(svr, jobRepo), []string{"PATCH"})
	svr.RegisterRoute("/job/{id}", handler.DeleteJobHandler(svr, jobRepo), []string{"DELETE"})

	// blogs
	svr.RegisterRoute("/blogs", handler.ListBlogsHandler(svr, blogRepo), []string{"GET"})

	// applications
	svr.RegisterRoute("/applied", handler.CreateAppliedJobHandler(svr, appRepo), []string{"POST"})

	//
	// private routes
	// protected by token cookie auth
	//

	svr.RegisterRoute("/my-jobs", middleware.TokenAuthenticatedMiddleware(tokens, handler.MyJobsHandler(svr, jobRepo)), []string{"GET"})
	svr.RegisterRoute("/applied-jobs", middleware.TokenAuthenticatedMiddleware(tokens, handler.AppliedJobsHandler(svr, appRepo)), []string{"GET"})

	log.Fatal(svr.Run())
}
