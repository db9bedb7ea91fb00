package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"zenith-planner/internal/auth"
	"zenith-planner/internal/middleware"
	taskHTTP "zenith-planner/internal/task/delivery/http"
	taskRepo "zenith-planner/internal/task/repository/postgre"
	taskUC "zenith-planner/internal/task/usecase"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires the task and auth domains.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	repo := taskRepo.New(srv.postgresDB, srv.l)
	mw := middleware.New(srv.l, repo, srv.sessionSecret, srv.rateLimit)
	srv.gin.Use(mw.RequestID())

	api := srv.gin.Group("/api/v1")

	uc := taskUC.New(srv.l, srv.extractor, repo, srv.dateMath)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Task domain registered")

	if srv.googleClient != nil {
		ah := auth.New(srv.l, srv.googleClient, repo, srv.sessionSecret)
		auth.RegisterRoutes(api, ah)
		srv.l.Infof(ctx, "Google login routes registered")
	} else {
		srv.l.Infof(ctx, "Google login not configured, skipping auth routes")
	}

	return nil
}
