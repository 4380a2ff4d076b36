package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chartHTTP "community-support-platform/internal/chart/delivery/http"
	chartUC "community-support-platform/internal/chart/usecase"
	datasetHTTP "community-support-platform/internal/dataset/delivery/http"
	datasetMemory "community-support-platform/internal/dataset/repository/memory"
	datasetUC "community-support-platform/internal/dataset/usecase"
	"community-support-platform/internal/middleware"
)

// setupDatasetDomains initializes the dataset and chart domains. They share
// one in-memory repository: charts read the datasets uploads write.
func (srv HTTPServer) setupDatasetDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository (shared)
	repo, err := datasetMemory.New(srv.l, srv.cfg.Upload.StoreCapacity)
	if err != nil {
		return err
	}

	// 2. UseCases
	dsUC := datasetUC.New(srv.l, repo, srv.cfg.Upload)
	chUC := chartUC.New(srv.l, repo)

	// 3. HTTP Handlers
	dsHandler := datasetHTTP.New(srv.l, dsUC)
	chHandler := chartHTTP.New(srv.l, chUC)

	// 4. Routes
	datasetHTTP.RegisterRoutes(api, dsHandler, mw)
	chartHTTP.RegisterRoutes(api, chHandler, mw)

	srv.l.Infof(ctx, "Dataset and chart domains registered (store capacity: %d)",
		srv.cfg.Upload.StoreCapacity)
	return nil
}
