package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"community-support-platform/config"
	"community-support-platform/pkg/generative"
	pkgLog "community-support-platform/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Assistant domain
	backend generative.Backend
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Backend answers unmatched questions. Pass generative.NewDisabled()
	// when no provider is configured.
	Backend generative.Backend
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		backend:     cfg.Backend,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.backend == nil {
		return errors.New("generative backend is required (use generative.NewDisabled())")
	}
	return nil
}
