package middleware

import (
	"community-support-platform/config"
	pkgLog "community-support-platform/pkg/log"
)

type Middleware struct {
	l        pkgLog.Logger
	config   *config.Config
	limiters *ipLimiters
}

func New(l pkgLog.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:        l,
		config:   cfg,
		limiters: newIPLimiters(cfg.Assistant.RateLimitPerMin),
	}
}
