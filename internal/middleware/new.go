package middleware

import (
	"smart-task-scheduler/config"
	"smart-task-scheduler/pkg/log"
)

type Middleware struct {
	l       log.Logger
	apiKey  string
	limiter *rateLimiter
}

func New(l log.Logger, authCfg config.AuthConfig) Middleware {
	return Middleware{
		l:       l,
		apiKey:  authCfg.APIKey,
		limiter: newRateLimiter(authCfg.RateLimitPerMin),
	}
}
