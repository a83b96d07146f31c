package middleware

import (
	"github.com/junle/metal/env"
	"github.com/junle/pkg/endpoint"
)

type Pipeline struct {
	Env      *env.Environment
	Throttle ThrottleMiddleware
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}
