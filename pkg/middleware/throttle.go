package middleware

import (
	"fmt"
	baseHttp "net/http"
	"strings"
	"time"

	"github.com/junle/pkg/cache"
	"github.com/junle/pkg/endpoint"
	"github.com/junle/pkg/limiter"
	"github.com/junle/pkg/portal"
)

// ThrottleMiddleware protects comment submission from abuse. It applies a
// simple in-memory rate limiter keyed by client IP and rejects the replay of
// an identical submission within a TTL window via TTLCache.
type ThrottleMiddleware struct {
	submissionTTL time.Duration
	rateLimiter   *limiter.MemoryLimiter
	replayCache   *cache.TTLCache
}

func MakeThrottleMiddleware() ThrottleMiddleware {
	return ThrottleMiddleware{
		submissionTTL: 5 * time.Minute,
		rateLimiter:   limiter.NewMemoryLimiter(1*time.Minute, 10),
		replayCache:   cache.NewTTLCache(),
	}
}

func (t ThrottleMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		if err := t.GuardDependencies(); err != nil {
			return err
		}

		ip := portal.ParseClientIP(r)

		if t.rateLimiter.TooMany(ip) {
			return endpoint.TooManyRequests("slow down and try again in a minute")
		}

		t.rateLimiter.Hit(ip)

		if err := r.ParseForm(); err != nil {
			return endpoint.BadRequestError("invalid form payload")
		}

		// ParseForm leaves the parsed values on the request, so handlers
		// downstream read the same data without touching the body again.
		key := strings.Join([]string{ip, r.URL.Path, r.PostForm.Encode()}, "|")

		if t.replayCache.UseOnce(key, t.submissionTTL) {
			return endpoint.Conflict("this comment was already submitted")
		}

		return next(w, r)
	}
}

func (t ThrottleMiddleware) GuardDependencies() *endpoint.ApiError {
	missing := []string{}

	if t.replayCache == nil {
		missing = append(missing, "replayCache")
	}

	if t.rateLimiter == nil {
		missing = append(missing, "rateLimiter")
	}

	if len(missing) > 0 {
		err := fmt.Errorf("throttle middleware missing dependencies: %s", strings.Join(missing, ","))
		return endpoint.LogInternalError("throttle middleware missing dependencies", err)
	}

	return nil
}
