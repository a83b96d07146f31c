package endpoint

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
)

func NewApiHandler(fn ApiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			slog.Error("API Error", "message", err.Message, "status", err.Status)

			captureApiError(r, err)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(err.Status)

			resp := ErrorResponse{
				Error:  err.Message,
				Status: err.Status,
				Data:   err.Data,
			}

			if result := json.NewEncoder(w).Encode(resp); result != nil {
				slog.Error("Could not encode error response", "error", result)
			}
		}
	}
}

func captureApiError(r *http.Request, apiErr *ApiError) {
	if apiErr == nil {
		return
	}

	errToCapture := error(apiErr)
	if apiErr.Err != nil {
		errToCapture = apiErr.Err
	}

	notify := func(hub *sentry.Hub) {
		hub.WithScope(func(scope *sentry.Scope) {
			scopeApiError := NewScopeApiError(scope, r, apiErr)

			scopeApiError.Enrich()

			// Expected client errors stay below alerting thresholds while
			// server errors keep their full severity.
			level := getSentryLevel(apiErr.Status)
			scope.SetLevel(level)

			hub.CaptureException(errToCapture)
		})
	}

	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		notify(hub)
		return
	}

	notify(sentry.CurrentHub())
}

func getSentryLevel(status int) sentry.Level {
	switch status {
	case http.StatusNotFound,
		http.StatusConflict,
		http.StatusUnprocessableEntity,
		http.StatusTooManyRequests:
		return sentry.LevelInfo
	default:
		return sentry.LevelError
	}
}

type ScopeApiError struct {
	scope   *sentry.Scope
	request *http.Request
	apiErr  *ApiError
}

func NewScopeApiError(scope *sentry.Scope, r *http.Request, apiErr *ApiError) *ScopeApiError {
	return &ScopeApiError{
		scope:   scope,
		request: r,
		apiErr:  apiErr,
	}
}

func (s *ScopeApiError) Enrich() {
	scope := s.scope

	if s.request != nil {
		scope.SetTag("http.method", s.request.Method)
		scope.SetTag("http.route", s.request.URL.Path)
	}

	if s.apiErr == nil {
		return
	}

	scope.SetTag("http.status_code", fmt.Sprintf("%d", s.apiErr.Status))

	if s.apiErr.Status >= http.StatusBadRequest && s.apiErr.Status < http.StatusInternalServerError {
		scope.SetLevel(sentry.LevelWarning)
	} else {
		scope.SetLevel(sentry.LevelError)
	}

	if chain := s.buildErrorChain(s.apiErr.Err); len(chain) > 0 {
		scope.SetContext("error_chain", map[string]any{
			"errors": strings.Join(chain, " | "),
		})
	}
}

func (s *ScopeApiError) buildErrorChain(err error) []string {
	var chain []string

	for err != nil {
		chain = append(chain, err.Error())

		unwrapped, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}

		err = unwrapped.Unwrap()
	}

	return chain
}
