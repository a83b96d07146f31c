package endpoint

import "net/http"

// ApiHandler is the signature every route handler implements. Returning a
// non-nil *ApiError lets the adapter own logging, reporting and the error
// payload shape.
type ApiHandler func(http.ResponseWriter, *http.Request) *ApiError

type Middleware func(ApiHandler) ApiHandler

type ApiError struct {
	Message string         `json:"message"`
	Status  int            `json:"status"`
	Data    map[string]any `json:"data,omitempty"`
	Err     error          `json:"-"`
}

func (e *ApiError) Error() string {
	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

type ErrorResponse struct {
	Error  string         `json:"error"`
	Status int            `json:"status"`
	Data   map[string]any `json:"data,omitempty"`
}
