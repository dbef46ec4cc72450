// Package connection executes signed requests against the NCMB REST API.
//
// The HTTP transport is injected through Doer; *http.Client satisfies it,
// and tests substitute a fake RoundTripper or an httptest server.
package connection

import (
	"context"
	"net/http"
	"time"

	"github.com/ncmb/ncmb.go/pkg/logger"
	"github.com/ncmb/ncmb.go/pkg/request"
)

// Doer sends one HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Connection interface {
	// Send executes req once and decodes the response body.
	Send(ctx context.Context, req *request.Request) (map[string]any, error)
	// SendAsync executes req in the background. The channel yields exactly
	// one Result and is then closed.
	SendAsync(ctx context.Context, req *request.Request) <-chan Result
}

// Result is the outcome of an asynchronous send. Exactly one of Body and
// Err is meaningful.
type Result struct {
	Body map[string]any
	Err  error
}

type NewConnectionParams struct {
	HTTPClient Doer
	// Timeout applies to requests that do not carry their own.
	Timeout time.Duration
	Logger  logger.Logger
}
