package connection

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ncmb/ncmb.go/internal/rand"
	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/logger"
	"github.com/ncmb/ncmb.go/pkg/request"
	"github.com/ncmb/ncmb.go/pkg/response"
)

type HTTPConnection struct {
	httpClient Doer
	timeout    time.Duration
	logger     logger.Logger
}

var _ Connection = (*HTTPConnection)(nil)

const redacted = "xxxxx"

func NewHTTPConnection(p NewConnectionParams) *HTTPConnection {
	con := HTTPConnection{
		httpClient: p.HTTPClient,
		timeout:    p.Timeout,
		logger:     p.Logger,
	}

	if con.httpClient == nil {
		con.httpClient = &http.Client{
			Timeout: constants.DefaultHTTPTimeout, // Set a default timeout to avoid hanging requests
		}
	}
	if con.logger == nil {
		con.logger = logger.Nop{}
	}

	return &con
}

// SetTimeout sets the timeout used for requests without their own.
func (h *HTTPConnection) SetTimeout(timeout time.Duration) *HTTPConnection {
	h.timeout = timeout
	return h
}

func (h *HTTPConnection) SetHTTPClient(client Doer) *HTTPConnection {
	h.httpClient = client
	return h
}

func (h *HTTPConnection) Send(ctx context.Context, req *request.Request) (map[string]any, error) {
	if req == nil || req.HTTP == nil {
		return nil, fmt.Errorf("%w: nil request", constants.ErrInvalidResponse)
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = h.timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	httpReq := req.HTTP.WithContext(ctx)
	requestID := rand.NewRequestID(constants.RequestIDLength)
	h.logger.Debug("sending request",
		"request_id", requestID,
		"method", httpReq.Method,
		"url", redactURL(httpReq.URL),
	)

	start := time.Now()
	resp, err := h.MakeRequest(httpReq)
	if err != nil {
		h.logger.Error("request failed", "request_id", requestID, "error", err.Error())
		return nil, err
	}

	body, err := response.FromHTTP(resp)
	h.logger.Debug("received response",
		"request_id", requestID,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).String(),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (h *HTTPConnection) SendAsync(ctx context.Context, req *request.Request) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		body, err := h.Send(ctx, req)
		ch <- Result{Body: body, Err: err}
	}()
	return ch
}

// MakeRequest hands req to the transport. Transport errors are returned
// wrapped, never retried.
func (h *HTTPConnection) MakeRequest(req *http.Request) (*http.Response, error) {
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, redactURL(req.URL), err)
	}
	if resp == nil {
		return nil, constants.ErrInvalidResponse
	}
	return resp, nil
}

// redactURL renders u for logs and errors with user info and the value of
// the password query parameter masked.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	masked := *u
	if masked.RawQuery != "" {
		pairs := strings.Split(masked.RawQuery, "&")
		for i, pair := range pairs {
			key, _, hasValue := strings.Cut(pair, "=")
			if hasValue && key == constants.QueryPassword {
				pairs[i] = key + "=" + redacted
			}
		}
		masked.RawQuery = strings.Join(pairs, "&")
	}
	return masked.Redacted()
}
