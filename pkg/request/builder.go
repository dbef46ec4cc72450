// Package request assembles signed NCMB REST requests.
//
// A Builder turns a Spec (method, API type, path segments, query, body)
// into an *http.Request addressed at
//
//	{domain}/{apiVersion}/{apiType}/{subpath...}?{sorted query}
//
// carrying the application key, timestamp and signature headers.
package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/signature"
)

// Credentials identify the application and the endpoint it talks to.
type Credentials struct {
	ApplicationKey string
	ClientKey      string
	DomainURL      string
	APIVersion     string
	SDKVersion     string
	OSVersion      string
}

// Spec describes one request before signing.
type Spec struct {
	Method  string
	APIType string
	Subpath []string
	Headers map[string]string
	// Queries are sorted by key. A nil value emits the bare key.
	Queries map[string]any
	Body    []byte
	// ContentType is sent together with Content-Length when Body is
	// non-empty. constants.ContentTypeNone suppresses both.
	ContentType string
	// Timeout bounds the whole exchange. Zero leaves it to the transport.
	Timeout time.Duration
}

// Request is a signed request ready for the transport.
type Request struct {
	HTTP      *http.Request
	Timeout   time.Duration
	Signature string
}

type Builder struct {
	creds  Credentials
	signer *signature.Calculator
	now    func() time.Time
}

func NewBuilder(creds Credentials) *Builder {
	if creds.DomainURL == "" {
		creds.DomainURL = constants.DefaultDomainURL
	}
	if creds.APIVersion == "" {
		creds.APIVersion = constants.DefaultAPIVersion
	}
	if creds.SDKVersion == "" {
		creds.SDKVersion = constants.SDKVersion
	}
	if creds.OSVersion == "" {
		creds.OSVersion = DefaultOSVersion()
	}
	return &Builder{
		creds:  creds,
		signer: signature.New(creds.ApplicationKey, creds.ClientKey),
		now:    time.Now,
	}
}

// DefaultOSVersion is the X-NCMB-OS-Version sent when none is configured.
func DefaultOSVersion() string {
	return runtime.GOOS + "-" + runtime.GOARCH
}

// WithClock replaces the time source used for the timestamp header.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

func (b *Builder) Credentials() Credentials {
	return b.creds
}

// URL returns the request URL for spec without signing it.
func (b *Builder) URL(spec Spec) (*url.URL, error) {
	base, err := url.Parse(b.creds.DomainURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidDomainURL, err)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidDomainURL, b.creds.DomainURL)
	}

	segments := []string{strings.TrimRight(base.Path, "/"), url.PathEscape(b.creds.APIVersion), url.PathEscape(spec.APIType)}
	for _, s := range spec.Subpath {
		segments = append(segments, url.PathEscape(s))
	}

	rawQuery, err := EncodeQuery(spec.Queries)
	if err != nil {
		return nil, err
	}

	raw := base.Scheme + "://" + base.Host + strings.Join(segments, "/")
	if rawQuery != "" {
		raw += "?" + rawQuery
	}
	return url.Parse(raw)
}

// Build signs spec at the current time. sessionToken is attached when
// non-empty.
func (b *Builder) Build(ctx context.Context, spec Spec, sessionToken string) (*Request, error) {
	u, err := b.URL(spec)
	if err != nil {
		return nil, err
	}

	method := strings.ToUpper(spec.Method)
	if method == "" {
		method = http.MethodGet
	}

	timestamp := b.now()
	sig, err := b.signer.SignURL(method, u, timestamp)
	if err != nil {
		return nil, err
	}

	var body io.Reader = http.NoBody
	if len(spec.Body) > 0 {
		body = bytes.NewReader(spec.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	for k, v := range spec.Headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set(constants.HeaderApplicationKey, b.creds.ApplicationKey)
	httpReq.Header.Set(constants.HeaderTimestamp, signature.FormatTimestamp(timestamp))
	httpReq.Header.Set(constants.HeaderSignature, sig)
	httpReq.Header.Set(constants.HeaderSDKVersion, b.creds.SDKVersion)
	httpReq.Header.Set(constants.HeaderOSVersion, b.creds.OSVersion)
	if sessionToken != "" {
		httpReq.Header.Set(constants.HeaderSessionToken, sessionToken)
	}
	if len(spec.Body) > 0 && spec.ContentType != constants.ContentTypeNone {
		httpReq.Header.Set(constants.HeaderContentType, spec.ContentType)
		httpReq.Header.Set(constants.HeaderContentLength, strconv.Itoa(len(spec.Body)))
	}

	return &Request{
		HTTP:      httpReq,
		Timeout:   spec.Timeout,
		Signature: sig,
	}, nil
}
