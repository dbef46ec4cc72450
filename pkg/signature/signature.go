// Package signature computes the X-NCMB-Signature header value.
//
// The signed plaintext is
//
//	METHOD \n HOST \n PATH \n PARAMS
//
// where HOST is the host name without port, PATH is the decoded URL path and
// PARAMS is the "&"-join of the signature method, signature version,
// application key and timestamp pairs, plus the raw query string for GET
// requests, sorted as whole strings. The signature is the base64 encoded
// HMAC-SHA256 of the plaintext keyed with the client key.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/models"
)

const (
	Method  = "HmacSHA256"
	Version = "2"
)

// Calculator signs requests for one application.
type Calculator struct {
	ApplicationKey string
	ClientKey      string
}

func New(applicationKey, clientKey string) *Calculator {
	return &Calculator{ApplicationKey: applicationKey, ClientKey: clientKey}
}

// FormatTimestamp renders t the way both the signature and the
// X-NCMB-Timestamp header expect it: ISO-8601 UTC with milliseconds.
func FormatTimestamp(t time.Time) string {
	return models.NewDate(t).String()
}

// Plaintext returns the canonical string signed for a request to rawURL.
func (c *Calculator) Plaintext(method, rawURL string, timestamp time.Time) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", constants.ErrInvalidDomainURL, err)
	}
	return c.plaintext(method, u, timestamp)
}

// Signature returns the signature of a request to rawURL.
func (c *Calculator) Signature(method, rawURL string, timestamp time.Time) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", constants.ErrInvalidDomainURL, err)
	}
	return c.SignURL(method, u, timestamp)
}

// SignURL returns the signature of a request to u. The query is taken from
// u.RawQuery verbatim, so it must already carry its final encoding.
func (c *Calculator) SignURL(method string, u *url.URL, timestamp time.Time) (string, error) {
	plaintext, err := c.plaintext(method, u, timestamp)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, []byte(c.ClientKey))
	mac.Write([]byte(plaintext))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

func (c *Calculator) plaintext(method string, u *url.URL, timestamp time.Time) (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}
	if u == nil || u.Hostname() == "" {
		return "", constants.ErrInvalidDomainURL
	}

	params := []string{
		"SignatureMethod=" + Method,
		"SignatureVersion=" + Version,
		constants.HeaderApplicationKey + "=" + c.ApplicationKey,
		constants.HeaderTimestamp + "=" + FormatTimestamp(timestamp),
	}
	method = strings.ToUpper(method)
	if method == http.MethodGet && u.RawQuery != "" {
		params = append(params, u.RawQuery)
	}
	sort.Strings(params)

	var sb strings.Builder
	sb.WriteString(method)
	sb.WriteByte('\n')
	sb.WriteString(u.Hostname())
	sb.WriteByte('\n')
	sb.WriteString(u.Path)
	sb.WriteByte('\n')
	sb.WriteString(strings.Join(params, "&"))
	return sb.String(), nil
}

func (c *Calculator) validate() error {
	if c.ApplicationKey == "" {
		return constants.ErrEmptyApplicationKey
	}
	if c.ClientKey == "" {
		return constants.ErrEmptyClientKey
	}
	return nil
}
