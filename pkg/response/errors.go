package response

import (
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/ncmb/ncmb.go/pkg/constants"
)

// Error body keys.
const (
	KeyCode  = "code"
	KeyError = "error"
)

// APIError is an error status returned by the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string

	// cause is constants.ErrNoErrorDetails when the body carried neither
	// a code nor a message.
	cause error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("ncmb: status %d: %v", e.StatusCode, e.cause)
	}
	return fmt.Sprintf("ncmb: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Is matches another *APIError with the same non-empty code, so the
// sentinels below work with errors.Is.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// Known returns the description of a documented error code.
func (e *APIError) Known() (string, bool) {
	desc, ok := knownCodes[e.Code]
	return desc, ok
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status}

	code, codeErr := jsonparser.GetString(body, KeyCode)
	msg, msgErr := jsonparser.GetString(body, KeyError)
	if codeErr != nil && msgErr != nil {
		e.cause = constants.ErrNoErrorDetails
		return e
	}
	e.Code = code
	e.Message = msg
	if e.Message == "" {
		e.Message, _ = e.Known()
	}
	return e
}

// Sentinels for frequently handled codes.
var (
	ErrInvalidJSON      = &APIError{Code: "E400001"}
	ErrInvalidType      = &APIError{Code: "E400002"}
	ErrInvalidValue     = &APIError{Code: "E400003"}
	ErrAuthentication   = &APIError{Code: "E401001"}
	ErrLoginFailed      = &APIError{Code: "E401002"}
	ErrPermissionDenied = &APIError{Code: "E403001"}
	ErrNotFound         = &APIError{Code: "E404001"}
	ErrDuplicated       = &APIError{Code: "E409001"}
	ErrTooManyRequests  = &APIError{Code: "E429001"}
	ErrInternalServer   = &APIError{Code: "E500001"}
)

var knownCodes = map[string]string{
	"E400001": "invalid JSON format",
	"E400002": "invalid type",
	"E400003": "invalid value",
	"E401001": "authentication error",
	"E401002": "invalid user name or password",
	"E401003": "OAuth authentication error",
	"E403001": "access denied by ACL",
	"E403002": "operation not permitted for the collaborator",
	"E403003": "operation forbidden",
	"E403005": "setting is not enabled",
	"E404001": "no such object",
	"E404002": "service is not available",
	"E404003": "field not found",
	"E404004": "device token not registered",
	"E404005": "application not found",
	"E405001": "method not allowed",
	"E409001": "duplicated value",
	"E413001": "file size too large",
	"E413002": "document size too large",
	"E413003": "too many files",
	"E415001": "unsupported media type",
	"E429001": "too many requests",
	"E500001": "internal server error",
	"E502001": "storage error",
	"E502002": "push delivery failed",
	"E502003": "mail delivery failed",
}
