package constants

import "errors"

// Configuration errors.
var (
	ErrEmptyApplicationKey = errors.New("application key is empty")
	ErrEmptyClientKey      = errors.New("client key is empty")
	ErrInvalidDomainURL    = errors.New("domain url has no host")
)

// Request construction errors.
var (
	ErrNoObjectID       = errors.New("object id is not set")
	ErrEncodeBody       = errors.New("request body cannot be encoded as JSON")
	ErrEncodeQuery      = errors.New("query value cannot be encoded")
	ErrEmptyClassName   = errors.New("class name is empty")
	ErrInvalidOperation = errors.New("invalid field operation")
)

// Response errors.
var (
	ErrInvalidResponse = errors.New("invalid NCMB response")
	ErrParse           = errors.New("response body is not a JSON object")
	ErrNoErrorDetails  = errors.New("error response carries no details")
)
