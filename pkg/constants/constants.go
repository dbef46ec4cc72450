package constants

import "time"

const (
	// DefaultDomainURL is the production endpoint of the mobile backend REST API.
	DefaultDomainURL = "https://mbaas.api.nifcloud.com"
	// DefaultAPIVersion is the path segment placed right after the domain.
	DefaultAPIVersion = "2013-09-01"
	// SDKVersion is sent in the X-NCMB-SDK-Version header.
	SDKVersion = "go-1.0.0"
	// DefaultHTTPTimeout applies when the caller does not inject its own HTTP client.
	DefaultHTTPTimeout = 10 * time.Second
	// RequestIDLength is the length of the correlation id attached to request logs.
	RequestIDLength = 16
)

// Request headers.
const (
	HeaderApplicationKey = "X-NCMB-Application-Key"
	HeaderTimestamp      = "X-NCMB-Timestamp"
	HeaderSignature      = "X-NCMB-Signature"
	HeaderSessionToken   = "X-NCMB-Apps-Session-Token"
	HeaderSDKVersion     = "X-NCMB-SDK-Version"
	HeaderOSVersion      = "X-NCMB-OS-Version"
	HeaderContentType    = "Content-Type"
	HeaderContentLength  = "Content-Length"
)

const (
	ContentTypeJSON = "application/json"
	// ContentTypeNone tells the request builder not to emit Content-Type/Content-Length.
	ContentTypeNone = ""
)

// API types, the path segment following the API version.
const (
	APITypeClasses       = "classes"
	APITypeUsers         = "users"
	APITypeRoles         = "roles"
	APITypeInstallations = "installations"
	APITypePush          = "push"
	APITypeFiles         = "files"
	APITypeLogin         = "login"
	APITypeLogout        = "logout"
	APITypeBatch         = "batch"
	APITypeScript        = "script"
)

// Reserved field names that are managed by the server.
const (
	FieldObjectID   = "objectId"
	FieldACL        = "acl"
	FieldCreateDate = "createDate"
	FieldUpdateDate = "updateDate"

	// FieldSessionToken is returned by login and signup.
	FieldSessionToken = "sessionToken"
)

// Login query parameters. QueryPassword values are redacted in logs.
const (
	QueryUserName = "userName"
	QueryPassword = "password"
)

// SessionTokenKey is the variable name the client stores the session token under.
const SessionTokenKey = "session_token"

// Environment variables read by ConfigFromEnv.
const (
	EnvApplicationKey = "NCMB_APPLICATION_KEY"
	EnvClientKey      = "NCMB_CLIENT_KEY"
	EnvDomainURL      = "NCMB_DOMAIN_URL"
	EnvAPIVersion     = "NCMB_API_VERSION"
)
