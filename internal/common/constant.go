// Package common contains constants and small helpers shared by the
// stockkeeper client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// MethodOverrideField is the multipart form field that tells the API to
	// treat a POST as the named verb.
	MethodOverrideField = "_method"
)

// Durable session keys.
const (
	SessionUserKey  = "user"
	SessionTokenKey = "token"
)
