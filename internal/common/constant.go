// Package common contains shared constants and sentinel errors used across
// TierForum components.
package common

// AuthorizationHeaderName is the gRPC metadata key carrying the raw
// "Bearer <token>" credential on inbound and outbound requests.
const AuthorizationHeaderName = "authorization"

// BearerScheme is the only authorization scheme the server accepts.
const BearerScheme = "Bearer"
