// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Attribute names set on every published directory event.
const (
	EventAttributeKind      = "kind"
	EventAttributeAction    = "action"
	EventAttributeRequestID = "request_id"
	EventAttributeOrigin    = "origin"
)

// HeaderRequestID carries the request ID between the console, its clients and the directory.
const HeaderRequestID = "X-Request-Id"
