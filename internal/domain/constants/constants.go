// Package constants holds values shared across layers.
package constants

import "time"

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Check-in transports
const (
	TransportLog       = "log"
	TransportSimulated = "simulated"
)

// DefaultTimeout bounds fx start and stop hooks.
const DefaultTimeout = 15 * time.Second
