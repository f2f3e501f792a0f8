// Package constants holds string constants shared by configuration and infrastructure.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderInMemory = "memory"
)

// Push providers
const (
	PushProviderExpo     = "expo"
	PushProviderFirebase = "firebase"
)

// Token cookie set after a successful OAuth login.
const AccessTokenCookie = "access_token"
