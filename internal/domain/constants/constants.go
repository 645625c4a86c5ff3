package constants

// Pub/Sub providers accepted by the pubsub.provider configuration key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Database drivers accepted by the database.driver configuration key.
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

// TokenTypeBearer is the token_type reported to clients on login.
const TokenTypeBearer = "bearer"
