// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration; core settings like ports,
// TLS, and log level live in CoreConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer credential verification
	AuthSecret string // HMAC secret shared with the credential issuer (must be strong in production)
	AuthIssuer string // Expected issuer claim in presented credentials

	// Payment provider configuration
	StripeSecretKey string // Stripe secret API key (blank disables checkout)
	SiteDomain      string // Base URL for checkout redirects (e.g., https://assetverse.example.com)

	// Request rate limiting (0 disables)
	RateLimit int // Sustained requests per second per client IP
	RateBurst int // Burst allowance per client IP

	// Cross-origin policy for the browser front end
	CORSAllowedOrigins []string // Origins allowed to call the API ("*" allows any)
}
