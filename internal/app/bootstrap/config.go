// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for AssetVerse.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, auth_secret, etc.
//   - Environment variables: ASSETVERSE_MONGO_URI, ASSETVERSE_AUTH_SECRET, etc.
//   - Command-line flags: --mongo_uri, --auth_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "AssetVerseDB", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Bearer credential verification
	{Name: "auth_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Credential signing secret (must be strong in production)"},
	{Name: "auth_issuer", Default: "assetverse", Desc: "Expected credential issuer"},

	// Payment provider
	{Name: "stripe_secret_key", Default: "", Desc: "Stripe secret API key (blank disables checkout)"},
	{Name: "site_domain", Default: "http://localhost:3000", Desc: "Base URL for checkout success/cancel redirects"},

	// Rate limiting
	{Name: "rate_limit", Default: 0, Desc: "Sustained requests per second per client IP (0 disables)"},
	{Name: "rate_burst", Default: 20, Desc: "Burst allowance per client IP"},

	// Cross-origin policy
	{Name: "cors_allowed_origins", Default: "*", Desc: "Comma-separated origins allowed to call the API"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// environment variables (WAFFLE_* for core, ASSETVERSE_* for app), and
// command-line flags, with precedence: flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ASSETVERSE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AuthSecret: appValues.String("auth_secret"),
		AuthIssuer: appValues.String("auth_issuer"),

		StripeSecretKey: appValues.String("stripe_secret_key"),
		SiteDomain:      appValues.String("site_domain"),

		RateLimit: appValues.Int("rate_limit"),
		RateBurst: appValues.Int("rate_burst"),

		CORSAllowedOrigins: splitOrigins(appValues.String("cors_allowed_origins")),
	}

	return coreCfg, appCfg, nil
}

// splitOrigins parses the comma-separated origin list, dropping blanks.
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI is validated here to catch configuration errors early,
// before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.AuthSecret == "" {
		return fmt.Errorf("auth_secret must be set")
	}

	// Checkout needs somewhere to send the customer back to.
	if appCfg.StripeSecretKey != "" && appCfg.SiteDomain == "" {
		return fmt.Errorf("site_domain must be set when stripe_secret_key is configured")
	}

	return nil
}
