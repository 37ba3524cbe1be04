// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	affiliationsfeature "assetverse/internal/app/features/affiliations"
	assetsfeature "assetverse/internal/app/features/assets"
	assignedsfeature "assetverse/internal/app/features/assigneds"
	checkoutfeature "assetverse/internal/app/features/checkout"
	healthfeature "assetverse/internal/app/features/health"
	livenessfeature "assetverse/internal/app/features/liveness"
	packagesfeature "assetverse/internal/app/features/packages"
	requestsfeature "assetverse/internal/app/features/requests"
	usersfeature "assetverse/internal/app/features/users"
	affiliationstore "assetverse/internal/app/store/affiliations"
	assetstore "assetverse/internal/app/store/assets"
	assignedstore "assetverse/internal/app/store/assigneds"
	packagestore "assetverse/internal/app/store/packages"
	requeststore "assetverse/internal/app/store/requests"
	userstore "assetverse/internal/app/store/users"
	"assetverse/internal/app/system/auth"
	"assetverse/internal/app/system/authz"
	"assetverse/internal/app/system/metrics"
	"assetverse/internal/app/system/ratelimit"
	"assetverse/internal/payment"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Each route names its gates explicitly:
// requireAuth verifies the bearer credential and attaches the principal,
// requireHR resolves the principal's stored role and only admits HR.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier, err := auth.NewTokenVerifier(appCfg.AuthSecret, appCfg.AuthIssuer)
	if err != nil {
		logger.Error("credential verifier init failed", zap.Error(err))
		return nil, err
	}

	users := userstore.New(deps.MongoDatabase)
	assets := assetstore.New(deps.MongoDatabase)
	requests := requeststore.New(deps.MongoDatabase)
	packages := packagestore.New(deps.MongoDatabase)
	affiliations := affiliationstore.New(deps.MongoDatabase)
	assigneds := assignedstore.New(deps.MongoDatabase)

	// The two gates are built once and handed to every feature router.
	requireAuth := auth.Require(verifier, logger)
	requireHR := authz.RequireHR(users, logger)

	r := chi.NewRouter()

	// The browser front end lives on another origin (site_domain), so the
	// API answers preflights and tags responses for the configured origins.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(metrics.Instrument)
	if appCfg.RateLimit > 0 {
		limiter := ratelimit.New(appCfg.RateLimit, appCfg.RateBurst)
		r.Use(limiter.Middleware)
	}

	// Liveness banner for uptime probes
	r.Get("/", livenessfeature.Serve)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus scrape endpoint
	r.Handle("/metrics", metrics.Handler())

	// User directory and the HR employee-limit update
	usersHandler := usersfeature.NewHandler(users, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler, requireAuth))
	r.Mount("/hr-limit", usersfeature.LimitRoutes(usersHandler, requireAuth, requireHR))

	// Asset inventory
	assetsHandler := assetsfeature.NewHandler(assets, logger)
	r.Mount("/assets", assetsfeature.Routes(assetsHandler, requireAuth, requireHR))

	// Asset requests
	requestsHandler := requestsfeature.NewHandler(requests, logger)
	r.Mount("/requests", requestsfeature.Routes(requestsHandler, requireAuth, requireHR))

	// Public package catalog
	packagesHandler := packagesfeature.NewHandler(packages, logger)
	r.Mount("/packages", packagesfeature.Routes(packagesHandler))

	// HR-employee affiliation requests and confirmed assignments
	affiliationsHandler := affiliationsfeature.NewHandler(affiliations, logger)
	r.Mount("/affiliations", affiliationsfeature.Routes(affiliationsHandler, requireAuth, requireHR))

	assignedsHandler := assignedsfeature.NewHandler(assigneds, logger)
	r.Mount("/assigneds", assignedsfeature.Routes(assignedsHandler, requireAuth, requireHR))

	// Package upgrade checkout
	stripeClient := payment.NewStripeClient(appCfg.StripeSecretKey)
	checkoutHandler := checkoutfeature.NewHandler(stripeClient, appCfg.SiteDomain, logger)
	r.Mount("/create-checkout-session", checkoutfeature.Routes(checkoutHandler, requireAuth, requireHR))

	return r, nil
}
