// Package config manages application configuration for the Biblio API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: token signing secret, issuer and lifetime
//   - AdminConfig: optional bootstrap admin account
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT         - HTTP server port (default: 8080)
//	SERVER_ENV          - development, production, or test
//	DB_HOST, DB_PORT    - SurrealDB endpoint
//	DB_NAMESPACE        - SurrealDB namespace (default: biblio)
//	JWT_SECRET          - HMAC signing secret, required
//	ADMIN_USERNAME      - bootstrap admin username (optional, with password)
package config
