// Package devmode provides shared configuration for local development across
// the client, the CLI and the mock backend.
package devmode

// BaseURL is the API root used by development builds. The mock backend
// listens on the same address by default.
const BaseURL = "http://localhost:3001/api"

// Addr is the listen address matching BaseURL.
const Addr = "127.0.0.1:3001"

// ProductionBaseURL is a placeholder until the production API is deployed.
const ProductionBaseURL = "https://your-production-api.com/api"

// Demo credentials seeded into the mock backend. Never valid against a real server.
const (
	DemoName     = "Demo User"
	DemoEmail    = "demo@emailight.dev"
	DemoPassword = "LOCAL_DEV_MODE_NOT_FOR_PRODUCTION"
)
