package apiclient

// Config holds configuration for the commerce API under verification.
// The base URL is passed explicitly to every fetcher that needs it; there is
// no process-global request state.
type Config struct {
	// BaseURL is the root of the commerce API, e.g. "http://localhost:8081".
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8081"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
