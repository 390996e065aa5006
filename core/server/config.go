package server

// CustomerIDHeader is the identity channel the commerce API expects on order
// creation. The customer reference never travels in the request body.
const CustomerIDHeader = "customer_id"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the verification API.
	ApiKey string `mapstructure:"api_key" default:""`
}
