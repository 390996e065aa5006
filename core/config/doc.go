// Package config aggregates the partial configurations of the verifier into
// one root Config loaded from environment variables and an optional .env
// file.
//
// Defaults come from `default` struct tags, resolved reflectively, so every
// key is registered with Viper and can be overridden through the
// environment (SERVER_PORT, API_BASE_URL, DATABASE_HOST, ...).
//
// Configuration is passed explicitly to the collaborators that need it;
// there is no package-level configuration state anywhere in the codebase.
package config
