package config

import (
	"reflect"
	"strings"

	"commerce-verifier/core/apiclient"
	"commerce-verifier/core/database"
	"commerce-verifier/core/logger"
	"commerce-verifier/core/reportstore"
	"commerce-verifier/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the verifier. It is divided into
// partial configurations owned by the packages they configure; the
// reconciliation core itself needs no configuration at all.
type Config struct {
	// Server holds configuration for the verification HTTP server.
	Server server.Config `mapstructure:"server"`
	// API holds configuration for the commerce API under verification.
	API apiclient.Config `mapstructure:"api"`
	// Database holds configuration for the commerce database connection.
	Database database.Config `mapstructure:"database"`
	// Reports holds configuration for the run-report archive.
	Reports reportstore.Config `mapstructure:"reports"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. CI)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. API_BASE_URL -> api.base_url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values
// in Viper based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
