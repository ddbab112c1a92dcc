package config

import "fmt"

// ServerConfig is the server binary's view of [StructuredConfig]: only the
// groups the HTTP server and its services consume.
type ServerConfig struct {
	// Auth contains JWT signing parameters.
	Auth Auth
	// DB contains the relational database connection settings.
	DB DB
	// Server contains the listen address and request timeout.
	Server Server
	// Security contains the transport integrity hash key.
	Security Security
	// App contains application metadata exposed by the version endpoint.
	App App
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Auth:     cfg.Auth,
		DB:       cfg.Storage.DB,
		Server:   cfg.Server,
		Security: cfg.Security,
		App:      cfg.App,
	}

	return serverCfg, serverCfg.validate()
}
