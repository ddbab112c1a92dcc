// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] before it is used at
// startup. The structure is shared by both binaries, so only invariants
// that hold for both belong here; everything binary-specific lives in
// [ServerConfig.validate] and [ClientConfig.validate].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenDuration < 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}

// validate checks the server view: the database DSN, the token signing
// parameters, and the listen address are all mandatory.
func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

// validate checks the client view. The completion API key is deliberately
// not required: without it the app still works and the generation pages
// surface the failure marker instead.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Local.Path == "" || strings.Contains(cfg.Storage.Local.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Completion.BaseURL == "" || cfg.Completion.Model == "" ||
		cfg.Completion.MaxTokens <= 0 || cfg.Completion.RequestTimeout == 0 {
		return ErrInvalidCompletionConfigs
	}

	if cfg.Workers.TokenRefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
