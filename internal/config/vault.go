package config

import (
	"fmt"

	"github.com/hashicorp/vault/api"
)

// DefaultVaultPath is the KV v2 path holding the platform's connection secrets.
const DefaultVaultPath = "secret/data/access-control"

// SecretManager wraps the Vault API client for reading secrets.
type SecretManager struct {
	client *api.Client
}

// NewSecretManager creates a Vault client pointed at the given address
// and authenticated with the provided token.
func NewSecretManager(address, token string) (*SecretManager, error) {
	cfg := api.DefaultConfig()
	cfg.Address = address

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault client initialization failed: %w", err)
	}
	client.SetToken(token)

	return &SecretManager{client: client}, nil
}

// GetSecret reads a secret at the given path and returns the raw data map.
// For KV v2 backends the caller must unwrap the nested "data" key.
func (s *SecretManager) GetSecret(path string) (map[string]interface{}, error) {
	secret, err := s.client.Logical().Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret at %s: %w", path, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("no data found at %s", path)
	}
	return secret.Data, nil
}

// GetKV2 is a convenience wrapper that reads from a KV v2 backend and
// returns the inner "data" map, unwrapping the v2 envelope automatically.
func (s *SecretManager) GetKV2(path string) (map[string]interface{}, error) {
	raw, err := s.GetSecret(path)
	if err != nil {
		return nil, err
	}
	data, ok := raw["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected data format at %s", path)
	}
	return data, nil
}

// HydrateSecrets overrides the Postgres and NATS URLs with values from the
// KV v2 secret at path, when present. Missing keys keep the env-provided
// values so local setups run without Vault.
func (c *Config) HydrateSecrets(sm *SecretManager, path string) error {
	data, err := sm.GetKV2(path)
	if err != nil {
		return err
	}
	if v, ok := data["pg_url"].(string); ok && v != "" {
		c.DatabaseURL = v
	}
	if v, ok := data["nats_url"].(string); ok && v != "" {
		c.BusURL = v
	}
	return nil
}
