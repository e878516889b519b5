package cmd

import (
	"fmt"

	"github.com/matheuskafuri/aidash/internal/config"
	"github.com/matheuskafuri/aidash/internal/kv"
	"github.com/matheuskafuri/aidash/internal/logging"
)

// loadConfig reads the config file, applies flag overrides and starts the
// file logger. Logging failures are reported but not fatal.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagSource != "" {
		if err := cfg.SetSource(flagSource); err != nil {
			return nil, fmt.Errorf("--source: %w", err)
		}
	}
	if err := logging.Init(config.LogDir(), cfg.LogLevel); err != nil {
		fmt.Printf("  [warn] logging disabled: %v\n", err)
	}
	return cfg, nil
}

func openStore() (*kv.Store, error) {
	db, err := kv.Open(config.StoragePath())
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}
	return db, nil
}
