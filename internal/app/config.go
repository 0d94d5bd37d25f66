package app

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/zspotify-grabber/internal/config"
	"github.com/oshokin/zspotify-grabber/internal/logger"
)

// ExecuteConfigGet prints the value of key, or of every store key when key is empty.
func ExecuteConfigGet(ctx context.Context, cfg *config.Config, out io.Writer, key string) error {
	store := config.NewStore(cfg)

	keys := config.StoreKeys
	if key != "" {
		keys = []string{key}
	}

	for _, k := range keys {
		value, err := store.Get(k)
		if err != nil {
			return err
		}

		if key != "" {
			_, err = fmt.Fprintln(out, value)
		} else {
			_, err = fmt.Fprintf(out, "%s: %v\n", k, value)
		}

		if err != nil {
			return fmt.Errorf("failed to print '%s': %w", k, err)
		}
	}

	logger.Debugf(ctx, "Configuration read from '%s'", cfg.ConfigFilename)

	return nil
}

// ExecuteConfigSet validates value, stores it under key and saves the configuration file.
func ExecuteConfigSet(ctx context.Context, cfg *config.Config, key, value string) error {
	if err := config.NewStore(cfg).Set(key, value); err != nil {
		return err
	}

	logger.Infof(ctx, "Saved %s to '%s'", key, cfg.ConfigFilename)

	return nil
}
