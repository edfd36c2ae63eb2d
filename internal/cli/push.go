package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/nhohnhehr/internal/config"
)

// Push validates the program in path and stores it under name in the
// store selected by source (redis by default). dir is the file store directory.
func Push(ctx context.Context, source, dir, name, path string, cfg config.RedisConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read program: %w", err)
	}
	if _, _, err := checkSource(data); err != nil {
		return fmt.Errorf("refusing to store invalid program: %w", err)
	}

	if source == "" {
		source = SourceRedis
	}
	store, closer, err := createStore(source, dir, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	return store.Save(ctx, name, data)
}
