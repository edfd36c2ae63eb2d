package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/nhohnhehr"
	"github.com/aretw0/nhohnhehr/internal/config"
	"github.com/aretw0/nhohnhehr/pkg/adapters/file"
	"github.com/aretw0/nhohnhehr/pkg/adapters/redis"
	"github.com/aretw0/nhohnhehr/pkg/ports"
)

// Program sources.
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// createStore selects the program store for source.
// The closer releases any connection the store holds.
func createStore(source, dir string, cfg config.RedisConfig) (ports.ProgramStore, io.Closer, error) {
	switch source {
	case "", SourceFile:
		return file.New(dir), nopCloser{}, nil
	case SourceRedis:
		store := redis.New(cfg.Addr, cfg.Password, cfg.DB, redis.WithPrefix(cfg.Prefix))
		return store, store, nil
	}
	return nil, nil, fmt.Errorf("unknown program source %q (want %q or %q)", source, SourceFile, SourceRedis)
}

// engineOptions builds the facade options with standard CLI conventions.
func engineOptions(logger *slog.Logger, debug bool, maxSteps uint64) []nhohnhehr.Option {
	opts := []nhohnhehr.Option{
		nhohnhehr.WithLogger(logger),
		nhohnhehr.WithMaxSteps(maxSteps),
	}
	if debug {
		opts = append(opts, nhohnhehr.WithLifecycleHooks(createDebugHooks(logger)))
	}
	return opts
}
