package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/oshokin/wake-gate/internal/config"
	"github.com/oshokin/wake-gate/internal/logger"
)

// ErrConfigExists is returned by InitConfig when the target file exists and Force is not set.
var ErrConfigExists = errors.New("settings file already exists")

// InitOptions controls writing a starter settings file.
type InitOptions struct {
	// Path is the destination; empty means the default settings file name.
	Path string
	// Force overwrites an existing file.
	Force bool
}

// InitConfig writes the default settings to opts.Path and returns the path written.
func InitConfig(ctx context.Context, opts *InitOptions) (string, error) {
	ctx = logger.WithName(ctx, "init-config")

	path := opts.Path
	if path == "" {
		path = config.DefaultConfigFilename
	}

	_, err := os.Stat(path)

	switch {
	case err == nil && !opts.Force:
		return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("stat settings: %w", err)
	}

	if err = config.Save(path, config.Default()); err != nil {
		return "", fmt.Errorf("save settings: %w", err)
	}

	logger.InfoKV(ctx, "Default settings written", "path", path)

	return path, nil
}
