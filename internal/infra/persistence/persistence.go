// Package persistence selects the Storage backend from configuration.
package persistence

import (
	"log/slog"
	"path/filepath"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/file"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultFileName   = "storefront.json"
	defaultSQLiteName = "storefront.db"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Storage implementation named by storage.driver.
func New(params Params) (service.Storage, error) {
	driver := params.Config.Storage.Driver
	path := params.Config.Storage.Path

	switch driver {
	case "memory":
		return memory.NewStore(), nil
	case "file":
		if path == "" {
			path = defaultFileName
		} else if filepath.Ext(path) == "" {
			path = filepath.Join(path, defaultFileName)
		}
		params.Logger.Debug("Using file storage", slog.String("path", path))

		return file.NewStore(path), nil
	case "sqlite":
		if path == "" {
			path = defaultSQLiteName
		} else if filepath.Ext(path) == "" {
			path = filepath.Join(path, defaultSQLiteName)
		}
		params.Logger.Debug("Using sqlite storage", slog.String("path", path))

		return sqlite.NewStore(path)
	default:
		return nil, errors.Errorf("unknown storage driver: %s", driver)
	}
}
