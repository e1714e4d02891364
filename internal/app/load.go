package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/daysbetween/internal/config"
	"github.com/specialistvlad/daysbetween/internal/ctxlog"
	"github.com/specialistvlad/daysbetween/internal/hcl"
	"github.com/specialistvlad/daysbetween/internal/yamlconfig"
)

// loaderFor picks the config.Loader matching the file extension.
func loaderFor(path string) (config.Loader, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlconfig.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (want .hcl, .yaml or .yml)", ext)
	}
}

// loadModel resolves defaults, the optional config file and flag
// overrides into a validated model.
func loadModel(ctx context.Context, appConfig *AppConfig) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := config.Default()
	if appConfig.ConfigPath != "" {
		loader, err := loaderFor(appConfig.ConfigPath)
		if err != nil {
			return nil, err
		}
		model, err = loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logger.Debug("Configuration file loaded.", "path", appConfig.ConfigPath)
	}

	if appConfig.MinYear != nil {
		model.Calendar.MinYear = *appConfig.MinYear
	}
	if appConfig.MaxYear != nil {
		model.Calendar.MaxYear = *appConfig.MaxYear
	}
	if appConfig.HTTPPort != nil {
		model.HTTP.Port = *appConfig.HTTPPort
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return model, nil
}
