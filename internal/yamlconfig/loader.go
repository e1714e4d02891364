// Package yamlconfig provides the YAML implementation of config.Loader.
// It accepts the same sections and keys as the HCL format, without
// expression support.
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/daysbetween/internal/config"
	"github.com/specialistvlad/daysbetween/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type fileRoot struct {
	Calendar *struct {
		MinYear *int `yaml:"min_year"`
		MaxYear *int `yaml:"max_year"`
	} `yaml:"calendar"`
	Console *struct {
		Prompt     *string  `yaml:"prompt"`
		Separators []string `yaml:"separators"`
	} `yaml:"console"`
	HTTP *struct {
		Port      *int     `yaml:"port"`
		RateLimit *float64 `yaml:"rate_limit"`
		Burst     *int     `yaml:"burst"`
	} `yaml:"http"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the YAML file at path and applies its settings on top of
// config.Default.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %w", err)
	}
	return l.LoadBytes(ctx, src, path)
}

// LoadBytes is Load for in-memory content; filename is used in errors.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "file", filename)

	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	model := config.Default()
	if c := root.Calendar; c != nil {
		setIf(&model.Calendar.MinYear, c.MinYear)
		setIf(&model.Calendar.MaxYear, c.MaxYear)
	}
	if c := root.Console; c != nil {
		setIf(&model.Console.Prompt, c.Prompt)
		if c.Separators != nil {
			model.Console.Separators = c.Separators
		}
	}
	if h := root.HTTP; h != nil {
		setIf(&model.HTTP.Port, h.Port)
		setIf(&model.HTTP.RateLimit, h.RateLimit)
		setIf(&model.HTTP.Burst, h.Burst)
	}

	logger.Debug("YAML loading complete.", "file", filename, "min_year", model.Calendar.MinYear, "max_year", model.Calendar.MaxYear)
	return model, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
