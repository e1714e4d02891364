package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/daysbetween/internal/config"
	"github.com/specialistvlad/daysbetween/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the HCL file at path and applies its settings on top of
// config.Default.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return l.decode(ctx, file.Body, path)
}

// LoadBytes is Load for in-memory content; filename is used in diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, file.Body, filename)
}

func (l *Loader) decode(ctx context.Context, body hcl.Body, filename string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model := config.Default()
	evalCtx := newEvalContext()

	type attr struct {
		expr   hcl.Expression
		name   string
		target any
	}
	var attrs []attr
	if b := root.Calendar; b != nil {
		attrs = append(attrs,
			attr{b.MinYear, "calendar.min_year", &model.Calendar.MinYear},
			attr{b.MaxYear, "calendar.max_year", &model.Calendar.MaxYear},
		)
	}
	if b := root.Console; b != nil {
		attrs = append(attrs,
			attr{b.Prompt, "console.prompt", &model.Console.Prompt},
			attr{b.Separators, "console.separators", &model.Console.Separators},
		)
	}
	if b := root.HTTP; b != nil {
		attrs = append(attrs,
			attr{b.Port, "http.port", &model.HTTP.Port},
			attr{b.RateLimit, "http.rate_limit", &model.HTTP.RateLimit},
			attr{b.Burst, "http.burst", &model.HTTP.Burst},
		)
	}

	for _, a := range attrs {
		if err := decodeAttr(ctx, a.expr, evalCtx, a.name, a.target); err != nil {
			return nil, fmt.Errorf("in %s: %w", filename, err)
		}
	}

	logger.Debug("HCL loading complete.", "file", filename, "min_year", model.Calendar.MinYear, "max_year", model.Calendar.MaxYear)
	return model, nil
}
