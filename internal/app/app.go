package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/daysbetween/internal/calendar"
	"github.com/specialistvlad/daysbetween/internal/config"
	"github.com/specialistvlad/daysbetween/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model
	cal    calendar.Calendar
	dates  []string
}

// NewApp builds an App reading user input from in, writing results to outW
// and logs to logW.
func NewApp(in io.Reader, outW, logW io.Writer, appConfig *AppConfig) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loadModel(ctx, appConfig)
	if err != nil {
		return nil, err
	}

	cal, err := model.NewCalendar()
	if err != nil {
		return nil, err
	}
	logger.Debug("Calendar configured.", "range", cal.String())

	return &App{
		in:     in,
		outW:   outW,
		logger: logger,
		model:  model,
		cal:    cal,
		dates:  appConfig.Dates,
	}, nil
}

// Config returns the resolved configuration. This is primarily for testing.
func (a *App) Config() *config.Model {
	return a.model
}
