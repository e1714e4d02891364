package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/daysbetween/internal/console"
	"github.com/specialistvlad/daysbetween/internal/ctxlog"
	"github.com/specialistvlad/daysbetween/internal/httpapi"
	"github.com/specialistvlad/daysbetween/internal/normalize"
)

// Run executes the mode selected by the configuration: a single
// calculation when dates were given on the command line, the HTTP API when
// a port is configured, and the interactive console otherwise.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	switch {
	case len(a.dates) > 0:
		return a.runOnce(ctx)
	case a.model.HTTP.Port > 0:
		srv := httpapi.New(a.cal, a.logger, httpapi.Options{
			RateLimit: a.model.HTTP.RateLimit,
			Burst:     a.model.HTTP.Burst,
		})
		return srv.ListenAndServe(ctx, a.model.HTTP.Port)
	default:
		c := console.New(a.in, a.outW, a.cal, console.Options{
			Prompt:     a.model.Console.Prompt,
			ShowPrompt: console.IsTerminal(a.in),
			Separators: a.model.Console.Separators,
		})
		return c.Run(ctx)
	}
}

// runOnce computes the days between the dates given as arguments, which
// may use any of the separators the console accepts.
func (a *App) runOnce(ctx context.Context) error {
	norm := normalize.New(a.model.Console.Separators...)
	dates := normalize.Split(norm.Normalize(strings.Join(a.dates, " ")))

	days, err := a.cal.DaysBetweenAll(dates)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Calculation finished.", "from", dates[0], "to", dates[1], "days", days)
	fmt.Fprintln(a.outW, console.FormatResult(dates[0], dates[1], days))
	return nil
}
