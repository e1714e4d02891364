package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/specialistvlad/daysbetween/internal/calendar"
	"github.com/specialistvlad/daysbetween/internal/ctxlog"
)

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctxlog.FromContext(r.Context()).Debug("Health check endpoint hit.")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// daysQueryHandler handles GET /v1/days?from=...&to=...
func (s *Server) daysQueryHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	from, to := qs.Get("from"), qs.Get("to")
	if from == "" || to == "" {
		s.badRequestResponse(w, r, errors.New("the from and to query parameters are required"))
		return
	}
	s.respondDays(w, r, []string{from, to})
}

// daysBodyHandler handles POST /v1/days with a {"dates": [...]} body.
func (s *Server) daysBodyHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Dates []string `json:"dates"`
	}
	if err := s.readJSON(w, r, &input); err != nil {
		s.badRequestResponse(w, r, err)
		return
	}
	s.respondDays(w, r, input.Dates)
}

func (s *Server) respondDays(w http.ResponseWriter, r *http.Request, dates []string) {
	logger := ctxlog.FromContext(r.Context())

	days, err := s.cal.DaysBetweenAll(dates)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrParse),
			errors.Is(err, calendar.ErrConversion),
			errors.Is(err, calendar.ErrUsage):
			s.failedCalculationResponse(w, r, err)
		default:
			s.serverErrorResponse(w, r, err)
		}
		return
	}

	logger.Debug("Calculation finished.", "from", dates[0], "to", dates[1], "days", days)
	data := envelope{"days": days, "from": dates[0], "to": dates[1]}
	if err := s.writeJSON(w, http.StatusOK, data, nil); err != nil {
		s.serverErrorResponse(w, r, err)
	}
}
