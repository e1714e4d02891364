package httpapi

import (
	"net/http"

	"github.com/specialistvlad/daysbetween/internal/ctxlog"
)

func (s *Server) logError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(err.Error(),
		"request_id", w.Header().Get(requestIDHeader),
		"request_method", r.Method,
		"request_url", r.URL.String(),
	)
}

func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	if err := s.writeJSON(w, status, envelope{"error": message}, nil); err != nil {
		s.logError(w, r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs the error and hides its details from the client.
func (s *Server) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	s.logError(w, r, err)
	s.errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

func (s *Server) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	s.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

func (s *Server) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	s.errorResponse(w, r, http.StatusMethodNotAllowed, "the "+r.Method+" method is not supported for this resource")
}

func (s *Server) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	s.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// failedCalculationResponse reports dates the calendar rejected.
func (s *Server) failedCalculationResponse(w http.ResponseWriter, r *http.Request, err error) {
	ctxlog.FromContext(r.Context()).Debug("Calculation failed.", "error", err)
	s.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
}

func (s *Server) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	s.errorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}
