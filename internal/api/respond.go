package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"wedding-api/internal/github"
	"wedding-api/internal/services"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service or upstream failure to the HTTP surface. Every
// error body is {"error": message}; upstream GitHub failures keep their status
// code, duplicates map to 400 to match the original API contract, and
// anything unexpected is hidden behind a generic 500.
func (rt *Router) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "Internal server error"

	var up *github.UpstreamError
	switch {
	case errors.As(err, &up):
		status, msg = up.StatusCode, up.Message
	case errors.Is(err, github.ErrTokenMissing):
		msg = err.Error()
	default:
		if se, ok := services.AsServiceError(err); ok {
			msg = se.Message
			switch se.Code {
			case services.ErrorInvalid, services.ErrorConflict:
				status = http.StatusBadRequest
			case services.ErrorNotFound:
				status = http.StatusNotFound
			case services.ErrorUnauthorized:
				status = http.StatusUnauthorized
			case services.ErrorConfig:
				status = http.StatusInternalServerError
			}
		}
	}

	rt.log.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg("request failed")
	writeJSON(w, status, errorResponse{Error: msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
}
