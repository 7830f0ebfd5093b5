package mockserver

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// errorBody is the failure shape the real backend uses.
type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
	Message string   `json:"message,omitempty"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes {"error": msg}.
func writeError(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, errorBody{Error: msg})
}

// writeValidation writes a 400 carrying one detail per failed rule.
func writeValidation(w http.ResponseWriter, details []string) {
	writeJSON(w, http.StatusBadRequest, errorBody{
		Error:   "Validation failed",
		Details: details,
		Message: "validation error",
	})
}

// decode reads a JSON body into dst, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeValidation(w, []string{"request body must be a JSON object"})
		return false
	}
	return true
}
