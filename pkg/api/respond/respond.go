// Package respond implements the shared JSON response envelope. Every
// endpoint answers {success, data|error, timestamp}; core failures are
// mapped to a structured error body, never a raw stack trace.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"venture_model/pkg/core/engine"
	"venture_model/pkg/core/params"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Fail writes an error envelope with the given status.
func Fail(w http.ResponseWriter, status int, msg string) {
	write(w, status, Envelope{Success: false, Error: msg})
}

// FromError maps a core error to the right status: validation and unknown
// selector keys are the caller's fault (400), anything else is ours (500).
func FromError(w http.ResponseWriter, err error) {
	var validation *engine.ValidationError
	var unknown *params.UnknownKeyError
	switch {
	case errors.As(err, &validation), errors.As(err, &unknown):
		Fail(w, http.StatusBadRequest, err.Error())
	default:
		Fail(w, http.StatusInternalServerError, err.Error())
	}
}

func write(w http.ResponseWriter, status int, env Envelope) {
	env.Timestamp = time.Now().UTC().Format(time.RFC3339)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

// CORS sets the permissive headers the UI expects and short-circuits
// preflight requests. Returns true when the request was a handled OPTIONS.
func CORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}
