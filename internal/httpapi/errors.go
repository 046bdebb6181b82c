package httpapi

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/sfmobility/routing-gateway/internal/routing"
)

// errorEnvelope is the shared error response shape every handler writes on
// failure.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError maps err to the closed routing.Kind taxonomy (falling back to
// a generic internal error for anything unrecognized) and writes the
// envelope at the matching HTTP status.
func writeError(w http.ResponseWriter, requestID string, err error) {
	status := http.StatusInternalServerError
	code := string(routing.KindInternal)
	message := "an internal error occurred"

	if routeErr, ok := routing.AsError(err); ok {
		status = routeErr.Kind.HTTPStatus()
		code = string(routeErr.Kind)
		message = sanitize(routeErr.Message)
	}

	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message, RequestID: requestID}})
}

func writeValidationError(w http.ResponseWriter, requestID string, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorEnvelope{Error: errorBody{
		Code:      string(routing.KindValidation),
		Message:   sanitize(message),
		RequestID: requestID,
	}})
}

// writeBadRequest writes the error envelope at 400, for the handful of
// query-parameter contracts that are specified as 400 rather than the
// orchestrator's usual 422 ValidationError (malformed bbox, out-of-range
// radius).
func writeBadRequest(w http.ResponseWriter, requestID string, message string) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
		Code:      "BAD_REQUEST",
		Message:   sanitize(message),
		RequestID: requestID,
	}})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
