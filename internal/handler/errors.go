package handler

import (
	"net/http"
	"strings"
)

// errorBody is the uniform error payload: {"error": "<message>"}.
type errorBody struct {
	Error string `json:"error"`
}

// messageBody is the payload for operations that confirm with a message only.
type messageBody struct {
	Message string `json:"message"`
}

// notFound writes the 404 payload for a missing destination.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusNotFound, errorBody{Error: "Destination not found"})
}

// storeFailure writes the fixed-message 500 payload for a given operation.
// Root-cause detail is logged by the caller, never surfaced to the client.
func storeFailure(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: message})
}

// validationFailure writes a 422 payload carrying the human-readable part of
// a wrapped domain.ErrValidation error.
func validationFailure(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, r, http.StatusUnprocessableEntity, errorBody{Error: unwrapMessage(err)})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.DestinationService.Create: validation error: name is required"
// → "name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.DestinationService.Create: validation error: ",
		"service.DestinationService.Update: validation error: ",
		"validation error: ",
	} {
		if strings.HasPrefix(msg, prefix) && len(msg) > len(prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
