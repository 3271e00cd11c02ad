package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope for admin and API endpoints.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// DecodeJSON decodes JSON from the request body into the destination.
// Returns true if successful, false if there was an error (error response
// already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// WriteError writes the standard failure envelope.
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Response{Success: false, Message: message})
}
