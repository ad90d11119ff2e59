// Package response writes the shop API's JSON bodies.
//
// The wire format is flat and fixed: successful handlers send their payload
// as-is, failures send {"error": "..."} with the matching HTTP status. There
// is no envelope.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON sends v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK sends a 200 with payload v.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Error sends {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
