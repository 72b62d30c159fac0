package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// InternalErrorBody is the body of every 500 response produced at the HTTP
// boundary. Diagnostics go to the log, never to the client.
var InternalErrorBody = map[string]string{"message": "Internal server error"}

// WriteJSON serializes data to JSON and writes it with the given status code
// and "Content-Type: application/json".
//
// If marshaling fails, it responds with 500 and the generic internal error
// body instead and returns a wrapped error.
//
// Example usage:
//
//	utils.WriteJSON(w, result.Message, result.Code)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		_, _ = WriteInternalError(w)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteInternalError writes the generic 500 response.
func WriteInternalError(w http.ResponseWriter) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	return w.Write([]byte(`{"message":"Internal server error"}`))
}
