package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is sent when a response value cannot be encoded. It has
// the same shape as every other API error body.
const marshalFailureBody = `{"error":"Internal Server Error"}`

// WriteJSON encodes data as the response body with the given status. API
// clients always get JSON back: if data cannot be encoded the reply becomes
// a 500 with the standard error body and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("encode %T response: %w", data, err)
	}

	w.WriteHeader(statusCode)

	return w.Write(body)
}
