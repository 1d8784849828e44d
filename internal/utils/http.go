package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes data and writes it with the given status. Encoding happens
// before any header is sent, so a failure still produces a clean 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
