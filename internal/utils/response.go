package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response with status code
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// JSONError writes an error in the shape of models.ErrorResponse
func JSONError(w http.ResponseWriter, statusCode int, code, message string) {
	JSON(w, statusCode, map[string]string{"code": code, "message": message})
}
