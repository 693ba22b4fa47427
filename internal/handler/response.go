// Package handler translates HTTP requests into action calls and action
// Results back into JSON responses.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fieldday/api/internal/action"
	"github.com/fieldday/api/internal/model"
)

// DataResponse wraps a successful response body
type DataResponse struct {
	Data interface{} `json:"data"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful data response
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, DataResponse{Data: data})
}

// WriteAppError writes an application error with its own status code
func WriteAppError(w http.ResponseWriter, err *model.AppError) {
	err.WriteJSON(w)
}

// WriteResult writes a Result: the data on success with the given
// status, or the carried AppError with its status code on failure.
func WriteResult[T any](w http.ResponseWriter, status int, res action.Result[T]) {
	if !res.Success() {
		WriteAppError(w, res.Error())
		return
	}
	WriteData(w, status, res.Data())
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
