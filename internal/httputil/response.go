// Package httputil holds the JSON response envelope and the small writer
// helpers shared across API handlers.
package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the wire format of every API response.
type Envelope struct {
	Success        bool        `json:"success"`
	Data           interface{} `json:"data"`
	Message        string      `json:"message"`
	Error          string      `json:"error,omitempty"`
	GenerationTime float64     `json:"generation_time,omitempty"`
	ParametersUsed interface{} `json:"parameters_used,omitempty"`
}

// WriteJSON writes an envelope with the given status code.
func WriteJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		log.Printf("failed to encode json response: %v", err)
	}
}

// WriteSuccess writes a 200 envelope around data.
func WriteSuccess(w http.ResponseWriter, data interface{}, message string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// WriteGenerated writes a 200 envelope for a generation result, carrying
// the elapsed seconds and the parameter record the generator actually used.
func WriteGenerated(w http.ResponseWriter, data interface{}, message string, seconds float64, params interface{}) {
	WriteJSON(w, http.StatusOK, Envelope{
		Success:        true,
		Data:           data,
		Message:        message,
		GenerationTime: seconds,
		ParametersUsed: params,
	})
}

// WriteError writes a failure envelope with the given status code.
func WriteError(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSON(w, status, Envelope{Success: false, Error: errMsg, Message: message})
}

// BadRequest writes a 400 failure envelope.
func BadRequest(w http.ResponseWriter, errMsg, message string) {
	WriteError(w, http.StatusBadRequest, errMsg, message)
}

// MethodNotAllowed writes a 405 failure envelope.
func MethodNotAllowed(w http.ResponseWriter) {
	WriteError(w, http.StatusMethodNotAllowed, "method not allowed", "")
}

// InternalServerError writes a 500 failure envelope.
func InternalServerError(w http.ResponseWriter, errMsg, message string) {
	WriteError(w, http.StatusInternalServerError, errMsg, message)
}

// NotFound writes a 404 failure envelope.
func NotFound(w http.ResponseWriter) {
	WriteError(w, http.StatusNotFound, "endpoint not found", "the requested endpoint does not exist")
}
