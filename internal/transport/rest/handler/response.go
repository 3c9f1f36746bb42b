package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/katiamach/heatrisk-calendars/internal/logger"
)

type errorResponse struct {
	Code    int
	Message string
}

// Respond is a function to send http responses.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		logger.Error(err)
		return
	}

	write(w, code, "application/json", body)
}

// RespondHTML sends a rendered page.
func respondHTML(w http.ResponseWriter, code int, page []byte) {
	write(w, code, "text/html; charset=utf-8", page)
}

// RespondErr is a function to make http error responses.
func respondErr(w http.ResponseWriter, code int, err error) {
	respErr := errorResponse{
		Code:    code,
		Message: err.Error(),
	}

	respond(w, code, respErr)
}

func write(w http.ResponseWriter, code int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)
	// headers are already sent, so only log
	if _, err := w.Write(body); err != nil {
		logger.Error(fmt.Errorf("can't write response: %v", err))
	}
}
