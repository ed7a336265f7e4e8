package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rnacentral/rnacentral-go/logger"
	"github.com/rnacentral/rnacentral-go/pkg/middle"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Status: "error",
		Error:  message,
	})
}

// requestLog carries the request id set by middle.RequestIDMiddleware.
func requestLog(r *http.Request) *zap.Logger {
	return middle.LoggerFrom(r.Context(), logger.L())
}
