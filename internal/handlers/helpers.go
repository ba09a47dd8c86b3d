package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-greeter/internal/logger"
)

// writeJSON serialises v as JSON and writes it with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Debugw("failed to write response", "status", status, "err", err)
	}
}
