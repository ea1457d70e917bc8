package handler

import (
	"encoding/json"
	"net/http"

	"kasir-be/internal/apperr"
	"kasir-be/internal/logger"

	"go.uber.org/zap"
)

// Permissive CORS: the session initiator is called straight from the
// browser, and Midtrans sends no Origin worth restricting on.
func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

// respondOK acknowledges a CORS preflight with a bare body.
func respondOK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondRaw relays a pre-encoded gateway body with its status code.
func respondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// respondError converts any failure into the uniform 400 envelope.
// The error kind is logged but not exposed on the wire.
func respondError(r *http.Request, w http.ResponseWriter, err error) {
	logger.FromCtx(r.Context()).Error("request failed",
		zap.String("kind", apperr.Kind(err)),
		zap.Error(err),
	)

	respondJSON(w, http.StatusBadRequest, map[string]string{
		"error": err.Error(),
	})
}
