package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"stylecloset-service/internal/auth"
	"stylecloset-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithFields(log.Fields{"method": r.Method, "path": r.URL.Path}).
			WithError(err).Error("encode response failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps the service error taxonomy onto HTTP statuses.
// Configuration problems are logged in full but never echoed to users.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var ia *domain.InvalidArgumentError
	switch {
	case errors.As(err, &ia):
		writeError(w, r, http.StatusBadRequest, ia.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConfiguration):
		log.WithFields(log.Fields{"path": r.URL.Path}).
			WithError(err).Error("provider configuration error")
		writeError(w, r, http.StatusInternalServerError, "service misconfigured")
	case errors.Is(err, domain.ErrUpstream):
		log.WithFields(log.Fields{"path": r.URL.Path}).
			WithError(err).Error("upstream failure")
		writeError(w, r, http.StatusBadGateway, "upstream service unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, http.StatusGatewayTimeout, "request timed out")
	case errors.Is(err, context.Canceled):
		writeError(w, r, http.StatusServiceUnavailable, "request cancelled")
	default:
		log.WithFields(log.Fields{"method": r.Method, "path": r.URL.Path}).
			WithError(err).Error("request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// requireUser extracts the authenticated user id, rejecting the request
// when the auth middleware did not run.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok || claims.UserID == "" {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return claims.UserID, true
}

// decodeBody decodes a single JSON object request body, rejecting
// unknown fields and trailing content.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if dec.More() {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}
