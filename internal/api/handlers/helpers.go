package handlers

import (
	"encoding/json"
	"errors"
	"guidance-service/internal/domain"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps caller contract violations to 4xx and everything else to 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrPathNotFound):
		writeError(w, r, http.StatusNotFound, "path not found")
	case errors.Is(err, domain.ErrWaypointNotFound):
		writeError(w, r, http.StatusNotFound, "waypoint not found in path")
	case errors.Is(err, domain.ErrInvalidPath), errors.Is(err, domain.ErrDuplicateWaypoint):
		log.Printf("%s failed: %v", op, err)
		writeError(w, r, http.StatusUnprocessableEntity, "stored path is not usable for guidance")
	default:
		log.Printf("%s failed: %v", op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
