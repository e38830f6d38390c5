package handlers

import (
	"encoding/json"
	"net/http"
)

// Every endpoint answers with the same envelope: {"status": "success"|"error",
// ...}. writeSuccess merges the extra payload fields into it.

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, fields map[string]interface{}) {
	payload := map[string]interface{}{"status": "success"}
	for k, v := range fields {
		payload[k] = v
	}
	writeJSON(w, status, payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"status": "error", "message": message})
}

// callerID reads the authenticated user id placed into the request context by
// the JWT middleware.
func callerID(r *http.Request) int {
	id, _ := r.Context().Value("user_id").(int)
	return id
}
