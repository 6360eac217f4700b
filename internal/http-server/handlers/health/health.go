package health

import (
	"net/http"

	"vitrina/internal/http-server/respond"
)

func NewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respond.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "GET only")
			return
		}
		respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
