package handlers

import (
	"net/http"
)

// Health reports liveness. It does not touch the store, so it answers even
// before any campaign exists.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
