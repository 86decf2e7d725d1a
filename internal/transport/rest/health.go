package rest

import (
	"database/sql"
	"net/http"

	"pacs/internal/transport"
)

type HealthHandler struct {
	*transport.BaseHandler
	db *sql.DB
}

func NewHealthHandler(baseHandler *transport.BaseHandler, db *sql.DB) *HealthHandler {
	return &HealthHandler{
		BaseHandler: baseHandler,
		db:          db,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.WriteError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "It works!!"})
}
