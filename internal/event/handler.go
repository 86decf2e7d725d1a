package event

import (
	"net/http"

	"github.com/go-chi/chi"

	eventDatamodel "pacs/internal/core/datamodel/event"
	"pacs/internal/transport"
)

type ServiceAPI interface {
	CheckEntry(cardID int64, imei string) (EntryResponse, error)
	List(pageSize, startIndex int) ([]eventDatamodel.Event, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// DropIn handles GET /drop_in/{cardID}/{imei}. The door path responds
// 200 with the decision either way; only an audit failure is an error.
func (h *Handler) DropIn(w http.ResponseWriter, r *http.Request) {
	cardID, ok := h.PathID(chi.URLParam(r, "cardID"))
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid card ID")
		return
	}
	imei := chi.URLParam(r, "imei")

	resp, err := h.Service.CheckEntry(cardID, imei)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// List handles GET /events for audit review.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pageSize, startIndex := h.Pagination(r, 100)

	events, err := h.Service.List(pageSize, startIndex)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, events)
}
