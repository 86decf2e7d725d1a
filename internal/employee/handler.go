package employee

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	deviceDatamodel "pacs/internal/core/datamodel/device"
	employeeDatamodel "pacs/internal/core/datamodel/employee"
	"pacs/internal/transport"
)

type ServiceAPI interface {
	Create(dto CreateEmployeeDTO) (*employeeDatamodel.Employee, error)
	Get(id int64) (*employeeDatamodel.Employee, error)
	List(pageSize, startIndex int) ([]employeeDatamodel.Employee, error)
	Update(id int64, dto UpdateEmployeeDTO) (*employeeDatamodel.Employee, error)
	Delete(id int64) error
	GetDevices(id int64) ([]deviceDatamodel.Device, error)
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pageSize, startIndex := h.Pagination(r, 10)

	emps, err := h.Service.List(pageSize, startIndex)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emps)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(chi.URLParam(r, "employeeID"))
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	emp, err := h.Service.Get(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(chi.URLParam(r, "employeeID"))
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	var dto UpdateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(chi.URLParam(r, "employeeID"))
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetDevices handles GET /employees/{employeeID}/devices
func (h *Handler) GetDevices(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(chi.URLParam(r, "employeeID"))
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	devices, err := h.Service.GetDevices(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, devices)
}
