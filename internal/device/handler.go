package device

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	deviceDatamodel "pacs/internal/core/datamodel/device"
	employeeDatamodel "pacs/internal/core/datamodel/employee"
	"pacs/internal/transport"
)

type ServiceAPI interface {
	Create(dto CreateDeviceDTO) (*deviceDatamodel.Device, error)
	Get(id int64) (*deviceDatamodel.Device, error)
	List(pageSize, startIndex int) ([]deviceDatamodel.Device, error)
	Update(id int64, dto UpdateDeviceDTO) (*deviceDatamodel.Device, error)
	Delete(id int64) error
	GetEmployees(id int64) ([]employeeDatamodel.Employee, error)
	AddEmployee(dto GrantAccessDTO) error
	RemoveEmployee(deviceID, employeeID int64) error
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

	devs, err := h.Service.List(pageSize, startIndex)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, devs)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(chi.URLParam(r, "deviceID"))
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid device ID")
		return
	}

	dev, err := h.Service.Get(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dev)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateDeviceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dev, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dev)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(chi.URLParam(r, "deviceID"))
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid device ID")
		return
	}

	var dto UpdateDeviceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dev, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dev)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(chi.URLParam(r, "deviceID"))
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid device ID")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetEmployees handles GET /devices/{deviceID}/employees
func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(chi.URLParam(r, "deviceID"))
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid device ID")
		return
	}

	emps, err := h.Service.GetEmployees(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emps)
}

// GrantAccess handles POST /devices/access
func (h *Handler) GrantAccess(w http.ResponseWriter, r *http.Request) {
	var dto GrantAccessDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.AddEmployee(dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RevokeAccess handles DELETE /devices/{deviceID}/employees/{employeeID}
func (h *Handler) RevokeAccess(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := h.PathID(chi.URLParam(r, "deviceID"))
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid device ID")
		return
	}
	employeeID, ok := h.PathID(chi.URLParam(r, "employeeID"))
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	if err := h.Service.RemoveEmployee(deviceID, employeeID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
