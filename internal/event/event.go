package event

import (
	deviceDatamodel "pacs/internal/core/datamodel/device"
	employeeDatamodel "pacs/internal/core/datamodel/employee"
	eventDatamodel "pacs/internal/core/datamodel/event"
)

// RepositoryAPI is the append-only audit store. Events are never
// updated or deleted.
type RepositoryAPI interface {
	Create(evt *eventDatamodel.Event) error
	List(pageSize, startIndex int) ([]eventDatamodel.Event, error)
}

// EmployeeRepositoryAPI resolves a presented card to its holder.
type EmployeeRepositoryAPI interface {
	GetByCardID(cardID int64) (*employeeDatamodel.Employee, error)
}

// DeviceRepositoryAPI resolves a reader identifier to the device.
type DeviceRepositoryAPI interface {
	GetByImei(imei string) (*deviceDatamodel.Device, error)
}

// GrantRepositoryAPI answers grant membership for the decision.
type GrantRepositoryAPI interface {
	Exists(employeeID, deviceID int64) (bool, error)
}

const (
	EntryPermitted  = "Admission are permitted"
	EntryProhibited = "Admission are prohibited"
)

// EntryResponse is the door-facing decision payload.
type EntryResponse struct {
	Entry string `json:"entry"`
}

// decision is the outcome of the five-rule check before it is audited.
type decision struct {
	success    bool
	employeeID *int64
	deviceID   *int64
}
