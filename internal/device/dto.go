package device

import (
	"errors"
	"fmt"

	deviceDatamodel "pacs/internal/core/datamodel/device"
)

type CreateDeviceDTO struct {
	Name         string `json:"name"`
	Imei         string `json:"imei"`
	Route        string `json:"route"`
	DepartmentID int64  `json:"department_id"`
	Opened       bool   `json:"opened"`
}

func (dto CreateDeviceDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if dto.Imei == "" {
		return errors.New("imei is required")
	}
	if dto.DepartmentID == 0 {
		return errors.New("department_id is required")
	}
	if !deviceDatamodel.Route(dto.Route).Valid() {
		return fmt.Errorf("route must be %q or %q", deviceDatamodel.RouteEnter, deviceDatamodel.RouteExit)
	}
	return nil
}

// UpdateDeviceDTO carries partial updates; nil means "leave as is".
type UpdateDeviceDTO struct {
	Name         *string `json:"name,omitempty"`
	Imei         *string `json:"imei,omitempty"`
	Route        *string `json:"route,omitempty"`
	DepartmentID *int64  `json:"department_id,omitempty"`
	Opened       *bool   `json:"opened,omitempty"`
}

func (dto UpdateDeviceDTO) Validate() error {
	if dto.Route != nil && !deviceDatamodel.Route(*dto.Route).Valid() {
		return fmt.Errorf("route must be %q or %q", deviceDatamodel.RouteEnter, deviceDatamodel.RouteExit)
	}
	if dto.Imei != nil && *dto.Imei == "" {
		return errors.New("imei cannot be empty")
	}
	return nil
}

// GrantAccessDTO names the employee-device pair for a new access grant.
type GrantAccessDTO struct {
	DeviceID   int64 `json:"device_id"`
	EmployeeID int64 `json:"employee_id"`
}

func (dto GrantAccessDTO) Validate() error {
	if dto.DeviceID == 0 || dto.EmployeeID == 0 {
		return errors.New("device_id and employee_id are required")
	}
	return nil
}
