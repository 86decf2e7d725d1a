package device

import "fmt"

// Route is the direction a reader controls.
type Route string

const (
	RouteEnter Route = "enter"
	RouteExit  Route = "exit"
)

func (r Route) Valid() bool {
	return r == RouteEnter || r == RouteExit
}

func ParseRoute(s string) (Route, error) {
	r := Route(s)
	if !r.Valid() {
		return "", fmt.Errorf("invalid route %q", s)
	}
	return r, nil
}

// Device is a physical card reader. When Opened is set the reader admits
// any presented card without consulting access grants.
type Device struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"column:name;size:30;not null"`
	Opened       bool   `json:"opened" gorm:"column:opened;default:false"`
	Imei         string `json:"imei" gorm:"column:imei;size:30;uniqueIndex;not null"`
	Route        Route  `json:"route" gorm:"column:route;size:10;not null"`
	DepartmentID int64  `json:"department_id" gorm:"column:department_id;not null"`
}

func (Device) TableName() string {
	return "devices"
}
