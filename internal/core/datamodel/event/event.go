package event

import "time"

// Event is one immutable audit record of an entry attempt. Device and
// employee references are nullable: an unknown card produces an event
// with neither, an unknown reader one with only the employee.
type Event struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	DeviceID   *int64    `json:"device_id" gorm:"column:device_id"`
	EmployeeID *int64    `json:"employee_id" gorm:"column:employee_id"`
	CreatedAt  time.Time `json:"created_date" gorm:"column:created_date;autoCreateTime"`
	Success    bool      `json:"success" gorm:"column:success;default:false"`
}

func (Event) TableName() string {
	return "events"
}
