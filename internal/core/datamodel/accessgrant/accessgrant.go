package accessgrant

// AccessGrant pairs one employee with one device. The pair is the whole
// identity: the composite primary key forbids duplicate grants, and both
// foreign keys cascade so deleting either endpoint removes the grant.
type AccessGrant struct {
	EmployeeID int64 `json:"employee_id" gorm:"column:employee_id;primaryKey"`
	DeviceID   int64 `json:"device_id" gorm:"column:device_id;primaryKey"`
}

func (AccessGrant) TableName() string {
	return "access_grants"
}
