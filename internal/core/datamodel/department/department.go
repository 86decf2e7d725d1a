package department

// Department groups employees and devices. Referenced by both, so it
// cannot be deleted while any reference remains.
type Department struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"column:name;size:30;uniqueIndex;not null"`
}

func (Department) TableName() string {
	return "departments"
}
