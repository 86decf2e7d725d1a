package employee

import "time"

// Employee holds exactly one access card identified by CardID. The card
// is usable only inside its validity window; the store enforces
// card_finish_date >= card_start_date.
type Employee struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"column:name;size:30;not null"`
	Surname        string    `json:"surname" gorm:"column:surname;size:30;not null"`
	DepartmentID   int64     `json:"department_id" gorm:"column:department_id;not null"`
	CardID         int64     `json:"card_id" gorm:"column:card_id;uniqueIndex"`
	CardStartDate  time.Time `json:"card_start_date" gorm:"column:card_start_date;type:date"`
	CardFinishDate time.Time `json:"card_finish_date" gorm:"column:card_finish_date;type:date;check:card_dates,card_finish_date >= card_start_date"`
}

func (Employee) TableName() string {
	return "employees"
}

// CardExpired reports whether the card's validity window ended before
// the given day. Comparison is by calendar date, not instant.
func (e *Employee) CardExpired(today time.Time) bool {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	fy, fm, fd := e.CardFinishDate.Date()
	finish := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	return finish.Before(day)
}
