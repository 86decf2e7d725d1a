package employee

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// CreateEmployeeDTO is the create payload. Card dates arrive as
// YYYY-MM-DD; start defaults to today and finish to tomorrow, matching
// the card issuance flow.
type CreateEmployeeDTO struct {
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	DepartmentID   int64  `json:"department_id"`
	CardID         int64  `json:"card_id"`
	CardStartDate  string `json:"card_start_date,omitempty"`
	CardFinishDate string `json:"card_finish_date,omitempty"`
}

func (dto CreateEmployeeDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if dto.Surname == "" {
		return errors.New("surname is required")
	}
	if dto.DepartmentID == 0 {
		return errors.New("department_id is required")
	}
	if dto.CardID == 0 {
		return errors.New("card_id is required")
	}
	for _, d := range []string{dto.CardStartDate, dto.CardFinishDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", d)
		}
	}
	return nil
}

// Dates resolves the card validity window, applying defaults for
// omitted fields. Validate must have accepted the DTO first.
func (dto CreateEmployeeDTO) Dates(now time.Time) (start, finish time.Time) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	start = today
	finish = today.AddDate(0, 0, 1)
	if dto.CardStartDate != "" {
		start, _ = time.Parse(dateLayout, dto.CardStartDate)
	}
	if dto.CardFinishDate != "" {
		finish, _ = time.Parse(dateLayout, dto.CardFinishDate)
	}
	return start, finish
}

// UpdateEmployeeDTO carries partial updates; nil means "leave as is".
type UpdateEmployeeDTO struct {
	Name           *string `json:"name,omitempty"`
	Surname        *string `json:"surname,omitempty"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
	CardID         *int64  `json:"card_id,omitempty"`
	CardStartDate  *string `json:"card_start_date,omitempty"`
	CardFinishDate *string `json:"card_finish_date,omitempty"`
}

func (dto UpdateEmployeeDTO) Validate() error {
	for _, d := range []*string{dto.CardStartDate, dto.CardFinishDate} {
		if d == nil {
			continue
		}
		if _, err := time.Parse(dateLayout, *d); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *d)
		}
	}
	return nil
}
