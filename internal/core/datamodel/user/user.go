package user

// User is an authentication principal for the administrative API. It is
// not part of the access-control graph; superusers may manage other users.
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	IsSuperuser  bool   `json:"is_superuser" gorm:"column:is_superuser;default:false"`
}

func (User) TableName() string {
	return "users"
}
