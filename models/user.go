package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email     *string `gorm:"uniqueIndex" json:"email"`
	FullName  string  `json:"full_name"`
	Password  string  `json:"-"`
	Confirmed bool    `gorm:"default:false" json:"confirmed"`
	Role      string  `gorm:"default:user" json:"role"`
	GoogleID  *string `json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
