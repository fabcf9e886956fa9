package models

import "time"

const (
	UsersGenderDefault = 0
)

type Users struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Username  string    `gorm:"column:username;not null;uniqueIndex" json:"username"`
	Mobile    string    `gorm:"column:mobile;size:20" json:"mobile"`
	Password  string    `gorm:"column:password;size:255" json:"-"`
	Nickname  string    `gorm:"column:nickname;size:64" json:"nickname"`
	Avatar    string    `gorm:"column:avatar;size:512" json:"avatar"`
	Motto     string    `gorm:"column:motto;size:255" json:"motto"` // 个人简介
	Email     string    `gorm:"column:email;size:128" json:"email"`
	Gender    int       `gorm:"column:gender;default:0" json:"gender"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
