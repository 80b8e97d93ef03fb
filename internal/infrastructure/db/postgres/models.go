package postgres

import (
	"time"
)

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:320;not null"`
	Password  string `gorm:"column:hashed_password;size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type PostModel struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"size:255;not null"`
	OwnerID   uint      `gorm:"index;not null"`
	Owner     UserModel `gorm:"foreignKey:OwnerID"`
	CreatedAt time.Time
}

func (PostModel) TableName() string {
	return "posts"
}
