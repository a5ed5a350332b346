package models

import "time"

type Prospect struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;uniqueIndex:idx_prospects_user_email"`
	Email     string `gorm:"size:320;not null;uniqueIndex:idx_prospects_user_email"`
	FirstName string `gorm:"size:255;not null;default:''"`
	LastName  string `gorm:"size:255;not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Prospect) TableName() string {
	return "prospects"
}

type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"size:320;not null;uniqueIndex"`
	APIToken  string `gorm:"size:64;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
