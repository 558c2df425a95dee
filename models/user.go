package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id" bson:"_id"`
	Nickname     string    `gorm:"uniqueIndex;not null" json:"nickname" bson:"nickname"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email" bson:"email"`
	PasswordHash string    `gorm:"not null" json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"-" bson:"created_at"`
}
