package repository

import "time"

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"` // bcrypt digest, never the plaintext
}

type Todo struct {
	ID          uint      `gorm:"primaryKey"`
	Content     string    `gorm:"type:varchar(200);not null"`
	Completed   bool      `gorm:"not null;default:false"`
	DateCreated time.Time `gorm:"not null;index"` // sole ordering key for listing
}
