package model

import (
	"time"

	"charity-connect.com/charity-connect/internal/constants"
)

type User struct {
	ID           string            `gorm:"primaryKey;size:36" json:"id"`
	Username     string            `gorm:"uniqueIndex;size:150;not null" json:"username"`
	PasswordHash string            `gorm:"not null" json:"-"`
	Address      *string           `json:"address,omitempty"`
	Age          *int              `json:"age,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Gender       *constants.Gender `gorm:"type:varchar(1)" json:"gender,omitempty"`
	Phone        *string           `gorm:"size:15" json:"phone,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
