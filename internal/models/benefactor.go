package model

import (
	"time"

	"charity-connect.com/charity-connect/internal/constants"
)

// Benefactor is a user opted into volunteering. One per user; removed
// together with the owning user.
type Benefactor struct {
	ID              string                    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string                    `gorm:"uniqueIndex;size:36;not null" json:"user_id"`
	User            User                      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Experience      constants.ExperienceLevel `gorm:"not null;default:0" json:"experience"`
	FreeTimePerWeek int                       `gorm:"not null;default:0" json:"free_time_per_week"`
	CreatedAt       time.Time                 `json:"created_at"`
}
