package model

import "time"

// Charity is a user opted into posting tasks. One per user; removed
// together with the owning user.
type Charity struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"uniqueIndex;size:36;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	RegNumber string    `gorm:"size:10;not null" json:"reg_number"`
	CreatedAt time.Time `json:"created_at"`
}
