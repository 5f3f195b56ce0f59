package model

import (
	"time"

	"charity-connect.com/charity-connect/internal/constants"
)

// Task is a unit of work posted by a charity. The owning charity never
// changes after creation; the benefactor binding and the state move only
// through the workflow transitions. AssignedBenefactorID is nil exactly
// while the task is pending.
//
// Age and gender limits describe who the charity is looking for; they are
// not enforced when a benefactor requests the task.
type Task struct {
	ID                   string              `gorm:"primaryKey;size:36" json:"id"`
	CharityID            string              `gorm:"size:36;not null;index" json:"charity_id"`
	Charity              Charity             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AssignedBenefactorID *string             `gorm:"size:36;index" json:"assigned_benefactor_id,omitempty"`
	AssignedBenefactor   *Benefactor         `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Title                string              `gorm:"size:60;not null" json:"title"`
	Description          *string             `json:"description,omitempty"`
	Date                 *time.Time          `json:"date,omitempty"`
	AgeLimitFrom         *int                `json:"age_limit_from,omitempty"`
	AgeLimitTo           *int                `json:"age_limit_to,omitempty"`
	GenderLimit          *constants.Gender   `gorm:"type:varchar(1)" json:"gender_limit,omitempty"`
	State                constants.TaskState `gorm:"type:varchar(1);not null;default:P" json:"state"`
	Version              uint                `gorm:"not null;default:1" json:"version"`
	CreatedAt            time.Time           `json:"created_at"`
}
