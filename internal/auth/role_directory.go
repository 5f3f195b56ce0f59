package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "charity-connect.com/charity-connect/internal/models"
)

// RoleDirectory resolves a user ID to a Principal with role membership
// filled in. Invalidate must be called whenever a user's role set changes
// so cached snapshots are not served stale.
type RoleDirectory interface {
	Resolve(ctx context.Context, userID string) (Principal, error)

	Invalidate(ctx context.Context, userID string) error
}

// Directory resolves roles straight from the profile tables.
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

func (d *Directory) Resolve(ctx context.Context, userID string) (Principal, error) {
	principal := Principal{UserID: userID}

	var benefactor model.Benefactor
	err := d.db.WithContext(ctx).
		Select("id").
		First(&benefactor, "user_id = ?", userID).Error
	switch {
	case err == nil:
		principal.BenefactorID = benefactor.ID
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return Principal{}, err
	}

	var charity model.Charity
	err = d.db.WithContext(ctx).
		Select("id").
		First(&charity, "user_id = ?", userID).Error
	switch {
	case err == nil:
		principal.CharityID = charity.ID
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return Principal{}, err
	}

	return principal, nil
}

func (d *Directory) Invalidate(ctx context.Context, userID string) error {
	return nil
}
