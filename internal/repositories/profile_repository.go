package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"charity-connect.com/charity-connect/internal/constants"
	model "charity-connect.com/charity-connect/internal/models"
)

// ProfileRepository stores the benefactor and charity role profiles. Each
// user holds at most one of each; the unique index on user_id backs that up.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) CreateBenefactor(
	ctx context.Context,
	userID string,
	experience constants.ExperienceLevel,
	freeTimePerWeek int,
) (*model.Benefactor, error) {
	benefactor := &model.Benefactor{
		ID:              uuid.NewString(),
		UserID:          userID,
		Experience:      experience,
		FreeTimePerWeek: freeTimePerWeek,
		CreatedAt:       time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(benefactor).Error; err != nil {
		return nil, err
	}

	return benefactor, nil
}

func (r *ProfileRepository) BenefactorByUser(ctx context.Context, userID string) (*model.Benefactor, error) {
	var benefactor model.Benefactor
	err := r.db.WithContext(ctx).First(&benefactor, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &benefactor, nil
}

func (r *ProfileRepository) CreateCharity(
	ctx context.Context,
	userID string,
	name string,
	regNumber string,
) (*model.Charity, error) {
	charity := &model.Charity{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		RegNumber: regNumber,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(charity).Error; err != nil {
		return nil, err
	}

	return charity, nil
}

func (r *ProfileRepository) CharityByUser(ctx context.Context, userID string) (*model.Charity, error) {
	var charity model.Charity
	err := r.db.WithContext(ctx).First(&charity, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &charity, nil
}
