package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"charity-connect.com/charity-connect/internal/auth"
	"charity-connect.com/charity-connect/internal/constants"
	errs "charity-connect.com/charity-connect/internal/errors"
	model "charity-connect.com/charity-connect/internal/models"
	repository "charity-connect.com/charity-connect/internal/repositories"
)

// ProfileService registers benefactor and charity profiles. Registration
// changes the caller's role set, so the role directory entry is invalidated
// after every successful create.
type ProfileService struct {
	profiles *repository.ProfileRepository
	roles    auth.RoleDirectory
}

func NewProfileService(profiles *repository.ProfileRepository, roles auth.RoleDirectory) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		roles:    roles,
	}
}

func (s *ProfileService) RegisterBenefactor(
	ctx context.Context,
	userID string,
	experience constants.ExperienceLevel,
	freeTimePerWeek int,
) (*model.Benefactor, error) {
	_, err := s.profiles.BenefactorByUser(ctx, userID)
	if err == nil {
		return nil, errs.ErrBenefactorExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	benefactor, err := s.profiles.CreateBenefactor(ctx, userID, experience, freeTimePerWeek)
	if err != nil {
		return nil, err
	}

	s.invalidateRoles(ctx, userID)
	return benefactor, nil
}

func (s *ProfileService) RegisterCharity(
	ctx context.Context,
	userID string,
	name string,
	regNumber string,
) (*model.Charity, error) {
	_, err := s.profiles.CharityByUser(ctx, userID)
	if err == nil {
		return nil, errs.ErrCharityExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	charity, err := s.profiles.CreateCharity(ctx, userID, name, regNumber)
	if err != nil {
		return nil, err
	}

	s.invalidateRoles(ctx, userID)
	return charity, nil
}

func (s *ProfileService) invalidateRoles(ctx context.Context, userID string) {
	if err := s.roles.Invalidate(ctx, userID); err != nil {
		log.Printf("failed to invalidate roles for user %s: %v", userID, err)
	}
}
