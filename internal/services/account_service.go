package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"charity-connect.com/charity-connect/internal/auth"
	errs "charity-connect.com/charity-connect/internal/errors"
	model "charity-connect.com/charity-connect/internal/models"
	repository "charity-connect.com/charity-connect/internal/repositories"
)

type AccountService struct {
	users  *repository.UserRepository
	tokens *auth.TokenIssuer
}

func NewAccountService(users *repository.UserRepository, tokens *auth.TokenIssuer) *AccountService {
	return &AccountService{
		users:  users,
		tokens: tokens,
	}
}

// Signup creates a user account. The caller-supplied password is stored
// only as a bcrypt hash.
func (s *AccountService) Signup(ctx context.Context, user *model.User, password string) (*model.User, error) {
	_, err := s.users.FindByUsername(ctx, user.Username)
	if err == nil {
		return nil, errs.ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns a signed bearer token.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errs.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
