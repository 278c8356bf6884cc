package auth

import (
	"context"
	"errors"

	"github.com/vetcarehq/vetclinic-api/internal/model"
	"github.com/vetcarehq/vetclinic-api/internal/repository"
	"github.com/vetcarehq/vetclinic-api/internal/validation"
	"github.com/vetcarehq/vetclinic-api/pkg/auth"
	apperrors "github.com/vetcarehq/vetclinic-api/pkg/errors"
	"github.com/vetcarehq/vetclinic-api/pkg/security"
)

type Service struct {
	users     repository.UserRepository
	jwtSvc    auth.JWTService
	hasher    security.PasswordHasher
	validator *validation.Validator
}

func NewService(users repository.UserRepository, jwtSvc auth.JWTService,
	hasher security.PasswordHasher, validator *validation.Validator) *Service {
	return &Service{
		users:     users,
		jwtSvc:    jwtSvc,
		hasher:    hasher,
		validator: validator,
	}
}

// Login verifies credentials and issues a bearer token. Every failure mode
// reads the same to the caller.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	if fields := s.validator.Validate(req); fields != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Unauthorized("invalid credentials")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwtSvc.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.TokenResponse{Token: token, Expiration: expiresAt}, nil
}

func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) error {
	if fields := s.validator.Validate(req); fields != nil {
		return apperrors.Validation(fields)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return apperrors.ValidationMsg(err.Error())
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
	}
	err = s.users.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return apperrors.AlreadyExists("user already exists")
	}
	if err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
