package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trial-marketplace/backend/internal/apperr"
	"github.com/trial-marketplace/backend/internal/auth"
	"github.com/trial-marketplace/backend/internal/config"
	"github.com/trial-marketplace/backend/internal/models"
	"github.com/trial-marketplace/backend/internal/repositories"
	"go.uber.org/zap"
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repositories.UserRepo
	log      *zap.Logger
}

func NewAuthService(cfg *config.Config, userRepo *repositories.UserRepo, log *zap.Logger) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo, log: log}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
	Role     string
}

type AuthResult struct {
	Token string
	User  *models.User
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if !models.IsValidRole(input.Role) {
		return nil, apperr.New(400, apperr.CodeInvalidRequest, "role must be advertiser or influencer")
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperr.New(409, apperr.CodeUserAlreadyExists, "an account with this email already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to check existing account", err)
	}

	hash, err := auth.HashPassword(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, apperr.Wrap(500, apperr.CodeCreationFailed, "failed to hash password", err)
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Role:         input.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperr.Wrap(500, apperr.CodeCreationFailed, "failed to create account", err)
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Role, s.cfg.JWTExpiration)
	if err != nil {
		return nil, apperr.Wrap(500, apperr.CodeCreationFailed, "failed to issue token", err)
	}

	s.log.Info("user signed up", zap.String("user_id", user.ID.String()), zap.String("role", user.Role))
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same answer for unknown email and wrong password.
		return nil, apperr.New(401, apperr.CodeUnauthorized, "invalid email or password")
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperr.New(401, apperr.CodeUnauthorized, "invalid email or password")
	}

	if err := s.userRepo.UpdateLastActive(ctx, user.ID); err != nil {
		s.log.Warn("failed to touch last_active_at", zap.Error(err))
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Role, s.cfg.JWTExpiration)
	if err != nil {
		return nil, apperr.Wrap(500, apperr.CodeCreationFailed, "failed to issue token", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) GetMe(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(404, apperr.CodeProfileNotFound, "account not found")
		}
		return nil, apperr.Wrap(500, apperr.CodeFetchError, "failed to load account", err)
	}
	return user, nil
}
