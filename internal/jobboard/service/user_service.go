package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/atharv2608/alphaware-task-backend/internal/errors"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/domain"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/dto"
	"github.com/atharv2608/alphaware-task-backend/pkg/constant"
)

type UserService struct {
	repo    domain.UserRepository
	tokens  TokenGenerator
	cipher  TokenCipher
	logger  zerolog.Logger
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, cipher TokenCipher, logger zerolog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		cipher: cipher,
		logger: logger,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if anyBlank(input.FirstName, input.LastName, input.Email, input.Phone, input.Password) {
		return nil, errors.ErrMissingFields
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)

	existing, err := s.repo.GetByEmailOrPhone(ctx, email, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Role is fixed here, at creation, and never recomputed afterwards.
	role := constant.RoleUser
	if strings.Contains(email, constant.AdminEmailDomain) {
		role = constant.RoleAdmin
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		Phone:        phone,
		Role:         role,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", role).Msg("user registered")

	// The hash stays in the store; the created record goes out without it.
	user.PasswordHash = ""

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	if anyBlank(input.Email, input.Password) {
		return nil, errors.ErrMissingFields
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.logger.Debug().Str("email", email).Msg("login rejected: wrong password")
		return nil, errors.ErrInvalidCredentials
	}

	signed, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	encrypted, err := s.cipher.Encrypt(signed)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return &dto.LoginOutput{
		User:        dto.NewUserOutput(user),
		AccessToken: encrypted,
	}, nil
}

func anyBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}
