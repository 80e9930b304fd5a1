package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelier/internal/config"
	"hotelier/internal/dto"
	"hotelier/internal/model"
	"hotelier/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// AuthService owns the token lifecycle and user administration.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error

	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, page, limit int) ([]dto.UserResponse, int64, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, active bool) error
}

type authService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	types  repository.LookupRepository[model.UserType]
	cfg    *config.Config
}

func NewAuthService(
	users repository.UserRepository,
	tokens repository.TokenRepository,
	types repository.LookupRepository[model.UserType],
	cfg *config.Config,
) AuthService {
	return &authService{users: users, tokens: tokens, types: types, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if !user.Active {
		return nil, fmt.Errorf("%w: account is disabled", ErrUnauthorized)
	}

	ttl := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	now := time.Now()
	signed, err := s.signToken(user, now, ttl)
	if err != nil {
		return nil, err
	}

	// Persist the session so logout and the sweeper can invalidate it.
	if err := s.tokens.Create(ctx, &model.Token{
		UserID:    user.ID,
		Token:     signed,
		Status:    model.TokenActive,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        mapUser(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.tokens.Revoke(ctx, token); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: token is not active", ErrUnauthorized)
		}
		return err
	}
	return nil
}

func (s *authService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username %w", ErrConflict)
	}
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email %w", ErrConflict)
	}

	typeID, err := uuid.Parse(req.UserTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user_type_id", ErrValidation)
	}
	if _, err := s.types.FindByID(ctx, typeID); err != nil {
		return nil, fmt.Errorf("user type %w", ErrNotFound)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		UserTypeID:   typeID,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if storeConflict(err) {
			return nil, fmt.Errorf("username or email %w", ErrConflict)
		}
		return nil, err
	}
	resp := mapUser(user)
	return &resp, nil
}

func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}
	resp := mapUser(user)
	return &resp, nil
}

func (s *authService) ListUsers(ctx context.Context, page, limit int) ([]dto.UserResponse, int64, error) {
	users, total, err := s.users.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = mapUser(&users[i])
	}
	return resp, total, nil
}

func (s *authService) UpdateUser(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	if req.Username != nil && *req.Username != user.Username {
		if existing, err := s.users.FindByUsername(ctx, *req.Username); err == nil && existing.ID != id {
			return nil, fmt.Errorf("username %w", ErrConflict)
		}
		user.Username = *req.Username
	}
	if req.Email != nil && *req.Email != user.Email {
		if existing, err := s.users.FindByEmail(ctx, *req.Email); err == nil && existing.ID != id {
			return nil, fmt.Errorf("email %w", ErrConflict)
		}
		user.Email = *req.Email
	}
	if req.UserTypeID != nil {
		typeID, err := uuid.Parse(*req.UserTypeID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid user_type_id", ErrValidation)
		}
		if _, err := s.types.FindByID(ctx, typeID); err != nil {
			return nil, fmt.Errorf("user type %w", ErrNotFound)
		}
		user.UserTypeID = typeID
		user.UserType = nil
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if storeConflict(err) {
			return nil, fmt.Errorf("username or email %w", ErrConflict)
		}
		return nil, err
	}
	resp := mapUser(user)
	return &resp, nil
}

func (s *authService) UpdateUserStatus(ctx context.Context, id uuid.UUID, active bool) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user %w", ErrNotFound)
	}
	if user.Active == active {
		return fmt.Errorf("%w: status is unchanged", ErrConflict)
	}
	return s.users.SetActive(ctx, id, active)
}

func (s *authService) signToken(user *model.User, now time.Time, ttl time.Duration) (string, error) {
	userType := ""
	if user.UserType != nil {
		userType = user.UserType.Name
	}
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"username":  user.Username,
		"email":     user.Email,
		"user_type": userType,
		"exp":       now.Add(ttl).Unix(),
		"iat":       now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func mapUser(u *model.User) dto.UserResponse {
	typeName := ""
	if u.UserType != nil {
		typeName = u.UserType.Name
	}
	return dto.UserResponse{
		ID:         u.ID.String(),
		Username:   u.Username,
		Email:      u.Email,
		UserTypeID: u.UserTypeID.String(),
		UserType:   typeName,
		Active:     u.Active,
	}
}
