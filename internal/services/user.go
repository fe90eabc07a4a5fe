package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/coolbreeze/storefront/internal/config"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/security"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	PasswordStrength(password string) models.PasswordStrength
	CreateAdmin(ctx context.Context, name, email, password string) (*models.User, error)
}

type userService struct {
	repo      repository.UserRepository
	rateLimit repository.RateLimitRepository
	jwtKey    []byte
	expiry    time.Duration
	minScore  int
}

func NewUserService(repo repository.UserRepository, rateLimit repository.RateLimitRepository, cfg *config.Security) UserService {
	expiry := time.Duration(cfg.JWTExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	return &userService{
		repo:      repo,
		rateLimit: rateLimit,
		jwtKey:    []byte(cfg.JWTKey),
		expiry:    expiry,
		minScore:  cfg.MinPasswordScore,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	strength := security.PasswordStrength(req.Password)
	if strength.Score < s.minScore {
		return nil, appErrors.ValidationError("Password is too weak").
			WithDetail("password strength is " + strength.Label)
	}

	return s.create(ctx, req.Name, req.Email, req.Phone, req.Password, models.RoleCustomer)
}

// CreateAdmin bypasses the strength policy; it is only reachable from the CLI.
func (s *userService) CreateAdmin(ctx context.Context, name, email, password string) (*models.User, error) {
	return s.create(ctx, name, email, "", password, models.RoleAdmin)
}

func (s *userService) create(ctx context.Context, name, email, phone, password string, role models.Role) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existingUser, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, appErrors.DatabaseError("Failed to check existing user").WithError(err)
	}

	if existingUser != nil {
		return nil, appErrors.DuplicateEntryError("Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.DuplicateEntryError("Email already registered").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	allowed, remaining, retryAfter, err := s.rateLimit.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	now := time.Now()

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(s.expiry.Seconds()),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}

func (s *userService) PasswordStrength(password string) models.PasswordStrength {
	return security.PasswordStrength(password)
}
