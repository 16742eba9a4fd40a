package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopease/shopease/internal/errors"
	"github.com/shopease/shopease/internal/models"
	repository "github.com/shopease/shopease/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo     repository.UserRepository
	jwtKey   []byte
	tokenTTL time.Duration
}

func NewUserService(repo repository.UserRepository, jwtKey []byte, tokenTTL time.Duration) *UserService {
	return &UserService{
		repo:     repo,
		jwtKey:   jwtKey,
		tokenTTL: tokenTTL,
	}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	user := &models.User{
		Username: models.SanitizeText(req.Username),
		Email:    models.SanitizeText(req.Email),
		IsActive: true,
	}

	if !user.IsValid() {
		return nil, errors.ValidationError("Username and a valid email are required")
	}

	existingUser, _ := s.repo.GetUserByUsername(ctx, user.Username)
	if existingUser != nil {
		return nil, errors.DuplicateEntryError("Username already registered")
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user.PasswordHash = string(hashedPassword)

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	username := models.SanitizeText(req.Username)

	// Retrieve the user from the DB and compare the passwords
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return &models.LoginResponse{
			Success: false,
			Message: "Invalid username or password",
		}, nil
	}

	if !user.IsActive {
		return &models.LoginResponse{
			Success: false,
			Message: "Account is disabled",
		}, nil
	}

	claims := &models.Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// Generate Token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(time.Until(claims.ExpiresAt.Time).Seconds()),
	}, nil
}
