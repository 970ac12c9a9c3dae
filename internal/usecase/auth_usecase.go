package usecase

import (
	"errors"
	"fmt"

	"wallpaperhub/internal/repo/persistent"
	"wallpaperhub/pkg/jwt"
	"wallpaperhub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUseCase interface {
	Login(username, password string) (string, error)
}

type authUseCase struct {
	adminRepo  persistent.AdminRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(adminRepo persistent.AdminRepository, jwtService *jwt.Service, log *logger.Logger) AuthUseCase {
	return &authUseCase{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     log,
	}
}

// Login verifies admin credentials and returns a signed session token.
// Unknown usernames and wrong passwords both map to
// ErrInvalidCredentials so the response does not leak which was wrong.
func (uc *authUseCase) Login(username, password string) (string, error) {
	user, err := uc.adminRepo.GetByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		uc.logger.Warn("Failed login attempt for %s", username)
		return "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "admin")
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
