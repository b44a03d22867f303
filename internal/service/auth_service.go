package service

import (
	"errors"

	"churchsite/config"
	"churchsite/internal/auth"
	"churchsite/internal/models"
	"churchsite/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCreds = errors.New("invalid username or password")

type AuthService struct {
	cfg       *config.Config
	staffRepo *repository.StaffRepository
}

func NewAuthService(cfg *config.Config, staffRepo *repository.StaffRepository) *AuthService {
	return &AuthService{cfg: cfg, staffRepo: staffRepo}
}

func (s *AuthService) Login(username, password string) (*models.StaffUser, string, error) {
	u, err := s.staffRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, u.ID, u.Username)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
