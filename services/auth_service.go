package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

const refreshTokenTTL = 24 * time.Hour

// AuthService covers staff registration, login and refresh-token rotation.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// TokenPair is the login/refresh response payload.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Username     string `json:"username"`
	Roles        string `json:"roles"`
}

func (s *AuthService) Register(username, password, roles string) (*models.User, error) {
	if len(password) < 6 {
		return nil, &utils.ValidationError{
			Message: "One or more fields are not valid!",
			Fields:  map[string]string{"password": "must be at least 6 characters"},
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if roles == "" {
		roles = "STAFF"
	}
	user := &models.User{Username: username, Password: string(hash), Roles: roles}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &utils.ConflictError{Message: "This username is already taken!"}
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a fresh token pair. Any
// previous refresh token for the user is replaced.
func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("User", "username", username)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, &utils.ValidationError{
			Message: "Incorrect username or password!",
			Fields:  map[string]string{"password": "does not match"},
		}
	}
	return s.issueTokens(&user)
}

// Refresh exchanges a valid, unexpired refresh token for a new pair and
// rotates the stored token.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	var stored models.RefreshToken
	err := s.DB.Preload("User").Where("refresh_token = ?", refreshToken).First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Refresh token", "refreshToken", refreshToken)
		}
		return nil, err
	}
	if time.Now().After(stored.ExpirationDate) {
		return nil, &utils.ValidationError{
			Message: "Refresh token has expired, please log in again!",
			Fields:  map[string]string{"refreshToken": "expired"},
		}
	}
	return s.issueTokens(&stored.User)
}

func (s *AuthService) issueTokens(user *models.User) (*TokenPair, error) {
	access, err := utils.GenerateAccessToken(user.Username, user.Roles)
	if err != nil {
		return nil, err
	}

	refresh := models.RefreshToken{
		RefreshToken:   uuid.NewString(),
		ExpirationDate: time.Now().Add(refreshTokenTTL),
		UserID:         user.ID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(&refresh).Error
	})
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh.RefreshToken,
		Username:     user.Username,
		Roles:        user.Roles,
	}, nil
}
