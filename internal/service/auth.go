package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
)

const sessionTTL = 24 * time.Hour

type AuthService interface {
	Register(name, email, password string) (model.User, string, error)
	Login(email, password string) (model.User, string, error)
	ParseToken(token string) (uint, error)
	GetUser(userID uint) (model.User, error)
}

type authService struct {
	db     *gorm.DB
	secret []byte
}

func NewAuthService(db *gorm.DB, secret []byte) AuthService {
	return &authService{db: db, secret: secret}
}

// Register creates the account and logs the new user straight in.
func (a *authService) Register(name, email, password string) (model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return model.User{}, "", errors.New("name and email are required")
	}
	if len(password) < 6 {
		return model.User{}, "", ErrWeakPassword
	}

	var existing model.User
	err := a.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return model.User{}, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, "", err
	}
	u := model.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := a.db.Create(&u).Error; err != nil {
		return model.User{}, "", err
	}

	tok, err := a.issueToken(u.ID)
	return u, tok, err
}

func (a *authService) Login(email, password string) (model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u model.User
	if err := a.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, "", ErrInvalidCredentials
		}
		return model.User{}, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return model.User{}, "", ErrInvalidCredentials
	}

	tok, err := a.issueToken(u.ID)
	return u, tok, err
}

func (a *authService) issueToken(userID uint) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"typ": "session",
		"exp": time.Now().Add(sessionTTL).Unix(),
	})
	return t.SignedString(a.secret)
}

func (a *authService) ParseToken(token string) (uint, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return 0, err
	}
	if claims["typ"] != "session" {
		return 0, errors.New("invalid token type")
	}
	idFloat, ok := claims["sub"].(float64)
	if !ok {
		return 0, errors.New("invalid sub")
	}
	return uint(idFloat), nil
}

func (a *authService) GetUser(userID uint) (model.User, error) {
	var u model.User
	return u, a.db.First(&u, userID).Error
}
