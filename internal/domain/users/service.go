package users

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) FindByEmail(email string) (*User, error) {
	var u User
	err := s.db.First(&u, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Authenticate checks a local account's password. Google-only accounts have
// no hash and always fail here.
func (s *Service) Authenticate(email, password string) (*User, error) {
	u, err := s.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.Password == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// LinkGoogle attaches a Google subject to an existing admin account the
// first time that account signs in with Google. Unknown emails are rejected:
// Google sign-in never creates operators.
func (s *Service) LinkGoogle(email, sub string) (*User, error) {
	u, err := s.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u.GoogleSub == nil || *u.GoogleSub != sub {
		if err := s.db.Model(&User{}).Where("id = ?", u.ID).
			Update("google_sub", sub).Error; err != nil {
			return nil, err
		}
		u.GoogleSub = &sub
	}
	return u, nil
}

// SeedAdmin ensures the operator account from the environment exists. An
// existing account is left untouched so a changed env password does not
// silently rotate credentials.
func (s *Service) SeedAdmin(email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set. No operator account seeded.")
		return nil
	}

	if _, err := s.FindByEmail(email); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashed := string(hash)

	u := User{
		Email:        email,
		Password:     &hashed,
		AuthProvider: "local",
		Role:         "admin",
	}
	return s.db.Create(&u).Error
}
