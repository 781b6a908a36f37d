package services

import (
	"errors"
	"strings"

	"github.com/deckforge-dev/deckforge/internal/auth"
	"github.com/deckforge-dev/deckforge/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountService covers registration, login and the user listing surface.
type AccountService struct {
	db            *gorm.DB
	authenticator *auth.TokenAuthenticator
}

func NewAccountService(db *gorm.DB, authenticator *auth.TokenAuthenticator) *AccountService {
	return &AccountService{db: db, authenticator: authenticator}
}

// SignUp registers a user and returns a fresh token alongside the record.
// The email uniqueness check here gives the friendly conflict answer; the
// uniqueIndex on users.email closes the check-then-insert race.
func (s *AccountService) SignUp(email, username, password string) (string, models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || username == "" || password == "" {
		return "", models.User{}, ErrSignUpFields
	}

	user, err := s.createUser(email, username, password)

	if err != nil {
		return "", models.User{}, err
	}

	token, err := s.authenticator.Issue(user.ID, user.Email)

	if err != nil {
		return "", models.User{}, err
	}

	return token, user, nil
}

// SignIn verifies credentials and returns a fresh token. Unknown email and
// wrong password yield the same error so callers cannot probe for accounts.
func (s *AccountService) SignIn(email, password string) (string, models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return "", models.User{}, ErrSignInFields
	}

	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.authenticator.Issue(user.ID, user.Email)

	if err != nil {
		return "", models.User{}, err
	}

	return token, user, nil
}

// CreateUser is SignUp without the token, used by the protected user-creation
// endpoint.
func (s *AccountService) CreateUser(email, username, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || username == "" || password == "" {
		return models.User{}, ErrSignUpFields
	}

	return s.createUser(email, username, password)
}

func (s *AccountService) createUser(email, username, password string) (models.User, error) {
	var existing models.User

	err := s.db.Where("email = ?", email).First(&existing).Error

	if err == nil {
		return models.User{}, ErrEmailTaken
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	return user, nil
}

func (s *AccountService) ListUsers() ([]models.User, error) {
	var users []models.User

	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *AccountService) GetUser(userID uint) (models.User, error) {
	var user models.User

	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	return user, nil
}
