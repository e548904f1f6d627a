package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"newsorbit-api/config"
	"newsorbit-api/models"
	"newsorbit-api/repositories"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.User, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	ListUsers() ([]models.User, error)
	Approve(accountID uint) error
	Reject(accountID uint) error
	SetBlocked(accountID uint, blocked bool) error
	SetCanPost(accountID uint, canPost bool) error
	AdminCreate(req models.AdminCreateUserRequest) (*models.User, error)
}

type authService struct {
	userRepo         repositories.UserRepository
	masterAdminEmail string
}

func NewAuthService(userRepo repositories.UserRepository, masterAdminEmail string) AuthService {
	return &authService{
		userRepo:         userRepo,
		masterAdminEmail: masterAdminEmail,
	}
}

// Register creates credentials and an account awaiting review. Roles are
// never self-selected: every registration is a pending reporter.
func (s *authService) Register(req models.RegisterRequest) (*models.User, error) {
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existingUser != nil {
		return nil, models.ErrDuplicateAccount
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hashedPassword),
		Role:      models.RoleReporter,
		Status:    models.UserStatusPending,
		IsBlocked: false,
		CanPost:   false,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates and then applies the account lifecycle checks: blocked
// accounts are refused regardless of status, pending and rejected accounts
// never receive a token.
func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if user.IsBlocked {
		return nil, models.ErrAccountBlocked
	}
	if user.Status == models.UserStatusPending {
		return nil, models.ErrAccountPending
	}
	if user.Status == models.UserStatusRejected {
		return nil, models.ErrAccountRejected
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// Approve activates a pending account and grants posting rights in the same
// write.
func (s *authService) Approve(accountID uint) error {
	if _, err := s.GetUserByID(accountID); err != nil {
		return err
	}

	return s.userRepo.UpdateFields(accountID, map[string]interface{}{
		"status":   models.UserStatusActive,
		"can_post": true,
	})
}

// Reject is terminal: there is no path back to active. can_post is left
// untouched (it was never granted).
func (s *authService) Reject(accountID uint) error {
	if _, err := s.GetUserByID(accountID); err != nil {
		return err
	}

	return s.userRepo.UpdateFields(accountID, map[string]interface{}{
		"status": models.UserStatusRejected,
	})
}

// SetBlocked toggles access independently of status. The master admin account
// is never blockable.
func (s *authService) SetBlocked(accountID uint, blocked bool) error {
	user, err := s.GetUserByID(accountID)
	if err != nil {
		return err
	}

	if user.Email == s.masterAdminEmail {
		return models.ErrMasterAdminLocked
	}

	return s.userRepo.UpdateFields(accountID, map[string]interface{}{
		"is_blocked": blocked,
	})
}

func (s *authService) SetCanPost(accountID uint, canPost bool) error {
	if _, err := s.GetUserByID(accountID); err != nil {
		return err
	}

	return s.userRepo.UpdateFields(accountID, map[string]interface{}{
		"can_post": canPost,
	})
}

// AdminCreate bypasses registration review: the account is active with
// posting rights from the start.
func (s *authService) AdminCreate(req models.AdminCreateUserRequest) (*models.User, error) {
	if !req.Role.Valid() {
		return nil, models.ErrorValidation{Message: "unknown role"}
	}

	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existingUser != nil {
		return nil, models.ErrDuplicateAccount
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashedPassword),
		Role:     req.Role,
		Status:   models.UserStatusActive,
		CanPost:  true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     now.Add(config.JWTExpiration).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
