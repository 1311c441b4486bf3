package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"teamhours-be/internal/cache"
	"teamhours-be/internal/entities"
	"teamhours-be/internal/jwt"
	"teamhours-be/internal/models"
	"teamhours-be/internal/repository"

	"github.com/google/uuid"
)

// AuthService defines the interface for registration and session logic
type AuthService interface {
	CheckMobile(countryCode, mobile string) (bool, error)
	SendOTP(ctx context.Context, countryCode, mobile string) error
	Register(ctx context.Context, req *models.UserRegistrationRequest) (*models.AuthResponse, error)
	Logout(userID, deviceToken string) error
	Profile(userID string) (*entities.User, error)
	MobileNumbers() ([]entities.MobileNumber, error)
}

type authService struct {
	users        repository.UserRepository
	deviceTokens repository.DeviceTokenRepository
	cache        cache.Cache
	jwtService   *jwt.JWTService
	otpTTL       time.Duration
}

// NewAuthService creates a new auth service. The cache is mandatory for the
// OTP flow: without Redis no code can be issued or verified.
func NewAuthService(users repository.UserRepository, deviceTokens repository.DeviceTokenRepository, cacheClient cache.Cache, jwtService *jwt.JWTService, otpTTL time.Duration) AuthService {
	return &authService{
		users:        users,
		deviceTokens: deviceTokens,
		cache:        cacheClient,
		jwtService:   jwtService,
		otpTTL:       otpTTL,
	}
}

func otpKey(countryCode, mobile string) string {
	return fmt.Sprintf("otp:%s%s", countryCode, mobile)
}

// CheckMobile reports whether the mobile number is already registered
func (s *authService) CheckMobile(countryCode, mobile string) (bool, error) {
	_, err := s.users.FindByMobile(countryCode, mobile)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SendOTP issues a 6-digit one-time password for the mobile number. Only a
// bcrypt hash of the code goes into Redis, with a bounded TTL. Delivery is
// the SMS gateway's job; here the code is only logged.
func (s *authService) SendOTP(ctx context.Context, countryCode, mobile string) error {
	if s.cache == nil {
		return errors.New("otp store unavailable")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64())

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}

	if err := s.cache.Set(ctx, otpKey(countryCode, mobile), string(hash), s.otpTTL); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	log.Printf("OTP issued for %s%s: %s", countryCode, mobile, code)
	return nil
}

// Register verifies the OTP, creates the user and opens a session. The OTP
// is single-use: its cache entry is removed on success.
func (s *authService) Register(ctx context.Context, req *models.UserRegistrationRequest) (*models.AuthResponse, error) {
	if s.cache == nil {
		return nil, errors.New("otp store unavailable")
	}

	exists, err := s.CheckMobile(req.CountryCode, req.Mobile)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, invalidInput("Mobile number is already registered.")
	}

	key := otpKey(req.CountryCode, req.Mobile)
	hash, err := s.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, invalidInput("Invalid OTP")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load OTP: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.OTP)) != nil {
		return nil, invalidInput("Invalid OTP")
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Printf("Warning: failed to delete used OTP: %v", err)
	}

	user, err := s.users.Create(uuid.NewString(), req.FirstName, req.LastName, req.CountryCode, req.Mobile, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.deviceTokens.Upsert(user.ID, req.DeviceToken); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		AccountID: user.AccountID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Token:     token,
		TokenType: "bearer",
	}, nil
}

// Logout removes the device token for the authenticated user
func (s *authService) Logout(userID, deviceToken string) error {
	return s.deviceTokens.Delete(userID, deviceToken)
}

// Profile loads the authenticated user's record
func (s *authService) Profile(userID string) (*entities.User, error) {
	return s.users.FindByID(userID)
}

// MobileNumbers lists the numbers of every active end user so the mobile
// app can match against the device's address book.
func (s *authService) MobileNumbers() ([]entities.MobileNumber, error) {
	numbers, err := s.users.ListActiveMobiles()
	if err != nil {
		return nil, err
	}
	if numbers == nil {
		numbers = []entities.MobileNumber{}
	}
	return numbers, nil
}
