package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"teamhours-be/internal/cache"
	"teamhours-be/internal/entities"
	"teamhours-be/internal/jwt"
	"teamhours-be/internal/models"
	"teamhours-be/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is a map-backed cache.Cache; TTLs are ignored.
type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return f.Set(ctx, key, string(b), expiration)
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	v, err := f.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(v), dest)
}

type fakeDeviceTokenRepo struct {
	tokens map[string][]string // userID -> tokens
}

func newFakeDeviceTokenRepo() *fakeDeviceTokenRepo {
	return &fakeDeviceTokenRepo{tokens: make(map[string][]string)}
}

func (f *fakeDeviceTokenRepo) Upsert(userID, token string) error {
	f.tokens[userID] = append(f.tokens[userID], token)
	return nil
}

func (f *fakeDeviceTokenRepo) Delete(userID, token string) error {
	kept := f.tokens[userID][:0]
	for _, t := range f.tokens[userID] {
		if t != token {
			kept = append(kept, t)
		}
	}
	f.tokens[userID] = kept
	return nil
}

func newAuthService(users *fakeUserRepo, c cache.Cache, devices *fakeDeviceTokenRepo) service.AuthService {
	return service.NewAuthService(users, devices, c, jwt.NewJWTService("test-secret", time.Hour), 10*time.Minute)
}

func seedOTP(t *testing.T, c *fakeCache, countryCode, mobile, code string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	c.data["otp:"+countryCode+mobile] = string(hash)
}

func registrationRequest() *models.UserRegistrationRequest {
	return &models.UserRegistrationRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		CountryCode: "+91",
		Mobile:      "9876543210",
		OTP:         "123456",
		DeviceToken: "device-abc",
	}
}

func TestRegister_Succeeds(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entities.User{}}
	c := newFakeCache()
	devices := newFakeDeviceTokenRepo()
	svc := newAuthService(users, c, devices)

	seedOTP(t, c, "+91", "9876543210", "123456")

	resp, err := svc.Register(context.Background(), registrationRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccountID)

	// The OTP is single-use.
	_, found := c.data["otp:+919876543210"]
	assert.False(t, found)

	// The device token was registered.
	assert.Equal(t, []string{"device-abc"}, devices.tokens[resp.UserID])
}

func TestRegister_WrongOTP(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entities.User{}}
	c := newFakeCache()
	svc := newAuthService(users, c, newFakeDeviceTokenRepo())

	seedOTP(t, c, "+91", "9876543210", "654321")

	_, err := svc.Register(context.Background(), registrationRequest())
	var invalid *service.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Invalid OTP", invalid.Message)
	assert.Empty(t, users.users)
}

func TestRegister_NoOTPIssued(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entities.User{}}
	svc := newAuthService(users, newFakeCache(), newFakeDeviceTokenRepo())

	_, err := svc.Register(context.Background(), registrationRequest())
	var invalid *service.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Invalid OTP", invalid.Message)
}

func TestRegister_DuplicateMobile(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entities.User{}}
	c := newFakeCache()
	svc := newAuthService(users, c, newFakeDeviceTokenRepo())

	seedOTP(t, c, "+91", "9876543210", "123456")
	_, err := svc.Register(context.Background(), registrationRequest())
	require.NoError(t, err)

	seedOTP(t, c, "+91", "9876543210", "123456")
	_, err = svc.Register(context.Background(), registrationRequest())
	var invalid *service.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Mobile number is already registered.", invalid.Message)
}

func TestSendOTP_StoresHashedCode(t *testing.T) {
	c := newFakeCache()
	svc := newAuthService(&fakeUserRepo{users: map[string]*entities.User{}}, c, newFakeDeviceTokenRepo())

	require.NoError(t, svc.SendOTP(context.Background(), "+91", "9876543210"))

	stored, ok := c.data["otp:+919876543210"]
	require.True(t, ok)
	// Only a bcrypt hash may be cached, never the raw code.
	assert.True(t, len(stored) > 6)
	assert.Contains(t, stored, "$2a$")
}

func TestSendOTP_WithoutCache(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{users: map[string]*entities.User{}}, nil, newFakeDeviceTokenRepo())
	assert.Error(t, svc.SendOTP(context.Background(), "+91", "9876543210"))
}

func TestMobileNumbers(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entities.User{}}
	svc := newAuthService(users, newFakeCache(), newFakeDeviceTokenRepo())

	// Nobody registered yet: an empty list, never nil.
	numbers, err := svc.MobileNumbers()
	require.NoError(t, err)
	assert.Equal(t, []entities.MobileNumber{}, numbers)

	_, err = users.Create("acc-1", "Jane", "Doe", "+91", "9876543210", nil)
	require.NoError(t, err)

	// Admin and deactivated accounts never appear in contact discovery.
	admin, err := users.Create("acc-2", "Ada", "Min", "+91", "9000000001", nil)
	require.NoError(t, err)
	admin.Role = "Admin"
	gone, err := users.Create("acc-3", "Gone", "User", "+91", "9000000002", nil)
	require.NoError(t, err)
	gone.Status = "Inactive"

	numbers, err = svc.MobileNumbers()
	require.NoError(t, err)
	assert.Equal(t, []entities.MobileNumber{{CountryCode: "+91", Mobile: "9876543210"}}, numbers)
}

func TestCheckMobile(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entities.User{}}
	c := newFakeCache()
	svc := newAuthService(users, c, newFakeDeviceTokenRepo())

	exists, err := svc.CheckMobile("+91", "9876543210")
	require.NoError(t, err)
	assert.False(t, exists)

	seedOTP(t, c, "+91", "9876543210", "123456")
	_, err = svc.Register(context.Background(), registrationRequest())
	require.NoError(t, err)

	exists, err = svc.CheckMobile("+91", "9876543210")
	require.NoError(t, err)
	assert.True(t, exists)
}
