package controllers

import (
	"teamhours-be/internal/models"
	"teamhours-be/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// CheckMobile handles POST /api/v1/check-mobile
func (ac *AuthController) CheckMobile(c *gin.Context) {
	var req models.CheckMobileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	exists, err := ac.authService.CheckMobile(req.CountryCode, req.Mobile)
	if err != nil {
		respondServiceError(c, "AuthController.CheckMobile", err, "User Not Found!")
		return
	}

	respondOK(c, "Mobile check Successfully!", gin.H{"exists": exists})
}

// SendOTP handles POST /api/v1/send-otp
func (ac *AuthController) SendOTP(c *gin.Context) {
	var req models.SendOTPRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	if err := ac.authService.SendOTP(c.Request.Context(), req.CountryCode, req.Mobile); err != nil {
		respondServiceError(c, "AuthController.SendOTP", err, "User Not Found!")
		return
	}

	respondOK(c, "OTP sent Successfully!", []interface{}{})
}

// Register handles POST /api/v1/user-registration
func (ac *AuthController) Register(c *gin.Context) {
	var req models.UserRegistrationRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	auth, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, "AuthController.Register", err, "User Not Found!")
		return
	}

	respondOK(c, "User Successfully Registered!", auth)
}

// UserMobileNumbers handles POST /api/v1/user-mobile-numbers - lists the
// registered numbers the app matches against the device's contacts.
func (ac *AuthController) UserMobileNumbers(c *gin.Context) {
	if _, _, ok := callerIdentity(c); !ok {
		return
	}

	numbers, err := ac.authService.MobileNumbers()
	if err != nil {
		respondServiceError(c, "AuthController.UserMobileNumbers", err, "User Not Found!")
		return
	}

	respondOK(c, "Mobile Numbers get Successfully!", gin.H{"mobileNumbers": numbers})
}

// Logout handles POST /api/v1/logout
func (ac *AuthController) Logout(c *gin.Context) {
	var req models.LogoutRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := ac.authService.Logout(userID, req.DeviceToken); err != nil {
		respondServiceError(c, "AuthController.Logout", err, "User Not Found!")
		return
	}

	respondOK(c, "User Successfully logged out!", []interface{}{})
}
