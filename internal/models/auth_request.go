package models

// CheckMobileRequest asks whether a mobile number is already registered
type CheckMobileRequest struct {
	CountryCode string `form:"country_code" json:"country_code" binding:"required"`
	Mobile      string `form:"mobile" json:"mobile" binding:"required,numeric"`
}

func (CheckMobileRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"CountryCode.required": "Country Code is required.",
		"Mobile.required":      "Mobile is required.",
		"Mobile.numeric":       "Mobile must be a numeric value.",
	}
}

// SendOTPRequest requests a one-time password for a mobile number
type SendOTPRequest struct {
	CountryCode string `form:"country_code" json:"country_code" binding:"required"`
	Mobile      string `form:"mobile" json:"mobile" binding:"required,numeric"`
}

func (SendOTPRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"CountryCode.required": "Country Code is required.",
		"Mobile.required":      "Mobile is required.",
		"Mobile.numeric":       "Mobile must be a numeric value.",
	}
}

// UserRegistrationRequest represents the OTP-verified registration request
type UserRegistrationRequest struct {
	FirstName   string  `form:"first_name" json:"first_name" binding:"required"`
	LastName    string  `form:"last_name" json:"last_name" binding:"required"`
	CountryCode string  `form:"country_code" json:"country_code" binding:"required"`
	Mobile      string  `form:"mobile" json:"mobile" binding:"required,numeric"`
	OTP         string  `form:"otp" json:"otp" binding:"required,len=6,numeric"`
	Email       *string `form:"email" json:"email,omitempty" binding:"omitempty,email"`
	DeviceToken string  `form:"device_token" json:"device_token" binding:"required"`
}

func (UserRegistrationRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"FirstName.required":   "First Name is required.",
		"LastName.required":    "Last Name is required.",
		"CountryCode.required": "Country Code is required.",
		"Mobile.required":      "Mobile is required.",
		"Mobile.numeric":       "Mobile must be a numeric value.",
		"OTP.required":         "OTP is required.",
		"OTP.len":              "OTP must be 6 digits long.",
		"OTP.numeric":          "OTP must be a numeric value.",
		"Email.email":          "Email must be a valid email address.",
		"DeviceToken.required": "Device token is required.",
	}
}

// LogoutRequest removes a device token for the authenticated user
type LogoutRequest struct {
	DeviceToken string `form:"device_token" json:"device_token" binding:"required"`
}

func (LogoutRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"DeviceToken.required": "Device token is required.",
	}
}
