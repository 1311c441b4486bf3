package controllers

import (
	"fmt"
	"net/http"

	"teamhours-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type QRCodeController struct {
	authService service.AuthService
}

func NewQRCodeController(authService service.AuthService) *QRCodeController {
	return &QRCodeController{authService: authService}
}

// ContactQRCode handles GET /api/v1/my-qr-code - generates a contact QR
// code the mobile app scans to add the caller as a teammate.
func (qc *QRCodeController) ContactQRCode(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	user, err := qc.authService.Profile(userID)
	if err != nil {
		respondServiceError(c, "QRCodeController.ContactQRCode", err, "User Not Found!")
		return
	}

	payload := fmt.Sprintf("teamhours://contact?account_id=%s&mobile=%s%s",
		user.AccountID, user.CountryCode, user.Mobile)

	// 256x256 pixels, medium error recovery
	pngData, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		respondInternal(c, "QRCodeController.ContactQRCode", err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=contact.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
