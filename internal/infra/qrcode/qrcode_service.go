package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"eventhub/config"
	"eventhub/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "eventhub://invite"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              baseURL,
	}
}

// NewQRCodeServiceFromConfig is the fx constructor reading the qrcode section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "", defaultBaseURL)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// InviteLink builds the deep link encoded in an invite QR code.
func (s *qrcodeService) InviteLink(inviteCode string) string {
	return s.baseURL + "?code=" + url.QueryEscape(inviteCode)
}

// GenerateInviteQR renders the invite link for inviteCode as a PNG QR code.
func (s *qrcodeService) GenerateInviteQR(inviteCode string) ([]byte, error) {
	if inviteCode == "" {
		return nil, fmt.Errorf("invite code is empty")
	}

	// Generate QR code
	qrCode, err := qrcode.New(s.InviteLink(inviteCode), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
