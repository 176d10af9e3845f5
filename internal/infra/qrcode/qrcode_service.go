package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"virtualcheck/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	baseURL              string
	locale               string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service that points at public virtual check pages
// under baseURL. When locale is set the page URL is prefixed with it.
func NewQRCodeService(baseURL, locale string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		locale:               locale,
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// RelationURL returns the public page URL for a relation hash
func (s *qrcodeService) RelationURL(hash string) string {
	path := "/virtualcheck/" + url.PathEscape(hash)
	if s.locale != "" {
		path = "/" + s.locale + path
	}

	return s.baseURL + path
}

// GenerateRelationQR renders the relation's public URL as a PNG
func (s *qrcodeService) GenerateRelationQR(hash string) ([]byte, error) {
	if hash == "" {
		return nil, fmt.Errorf("relation hash is empty")
	}

	qrCode, err := qrcode.New(s.RelationURL(hash), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
