package qrcode

import (
	"encoding/json"
	"fmt"

	"sweetshop/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	qrTypeSweet = "sweet"

	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	SweetID uint   `json:"sweet_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProductQR generates a PNG shelf-label QR code for a sweet
func (s *qrcodeService) GenerateProductQR(productID uint) ([]byte, error) {
	jsonData, err := json.Marshal(QRCodeData{
		SweetID: productID,
		Type:    qrTypeSweet,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProductQR parses scanned QR code data and returns the sweet ID
func (s *qrcodeService) ParseProductQR(qrData string) (uint, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrTypeSweet {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.SweetID == 0 {
		return 0, fmt.Errorf("missing sweet ID")
	}

	return data.SweetID, nil
}
