package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProductQR generates a shelf-label QR code for a sweet
	GenerateProductQR(productID uint) ([]byte, error)

	// ParseProductQR parses QR code data and returns the sweet ID
	ParseProductQR(qrData string) (uint, error)
}
