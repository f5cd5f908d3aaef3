package service

import "ummana/internal/domain/entity"

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateLocationQR encodes a geo URI for the position as a PNG image
	GenerateLocationQR(label string, coords entity.Coordinates) ([]byte, error)

	// ParseLocationQR decodes the payload of a location code
	ParseLocationQR(data string) (entity.Coordinates, error)
}
