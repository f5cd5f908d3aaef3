package qrcode

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"ummana/internal/domain/entity"
	"ummana/internal/domain/service"
	"ummana/internal/domain/validation"

	"github.com/skip2/go-qrcode"
)

const geoScheme = "geo:"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service. Unknown levels fall back to medium.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateLocationQR encodes an RFC 5870 geo URI, e.g. "geo:12.0,8.5?q=Dala".
// Phones open it in their map application.
func (s *qrcodeService) GenerateLocationQR(label string, coords entity.Coordinates) ([]byte, error) {
	if err := validation.CheckCoordinates(coords.Lat, coords.Lng); err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(geoURI(label, coords), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseLocationQR reads the coordinates back out of a geo URI.
func (s *qrcodeService) ParseLocationQR(data string) (entity.Coordinates, error) {
	if !strings.HasPrefix(data, geoScheme) {
		return entity.Coordinates{}, fmt.Errorf("not a geo URI: %q", data)
	}

	rest := strings.TrimPrefix(data, geoScheme)
	if i := strings.IndexAny(rest, ";?"); i >= 0 {
		rest = rest[:i]
	}

	parts := strings.Split(rest, ",")
	if len(parts) < 2 {
		return entity.Coordinates{}, fmt.Errorf("geo URI has no coordinates: %q", data)
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("failed to parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("failed to parse longitude: %w", err)
	}

	return entity.Coordinates{Lat: lat, Lng: lng}, nil
}

func geoURI(label string, coords entity.Coordinates) string {
	uri := geoScheme +
		strconv.FormatFloat(coords.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(coords.Lng, 'f', -1, 64)
	if label != "" {
		uri += "?q=" + url.QueryEscape(label)
	}

	return uri
}
