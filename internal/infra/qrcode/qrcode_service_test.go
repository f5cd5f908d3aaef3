package qrcode

import (
	"testing"

	"ummana/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateLocationQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateLocationQR("Kofar Wambai", entity.Coordinates{Lat: 12.0021, Lng: 8.5167})
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateLocationQR_OutOfRange(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateLocationQR("Nowhere", entity.Coordinates{Lat: 95, Lng: 0})
	assert.Error(t, err)
}

func TestGeoURI(t *testing.T) {
	assert.Equal(t, "geo:12.5,-8.25?q=Dala+Ward", geoURI("Dala Ward", entity.Coordinates{Lat: 12.5, Lng: -8.25}))
	assert.Equal(t, "geo:0,0", geoURI("", entity.Coordinates{}))
}

func TestQRCodeService_ParseLocationQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		data    string
		want    entity.Coordinates
		wantErr bool
	}{
		{"With label", "geo:12.5,-8.25?q=Dala", entity.Coordinates{Lat: 12.5, Lng: -8.25}, false},
		{"With uncertainty", "geo:1,2;u=35", entity.Coordinates{Lat: 1, Lng: 2}, false},
		{"With altitude", "geo:1,2,300", entity.Coordinates{Lat: 1, Lng: 2}, false},
		{"Wrong scheme", "https://example.com", entity.Coordinates{}, true},
		{"Missing longitude", "geo:1", entity.Coordinates{}, true},
		{"Bad latitude", "geo:x,2", entity.Coordinates{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseLocationQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
