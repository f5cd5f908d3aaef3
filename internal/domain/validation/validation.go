// Package validation holds the field rules shared by the create and edit forms.
// Every failure is a VALIDATION_FAILED error whose message is shown inline in the form.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// TagNigerianPhone is the validator tag for Nigerian mobile numbers.
const TagNigerianPhone = "ngphone"

// Messages shown to the user.
const (
	MsgAgentRequired       = "Name and phone number are required."
	MsgDriverRequired      = "Name, phone number, and vehicle type are required."
	MsgCommunityRequired   = "Name, Settlement, Ward, and LGA are required."
	MsgFacilityRequired    = "Name, Ward, LGA, and Facility Type are required."
	MsgInvalidPhone        = "Invalid phone number format. Must be Nigerian mobile format (e.g., 08012345678)"
	MsgCoordinatesNaN      = "Latitude and Longitude must be valid numbers."
	MsgLatitudeRange       = "Latitude must be between -90 and 90 degrees."
	MsgLongitudeRange      = "Longitude must be between -180 and 180 degrees."
	MsgNoLinkedCommunities = "At least one community must be selected."
	MsgTooManyLinked       = "No more than %d communities can be linked."
	MsgInvalidVehicleType  = `Vehicle type must be either "car" or "motorcycle".`
	MsgInvalidFacilityType = "Facility type must be one of the supported facility types."
)

// Leading 0, then 7/8/9, then 0/1, then eight digits.
var nigerianMobile = regexp.MustCompile(`^0[789][01]\d{8}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterRules(v); err != nil {
		panic(err)
	}

	return v
}

// RegisterRules adds the console's custom tags to v.
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation(TagNigerianPhone, func(fl validator.FieldLevel) bool {
		return IsNigerianMobile(fl.Field().String())
	})
}

// IsNigerianMobile reports whether phone matches the mobile format exactly.
func IsNigerianMobile(phone string) bool {
	return nigerianMobile.MatchString(phone)
}

// ValidatePhone rejects anything that is not a full Nigerian mobile number.
func ValidatePhone(phone string) error {
	if err := validate.Var(phone, TagNigerianPhone); err != nil {
		return domainerrors.NewValidationError(MsgInvalidPhone)
	}

	return nil
}

// RequireFields fails with message when any value is blank after trimming.
func RequireFields(message string, values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return domainerrors.NewValidationError(message)
		}
	}

	return nil
}

// ParseCoordinates parses form input and checks both ranges, bounds inclusive.
func ParseCoordinates(lat, lng string) (entity.Coordinates, error) {
	latitude, latErr := parseNumber(lat)
	longitude, lngErr := parseNumber(lng)
	if latErr != nil || lngErr != nil {
		return entity.Coordinates{}, domainerrors.NewValidationError(MsgCoordinatesNaN)
	}

	if err := CheckCoordinates(latitude, longitude); err != nil {
		return entity.Coordinates{}, err
	}

	return entity.Coordinates{Lat: latitude, Lng: longitude}, nil
}

// CheckCoordinates validates already numeric coordinates.
func CheckCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return domainerrors.NewValidationError(MsgCoordinatesNaN)
	}
	if err := validate.Var(lat, "gte=-90,lte=90"); err != nil {
		return domainerrors.NewValidationError(MsgLatitudeRange)
	}
	if err := validate.Var(lng, "gte=-180,lte=180"); err != nil {
		return domainerrors.NewValidationError(MsgLongitudeRange)
	}

	return nil
}

func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) {
		return 0, strconv.ErrSyntax
	}

	return f, nil
}

// DefaultMaxLinked caps linked communities when no limit is configured.
const DefaultMaxLinked = 5

// CollectLinkedIDs keeps the non-empty slot selections in slot order.
// An empty result, or more than maxLinked selections, is rejected.
// A maxLinked of zero or less means DefaultMaxLinked.
func CollectLinkedIDs(ids []string, maxLinked int) ([]string, error) {
	if maxLinked <= 0 {
		maxLinked = DefaultMaxLinked
	}

	selected := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			selected = append(selected, id)
		}
	}

	if len(selected) == 0 {
		return nil, domainerrors.NewValidationError(MsgNoLinkedCommunities)
	}
	if len(selected) > maxLinked {
		return nil, domainerrors.NewValidationError(fmt.Sprintf(MsgTooManyLinked, maxLinked))
	}

	return selected, nil
}

// ValidateVehicleType accepts car or motorcycle only.
func ValidateVehicleType(v string) error {
	if !entity.VehicleType(v).Valid() {
		return domainerrors.NewValidationError(MsgInvalidVehicleType)
	}

	return nil
}

// ValidateFacilityType accepts one of entity.FacilityTypes.
func ValidateFacilityType(t string) error {
	if !entity.IsFacilityType(t) {
		return domainerrors.NewValidationError(MsgInvalidFacilityType)
	}

	return nil
}
