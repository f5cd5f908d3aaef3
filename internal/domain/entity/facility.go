package entity

import "slices"

// Facility types offered when registering a facility.
const (
	FacilityPrimaryHealthCenter       = "Primary Health Center"
	FacilityBasicHealthCenter         = "Basic Health Center"
	FacilityComprehensiveHealthCenter = "Comprehensive Health Center"
	FacilityGeneralHospital           = "General Hospital"
	FacilityTeachingHospital          = "Teaching Hospital"
	FacilityPrivateClinic             = "Private Clinic"
	FacilityOther                     = "Other"
)

// FacilityTypes lists the supported facility types; the first is the form default.
func FacilityTypes() []string {
	return []string{
		FacilityPrimaryHealthCenter,
		FacilityBasicHealthCenter,
		FacilityComprehensiveHealthCenter,
		FacilityGeneralHospital,
		FacilityTeachingHospital,
		FacilityPrivateClinic,
		FacilityOther,
	}
}

// IsFacilityType reports whether t is one of FacilityTypes.
func IsFacilityType(t string) bool {
	return slices.Contains(FacilityTypes(), t)
}

// Facility is a health facility with its capability checklist.
type Facility struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Ward         string        `json:"ward"`
	LGA          string        `json:"lga"`
	Lat          float64       `json:"lat"`
	Lng          float64       `json:"lng"`
	FacilityType string        `json:"facilityType"`
	Capabilities CapabilitySet `json:"capabilities"`
}

// Coordinates returns the facility position.
func (f Facility) Coordinates() Coordinates {
	return Coordinates{Lat: f.Lat, Lng: f.Lng}
}
