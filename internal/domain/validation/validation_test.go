package validation

import (
	"testing"

	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidationMessage(t *testing.T, err error, message string) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, message, appErr.Message())
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"MTN 080", "08012345678", true},
		{"081 prefix", "08112345678", true},
		{"070 prefix", "07012345678", true},
		{"091 prefix", "09112345678", true},
		{"Ten digits", "0812345678", false},
		{"Twelve digits", "081123456789", false},
		{"Second digit 5", "08512345678", false},
		{"Third digit 2", "08212345678", false},
		{"International prefix", "+2348012345678", false},
		{"Letters", "0801234567a", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assertValidationMessage(t, err, MsgInvalidPhone)
			}
		})
	}
}

func TestRegisterRules_StructTag(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterRules(v))

	type request struct {
		Phone string `validate:"omitempty,ngphone"`
	}

	assert.NoError(t, v.Struct(request{Phone: "08012345678"}))
	assert.NoError(t, v.Struct(request{}))
	assert.Error(t, v.Struct(request{Phone: "12345"}))
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lat     string
		lng     string
		message string
	}{
		{"Origin", "0", "0", ""},
		{"Upper bounds inclusive", "90", "180", ""},
		{"Lower bounds inclusive", "-90", "-180", ""},
		{"Whitespace trimmed", " 7.5 ", " 3.9", ""},
		{"Latitude above range", "91", "0", MsgLatitudeRange},
		{"Latitude below range", "-90.0001", "0", MsgLatitudeRange},
		{"Longitude below range", "0", "-181", MsgLongitudeRange},
		{"Longitude above range", "0", "180.5", MsgLongitudeRange},
		{"Not a number", "abc", "3", MsgCoordinatesNaN},
		{"Empty longitude", "7", "", MsgCoordinatesNaN},
		{"NaN literal", "NaN", "3", MsgCoordinatesNaN},
		{"Trailing garbage", "7.1abc", "3", MsgCoordinatesNaN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords, err := ParseCoordinates(tt.lat, tt.lng)
			if tt.message == "" {
				require.NoError(t, err)
				assert.GreaterOrEqual(t, coords.Lat, -90.0)
				assert.LessOrEqual(t, coords.Lng, 180.0)

				return
			}
			assertValidationMessage(t, err, tt.message)
		})
	}
}

func TestCollectLinkedIDs(t *testing.T) {
	ids, err := CollectLinkedIDs([]string{"", "c2", "", "c1", "c2"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c1", "c2"}, ids)

	_, err = CollectLinkedIDs([]string{"", ""}, 0)
	assertValidationMessage(t, err, MsgNoLinkedCommunities)

	_, err = CollectLinkedIDs(nil, 0)
	assertValidationMessage(t, err, MsgNoLinkedCommunities)
}

func TestCollectLinkedIDs_Cap(t *testing.T) {
	six := []string{"c1", "c2", "c3", "c4", "c5", "c6"}

	_, err := CollectLinkedIDs(six, 0)
	assertValidationMessage(t, err, "No more than 5 communities can be linked.")

	_, err = CollectLinkedIDs(six[:3], 2)
	assertValidationMessage(t, err, "No more than 2 communities can be linked.")

	// Empty slots do not count towards the cap.
	ids, err := CollectLinkedIDs([]string{"c1", "", "c2", "", "c3", "c4", "c5"}, 5)
	require.NoError(t, err)
	assert.Len(t, ids, 5)

	_, err = Agent(AgentFields{
		FirstName:        "Amina",
		LastName:         "Bello",
		PhoneNumber:      "08012345678",
		CatchmentAreaIDs: []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7"},
	})
	assertValidationMessage(t, err, "No more than 5 communities can be linked.")

	_, err = Driver(DriverFields{
		FirstName:        "Musa",
		LastName:         "Dan",
		PhoneNumber:      "09012345678",
		VehicleType:      "car",
		CatchmentAreaIDs: []string{"c1", "c2", "c3"},
		MaxLinked:        2,
	})
	assertValidationMessage(t, err, "No more than 2 communities can be linked.")
}

func TestRequireFields(t *testing.T) {
	assert.NoError(t, RequireFields("missing", "a", "b"))
	assertValidationMessage(t, RequireFields("missing", "a", "   "), "missing")
}

func TestAgent(t *testing.T) {
	agent, err := Agent(AgentFields{
		FirstName:        " Amina ",
		LastName:         "Bello",
		PhoneNumber:      "08012345678",
		CatchmentAreaIDs: []string{"c1", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "Amina", agent.FirstName)
	assert.Equal(t, []string{"c1"}, agent.CatchmentAreaIDs)
	assert.Equal(t, entity.AgentStatusActive, agent.Status)

	_, err = Agent(AgentFields{FirstName: "Amina", PhoneNumber: "08012345678", CatchmentAreaIDs: []string{"c1"}})
	assertValidationMessage(t, err, MsgAgentRequired)

	_, err = Agent(AgentFields{FirstName: "Amina", LastName: "Bello", PhoneNumber: "0801", CatchmentAreaIDs: []string{"c1"}})
	assertValidationMessage(t, err, MsgInvalidPhone)

	_, err = Agent(AgentFields{FirstName: "Amina", LastName: "Bello", PhoneNumber: "08012345678", CatchmentAreaIDs: []string{""}})
	assertValidationMessage(t, err, MsgNoLinkedCommunities)
}

func TestDriver(t *testing.T) {
	fields := DriverFields{
		FirstName:        "Musa",
		LastName:         "Danjuma",
		PhoneNumber:      "09012345678",
		VehicleType:      "motorcycle",
		CatchmentAreaIDs: []string{"c1"},
	}

	driver, err := Driver(fields)
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleMotorcycle, driver.VehicleType)
	assert.True(t, driver.IsAvailable)

	bad := fields
	bad.VehicleType = "bus"
	_, err = Driver(bad)
	assertValidationMessage(t, err, MsgInvalidVehicleType)

	// Linked communities are checked before the vehicle type.
	bad.CatchmentAreaIDs = nil
	_, err = Driver(bad)
	assertValidationMessage(t, err, MsgNoLinkedCommunities)

	bad = fields
	bad.VehicleType = ""
	_, err = Driver(bad)
	assertValidationMessage(t, err, MsgDriverRequired)
}

func TestCommunity(t *testing.T) {
	community, err := Community(CommunityFields{
		Name: "Kofar Wambai", Settlement: "Wambai", Ward: "Dala", LGA: "Dala", Lat: "12.0", Lng: "8.5",
	})
	require.NoError(t, err)
	require.NotNil(t, community.Location)
	assert.InDelta(t, 12.0, community.Location.Lat, 1e-9)
	assert.Empty(t, community.ID)

	_, err = Community(CommunityFields{Name: "x", Settlement: "y", Ward: "z", Lat: "1", Lng: "1"})
	assertValidationMessage(t, err, MsgCommunityRequired)
}

func TestFacility(t *testing.T) {
	facility, err := Facility(FacilityFields{
		Name:         "Dala PHC",
		Ward:         "Dala",
		LGA:          "Dala",
		Lat:          "12",
		Lng:          "8.5",
		FacilityType: entity.FacilityPrimaryHealthCenter,
		Capabilities: entity.CapabilitySet{entity.CapabilityKey("unknown"): true},
	})
	require.NoError(t, err)
	assert.Len(t, facility.Capabilities, len(entity.Capabilities()))
	assert.Equal(t, 0, facility.Capabilities.Count())

	_, err = Facility(FacilityFields{Name: "x", Ward: "y", LGA: "z", Lat: "1", Lng: "1", FacilityType: "Spa"})
	assertValidationMessage(t, err, MsgInvalidFacilityType)
}
