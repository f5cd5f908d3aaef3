package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityCatalog(t *testing.T) {
	caps := Capabilities()
	assert.Len(t, caps, 19)

	grouped := 0
	for _, g := range CapabilityGroups() {
		grouped += len(g.Keys)
	}
	assert.Equal(t, 19, grouped, "every capability belongs to exactly one group")
	assert.Len(t, CapabilityGroups(), 4)
}

func TestCapabilitySet_Summary(t *testing.T) {
	tests := []struct {
		name string
		set  CapabilitySet
		want string
	}{
		{"nil set", nil, "None"},
		{"nothing notable", CapabilitySet{CapWater: true}, "Basic"},
		{"doctor and blood", CapabilitySet{CapBlood: true, CapDoctor: true}, "Doctor, Blood"},
		{"all key flags", CapabilitySet{CapDoctor: true, CapTheater: true, CapBlood: true, CapStaff247: true}, "Doctor, Theater, Blood, 24/7 Staff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Summary())
		})
	}
}

func TestCapabilitySet_NormalizeAndCount(t *testing.T) {
	set := CapabilitySet{CapDoctor: true, "has_helipad": true}

	normalized := set.Normalize()
	assert.Len(t, normalized, 19)
	assert.NotContains(t, normalized, CapabilityKey("has_helipad"))
	assert.Equal(t, 1, normalized.Count())
	assert.True(t, normalized.HasAll([]CapabilityKey{CapDoctor}))
	assert.False(t, normalized.HasAll([]CapabilityKey{CapDoctor, CapTheater}))
	assert.True(t, normalized.HasAll(nil))
}

func TestCapabilitySet_Details(t *testing.T) {
	set := CapabilitySet{CapStaff247: true, CapBlood: true}

	details := set.Details()
	assert.Equal(t, []CapabilityDetail{
		{Key: CapBlood, Label: "Blood products/transfusion", Group: "Medications & Supplies"},
		{Key: CapStaff247, Label: "24/7 staffing", Group: "Staffing"},
	}, details)
}

func TestResolveAreas(t *testing.T) {
	index := IndexCommunities([]Community{
		{ID: "c1", Name: "Gwagwa", Settlement: "Gwagwa Town", Ward: "Gwagwa", LGA: "AMAC"},
	})

	areas := ResolveAreas([]string{"c1", "gone"}, index)
	assert.Equal(t, "Gwagwa Town", areas[0].Settlement)
	assert.Equal(t, UnknownArea(), areas[1])
	assert.Equal(t, areas[0], PrimaryArea(areas))
	assert.Equal(t, AreaRef{}, PrimaryArea(nil))
}
