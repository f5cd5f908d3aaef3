package entity

import "strings"

// CapabilityKey names one medical capability flag on a facility.
type CapabilityKey string

const (
	CapUterotonics         CapabilityKey = "has_uterotonics"
	CapBlood               CapabilityKey = "has_blood"
	CapAnticonvulsants     CapabilityKey = "has_anticonvulsants"
	CapAntihypertensives   CapabilityKey = "has_antihypertensives"
	CapAdrenaline          CapabilityKey = "has_adrenaline"
	CapDeliveryRoom        CapabilityKey = "has_delivery_room"
	CapIncubator           CapabilityKey = "has_incubator"
	CapPower               CapabilityKey = "has_power"
	CapWater               CapabilityKey = "has_water"
	CapMVAKit              CapabilityKey = "has_mva_kit"
	CapAntibiotics         CapabilityKey = "has_antibiotics"
	CapIVFluids            CapabilityKey = "has_iv_fluids"
	CapTheater             CapabilityKey = "has_theater"
	CapUltrasound          CapabilityKey = "has_ultrasound"
	CapDoctor              CapabilityKey = "has_doctor"
	CapMidwifeOrNurse      CapabilityKey = "has_midwife_or_nurse"
	CapReferralTransport   CapabilityKey = "has_referral_transport"
	CapMonitoring          CapabilityKey = "has_monitoring"
	CapStaff247            CapabilityKey = "staff_24_7"
)

const capabilityGroupUnknown = "Other"

// Capability is a catalog entry.
type Capability struct {
	Key   CapabilityKey `json:"key"`
	Label string        `json:"label"`
}

// CapabilityGroup is presentation metadata only; it is not stored on facilities.
type CapabilityGroup struct {
	Title string          `json:"title"`
	Keys  []CapabilityKey `json:"keys"`
}

var capabilityCatalog = []Capability{
	{CapUterotonics, "Uterotonics (oxytocin, misoprostol)"},
	{CapBlood, "Blood products/transfusion"},
	{CapAnticonvulsants, "Anticonvulsants (MgSO4, diazepam)"},
	{CapAntihypertensives, "Antihypertensives"},
	{CapAdrenaline, "Adrenaline"},
	{CapDeliveryRoom, "Delivery room"},
	{CapIncubator, "Incubator/newborn care"},
	{CapPower, "Reliable power supply"},
	{CapWater, "Clean water"},
	{CapMVAKit, "MVA kit for miscarriage management"},
	{CapAntibiotics, "Antibiotics"},
	{CapIVFluids, "IV fluids"},
	{CapTheater, "Operating theater"},
	{CapUltrasound, "Ultrasound"},
	{CapDoctor, "Doctor on premises"},
	{CapMidwifeOrNurse, "Midwife/Nurse on premises"},
	{CapReferralTransport, "Referral transport"},
	{CapMonitoring, "Vital signs monitoring"},
	{CapStaff247, "24/7 staffing"},
}

var capabilityGroups = []CapabilityGroup{
	{
		Title: "Medications & Supplies",
		Keys: []CapabilityKey{
			CapUterotonics, CapBlood, CapAnticonvulsants, CapAntihypertensives,
			CapAdrenaline, CapAntibiotics, CapIVFluids, CapMVAKit,
		},
	},
	{
		Title: "Facilities & Equipment",
		Keys:  []CapabilityKey{CapDeliveryRoom, CapIncubator, CapTheater, CapUltrasound, CapMonitoring},
	},
	{
		Title: "Infrastructure",
		Keys:  []CapabilityKey{CapPower, CapWater, CapReferralTransport},
	},
	{
		Title: "Staffing",
		Keys:  []CapabilityKey{CapDoctor, CapMidwifeOrNurse, CapStaff247},
	},
}

// Capabilities returns the catalog in display order.
func Capabilities() []Capability {
	out := make([]Capability, len(capabilityCatalog))
	copy(out, capabilityCatalog)

	return out
}

// CapabilityGroups returns the display grouping of the catalog.
func CapabilityGroups() []CapabilityGroup {
	out := make([]CapabilityGroup, len(capabilityGroups))
	for i, g := range capabilityGroups {
		out[i] = CapabilityGroup{Title: g.Title, Keys: append([]CapabilityKey(nil), g.Keys...)}
	}

	return out
}

// IsCapabilityKey reports whether k is in the catalog.
func IsCapabilityKey(k CapabilityKey) bool {
	for _, c := range capabilityCatalog {
		if c.Key == k {
			return true
		}
	}

	return false
}

// CapabilityGroupOf returns the group title for k, "Other" when ungrouped.
func CapabilityGroupOf(k CapabilityKey) string {
	for _, g := range capabilityGroups {
		for _, key := range g.Keys {
			if key == k {
				return g.Title
			}
		}
	}

	return capabilityGroupUnknown
}

// CapabilitySet maps capability keys to availability.
type CapabilitySet map[CapabilityKey]bool

// NewCapabilitySet returns every catalog key set to false.
func NewCapabilitySet() CapabilitySet {
	set := make(CapabilitySet, len(capabilityCatalog))
	for _, c := range capabilityCatalog {
		set[c.Key] = false
	}

	return set
}

// Normalize returns a full catalog set seeded from s; keys outside the catalog are dropped.
func (s CapabilitySet) Normalize() CapabilitySet {
	out := NewCapabilitySet()
	for k := range out {
		out[k] = s[k]
	}

	return out
}

// Count returns the number of flags set to true.
func (s CapabilitySet) Count() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}

	return n
}

// HasAll reports whether every key in keys is set to true.
func (s CapabilitySet) HasAll(keys []CapabilityKey) bool {
	for _, k := range keys {
		if !s[k] {
			return false
		}
	}

	return true
}

// Summary is the compact capability label shown in facility lists.
func (s CapabilitySet) Summary() string {
	if s == nil {
		return "None"
	}

	var key []string
	if s[CapDoctor] {
		key = append(key, "Doctor")
	}
	if s[CapTheater] {
		key = append(key, "Theater")
	}
	if s[CapBlood] {
		key = append(key, "Blood")
	}
	if s[CapStaff247] {
		key = append(key, "24/7 Staff")
	}

	if len(key) == 0 {
		return "Basic"
	}

	return strings.Join(key, ", ")
}

// CapabilityDetail is an enabled capability with its label and group.
type CapabilityDetail struct {
	Key   CapabilityKey `json:"key"`
	Label string        `json:"label"`
	Group string        `json:"group"`
}

// Details lists enabled capabilities in catalog order.
func (s CapabilitySet) Details() []CapabilityDetail {
	details := make([]CapabilityDetail, 0, len(s))
	for _, c := range capabilityCatalog {
		if !s[c.Key] {
			continue
		}
		details = append(details, CapabilityDetail{
			Key:   c.Key,
			Label: c.Label,
			Group: CapabilityGroupOf(c.Key),
		})
	}

	return details
}
