// Package picker implements the linked community picker used by the agent
// and driver forms: a list of type-ahead slots, each resolving to at most one
// community.
package picker

import (
	"fmt"
	"slices"
	"strings"

	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"
	"ummana/internal/listing"
)

// DefaultMaxSlots is the slot cap used when none is configured.
const DefaultMaxSlots = 5

// Slot is the state of one search box.
type Slot struct {
	SearchTerm string             `json:"searchTerm"`
	Results    []entity.Community `json:"results"`
	Visible    bool               `json:"visible"`
	SelectedID string             `json:"selectedId"`
	Region     string             `json:"region"`
}

// Picker is not safe for concurrent use; callers serialize access per form.
type Picker struct {
	maxSlots   int
	slots      []Slot
	regions    *RegionRegistry
	nextRegion int
}

// New returns a picker with a single empty slot.
func New(maxSlots int) *Picker {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlots
	}

	p := &Picker{
		maxSlots: maxSlots,
		regions:  NewRegionRegistry(),
	}
	p.slots = []Slot{p.newSlot()}

	return p
}

func (p *Picker) newSlot() Slot {
	p.nextRegion++
	region := fmt.Sprintf("community-slot-%d", p.nextRegion)
	p.regions.Register(region, func() { p.hide(region) })

	return Slot{Region: region, Results: []entity.Community{}}
}

func (p *Picker) hide(region string) {
	for i := range p.slots {
		if p.slots[i].Region == region {
			p.slots[i].Visible = false

			return
		}
	}
}

// Seed replaces the slots with one per linked ID, for editing an existing record.
// Each search term is the community name, or empty when the ID is not loaded.
// The IDs are kept even when stale.
func (p *Picker) Seed(ids []string, index map[string]entity.Community) {
	for _, s := range p.slots {
		p.regions.Unregister(s.Region)
	}
	p.slots = p.slots[:0]

	for _, id := range ids {
		slot := p.newSlot()
		slot.SelectedID = id
		if c, ok := index[id]; ok {
			slot.SearchTerm = c.Name
		}
		p.slots = append(p.slots, slot)
	}

	if len(p.slots) == 0 {
		p.slots = append(p.slots, p.newSlot())
	}
}

// MaxSlots is the slot cap.
func (p *Picker) MaxSlots() int {
	return p.maxSlots
}

// Len is the number of slots, always at least one.
func (p *Picker) Len() int {
	return len(p.slots)
}

// CanAddSlot reports whether the add button is enabled.
func (p *Picker) CanAddSlot() bool {
	return len(p.slots) < p.maxSlots
}

// Slots returns a copy of the slot state.
func (p *Picker) Slots() []Slot {
	out := make([]Slot, len(p.slots))
	for i, s := range p.slots {
		s.Results = slices.Clone(s.Results)
		out[i] = s
	}

	return out
}

// SearchTermChange records typed text for slot i. The selection is always
// cleared and the results panel shown. A blank text empties the results;
// otherwise they are every community in source matching text.
func (p *Picker) SearchTermChange(i int, text string, source []entity.Community) error {
	if err := p.checkIndex(i); err != nil {
		return err
	}

	slot := &p.slots[i]
	slot.SearchTerm = text
	slot.SelectedID = ""
	slot.Visible = true
	if strings.TrimSpace(text) == "" {
		slot.Results = []entity.Community{}
	} else {
		slot.Results = MatchCommunities(source, text)
	}

	return nil
}

// Select resolves slot i to community and hides its results.
func (p *Picker) Select(i int, community entity.Community) error {
	if err := p.checkIndex(i); err != nil {
		return err
	}

	slot := &p.slots[i]
	slot.SelectedID = community.ID
	slot.SearchTerm = community.Name
	slot.Visible = false

	return nil
}

// AddSlot appends an empty slot. At the cap it changes nothing and reports ErrSlotLimitReached.
func (p *Picker) AddSlot() error {
	if !p.CanAddSlot() {
		return domainerrors.ErrSlotLimitReached.WithDetails(
			fmt.Sprintf("at most %d communities can be linked", p.maxSlots))
	}

	p.slots = append(p.slots, p.newSlot())

	return nil
}

// RemoveSlot drops slot i and its search state. Slot 0 is never removed.
func (p *Picker) RemoveSlot(i int) error {
	if i == 0 {
		return nil
	}
	if err := p.checkIndex(i); err != nil {
		return err
	}

	p.regions.Unregister(p.slots[i].Region)
	p.slots = slices.Delete(p.slots, i, i+1)

	return nil
}

// PointerDown handles a pointer event on target. Every other slot's results
// panel is hidden; the targeted slot keeps its state.
func (p *Picker) PointerDown(target string) {
	p.regions.PointerDown(target)
}

// SelectedIDs returns the selection of every slot in order, empty for
// unresolved slots.
func (p *Picker) SelectedIDs() []string {
	ids := make([]string, len(p.slots))
	for i, s := range p.slots {
		ids[i] = s.SelectedID
	}

	return ids
}

func (p *Picker) checkIndex(i int) error {
	if i < 0 || i >= len(p.slots) {
		return domainerrors.ErrSlotOutOfRange.WithDetails(
			fmt.Sprintf("slot %d of %d", i, len(p.slots)))
	}

	return nil
}

// MatchCommunities returns, in source order, the communities whose name,
// settlement, ward or LGA contains text ignoring case.
func MatchCommunities(source []entity.Community, text string) []entity.Community {
	return listing.Filter(source, func(c entity.Community) bool {
		return listing.Contains(text, c.Name, c.Settlement, c.Ward, c.LGA)
	})
}
