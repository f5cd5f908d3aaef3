package picker

import (
	"math/rand/v2"
	"strings"
	"testing"

	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"
	"ummana/internal/domain/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCommunities() []entity.Community {
	return []entity.Community{
		{ID: "c1", Name: "Kofar Wambai", Settlement: "Wambai", Ward: "Dala", LGA: "Dala"},
		{ID: "c2", Name: "Gwammaja", Settlement: "Gwammaja", Ward: "Gwammaja", LGA: "Dala"},
		{ID: "c3", Name: "Sabon Gari", Settlement: "Sabon Gari", Ward: "Fagge D", LGA: "Fagge"},
		{ID: "c4", Name: "Yakasai", Settlement: "Yakasai", Ward: "Yakasai", LGA: "Kano Municipal"},
	}
}

func TestNew_StartsWithOneEmptySlot(t *testing.T) {
	p := New(0)

	require.Equal(t, 1, p.Len())
	assert.Equal(t, DefaultMaxSlots, p.MaxSlots())
	slot := p.Slots()[0]
	assert.Empty(t, slot.SearchTerm)
	assert.Empty(t, slot.SelectedID)
	assert.False(t, slot.Visible)
	assert.NotEmpty(t, slot.Region)
}

func TestMatchCommunities_ExactlyThePredicate(t *testing.T) {
	source := sampleCommunities()
	alphabet := []rune("aAbdDgGkmnoswyz ")
	rng := rand.New(rand.NewPCG(1, 2))

	for range 500 {
		n := rng.IntN(4) + 1
		var b strings.Builder
		for range n {
			b.WriteRune(alphabet[rng.IntN(len(alphabet))])
		}
		text := b.String()

		got := MatchCommunities(source, text)

		var want []entity.Community
		needle := strings.ToLower(text)
		for _, c := range source {
			if strings.Contains(strings.ToLower(c.Name), needle) ||
				strings.Contains(strings.ToLower(c.Settlement), needle) ||
				strings.Contains(strings.ToLower(c.Ward), needle) ||
				strings.Contains(strings.ToLower(c.LGA), needle) {
				want = append(want, c)
			}
		}

		if len(want) == 0 {
			assert.Empty(t, got, "text %q", text)
		} else {
			assert.Equal(t, want, got, "text %q", text)
		}
	}
}

func TestSearchTermChange(t *testing.T) {
	p := New(5)

	require.NoError(t, p.SearchTermChange(0, "dala", sampleCommunities()))
	slot := p.Slots()[0]
	assert.True(t, slot.Visible)
	assert.Equal(t, "dala", slot.SearchTerm)
	require.Len(t, slot.Results, 2)
	assert.Equal(t, "c1", slot.Results[0].ID)

	require.NoError(t, p.SearchTermChange(0, "   ", sampleCommunities()))
	slot = p.Slots()[0]
	assert.Empty(t, slot.Results)
	assert.True(t, slot.Visible)

	err := p.SearchTermChange(3, "x", sampleCommunities())
	assert.ErrorIs(t, err, domainerrors.ErrSlotOutOfRange)
}

func TestSelectThenTypeClearsSelection(t *testing.T) {
	p := New(5)
	communities := sampleCommunities()

	require.NoError(t, p.SearchTermChange(0, "gwa", communities))
	require.NoError(t, p.Select(0, communities[1]))

	slot := p.Slots()[0]
	assert.Equal(t, "c2", slot.SelectedID)
	assert.Equal(t, "Gwammaja", slot.SearchTerm)
	assert.False(t, slot.Visible)

	require.NoError(t, p.SearchTermChange(0, "Gwammajax", communities))
	assert.Empty(t, p.Slots()[0].SelectedID)

	_, err := validation.CollectLinkedIDs(p.SelectedIDs(), 0)
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, validation.MsgNoLinkedCommunities, appErr.Message())
}

func TestAddSlot_CapIsNoop(t *testing.T) {
	p := New(3)

	require.NoError(t, p.AddSlot())
	require.NoError(t, p.AddSlot())
	assert.False(t, p.CanAddSlot())

	err := p.AddSlot()
	assert.ErrorIs(t, err, domainerrors.ErrSlotLimitReached)
	assert.Equal(t, 3, p.Len())
}

func TestRemoveSlot(t *testing.T) {
	p := New(5)

	require.NoError(t, p.RemoveSlot(0))
	assert.Equal(t, 1, p.Len())

	communities := sampleCommunities()
	require.NoError(t, p.AddSlot())
	require.NoError(t, p.AddSlot())
	require.NoError(t, p.Select(1, communities[0]))
	require.NoError(t, p.Select(2, communities[2]))

	require.NoError(t, p.RemoveSlot(1))
	assert.Equal(t, []string{"", "c3"}, p.SelectedIDs())

	assert.ErrorIs(t, p.RemoveSlot(5), domainerrors.ErrSlotOutOfRange)
	assert.Equal(t, 2, p.Len())
}

func TestDuplicateSelectionsAreAllowed(t *testing.T) {
	p := New(5)
	c := sampleCommunities()[0]

	require.NoError(t, p.AddSlot())
	require.NoError(t, p.Select(0, c))
	require.NoError(t, p.Select(1, c))

	assert.Equal(t, []string{"c1", "c1"}, p.SelectedIDs())
}

func TestPointerDown_CollapsesOtherSlots(t *testing.T) {
	p := New(5)
	communities := sampleCommunities()
	require.NoError(t, p.AddSlot())
	require.NoError(t, p.SearchTermChange(0, "a", communities))
	require.NoError(t, p.SearchTermChange(1, "a", communities))

	slots := p.Slots()
	p.PointerDown(slots[1].Region)

	slots = p.Slots()
	assert.False(t, slots[0].Visible)
	assert.True(t, slots[1].Visible)

	p.PointerDown("")
	assert.False(t, p.Slots()[1].Visible)
}

func TestPointerDown_RemovedSlotIsUnregistered(t *testing.T) {
	p := New(5)
	require.NoError(t, p.AddSlot())
	removed := p.Slots()[1].Region
	require.NoError(t, p.RemoveSlot(1))

	assert.NotContains(t, p.regions.Regions(), removed)
	assert.NotPanics(t, func() { p.PointerDown(removed) })
}

func TestSeed(t *testing.T) {
	p := New(5)
	index := entity.IndexCommunities(sampleCommunities())

	p.Seed([]string{"c3", "gone"}, index)
	slots := p.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "Sabon Gari", slots[0].SearchTerm)
	assert.Equal(t, "c3", slots[0].SelectedID)
	assert.Empty(t, slots[1].SearchTerm)
	assert.Equal(t, "gone", slots[1].SelectedID)
	assert.Len(t, p.regions.Regions(), 2)

	p.Seed(nil, index)
	assert.Equal(t, 1, p.Len())
}
