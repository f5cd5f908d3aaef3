package usecase

import (
	"context"

	"ummana/internal/domain/entity"
	"ummana/internal/picker"
)

// FormMode tells whether a draft creates a new record or edits an existing one.
type FormMode string

const (
	FormModeCreate FormMode = "create"
	FormModeEdit   FormMode = "edit"
)

// FormDraft is the state of one open create or edit form.
// Slots are present for agent and driver forms, Capabilities for facility forms.
type FormDraft struct {
	ID           string               `json:"id"`
	Kind         entity.Kind          `json:"kind"`
	Mode         FormMode             `json:"mode"`
	EditID       string               `json:"editId,omitempty"`
	Fields       map[string]string    `json:"fields"`
	Slots        []picker.Slot        `json:"slots,omitempty"`
	MaxSlots     int                  `json:"maxSlots,omitempty"`
	CanAddSlot   bool                 `json:"canAddSlot"`
	Capabilities entity.CapabilitySet `json:"capabilities,omitempty"`
	LastError    string               `json:"lastError,omitempty"`
}

// FormResult is returned by a successful submit; the draft is closed.
type FormResult struct {
	Kind   entity.Kind `json:"kind"`
	Mode   FormMode    `json:"mode"`
	ID     string      `json:"id"`
	Record any         `json:"record"`
}

// FormUsecase drives the create and edit forms of every kind.
type FormUsecase interface {
	// Open starts a draft. An empty editID opens a create form.
	Open(ctx context.Context, kind entity.Kind, editID string) (*FormDraft, error)
	Get(ctx context.Context, draftID string) (*FormDraft, error)
	Close(ctx context.Context, draftID string) error

	// SetFields overwrites the given text fields.
	SetFields(ctx context.Context, draftID string, fields map[string]string) (*FormDraft, error)

	// Linked community picker, agent and driver forms only.
	AddSlot(ctx context.Context, draftID string) (*FormDraft, error)
	RemoveSlot(ctx context.Context, draftID string, index int) (*FormDraft, error)
	SearchSlot(ctx context.Context, draftID string, index int, text string) (*FormDraft, error)
	SelectSlot(ctx context.Context, draftID string, index int, communityID string) (*FormDraft, error)
	PointerDown(ctx context.Context, draftID string, region string) (*FormDraft, error)

	// ToggleCapability flips one flag, facility forms only.
	ToggleCapability(ctx context.Context, draftID string, key entity.CapabilityKey) (*FormDraft, error)

	// Submit validates and saves the draft. On failure the draft stays open
	// with LastError set.
	Submit(ctx context.Context, draftID string) (*FormResult, error)
}
