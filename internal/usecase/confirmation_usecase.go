package usecase

import (
	"context"

	"ummana/internal/domain/entity"
)

// DeleteConfirmation is a pending delete waiting for the user to confirm.
type DeleteConfirmation struct {
	Token string      `json:"token"`
	Kind  entity.Kind `json:"kind"`
	ID    string      `json:"id"`
	Name  string      `json:"name"`
}

// ConfirmationUsecase runs the two-step delete flow.
type ConfirmationUsecase interface {
	RequestDelete(ctx context.Context, kind entity.Kind, id string) (*DeleteConfirmation, error)

	// Cancel drops the pending delete without touching the collection.
	Cancel(ctx context.Context, token string) error

	// Confirm deletes the record. On failure the confirmation stays pending.
	Confirm(ctx context.Context, token string) (*DeleteConfirmation, error)
}
