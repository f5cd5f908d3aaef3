package usecase

import (
	"context"

	"ummana/internal/domain/service"
)

// SyncUsecase applies directory changes made by other console instances.
type SyncUsecase interface {
	// ApplyRemoteChange drops the cached collection touched by event so the
	// next read fetches it again. Events from this instance are ignored.
	ApplyRemoteChange(ctx context.Context, event *service.DirectoryEvent) (applied bool, err error)
}
