// Package interfaces defines service contracts for the IFA proposal engine
package interfaces

import (
	"context"

	"github.com/kotaratanaka/IFA/internal/models"
)

// SessionStorage persists wizard sessions.
type SessionStorage interface {
	GetSession(ctx context.Context, id string) (*models.Session, error)
	SaveSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context) ([]string, error)
}

// PresentationStorage persists generated presentations.
type PresentationStorage interface {
	GetPresentation(ctx context.Context, id string) (*models.PresentationData, error)
	SavePresentation(ctx context.Context, presentation *models.PresentationData) error
	DeletePresentation(ctx context.Context, id string) error
}

// StorageManager provides access to the storage areas.
type StorageManager interface {
	SessionStorage() SessionStorage
	PresentationStorage() PresentationStorage
	Close() error
}
