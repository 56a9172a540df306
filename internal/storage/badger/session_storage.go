package badger

import (
	"context"
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/models"
)

type sessionStorage struct {
	store  *Store
	logger *common.Logger
}

// NewSessionStorage creates a new SessionStorage backed by BadgerHold.
func NewSessionStorage(store *Store, logger *common.Logger) *sessionStorage {
	return &sessionStorage{store: store, logger: logger}
}

func (s *sessionStorage) GetSession(_ context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := s.store.db.Get(id, &session)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("session '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to get session '%s': %w", id, err)
	}
	return &session, nil
}

func (s *sessionStorage) SaveSession(_ context.Context, session *models.Session) error {
	if err := s.store.db.Upsert(session.ID, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.logger.Debug().Str("session", session.ID).Msg("Session saved")
	return nil
}

func (s *sessionStorage) DeleteSession(_ context.Context, id string) error {
	err := s.store.db.Delete(id, models.Session{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete session '%s': %w", id, err)
	}
	s.logger.Debug().Str("session", id).Msg("Session deleted")
	return nil
}

func (s *sessionStorage) ListSessions(_ context.Context) ([]string, error) {
	var sessions []models.Session
	if err := s.store.db.Find(&sessions, nil); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	ids := make([]string, len(sessions))
	for i, session := range sessions {
		ids[i] = session.ID
	}
	return ids, nil
}
