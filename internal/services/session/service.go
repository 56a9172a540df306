// Package session manages wizard session lifecycle over storage.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/interfaces"
	"github.com/kotaratanaka/IFA/internal/models"
)

// Compile-time interface check
var _ interfaces.SessionService = (*Service)(nil)

// Service implements SessionService
type Service struct {
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewService creates a new session service
func NewService(storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{storage: storage, logger: logger}
}

// CreateSession starts a new working session for a client.
func (s *Service) CreateSession(ctx context.Context, clientName string) (*models.Session, error) {
	now := time.Now()
	session := &models.Session{
		ID: "session-" + uuid.New().String(),
		Profile: models.ClientProfile{
			Name:     clientName,
			Holdings: []models.Asset{},
		},
		Settings:       models.NewProposalSettings(),
		ProposedAssets: []models.Asset{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.storage.SessionStorage().SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info().Str("session", session.ID).Str("client", clientName).Msg("Session created")
	return session, nil
}

// GetSession retrieves a session by id.
func (s *Service) GetSession(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.storage.SessionStorage().GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// SaveSession persists the session as a whole, refreshing its timestamp.
func (s *Service) SaveSession(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = time.Now()
	if err := s.storage.SessionStorage().SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// DeleteSession removes a session.
func (s *Service) DeleteSession(ctx context.Context, id string) error {
	if err := s.storage.SessionStorage().DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.logger.Info().Str("session", id).Msg("Session deleted")
	return nil
}
