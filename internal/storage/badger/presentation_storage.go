package badger

import (
	"context"
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/models"
)

type presentationStorage struct {
	store  *Store
	logger *common.Logger
}

// NewPresentationStorage creates a new PresentationStorage backed by BadgerHold.
func NewPresentationStorage(store *Store, logger *common.Logger) *presentationStorage {
	return &presentationStorage{store: store, logger: logger}
}

func (s *presentationStorage) GetPresentation(_ context.Context, id string) (*models.PresentationData, error) {
	var presentation models.PresentationData
	err := s.store.db.Get(id, &presentation)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("presentation '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to get presentation '%s': %w", id, err)
	}
	return &presentation, nil
}

func (s *presentationStorage) SavePresentation(_ context.Context, presentation *models.PresentationData) error {
	if err := s.store.db.Upsert(presentation.ID, presentation); err != nil {
		return fmt.Errorf("failed to save presentation: %w", err)
	}
	s.logger.Debug().Str("presentation", presentation.ID).Msg("Presentation saved")
	return nil
}

func (s *presentationStorage) DeletePresentation(_ context.Context, id string) error {
	err := s.store.db.Delete(id, models.PresentationData{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete presentation '%s': %w", id, err)
	}
	s.logger.Debug().Str("presentation", id).Msg("Presentation deleted")
	return nil
}
