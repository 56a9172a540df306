// Package storage wires the concrete storage areas behind StorageManager.
package storage

import (
	"fmt"

	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/interfaces"
	"github.com/kotaratanaka/IFA/internal/storage/badger"
)

// Compile-time interface check
var _ interfaces.StorageManager = (*Manager)(nil)

// Manager provides access to the storage areas over one BadgerHold store.
type Manager struct {
	store         *badger.Store
	sessions      interfaces.SessionStorage
	presentations interfaces.PresentationStorage
	logger        *common.Logger
}

// NewManager opens the store and builds the storage areas.
func NewManager(logger *common.Logger, config *common.Config) (*Manager, error) {
	store, err := badger.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	return &Manager{
		store:         store,
		sessions:      badger.NewSessionStorage(store, logger),
		presentations: badger.NewPresentationStorage(store, logger),
		logger:        logger,
	}, nil
}

// SessionStorage returns the session storage area.
func (m *Manager) SessionStorage() interfaces.SessionStorage {
	return m.sessions
}

// PresentationStorage returns the presentation storage area.
func (m *Manager) PresentationStorage() interfaces.PresentationStorage {
	return m.presentations
}

// Close closes the underlying store.
func (m *Manager) Close() error {
	return m.store.Close()
}
