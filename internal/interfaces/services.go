// Package interfaces defines service contracts for the IFA proposal engine
package interfaces

import (
	"context"

	"github.com/kotaratanaka/IFA/internal/models"
)

// SessionService manages wizard session lifecycle.
type SessionService interface {
	// CreateSession starts a new working session
	CreateSession(ctx context.Context, clientName string) (*models.Session, error)

	// GetSession retrieves a session by id
	GetSession(ctx context.Context, id string) (*models.Session, error)

	// SaveSession persists the session as a whole
	SaveSession(ctx context.Context, session *models.Session) error

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, id string) error
}

// RecommendService reconciles AI candidates into the proposal ledger.
type RecommendService interface {
	// Fetch retrieves candidates for the resolved settings. Errors
	// propagate so the caller can expose a retry affordance; the proposed
	// ledger is never touched on failure.
	Fetch(ctx context.Context, session *models.Session) ([]models.Asset, error)

	// Reconcile mints local identifiers and defaults for candidates
	Reconcile(candidates []models.Asset, existing []models.Asset) []models.Asset

	// AddToProposal appends a candidate to the proposed ledger, applying
	// the default placeholder amount when the AI supplied none
	AddToProposal(assets []models.Asset, candidate models.Asset) []models.Asset
}

// ReportService assembles the proposal document.
type ReportService interface {
	// Assemble runs research, generation, and validation/repair. It always
	// returns a presentation, degrading to a minimal error deck on total
	// failure; it never returns an error to the caller.
	Assemble(ctx context.Context, session *models.Session) *models.PresentationData

	// Rewrite rewrites one piece of slide text; on failure the original
	// text comes back unchanged.
	Rewrite(ctx context.Context, currentText, instruction string) string
}

// ImportService merges parsed documents into the session profile.
type ImportService interface {
	// Import parses the document and merges extraction results into the
	// session's profile. Never returns an error for parse failures; the
	// result notice carries user-facing state.
	Import(ctx context.Context, session *models.Session, data []byte, mimeType, filename string) *models.ImportResult
}
