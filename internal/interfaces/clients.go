// Package interfaces defines service contracts for the IFA proposal engine
package interfaces

import (
	"context"

	"github.com/kotaratanaka/IFA/internal/models"
)

// AIClient is the narrow capability interface over the generative backend.
// The pipeline depends on this, never on a concrete vendor client, so every
// consumer is testable with deterministic stubs.
type AIClient interface {
	// DeepResearch gathers background research for the proposal. Best
	// effort: callers replace any failure with a placeholder and proceed.
	DeepResearch(ctx context.Context, profile *models.ClientProfile, assets []models.Asset) (string, error)

	// Recommendations fetches candidate assets for the requested proposal
	// settings. Failures propagate so the UI can offer a retry.
	Recommendations(ctx context.Context, profile *models.ClientProfile, requests []models.ProposalRequest) ([]models.Asset, error)

	// ProposalDocument generates the full slide deck from the session
	// context plus research text.
	ProposalDocument(ctx context.Context, profile *models.ClientProfile, holdings, proposed []models.Asset, researchText string) (*models.PresentationData, error)

	// RewriteText rewrites slide text per an adviser instruction.
	RewriteText(ctx context.Context, currentText, instruction string) (string, error)

	// ParseDocument extracts assets and profile hints from an uploaded
	// document.
	ParseDocument(ctx context.Context, data []byte, mimeType string) (*models.DocumentExtraction, error)
}

// DeckWriter consumes a finished presentation and produces a deck file.
// The real writer lives outside this repository; the engine only names the
// contract.
type DeckWriter interface {
	// WriteDeck renders the presentation to deck-file bytes and returns the
	// suggested file name, derived from the client's display name.
	WriteDeck(ctx context.Context, presentation *models.PresentationData) (filename string, data []byte, err error)
}
