// Package recommend reconciles AI-proposed candidates into the proposal ledger.
package recommend

import (
	"context"
	"fmt"

	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/interfaces"
	"github.com/kotaratanaka/IFA/internal/models"
	"github.com/kotaratanaka/IFA/internal/services/ledger"
	"github.com/kotaratanaka/IFA/internal/services/settings"
)

// Compile-time interface check
var _ interfaces.RecommendService = (*Service)(nil)

// Service implements RecommendService
type Service struct {
	ai            interfaces.AIClient
	defaultAmount float64
	baseCurrency  string
	logger        *common.Logger
}

// NewService creates a new recommendation service. defaultAmount is the
// placeholder value given to freshly added candidates until edited.
func NewService(ai interfaces.AIClient, proposal common.ProposalConfig, logger *common.Logger) *Service {
	return &Service{
		ai:            ai,
		defaultAmount: proposal.DefaultAmount,
		baseCurrency:  proposal.BaseCurrency,
		logger:        logger,
	}
}

// Fetch retrieves candidate assets for the session's resolved settings.
// Errors propagate to the caller so the UI can offer a retry; the
// session's proposed ledger is never touched here, so a failed fetch
// leaves prior state intact.
func (s *Service) Fetch(ctx context.Context, session *models.Session) ([]models.Asset, error) {
	requests := settings.Resolve(session.Settings)
	if len(requests) == 0 {
		return nil, fmt.Errorf("no proposal types requested")
	}

	candidates, err := s.ai.Recommendations(ctx, &session.Profile, requests)
	if err != nil {
		return nil, fmt.Errorf("fetch recommendations: %w", err)
	}

	s.logger.Info().Int("candidates", len(candidates)).Msg("Recommendations fetched")
	return s.Reconcile(candidates, session.ProposedAssets), nil
}

// Reconcile assigns each candidate a fresh local identifier disjoint from
// any existing ledger id and defaults confidence to 1.0 unless provided.
// Manually searched assets follow the identical contract.
func (s *Service) Reconcile(candidates []models.Asset, existing []models.Asset) []models.Asset {
	used := make(map[string]bool, len(existing))
	for _, a := range existing {
		used[a.ID] = true
	}

	out := make([]models.Asset, 0, len(candidates))
	for _, c := range candidates {
		id := ledger.MintID()
		for used[id] {
			id = ledger.MintID()
		}
		used[id] = true

		c.ID = id
		if c.Confidence == 0 {
			c.Confidence = 1.0
		}
		if c.Currency == "" {
			c.Currency = s.baseCurrency
		}
		out = append(out, c)
	}
	return out
}

// AddToProposal appends a candidate to the proposed ledger. Manual
// entries follow the same contract as reconciled candidates: a missing
// or already-used id gets a fresh local one, confidence defaults to 1.0,
// and a missing amount gets the default placeholder.
func (s *Service) AddToProposal(assets []models.Asset, candidate models.Asset) []models.Asset {
	used := make(map[string]bool, len(assets))
	for _, a := range assets {
		used[a.ID] = true
	}
	if candidate.ID == "" || used[candidate.ID] {
		id := ledger.MintID()
		for used[id] {
			id = ledger.MintID()
		}
		candidate.ID = id
	}
	if candidate.Confidence == 0 {
		candidate.Confidence = 1.0
	}
	if candidate.Amount <= 0 {
		candidate.Amount = s.defaultAmount
	}
	out := make([]models.Asset, len(assets), len(assets)+1)
	copy(out, assets)
	return append(out, candidate)
}
