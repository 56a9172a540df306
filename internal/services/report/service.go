// Package report assembles the proposal presentation document.
package report

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
var _ interfaces.ReportService = (*Service)(nil)

// ResearchUnavailable is the placeholder embedded in the generation
// context when the research phase fails or returns nothing.
const ResearchUnavailable = "（参考情報は取得できませんでした。一般的な市場知見に基づいて作成してください。）"

// researchTimeout bounds the research phase so a hung call degrades to the
// placeholder instead of stalling generation.
const researchTimeout = 90 * time.Second

// Service implements ReportService. It owns the pipeline's ordering and
// degradation policy: research strictly precedes generation, research
// failure never cascades, and total failure degrades to a minimal error
// deck rather than an error return.
type Service struct {
	ai      interfaces.AIClient
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewService creates a new report service
func NewService(ai interfaces.AIClient, storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		ai:      ai,
		storage: storage,
		logger:  logger,
	}
}

// Assemble runs the full pipeline: research, generate, validate/repair,
// persist. It always returns a usable presentation and never an error.
func (s *Service) Assemble(ctx context.Context, session *models.Session) *models.PresentationData {
	clientName := session.Profile.Name
	s.logger.Info().Str("session", session.ID).Str("client", clientName).Msg("Assembling proposal")

	// Step 1: research. Best effort; any failure or empty result becomes
	// the placeholder and the pipeline proceeds.
	researchText := s.runResearch(ctx, session)

	// Step 2: generation with the research context embedded.
	generated, err := s.ai.ProposalDocument(ctx, &session.Profile, session.Profile.Holdings, session.ProposedAssets, researchText)
	if err != nil {
		s.logger.Warn().Err(err).Str("session", session.ID).Msg("Proposal generation failed, returning fallback deck")
		return s.store(ctx, FallbackPresentation(clientName))
	}

	// Step 3: validate and repair the returned document.
	presentation, err := repair(generated, clientName)
	if err != nil {
		s.logger.Warn().Err(err).Str("session", session.ID).Msg("Generated document failed validation, returning fallback deck")
		return s.store(ctx, FallbackPresentation(clientName))
	}

	// Slides outside the fixed outline are kept; the normalizer renders
	// them through its generic view.
	for _, slide := range presentation.Slides {
		if !models.KnownSlideType(slide.Type) {
			s.logger.Warn().
				Str("session", session.ID).
				Str("slide_type", string(slide.Type)).
				Msg("Unknown slide type in generated document")
		}
	}

	s.logger.Info().
		Str("session", session.ID).
		Int("slides", len(presentation.Slides)).
		Msg("Proposal assembled")

	return s.store(ctx, presentation)
}

// runResearch executes the research phase under its own timeout.
func (s *Service) runResearch(ctx context.Context, session *models.Session) string {
	rctx, cancel := context.WithTimeout(ctx, researchTimeout)
	defer cancel()

	text, err := s.ai.DeepResearch(rctx, &session.Profile, session.ProposedAssets)
	if err != nil {
		s.logger.Warn().Err(err).Str("session", session.ID).Msg("Research failed (continuing with placeholder)")
		return ResearchUnavailable
	}
	if text == "" {
		return ResearchUnavailable
	}
	return text
}

// Rewrite rewrites slide text per an adviser instruction. Failure returns
// the original text unchanged; the edit is a no-op, not an error.
func (s *Service) Rewrite(ctx context.Context, currentText, instruction string) string {
	rewritten, err := s.ai.RewriteText(ctx, currentText, instruction)
	if err != nil || rewritten == "" {
		s.logger.Warn().Err(err).Msg("Text rewrite failed, keeping original")
		return currentText
	}
	return rewritten
}

// store persists the presentation, warning on failure. Persistence serves
// the UI; a storage error must not break the pipeline contract.
func (s *Service) store(ctx context.Context, p *models.PresentationData) *models.PresentationData {
	if s.storage == nil {
		return p
	}
	if err := s.storage.PresentationStorage().SavePresentation(ctx, p); err != nil {
		s.logger.Warn().Err(err).Str("presentation", p.ID).Msg("Failed to persist presentation")
	}
	return p
}

// repair validates the generated document against the structural contract
// and fills in what the renderer requires: a document id, a title, slide
// ids, and a generation timestamp. Slide order is preserved exactly as
// generated.
func repair(p *models.PresentationData, clientName string) (*models.PresentationData, error) {
	if p == nil {
		return nil, fmt.Errorf("generator returned no document")
	}
	if len(p.Slides) == 0 {
		return nil, fmt.Errorf("generated document has no slides")
	}

	out := *p
	out.Slides = append([]models.SlideContent(nil), p.Slides...)

	if out.ID == "" {
		out.ID = "pres-" + uuid.New().String()
	}
	if out.ClientName == "" {
		out.ClientName = clientName
	}
	if out.Title == "" {
		out.Title = fmt.Sprintf("%s様 資産運用のご提案", clientName)
	}
	if out.GeneratedAt.IsZero() {
		out.GeneratedAt = time.Now()
	}

	for i := range out.Slides {
		if out.Slides[i].ID == "" {
			out.Slides[i].ID = fmt.Sprintf("slide-%d", i+1)
		}
		if out.Slides[i].Title == "" {
			out.Slides[i].Title = string(out.Slides[i].Type)
		}
	}

	return &out, nil
}

// FallbackPresentation is the fixed one-slide error deck returned when
// generation fails entirely or its output cannot be repaired.
func FallbackPresentation(clientName string) *models.PresentationData {
	return &models.PresentationData{
		ID:         "pres-" + uuid.New().String(),
		Title:      "資産運用のご提案",
		ClientName: clientName,
		Slides: []models.SlideContent{
			{
				ID:       "slide-1",
				Type:     models.SlideTitle,
				Title:    "資産運用のご提案",
				Subtitle: "提案書の自動生成に失敗しました。時間をおいて再度お試しください。",
			},
		},
		GeneratedAt: time.Now(),
	}
}
