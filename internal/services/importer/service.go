// Package importer merges parsed document extractions into the session profile.
package importer

import (
	"context"
	"fmt"

	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/interfaces"
	"github.com/kotaratanaka/IFA/internal/models"
	"github.com/kotaratanaka/IFA/internal/services/ledger"
)

// Compile-time interface check
var _ interfaces.ImportService = (*Service)(nil)

// Service implements ImportService
type Service struct {
	ai     interfaces.AIClient
	logger *common.Logger
}

// NewService creates a new document import service
func NewService(ai interfaces.AIClient, logger *common.Logger) *Service {
	return &Service{ai: ai, logger: logger}
}

// Import delegates parsing to the AI backend and merges the extraction
// into the session's profile. Extracted assets are appended with fresh
// local ids and an audit note naming the source file; existing holdings
// are never replaced. Parse failures surface as a notice, never an error.
func (s *Service) Import(ctx context.Context, session *models.Session, data []byte, mimeType, filename string) *models.ImportResult {
	result := &models.ImportResult{AddedAssets: []models.Asset{}}

	extraction, err := s.ai.ParseDocument(ctx, data, mimeType)
	if err != nil {
		s.logger.Warn().Err(err).Str("file", filename).Msg("Document parse failed")
		result.Notice = fmt.Sprintf("「%s」を読み取れませんでした。ファイルの内容をご確認ください。", filename)
		return result
	}

	// Zero extracted assets: surface a notice, leave the profile alone.
	if extraction == nil || len(extraction.Assets) == 0 {
		result.Notice = fmt.Sprintf("「%s」から資産情報を抽出できませんでした。", filename)
		return result
	}

	for _, extracted := range extraction.Assets {
		extracted.Note = fmt.Sprintf("取込元: %s", filename)
		if extracted.Confidence == 0 {
			extracted.Confidence = 1.0
		}
		session.Profile.Holdings = ledger.Add(session.Profile.Holdings, extracted)

		added := session.Profile.Holdings[len(session.Profile.Holdings)-1]
		result.AddedAssets = append(result.AddedAssets, added)
		if added.LowConfidence() {
			result.LowConfidence = append(result.LowConfidence, added.ID)
		}
	}

	s.applyHints(session, extraction.ProfileHints, result)

	s.logger.Info().
		Str("file", filename).
		Int("assets", len(result.AddedAssets)).
		Int("low_confidence", len(result.LowConfidence)).
		Msg("Document imported")

	result.Notice = fmt.Sprintf("「%s」から%d件の資産を取り込みました。", filename, len(result.AddedAssets))
	if len(result.LowConfidence) > 0 {
		result.Notice += fmt.Sprintf("うち%d件は読取精度が低いため内容をご確認ください。", len(result.LowConfidence))
	}
	return result
}

// applyHints overwrites profile fields only where the hint is present.
// Region and family structure resolve against their closed vocabularies;
// an unmatched hint is kept verbatim.
func (s *Service) applyHints(session *models.Session, hints *models.ProfileHints, result *models.ImportResult) {
	if hints == nil {
		return
	}

	profile := &session.Profile

	if hints.Age > 0 {
		profile.Age = hints.Age
		result.ProfileUpdated = true
	}
	if hints.Gender != "" {
		profile.Gender = hints.Gender
		result.ProfileUpdated = true
	}
	if hints.RiskTolerance != "" {
		profile.RiskTolerance = hints.RiskTolerance
		result.ProfileUpdated = true
	}
	if hints.Goals != "" {
		profile.Goals = hints.Goals
		result.ProfileUpdated = true
	}
	if hints.Region != "" {
		region, _ := models.MatchRegion(hints.Region)
		profile.Region = region
		result.ProfileUpdated = true
	}
	if hints.FamilyStructure != "" {
		family, _ := models.MatchFamilyStructure(hints.FamilyStructure)
		profile.FamilyStructure = family
		result.ProfileUpdated = true
	}
}
