package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/models"
)

// scriptedAI lets each test script the pipeline's AI calls.
type scriptedAI struct {
	research    func() (string, error)
	document    func(researchText string) (*models.PresentationData, error)
	rewrite     func(currentText, instruction string) (string, error)
	gotResearch string
}

func (s *scriptedAI) DeepResearch(ctx context.Context, profile *models.ClientProfile, assets []models.Asset) (string, error) {
	if s.research != nil {
		return s.research()
	}
	return "調査結果テキスト", nil
}

func (s *scriptedAI) Recommendations(ctx context.Context, profile *models.ClientProfile, requests []models.ProposalRequest) ([]models.Asset, error) {
	return nil, errors.New("not implemented")
}

func (s *scriptedAI) ProposalDocument(ctx context.Context, profile *models.ClientProfile, holdings, proposed []models.Asset, researchText string) (*models.PresentationData, error) {
	s.gotResearch = researchText
	if s.document != nil {
		return s.document(researchText)
	}
	return nil, errors.New("not implemented")
}

func (s *scriptedAI) RewriteText(ctx context.Context, currentText, instruction string) (string, error) {
	if s.rewrite != nil {
		return s.rewrite(currentText, instruction)
	}
	return currentText, nil
}

func (s *scriptedAI) ParseDocument(ctx context.Context, data []byte, mimeType string) (*models.DocumentExtraction, error) {
	return nil, errors.New("not implemented")
}

func testSession() *models.Session {
	return &models.Session{
		ID:      "session-test",
		Profile: models.ClientProfile{Name: "山田太郎"},
	}
}

func generatedDeck() *models.PresentationData {
	return &models.PresentationData{
		Slides: []models.SlideContent{
			{Type: models.SlideTitle, Title: "ご提案"},
			{Type: models.SlideExecutiveSummary, Title: "サマリー"},
			{Type: models.SlideDisclaimer, Title: "免責事項"},
		},
	}
}

func TestAssemble_GenerationFailureReturnsFallbackDeck(t *testing.T) {
	ai := &scriptedAI{
		document: func(string) (*models.PresentationData, error) {
			return nil, errors.New("generation exploded")
		},
	}
	svc := NewService(ai, nil, common.NewSilentLogger())

	p := svc.Assemble(context.Background(), testSession())
	require.NotNil(t, p, "pipeline must always return a presentation")
	require.Len(t, p.Slides, 1)
	assert.Equal(t, models.SlideTitle, p.Slides[0].Type)
	assert.Equal(t, "山田太郎", p.ClientName)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.GeneratedAt.IsZero())
}

func TestAssemble_ResearchFailureDoesNotCascade(t *testing.T) {
	ai := &scriptedAI{
		research: func() (string, error) { return "", errors.New("research down") },
		document: func(string) (*models.PresentationData, error) { return generatedDeck(), nil },
	}
	svc := NewService(ai, nil, common.NewSilentLogger())

	p := svc.Assemble(context.Background(), testSession())
	require.NotNil(t, p)
	assert.Len(t, p.Slides, 3, "generation result must come back, not the fallback")
	assert.Equal(t, ResearchUnavailable, ai.gotResearch, "generation sees the placeholder")
}

func TestAssemble_EmptyResearchBecomesPlaceholder(t *testing.T) {
	ai := &scriptedAI{
		research: func() (string, error) { return "", nil },
		document: func(string) (*models.PresentationData, error) { return generatedDeck(), nil },
	}
	svc := NewService(ai, nil, common.NewSilentLogger())

	svc.Assemble(context.Background(), testSession())
	assert.Equal(t, ResearchUnavailable, ai.gotResearch)
}

func TestAssemble_EmptyDocumentReturnsFallbackDeck(t *testing.T) {
	ai := &scriptedAI{
		document: func(string) (*models.PresentationData, error) {
			return &models.PresentationData{}, nil
		},
	}
	svc := NewService(ai, nil, common.NewSilentLogger())

	p := svc.Assemble(context.Background(), testSession())
	require.Len(t, p.Slides, 1)
	assert.Equal(t, models.SlideTitle, p.Slides[0].Type)
}

func TestAssemble_KeepsUnknownSlideTypes(t *testing.T) {
	ai := &scriptedAI{
		document: func(string) (*models.PresentationData, error) {
			return &models.PresentationData{Slides: []models.SlideContent{
				{Type: models.SlideTitle, Title: "ご提案"},
				{Type: models.SlideType("bonus_material"), Title: "補足資料"},
			}}, nil
		},
	}
	svc := NewService(ai, nil, common.NewSilentLogger())

	p := svc.Assemble(context.Background(), testSession())
	require.Len(t, p.Slides, 2, "out-of-outline slides are kept, not dropped")
	assert.Equal(t, models.SlideType("bonus_material"), p.Slides[1].Type)
}

func TestRepair_FillsMissingFieldsPreservesOrder(t *testing.T) {
	p, err := repair(generatedDeck(), "山田太郎")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "山田太郎", p.ClientName)
	assert.Equal(t, "山田太郎様 資産運用のご提案", p.Title)
	assert.False(t, p.GeneratedAt.IsZero())

	wantOrder := []models.SlideType{models.SlideTitle, models.SlideExecutiveSummary, models.SlideDisclaimer}
	for i, slide := range p.Slides {
		assert.Equal(t, wantOrder[i], slide.Type)
		assert.NotEmpty(t, slide.ID)
	}
}

func TestRepair_DoesNotMutateInput(t *testing.T) {
	in := generatedDeck()
	_, err := repair(in, "山田太郎")
	require.NoError(t, err)
	assert.Empty(t, in.Slides[0].ID, "input document must stay untouched")
}

func TestRewrite_FailureReturnsOriginal(t *testing.T) {
	ai := &scriptedAI{
		rewrite: func(string, string) (string, error) { return "", errors.New("rewrite down") },
	}
	svc := NewService(ai, nil, common.NewSilentLogger())

	out := svc.Rewrite(context.Background(), "元の文章", "もっと丁寧に")
	assert.Equal(t, "元の文章", out)
}

func TestRewrite_EmptyResultReturnsOriginal(t *testing.T) {
	ai := &scriptedAI{
		rewrite: func(string, string) (string, error) { return "", nil },
	}
	svc := NewService(ai, nil, common.NewSilentLogger())

	out := svc.Rewrite(context.Background(), "元の文章", "短くして")
	assert.Equal(t, "元の文章", out)
}

func TestRewrite_Success(t *testing.T) {
	ai := &scriptedAI{
		rewrite: func(string, string) (string, error) { return "書き直した文章", nil },
	}
	svc := NewService(ai, nil, common.NewSilentLogger())

	out := svc.Rewrite(context.Background(), "元の文章", "書き直して")
	assert.Equal(t, "書き直した文章", out)
}
