package models

import (
	"encoding/gob"
	"time"
)

func init() {
	gob.Register(PresentationData{})
	gob.Register(SlideContent{})
	gob.Register(Session{})
}

// SlideType tags one of the 15 slide kinds in the proposal deck outline.
type SlideType string

const (
	SlideTitle               SlideType = "title"
	SlideExecutiveSummary    SlideType = "executive_summary"
	SlideAssetOverview       SlideType = "asset_overview"
	SlideIndividualAnalysis  SlideType = "individual_analysis"
	SlideRiskAnalysis        SlideType = "risk_analysis"
	SlideScenarioAnalysis    SlideType = "scenario_analysis"
	SlideConclusionPart1     SlideType = "conclusion_part1"
	SlideProposalList        SlideType = "proposal_list"
	SlideRebalanceProposal   SlideType = "rebalance_proposal"
	SlideExpectedEffect      SlideType = "expected_effect"
	SlideSelectionReason     SlideType = "selection_reason"
	SlideMarketGrowth        SlideType = "market_growth"
	SlideFundamentalAnalysis SlideType = "fundamental_analysis"
	SlideBusinessStrength    SlideType = "business_strength"
	SlideDisclaimer          SlideType = "disclaimer"
)

// SlideOutline is the fixed deck outline the generator is instructed to
// follow, in table-of-contents order.
var SlideOutline = []SlideType{
	SlideTitle,
	SlideExecutiveSummary,
	SlideAssetOverview,
	SlideIndividualAnalysis,
	SlideRiskAnalysis,
	SlideScenarioAnalysis,
	SlideConclusionPart1,
	SlideProposalList,
	SlideRebalanceProposal,
	SlideExpectedEffect,
	SlideSelectionReason,
	SlideMarketGrowth,
	SlideFundamentalAnalysis,
	SlideBusinessStrength,
	SlideDisclaimer,
}

// KnownSlideType reports whether t belongs to the closed slide-type set.
func KnownSlideType(t SlideType) bool {
	for _, s := range SlideOutline {
		if s == t {
			return true
		}
	}
	return false
}

// PresentationData is the top-level generated artifact. Slide order is
// semantically meaningful and preserved end-to-end.
type PresentationData struct {
	ID          string         `json:"id" badgerhold:"key"`
	Title       string         `json:"title"`
	ClientName  string         `json:"client_name"`
	Slides      []SlideContent `json:"slides"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// SlideContent is one slide of the deck. TableData and ChartData are
// loosely typed rows whose expected shape is determined entirely by Type;
// the slide normalizer, not this schema, enforces shape per type.
type SlideContent struct {
	ID           string            `json:"id"`
	Type         SlideType         `json:"type"`
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle,omitempty"`
	BodyText     string            `json:"body_text,omitempty"`
	BulletPoints []string          `json:"bullet_points,omitempty"`
	TableData    []TableRow        `json:"table_data,omitempty"`
	ChartData    []ChartPoint      `json:"chart_data,omitempty"`
	Scores       *AnalysisScores   `json:"scores,omitempty"`
	SpeakerNotes string            `json:"speaker_notes,omitempty"`
	AnalysisText string            `json:"analysis_text,omitempty"` // sidebar analysis
	Sources      []SourceReference `json:"sources,omitempty"`
}

// TableRow is one loosely typed table row. Which columns are meaningful
// depends on the slide type.
type TableRow struct {
	Metric      string `json:"metric,omitempty"`
	Label       string `json:"label,omitempty"`
	Value1      string `json:"value1,omitempty"`
	Value2      string `json:"value2,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// ChartPoint is one loosely typed chart point.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SourceReference is a citation attached to a slide.
type SourceReference struct {
	Title   string `json:"title"`
	URL     string `json:"url,omitempty"`
	Page    string `json:"page,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}
