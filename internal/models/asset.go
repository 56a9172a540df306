// Package models defines data structures for the IFA proposal engine
package models

import "time"

// AssetType categorizes a holding or proposed position. The set below is
// the closed vocabulary the wizard understands, but the type stays an open
// string so unknown values from the AI survive a round trip.
type AssetType string

const (
	AssetTypeStock      AssetType = "stock"
	AssetTypeMutualFund AssetType = "mutual_fund"
	AssetTypeBond       AssetType = "bond"
	AssetTypeInsurance  AssetType = "insurance"
	AssetTypeETF        AssetType = "etf"
	AssetTypeCash       AssetType = "cash"
	AssetTypeOther      AssetType = "other"
)

// ProposalTypeOrder is the canonical ordering of proposable asset types.
// The settings resolver and the generated deck both follow this order.
var ProposalTypeOrder = []AssetType{
	AssetTypeStock,
	AssetTypeMutualFund,
	AssetTypeBond,
	AssetTypeInsurance,
	AssetTypeETF,
}

// LowConfidenceThreshold marks document-extracted values that must be
// flagged to the adviser for manual verification.
const LowConfidenceThreshold = 0.8

// Asset represents one holding or proposed position.
type Asset struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Ticker        string    `json:"ticker,omitempty"` // exchange code or fund/ISIN code
	Type          AssetType `json:"type"`
	Amount        float64   `json:"amount"` // current value in Currency, always present
	Quantity      float64   `json:"quantity,omitempty"`
	CurrentPrice  float64   `json:"current_price,omitempty"`
	ProfitLoss    float64   `json:"profit_loss,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	AllocationPct float64   `json:"allocation_pct,omitempty"`
	Confidence    float64   `json:"confidence,omitempty"` // extraction confidence in [0,1]
	Note          string    `json:"note,omitempty"`       // audit note, e.g. source document

	Fundamentals *FundamentalMetrics `json:"fundamentals,omitempty"`
	Scores       *AnalysisScores     `json:"scores,omitempty"`

	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// LowConfidence reports whether the asset came from an extraction the
// adviser should double-check.
func (a *Asset) LowConfidence() bool {
	return a.Confidence > 0 && a.Confidence < LowConfidenceThreshold
}

// FundamentalMetrics holds per-security fundamental figures.
type FundamentalMetrics struct {
	PER             float64 `json:"per,omitempty"`
	PBR             float64 `json:"pbr,omitempty"`
	RevenueGrowth   float64 `json:"revenue_growth,omitempty"`   // YoY %
	OperatingMargin float64 `json:"operating_margin,omitempty"` // %
}

// AnalysisScores is the fixed 5-axis analysis used for radar charts.
// Each axis is an integer 1-10; for Risk, 10 means safest.
type AnalysisScores struct {
	Suitability int `json:"suitability"`
	Market      int `json:"market"`
	Growth      int `json:"growth"`
	Valuation   int `json:"valuation"`
	Risk        int `json:"risk"`
}

// RadarAxis is one labeled spoke of the analysis radar.
type RadarAxis struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Axes returns the five axes in their fixed display order.
func (s *AnalysisScores) Axes() []RadarAxis {
	return []RadarAxis{
		{Key: "suitability", Label: "適合性", Score: s.Suitability},
		{Key: "market", Label: "市場環境", Score: s.Market},
		{Key: "growth", Label: "成長性", Score: s.Growth},
		{Key: "valuation", Label: "割安度", Score: s.Valuation},
		{Key: "risk", Label: "安全性", Score: s.Risk},
	}
}

// Valid reports whether every axis carries a usable score. A partial
// score set renders no radar at all.
func (s *AnalysisScores) Valid() bool {
	for _, axis := range s.Axes() {
		if axis.Score < 1 || axis.Score > 10 {
			return false
		}
	}
	return true
}
