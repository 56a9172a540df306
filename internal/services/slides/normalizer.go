// Package slides derives the per-slide-type shapes the rendering layer
// needs. Every function here is pure: the stored document is never
// mutated, and the match over slide types is total, so the renderer can
// consume any slide without crashing on a shape mismatch.
package slides

import (
	"strings"

	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/models"
)

// ChartKind selects the chart rendering for a slide's chart points.
type ChartKind string

const (
	ChartPie ChartKind = "pie" // proportion chart
	ChartBar ChartKind = "bar" // categorical chart
)

// ScenarioBand classifies a scenario chart point.
type ScenarioBand string

const (
	BandBull ScenarioBand = "bull"
	BandBase ScenarioBand = "base"
	BandBear ScenarioBand = "bear"
)

// Fixed scenario color mapping.
const (
	ColorBull = "#2e7d32" // green
	ColorBear = "#c62828" // red
	ColorBase = "#757575" // neutral gray
)

// SlideView is the normalized, render-ready shape of one slide. Exactly
// one of the per-type sections is populated according to the slide type;
// Chart and Radar are orthogonal and set whenever their inputs exist.
type SlideView struct {
	Slide models.SlideContent `json:"slide"`

	Rebalance    *RebalanceView    `json:"rebalance,omitempty"`
	Scenario     *ScenarioView     `json:"scenario,omitempty"`
	Fundamentals *FundamentalsView `json:"fundamentals,omitempty"`
	Generic      *GenericView      `json:"generic,omitempty"`

	Chart *ChartView `json:"chart,omitempty"`
	Radar *RadarView `json:"radar,omitempty"`
}

// RebalanceView partitions rebalance rows into sell and buy sides.
type RebalanceView struct {
	Sell []models.TableRow `json:"sell"`
	Buy  []models.TableRow `json:"buy"`
	// NothingToSell renders the explicit empty-sell state instead of an
	// empty table.
	NothingToSell bool `json:"nothing_to_sell"`
}

// ScenarioView carries classified scenario points.
type ScenarioView struct {
	Points []ScenarioPoint `json:"points"`
}

// ScenarioPoint is one scenario chart point with its band and color.
type ScenarioPoint struct {
	Name  string       `json:"name"`
	Value float64      `json:"value"`
	Band  ScenarioBand `json:"band"`
	Color string       `json:"color"`
}

// FundamentalsView carries comparison rows plus the sidebar entries for
// rows that explain the gap.
type FundamentalsView struct {
	Rows    []FundamentalRow `json:"rows"`
	Sidebar []string         `json:"sidebar,omitempty"`
}

// FundamentalRow is one metric comparison between the target and a
// competitor.
type FundamentalRow struct {
	Metric     string `json:"metric"`
	Label      string `json:"label"`
	Target     string `json:"target"`
	Competitor string `json:"competitor"`
	// HasSidebar is false for rows missing an explanation; they render
	// without a "why the gap" sidebar entry but stay valid.
	HasSidebar  bool   `json:"has_sidebar"`
	Explanation string `json:"explanation,omitempty"`
}

// GenericView is the fallback shape for any other slide type.
type GenericView struct {
	NumberedBullets []string     `json:"numbered_bullets,omitempty"`
	Rows            []LabelValue `json:"rows,omitempty"`
}

// LabelValue is one row of the generic two-column table.
type LabelValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChartView selects the chart kind for the slide's chart points.
type ChartView struct {
	Kind   ChartKind           `json:"kind"`
	Points []models.ChartPoint `json:"points"`
}

// RadarView carries the full 5-axis radar. Absent or partial scores
// render no radar at all, never a partial one.
type RadarView struct {
	Axes []models.RadarAxis `json:"axes"`
}

// sellMarkers are the label words that classify a rebalance row as a sale.
var sellMarkers = []string{"売却", "売り", "解約", "縮小", "sell"}

// Normalize derives the render-ready view for one slide.
func Normalize(slide models.SlideContent) *SlideView {
	view := &SlideView{Slide: slide}

	switch slide.Type {
	case models.SlideRebalanceProposal:
		view.Rebalance = normalizeRebalance(slide.TableData)
	case models.SlideScenarioAnalysis:
		view.Scenario = normalizeScenario(slide.ChartData)
	case models.SlideFundamentalAnalysis:
		view.Fundamentals = normalizeFundamentals(slide.TableData)
	default:
		view.Generic = normalizeGeneric(slide)
	}

	if len(slide.ChartData) > 0 {
		view.Chart = &ChartView{
			Kind:   chartKindFor(slide.Type),
			Points: append([]models.ChartPoint(nil), slide.ChartData...),
		}
	}

	if slide.Scores != nil && slide.Scores.Valid() {
		view.Radar = &RadarView{Axes: slide.Scores.Axes()}
	}

	return view
}

// NormalizeAll normalizes every slide of a presentation in order.
func NormalizeAll(p *models.PresentationData) []*SlideView {
	views := make([]*SlideView, 0, len(p.Slides))
	for _, slide := range p.Slides {
		views = append(views, Normalize(slide))
	}
	return views
}

// chartKindFor picks pie for proportion slides and bar for everything else.
func chartKindFor(t models.SlideType) ChartKind {
	switch t {
	case models.SlideRiskAnalysis, models.SlideAssetOverview:
		return ChartPie
	default:
		return ChartBar
	}
}

func normalizeRebalance(rows []models.TableRow) *RebalanceView {
	view := &RebalanceView{
		Sell: []models.TableRow{},
		Buy:  []models.TableRow{},
	}

	for _, row := range rows {
		if isSellRow(row) {
			view.Sell = append(view.Sell, row)
		} else {
			view.Buy = append(view.Buy, row)
		}
	}

	view.NothingToSell = len(view.Sell) == 0
	return view
}

// isSellRow reports whether the row label carries a sell marker word or
// the primary value is negative.
func isSellRow(row models.TableRow) bool {
	label := row.Label
	if label == "" {
		label = row.Metric
	}
	lower := strings.ToLower(label)
	for _, marker := range sellMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	if v, err := common.ParseAmount(row.Value1); err == nil && v < 0 {
		return true
	}
	return false
}

func normalizeScenario(points []models.ChartPoint) *ScenarioView {
	view := &ScenarioView{Points: make([]ScenarioPoint, 0, len(points))}
	for _, p := range points {
		band := classifyScenario(p.Name)
		view.Points = append(view.Points, ScenarioPoint{
			Name:  p.Name,
			Value: p.Value,
			Band:  band,
			Color: scenarioColor(band),
		})
	}
	return view
}

// classifyScenario buckets a point into Bull/Base/Bear by substring match
// on its name. Unmatched names fall to the base band.
func classifyScenario(name string) ScenarioBand {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "楽観", "強気", "bull"):
		return BandBull
	case containsAny(lower, "悲観", "弱気", "bear"):
		return BandBear
	default:
		return BandBase
	}
}

func scenarioColor(band ScenarioBand) string {
	switch band {
	case BandBull:
		return ColorBull
	case BandBear:
		return ColorBear
	default:
		return ColorBase
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func normalizeFundamentals(rows []models.TableRow) *FundamentalsView {
	view := &FundamentalsView{Rows: make([]FundamentalRow, 0, len(rows))}
	for _, row := range rows {
		fr := FundamentalRow{
			Metric:      row.Metric,
			Label:       row.Label,
			Target:      row.Value1,
			Competitor:  row.Value2,
			Explanation: row.Explanation,
			HasSidebar:  row.Explanation != "",
		}
		if fr.Label == "" {
			fr.Label = fr.Metric
		}
		view.Rows = append(view.Rows, fr)
		if fr.HasSidebar {
			view.Sidebar = append(view.Sidebar, row.Explanation)
		}
	}
	return view
}

// normalizeGeneric renders bullets as a numbered list and table rows as a
// two-column label/value table, preferring value1 over metric for the
// value column.
func normalizeGeneric(slide models.SlideContent) *GenericView {
	view := &GenericView{}

	view.NumberedBullets = append([]string(nil), slide.BulletPoints...)

	for _, row := range slide.TableData {
		label := row.Label
		if label == "" {
			label = row.Metric
		}
		value := row.Value1
		if value == "" {
			value = row.Metric
		}
		view.Rows = append(view.Rows, LabelValue{Label: label, Value: value})
	}
	return view
}
