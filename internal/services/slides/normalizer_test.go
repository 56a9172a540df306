package slides

import (
	"testing"

	"github.com/kotaratanaka/IFA/internal/models"
)

func TestNormalizeRebalance_PartitionsSellAndBuy(t *testing.T) {
	slide := models.SlideContent{
		Type: models.SlideRebalanceProposal,
		TableData: []models.TableRow{
			{Label: "A投信を売却", Value1: "500,000"},
			{Label: "B株式を購入", Value1: "300,000"},
			{Label: "C債券", Value1: "-200,000"}, // negative value classifies as sell
		},
	}

	view := Normalize(slide)
	if view.Rebalance == nil {
		t.Fatal("rebalance view not populated")
	}
	if len(view.Rebalance.Sell) != 2 {
		t.Errorf("sell rows = %d, want 2", len(view.Rebalance.Sell))
	}
	if len(view.Rebalance.Buy) != 1 {
		t.Errorf("buy rows = %d, want 1", len(view.Rebalance.Buy))
	}
	if view.Rebalance.NothingToSell {
		t.Error("NothingToSell = true with sell rows present")
	}
}

func TestNormalizeRebalance_AllNonNegativeMeansNothingToSell(t *testing.T) {
	slide := models.SlideContent{
		Type: models.SlideRebalanceProposal,
		TableData: []models.TableRow{
			{Label: "A株式を購入", Value1: "100,000"},
			{Label: "B投信を追加", Value1: "200,000"},
		},
	}

	view := Normalize(slide)
	if len(view.Rebalance.Sell) != 0 {
		t.Errorf("sell rows = %d, want 0", len(view.Rebalance.Sell))
	}
	if len(view.Rebalance.Buy) != 2 {
		t.Errorf("buy rows = %d, want 2", len(view.Rebalance.Buy))
	}
	if !view.Rebalance.NothingToSell {
		t.Error("NothingToSell = false, want true")
	}
}

func TestNormalizeRebalance_FullWidthNegative(t *testing.T) {
	slide := models.SlideContent{
		Type: models.SlideRebalanceProposal,
		TableData: []models.TableRow{
			{Label: "D投信", Value1: "－３００，０００"},
		},
	}

	view := Normalize(slide)
	if len(view.Rebalance.Sell) != 1 {
		t.Errorf("full-width negative not classified as sell: %+v", view.Rebalance)
	}
}

func TestNormalizeScenario_BandsAndColors(t *testing.T) {
	slide := models.SlideContent{
		Type: models.SlideScenarioAnalysis,
		ChartData: []models.ChartPoint{
			{Name: "楽観シナリオ", Value: 120},
			{Name: "標準シナリオ", Value: 100},
			{Name: "悲観シナリオ", Value: 80},
		},
	}

	view := Normalize(slide)
	if view.Scenario == nil {
		t.Fatal("scenario view not populated")
	}
	points := view.Scenario.Points
	if len(points) != 3 {
		t.Fatalf("points = %d, want 3", len(points))
	}

	cases := []struct {
		band  ScenarioBand
		color string
	}{
		{BandBull, ColorBull},
		{BandBase, ColorBase},
		{BandBear, ColorBear},
	}
	for i, c := range cases {
		if points[i].Band != c.band {
			t.Errorf("points[%d].Band = %q, want %q", i, points[i].Band, c.band)
		}
		if points[i].Color != c.color {
			t.Errorf("points[%d].Color = %q, want %q", i, points[i].Color, c.color)
		}
	}
}

func TestNormalizeScenario_EnglishMarkers(t *testing.T) {
	slide := models.SlideContent{
		Type: models.SlideScenarioAnalysis,
		ChartData: []models.ChartPoint{
			{Name: "Bull case", Value: 130},
			{Name: "Bear case", Value: 70},
		},
	}

	view := Normalize(slide)
	if view.Scenario.Points[0].Band != BandBull || view.Scenario.Points[1].Band != BandBear {
		t.Errorf("bands = %q, %q", view.Scenario.Points[0].Band, view.Scenario.Points[1].Band)
	}
}

func TestChartKind_PieForProportionSlides(t *testing.T) {
	points := []models.ChartPoint{{Name: "国内株式", Value: 40}}

	for _, c := range []struct {
		slideType models.SlideType
		want      ChartKind
	}{
		{models.SlideRiskAnalysis, ChartPie},
		{models.SlideAssetOverview, ChartPie},
		{models.SlideMarketGrowth, ChartBar},
		{models.SlideExpectedEffect, ChartBar},
	} {
		view := Normalize(models.SlideContent{Type: c.slideType, ChartData: points})
		if view.Chart == nil {
			t.Fatalf("%s: chart view not populated", c.slideType)
		}
		if view.Chart.Kind != c.want {
			t.Errorf("%s: kind = %q, want %q", c.slideType, view.Chart.Kind, c.want)
		}
	}
}

func TestNormalize_NoChartWithoutData(t *testing.T) {
	view := Normalize(models.SlideContent{Type: models.SlideRiskAnalysis})
	if view.Chart != nil {
		t.Error("chart view populated without chart data")
	}
}

func TestNormalize_RadarRequiresFullScores(t *testing.T) {
	full := Normalize(models.SlideContent{
		Type:   models.SlideIndividualAnalysis,
		Scores: &models.AnalysisScores{Suitability: 8, Market: 6, Growth: 7, Valuation: 5, Risk: 9},
	})
	if full.Radar == nil {
		t.Fatal("radar missing for full score set")
	}
	if len(full.Radar.Axes) != 5 {
		t.Errorf("axes = %d, want 5", len(full.Radar.Axes))
	}

	partial := Normalize(models.SlideContent{
		Type:   models.SlideIndividualAnalysis,
		Scores: &models.AnalysisScores{Suitability: 8, Market: 6},
	})
	if partial.Radar != nil {
		t.Error("radar rendered for partial score set, want none")
	}

	none := Normalize(models.SlideContent{Type: models.SlideIndividualAnalysis})
	if none.Radar != nil {
		t.Error("radar rendered without scores")
	}
}

func TestNormalizeFundamentals_Sidebar(t *testing.T) {
	slide := models.SlideContent{
		Type: models.SlideFundamentalAnalysis,
		TableData: []models.TableRow{
			{Metric: "PER", Value1: "12.5倍", Value2: "18.0倍", Explanation: "業界平均より割安"},
			{Metric: "PBR", Value1: "1.1倍", Value2: "1.4倍"},
		},
	}

	view := Normalize(slide)
	if view.Fundamentals == nil {
		t.Fatal("fundamentals view not populated")
	}
	rows := view.Fundamentals.Rows
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if !rows[0].HasSidebar || rows[1].HasSidebar {
		t.Errorf("HasSidebar = %v, %v; want true, false", rows[0].HasSidebar, rows[1].HasSidebar)
	}
	if rows[0].Label != "PER" {
		t.Errorf("label fallback = %q, want metric PER", rows[0].Label)
	}
	if len(view.Fundamentals.Sidebar) != 1 || view.Fundamentals.Sidebar[0] != "業界平均より割安" {
		t.Errorf("sidebar = %v", view.Fundamentals.Sidebar)
	}
}

func TestNormalizeGeneric_BulletsAndRows(t *testing.T) {
	slide := models.SlideContent{
		Type:         models.SlideSelectionReason,
		BulletPoints: []string{"理由その一", "理由その二"},
		TableData: []models.TableRow{
			{Label: "項目", Value1: "値"},
			{Metric: "指標のみ"}, // metric doubles as both label and value
		},
	}

	view := Normalize(slide)
	if view.Generic == nil {
		t.Fatal("generic view not populated")
	}
	if len(view.Generic.NumberedBullets) != 2 {
		t.Errorf("bullets = %d, want 2", len(view.Generic.NumberedBullets))
	}
	rows := view.Generic.Rows
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Label != "項目" || rows[0].Value != "値" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Label != "指標のみ" || rows[1].Value != "指標のみ" {
		t.Errorf("rows[1] = %+v", rows[1])
	}
}

func TestNormalize_UnknownTypeFallsToGeneric(t *testing.T) {
	view := Normalize(models.SlideContent{Type: models.SlideType("something_new")})
	if view.Generic == nil {
		t.Error("unknown slide type must fall to the generic view")
	}
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	p := &models.PresentationData{Slides: []models.SlideContent{
		{Type: models.SlideTitle},
		{Type: models.SlideRebalanceProposal},
		{Type: models.SlideDisclaimer},
	}}

	views := NormalizeAll(p)
	if len(views) != 3 {
		t.Fatalf("views = %d, want 3", len(views))
	}
	if views[1].Rebalance == nil {
		t.Error("second view should be the rebalance slide")
	}
}
