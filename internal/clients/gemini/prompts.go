package gemini

import (
	"fmt"
	"strings"

	"github.com/kotaratanaka/IFA/internal/models"
)

// slideOutlineInstruction fixes the 15-slide deck structure the generator
// is expected to follow, in table-of-contents order.
var slideOutlineInstruction = strings.Join([]string{
	"1. title：表紙",
	"2. executive_summary：エグゼクティブサマリー",
	"3. asset_overview：現在の資産状況",
	"4. individual_analysis：保有資産の個別分析",
	"5. risk_analysis：リスク分析",
	"6. scenario_analysis：シナリオ分析（楽観・中立・悲観）",
	"7. conclusion_part1：現状分析のまとめ",
	"8. proposal_list：ご提案商品一覧",
	"9. rebalance_proposal：リバランス提案（売却・購入）",
	"10. expected_effect：期待効果",
	"11. selection_reason：選定理由",
	"12. market_growth：市場の成長性",
	"13. fundamental_analysis：ファンダメンタル分析（競合比較）",
	"14. business_strength：事業の強み",
	"15. disclaimer：免責事項",
}, "\n")

// formatProfile renders the client profile as prompt context.
func formatProfile(profile *models.ClientProfile) string {
	var sb strings.Builder
	sb.WriteString("## お客様情報\n")
	fmt.Fprintf(&sb, "- 氏名: %s\n", profile.Name)
	if profile.Age > 0 {
		fmt.Fprintf(&sb, "- 年齢: %d歳\n", profile.Age)
	}
	if profile.Gender != "" {
		fmt.Fprintf(&sb, "- 性別: %s\n", profile.Gender)
	}
	if profile.Region != "" {
		fmt.Fprintf(&sb, "- 地域: %s\n", profile.Region)
	}
	if profile.FamilyStructure != "" {
		fmt.Fprintf(&sb, "- 家族構成: %s\n", profile.FamilyStructure)
	}
	if profile.RiskTolerance != "" {
		fmt.Fprintf(&sb, "- リスク許容度: %s\n", profile.RiskTolerance)
	}
	if profile.InvestmentHorizon != "" {
		fmt.Fprintf(&sb, "- 投資期間: %s\n", profile.InvestmentHorizon)
	}
	if profile.Goals != "" {
		fmt.Fprintf(&sb, "- 運用目的: %s\n", profile.Goals)
	}
	return sb.String()
}

// formatAssets renders an asset list as prompt context.
func formatAssets(heading string, assets []models.Asset) string {
	var sb strings.Builder
	sb.WriteString("## " + heading + "\n")
	if len(assets) == 0 {
		sb.WriteString("（なし）\n")
		return sb.String()
	}
	for _, a := range assets {
		fmt.Fprintf(&sb, "- %s", a.Name)
		if a.Ticker != "" {
			fmt.Fprintf(&sb, " (%s)", a.Ticker)
		}
		fmt.Fprintf(&sb, " [%s] 評価額 %.0f %s", a.Type, a.Amount, a.Currency)
		if a.ProfitLoss != 0 {
			fmt.Fprintf(&sb, " 損益 %+.0f", a.ProfitLoss)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// buildResearchPrompt creates the deep-research prompt.
func buildResearchPrompt(profile *models.ClientProfile, assets []models.Asset) string {
	var sb strings.Builder
	sb.WriteString("あなたは日本の独立系ファイナンシャルアドバイザーのリサーチ担当です。\n")
	sb.WriteString("以下の顧客と提案候補銘柄について、最新の市場環境・業績動向・リスク要因を調査し、")
	sb.WriteString("提案書作成の参考となる日本語のリサーチメモを作成してください。\n\n")
	sb.WriteString(formatProfile(profile))
	sb.WriteString("\n")
	sb.WriteString(formatAssets("提案候補", assets))
	return sb.String()
}

// buildRecommendationPrompt creates the candidate-recommendation prompt.
func buildRecommendationPrompt(profile *models.ClientProfile, requests []models.ProposalRequest) string {
	var sb strings.Builder
	sb.WriteString("あなたは日本の独立系ファイナンシャルアドバイザーです。\n")
	sb.WriteString("以下の顧客プロファイルと提案条件に合う具体的な金融商品を提案してください。\n\n")
	sb.WriteString(formatProfile(profile))
	sb.WriteString("\n## 提案条件\n")
	for _, req := range requests {
		fmt.Fprintf(&sb, "- %s: %d件", req.Type, req.Count)
		if len(req.SubCategories) > 0 {
			fmt.Fprintf(&sb, "（分類: %s）", strings.Join(req.SubCategories, "、"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n以下のJSON配列のみを出力してください。各要素のフィールド:\n")
	sb.WriteString(`name, ticker, type, currency, fundamentals {per, pbr, revenue_growth, operating_margin}, ` +
		`scores {suitability, market, growth, valuation, risk} (各1-10、riskは10が最も安全), note (推奨理由)` + "\n")
	return sb.String()
}

// buildProposalPrompt creates the full deck-generation prompt with the
// research context embedded.
func buildProposalPrompt(profile *models.ClientProfile, holdings, proposed []models.Asset, researchText string) string {
	var sb strings.Builder
	sb.WriteString("あなたは日本の独立系ファイナンシャルアドバイザーです。\n")
	sb.WriteString("以下の情報をもとに、顧客向け投資提案書のスライド内容を作成してください。\n\n")
	sb.WriteString(formatProfile(profile))
	sb.WriteString("\n")
	sb.WriteString(formatAssets("現在の保有資産", holdings))
	sb.WriteString("\n")
	sb.WriteString(formatAssets("提案商品", proposed))
	sb.WriteString("\n## 参考リサーチ\n")
	sb.WriteString(researchText)
	sb.WriteString("\n\n## スライド構成（この順序・この15枚で出力すること）\n")
	sb.WriteString(slideOutlineInstruction)
	sb.WriteString("\n\n以下の構造のJSONオブジェクトのみを出力してください:\n")
	sb.WriteString(`{"title": ..., "client_name": ..., "slides": [{"id", "type", "title", "subtitle", ` +
		`"body_text", "bullet_points", "table_data" [{"metric","label","value1","value2","explanation"}], ` +
		`"chart_data" [{"name","value"}], "scores", "speaker_notes", "analysis_text", ` +
		`"sources" [{"title","url","page","snippet"}]}]}` + "\n")
	sb.WriteString("rebalance_proposal の table_data では売却行のlabelに「売却」を含め、value1に金額を記載してください。\n")
	sb.WriteString("scenario_analysis の chart_data は楽観・中立・悲観の3点としてください。\n")
	return sb.String()
}

// buildRewritePrompt creates the slide-text rewrite prompt.
func buildRewritePrompt(currentText, instruction string) string {
	var sb strings.Builder
	sb.WriteString("以下のスライド本文を指示に従って書き直してください。書き直した本文のみを出力してください。\n\n")
	sb.WriteString("## 現在の本文\n")
	sb.WriteString(currentText)
	sb.WriteString("\n\n## 指示\n")
	sb.WriteString(instruction)
	return sb.String()
}

// buildParsePrompt creates the document-extraction prompt.
func buildParsePrompt(content string) string {
	var sb strings.Builder
	sb.WriteString("以下は顧客から預かった資産関連書類のテキストです。\n")
	sb.WriteString("保有資産と顧客属性を抽出し、以下の構造のJSONオブジェクトのみを出力してください:\n")
	sb.WriteString(`{"assets": [{"name","ticker","type","amount","quantity","current_price","profit_loss",` +
		`"currency","confidence"}], "profile_hints": {"age","gender","region","risk_tolerance","goals","family_structure"}}` + "\n")
	sb.WriteString("confidence は読取確度を0.0〜1.0で示してください。読み取れない属性は省略してください。\n\n")
	sb.WriteString("## 書類テキスト\n")
	sb.WriteString(content)
	return sb.String()
}
