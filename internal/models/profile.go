package models

import "strings"

// ClientProfile is one subject's demographic and preference record.
// The profile exclusively owns its Holdings; assets are copied on add and
// never shared across ledgers.
type ClientProfile struct {
	Name              string  `json:"name"`
	Age               int     `json:"age,omitempty"`
	Gender            string  `json:"gender,omitempty"`
	Region            string  `json:"region,omitempty"`
	RiskTolerance     string  `json:"risk_tolerance,omitempty"`
	InvestmentHorizon string  `json:"investment_horizon,omitempty"`
	Goals             string  `json:"goals,omitempty"`
	FamilyStructure   string  `json:"family_structure,omitempty"`
	Holdings          []Asset `json:"holdings"`
}

// Regions is the closed list of canonical region names (47 prefectures).
var Regions = []string{
	"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県", "岐阜県",
	"静岡県", "愛知県", "三重県", "滋賀県", "京都府", "大阪府", "兵庫県",
	"奈良県", "和歌山県", "鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県", "福岡県", "佐賀県", "長崎県",
	"熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
}

// FamilyStructures is the closed list of family-structure categories.
var FamilyStructures = []string{
	"独身",
	"夫婦のみ",
	"夫婦と子供",
	"ひとり親と子供",
	"三世代同居",
	"その他",
}

// MatchRegion resolves a free-text region hint against the canonical list
// by bidirectional substring containment ("東京" matches "東京都" and vice
// versa). Returns the raw hint and false when nothing matches.
func MatchRegion(hint string) (string, bool) {
	h := strings.TrimSpace(hint)
	if h == "" {
		return "", false
	}
	for _, region := range Regions {
		if strings.Contains(h, region) || strings.Contains(region, h) {
			return region, true
		}
	}
	return h, false
}

// MatchFamilyStructure resolves a family-structure hint by substring
// containment against the canonical categories, keeping the raw hint when
// nothing matches.
func MatchFamilyStructure(hint string) (string, bool) {
	h := strings.TrimSpace(hint)
	if h == "" {
		return "", false
	}
	for _, category := range FamilyStructures {
		if strings.Contains(h, category) || strings.Contains(category, h) {
			return category, true
		}
	}
	return h, false
}
