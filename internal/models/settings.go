package models

// ProposalSettings maps asset types to requested proposal counts and
// optional sub-category selections. A count of zero is equivalent to an
// absent key everywhere; the sub-category selection is retained state and
// survives a type being toggled off.
type ProposalSettings struct {
	Counts        map[AssetType]int      `json:"counts"`
	SubCategories map[AssetType][]string `json:"sub_categories,omitempty"`
}

// NewProposalSettings returns empty, initialized settings.
func NewProposalSettings() ProposalSettings {
	return ProposalSettings{
		Counts:        make(map[AssetType]int),
		SubCategories: make(map[AssetType][]string),
	}
}

// ProposalRequest is one normalized entry consumed by the recommendation
// and report stages.
type ProposalRequest struct {
	Type          AssetType `json:"type"`
	Count         int       `json:"count"`
	SubCategories []string  `json:"sub_categories,omitempty"`
}

// subCategoryVocab holds the type-specific closed sub-category vocabularies.
var subCategoryVocab = map[AssetType][]string{
	AssetTypeStock: {
		"自動車", "電機・精密", "情報通信", "金融", "医薬品",
		"素材・化学", "エネルギー", "小売・サービス", "不動産", "商社",
	},
	AssetTypeMutualFund: {
		"インデックス型", "アクティブ型", "バランス型", "毎月分配型", "ターゲットイヤー型",
	},
	AssetTypeBond: {
		"国内債券", "先進国債券", "新興国債券", "社債", "劣後債",
	},
	AssetTypeInsurance: {
		"終身保険", "養老保険", "変額保険", "外貨建て保険", "個人年金保険",
	},
	AssetTypeETF: {
		"国内株式ETF", "海外株式ETF", "債券ETF", "REIT型ETF", "コモディティETF",
	},
}

// SubCategoriesFor returns the closed sub-category vocabulary for an asset
// type, or nil when the type has none.
func SubCategoriesFor(t AssetType) []string {
	return subCategoryVocab[t]
}

// ValidSubCategory reports whether tag belongs to the type's vocabulary.
func ValidSubCategory(t AssetType, tag string) bool {
	for _, v := range subCategoryVocab[t] {
		if v == tag {
			return true
		}
	}
	return false
}
