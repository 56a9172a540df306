package models

import "time"

// Session is one wizard working session. It owns exactly one profile, one
// settings object, one proposed-assets ledger, and at most one generated
// presentation, each replaceable as a whole but never shared between
// sessions.
type Session struct {
	ID             string            `json:"id" badgerhold:"key"`
	Profile        ClientProfile     `json:"profile"`
	Settings       ProposalSettings  `json:"settings"`
	ProposedAssets []Asset           `json:"proposed_assets"`
	Presentation   *PresentationData `json:"presentation,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// DocumentExtraction is the structured result of parsing an uploaded
// document: asset-like rows plus sparse profile hints.
type DocumentExtraction struct {
	Assets       []Asset       `json:"assets"`
	ProfileHints *ProfileHints `json:"profile_hints,omitempty"`
}

// ImportResult summarizes a document import for the adviser.
type ImportResult struct {
	AddedAssets    []Asset  `json:"added_assets"`
	LowConfidence  []string `json:"low_confidence,omitempty"` // ids of assets needing manual review
	ProfileUpdated bool     `json:"profile_updated"`
	Notice         string   `json:"notice,omitempty"` // plain-language user notice
}

// ProfileHints carries partial profile fields extracted from a document.
// Empty fields mean "no information", not "clear the value".
type ProfileHints struct {
	Age             int    `json:"age,omitempty"`
	Gender          string `json:"gender,omitempty"`
	Region          string `json:"region,omitempty"`
	RiskTolerance   string `json:"risk_tolerance,omitempty"`
	Goals           string `json:"goals,omitempty"`
	FamilyStructure string `json:"family_structure,omitempty"`
}
