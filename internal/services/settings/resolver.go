// Package settings normalizes proposal settings into request entries.
package settings

import "github.com/kotaratanaka/IFA/internal/models"

// Resolve turns sparse settings into an ordered list of proposal requests.
// Only types with a positive count appear, in the canonical asset-type
// order. A zero count is identical to an absent key.
func Resolve(s models.ProposalSettings) []models.ProposalRequest {
	requests := make([]models.ProposalRequest, 0, len(models.ProposalTypeOrder))
	for _, t := range models.ProposalTypeOrder {
		count := s.Counts[t]
		if count <= 0 {
			continue
		}
		requests = append(requests, models.ProposalRequest{
			Type:          t,
			Count:         count,
			SubCategories: append([]string(nil), s.SubCategories[t]...),
		})
	}
	return requests
}

// SetCount sets the requested count for a type. Zeroing a count disables
// the type but deliberately keeps its sub-category selection so toggling
// it back on restores the previous selection unchanged.
func SetCount(s models.ProposalSettings, t models.AssetType, count int) models.ProposalSettings {
	out := clone(s)
	if count < 0 {
		count = 0
	}
	out.Counts[t] = count
	return out
}

// SelectSubCategories replaces the sub-category selection for a type.
// Tags outside the type's closed vocabulary are dropped.
func SelectSubCategories(s models.ProposalSettings, t models.AssetType, tags []string) models.ProposalSettings {
	out := clone(s)
	selected := make([]string, 0, len(tags))
	for _, tag := range tags {
		if models.ValidSubCategory(t, tag) {
			selected = append(selected, tag)
		}
	}
	out.SubCategories[t] = selected
	return out
}

func clone(s models.ProposalSettings) models.ProposalSettings {
	out := models.NewProposalSettings()
	for t, c := range s.Counts {
		out.Counts[t] = c
	}
	for t, tags := range s.SubCategories {
		out.SubCategories[t] = append([]string(nil), tags...)
	}
	return out
}
