// Package ledger provides the in-memory holding ledger for a session.
//
// Operations are pure functions from (old state, action) to new state so
// the wizard's state transitions replay deterministically in tests. The
// caller owns the returned slice; input slices are never mutated.
package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/models"
)

// Totals aggregates a ledger's monetary figures.
type Totals struct {
	Amount       float64 `json:"amount"`
	ProfitLoss   float64 `json:"profit_loss"`
	InvestedBase float64 `json:"invested_base"`
	ReturnPct    float64 `json:"return_pct"`
}

// MintID returns a fresh ledger-unique asset identifier.
func MintID() string {
	return "asset-" + uuid.New().String()
}

// Add appends a copy of the asset with a freshly assigned unique id.
func Add(assets []models.Asset, a models.Asset) []models.Asset {
	a.ID = MintID()
	out := make([]models.Asset, len(assets), len(assets)+1)
	copy(out, assets)
	return append(out, a)
}

// Update mutates one field of one entry, identified by id. Unknown ids,
// unknown fields, and unparseable numeric input are silent no-ops so a
// half-typed form never corrupts the ledger.
func Update(assets []models.Asset, id, field, value string) []models.Asset {
	out := make([]models.Asset, len(assets))
	copy(out, assets)

	for i := range out {
		if out[i].ID != id {
			continue
		}
		applyField(&out[i], field, value)
		break
	}
	return out
}

func applyField(a *models.Asset, field, value string) {
	switch strings.ToLower(field) {
	case "name":
		a.Name = value
	case "ticker":
		a.Ticker = value
	case "type":
		a.Type = models.AssetType(value)
	case "currency":
		a.Currency = value
	case "note":
		a.Note = value
	case "amount":
		if v, err := common.ParseAmount(value); err == nil {
			a.Amount = v
		}
	case "quantity":
		if v, err := common.ParseAmount(value); err == nil {
			a.Quantity = v
		}
	case "current_price":
		if v, err := common.ParseAmount(value); err == nil {
			a.CurrentPrice = v
		}
	case "profit_loss":
		if v, err := common.ParseAmount(value); err == nil {
			a.ProfitLoss = v
		}
	}
}

// Remove deletes the entry with the given id.
func Remove(assets []models.Asset, id string) []models.Asset {
	out := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if a.ID == id {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ComputeTotals derives aggregate figures for the ledger. ReturnPct is
// exactly zero when the invested base is not positive.
func ComputeTotals(assets []models.Asset) Totals {
	var t Totals
	for _, a := range assets {
		t.Amount += a.Amount
		t.ProfitLoss += a.ProfitLoss
	}
	t.InvestedBase = t.Amount - t.ProfitLoss
	if t.InvestedBase > 0 {
		t.ReturnPct = t.ProfitLoss / t.InvestedBase * 100
	}
	return t
}
